package content

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// FileName is the content document's name inside a content directory.
const FileName = "content.yaml"

//go:embed content.yaml
var embedded embed.FS

// EmbeddedFS exposes the built-in document as an afero filesystem rooted at
// its directory.
func EmbeddedFS() afero.Fs {
	return afero.FromIOFS{FS: embedded}
}

// Load reads and parses dir/content.yaml from fs.
func Load(fs afero.Fs, dir string) (*Document, error) {
	path := filepath.Join(dir, FileName)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

// Library serves the current document to concurrent readers. A reload that
// fails leaves the previous document in place.
type Library struct {
	mu  sync.RWMutex
	doc *Document

	fs  afero.Fs
	dir string
}

// NewLibrary loads the document from dir on fs. An empty dir selects the
// embedded copy.
func NewLibrary(fs afero.Fs, dir string) (*Library, error) {
	if dir == "" {
		fs, dir = EmbeddedFS(), "."
	}

	doc, err := Load(fs, dir)
	if err != nil {
		return nil, err
	}
	return &Library{doc: doc, fs: fs, dir: dir}, nil
}

// MustEmbedded returns a library over the built-in document.
func MustEmbedded() *Library {
	lib, err := NewLibrary(nil, "")
	if err != nil {
		panic(err)
	}
	return lib
}

// Current returns the active document. Callers must not modify it.
func (l *Library) Current() *Document {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.doc
}

// Reload re-reads the document from its source.
func (l *Library) Reload() error {
	doc, err := Load(l.fs, l.dir)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.doc = doc
	l.mu.Unlock()
	return nil
}

// ErrNotWatchable is returned by Watch for sources that are not on disk.
var ErrNotWatchable = errors.New("content: source is not a directory on disk")

// Watch reloads the document whenever the file changes on disk. It returns
// once the watcher is running; the watcher stops when ctx is done.
func (l *Library) Watch(ctx context.Context) error {
	if _, ok := l.fs.(*afero.OsFs); !ok {
		return ErrNotWatchable
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: create watcher: %w", err)
	}
	// Editors replace files on save, so the directory is watched rather than
	// the file itself.
	if err := watcher.Add(l.dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("content: watch %s: %w", l.dir, err)
	}

	go l.watch(ctx, watcher)

	slog.Debug("Started content watcher", "directory", l.dir)
	return nil
}

func (l *Library) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		_ = watcher.Close()
		slog.Info("Content watcher stopped")
	}()

	target := filepath.Join(l.dir, FileName)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(target) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			l.handleChange(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}

func (l *Library) handleChange(event fsnotify.Event) {
	slog.Info("Content file changed, reloading", "event", event.Op.String(), "path", event.Name)

	if err := l.Reload(); err != nil {
		slog.Error("Failed to reload content, keeping previous version", "error", err)
		return
	}
	slog.Info("Successfully reloaded content")
}
