package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileMarker keeps the marker as a small file, used by the command-line
// client. The filesystem is injected so tests can run on afero.MemMapFs.
type FileMarker struct {
	fs   afero.Fs
	path string
}

// MarkerFile is the file name used inside the marker directory.
const MarkerFile = "session"

// NewFileMarker places the marker at dir/session on fs.
func NewFileMarker(fs afero.Fs, dir string) *FileMarker {
	return &FileMarker{fs: fs, path: filepath.Join(dir, MarkerFile)}
}

// Path returns the marker file location.
func (m *FileMarker) Path() string { return m.path }

func (m *FileMarker) Present() bool {
	data, err := afero.ReadFile(m.fs, m.path)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) != ""
}

func (m *FileMarker) Set() error {
	if err := m.fs.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return err
	}
	return afero.WriteFile(m.fs, m.path, []byte(markerOn+"\n"), 0o600)
}

func (m *FileMarker) Clear() error {
	if err := m.fs.Remove(m.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
