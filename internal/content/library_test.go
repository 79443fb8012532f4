package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDoc = `
home:
  title: Hello
  features:
    - title: One
      text: first
diet:
  title: Eat
  tips:
    - title: Greens
      text: more
wellness:
  title: Rest
  tips:
    - title: Sleep
      text: lots
      quote: zzz
footer:
  brand: Test Brand
`

func TestEmbeddedDocument(t *testing.T) {
	doc := MustEmbedded().Current()

	assert.Equal(t, "Empowering Women's Health", doc.Home.Title)
	assert.Len(t, doc.Home.Features, 3)
	assert.Len(t, doc.Diet.Tips, 6)
	assert.Len(t, doc.Diet.Limit.Items, 4)
	assert.NotEmpty(t, doc.Diet.ProTip)
	assert.Len(t, doc.Wellness.Tips, 6)
	assert.Equal(t, "https://www.reddit.com/r/PCOS/", doc.Wellness.Support.Link.URL)
	assert.Equal(t, "Need Someone to Talk To?", doc.Wellness.Support.Title)
	assert.Equal(t, "register", doc.Home.CTA.Action.Page)

	var seconds []int
	for _, step := range doc.Wellness.Breathing.Steps {
		seconds = append(seconds, step.Seconds)
	}
	assert.Equal(t, []int{4, 7, 8}, seconds)
}

func TestParse_RejectsIncompleteDocument(t *testing.T) {
	_, err := Parse([]byte("home:\n  title: only\n"))
	assert.ErrorIs(t, err, ErrIncomplete)

	_, err = Parse([]byte("home: [unbalanced"))
	assert.Error(t, err)
}

func TestLibrary_Reload(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/content/"+FileName, []byte(minimalDoc), 0o644))

	lib, err := NewLibrary(fs, "/content")
	require.NoError(t, err)
	assert.Equal(t, "Hello", lib.Current().Home.Title)

	updated := []byte(`
home:
  title: Updated
  features: [{title: One, text: first}]
diet: {title: Eat, tips: [{title: Greens, text: more}]}
wellness: {title: Rest, tips: [{title: Sleep, text: lots}]}
footer: {brand: Test Brand}
`)
	require.NoError(t, afero.WriteFile(fs, "/content/"+FileName, updated, 0o644))
	require.NoError(t, lib.Reload())
	assert.Equal(t, "Updated", lib.Current().Home.Title)
}

func TestLibrary_FailedReloadKeepsPrevious(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c/"+FileName, []byte(minimalDoc), 0o644))
	lib, err := NewLibrary(fs, "/c")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/c/"+FileName, []byte("home: {}"), 0o644))
	assert.ErrorIs(t, lib.Reload(), ErrIncomplete)
	assert.Equal(t, "Hello", lib.Current().Home.Title)
}

func TestNewLibrary_MissingFile(t *testing.T) {
	_, err := NewLibrary(afero.NewMemMapFs(), "/nowhere")
	assert.Error(t, err)
}

func TestLibrary_WatchRequiresDisk(t *testing.T) {
	assert.ErrorIs(t, MustEmbedded().Watch(context.Background()), ErrNotWatchable)
}

func TestLibrary_WatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(minimalDoc), 0o644))

	lib, err := NewLibrary(afero.NewOsFs(), dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, lib.Watch(ctx))

	changed := []byte(`
home: {title: Watched, features: [{title: One, text: first}]}
diet: {title: Eat, tips: [{title: Greens, text: more}]}
wellness: {title: Rest, tips: [{title: Sleep, text: lots}]}
footer: {brand: Test Brand}
`)
	require.NoError(t, os.WriteFile(path, changed, 0o644))

	assert.Eventually(t, func() bool {
		return lib.Current().Home.Title == "Watched"
	}, 5*time.Second, 20*time.Millisecond)
}
