package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-MihirParmar/Enlighten/errors"
)

func createStore(t *testing.T) (*DiskStore, func()) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		t.Fatal("could not create tmp dir:", err)
	}

	store, err := NewDiskStore(dir, "/uploads/videos")
	if err != nil {
		os.RemoveAll(dir)
		t.Fatal("could not create store:", err)
	}

	return store, func() { os.RemoveAll(dir) }
}

// mp4Header is a minimal ftyp box, enough for content sniffing.
const mp4Header = "\x00\x00\x00\x10ftypmp42\x00\x00\x00\x00"

func TestDiskStore_Save(t *testing.T) {
	store, f := createStore(t)
	defer f()

	url, err := store.Save("holidays.mp4", strings.NewReader(mp4Header+"frames"))
	require.NoError(t, err, "save should not fail")

	assert.True(t, strings.HasPrefix(url, "/uploads/videos/"), "url should be under the base url, got %s", url)
	assert.True(t, strings.HasSuffix(url, ".mp4"), "the extension should be kept, got %s", url)
	assert.NotContains(t, url, "holidays", "the original filename should not be kept")

	name := strings.TrimPrefix(url, "/uploads/videos/")
	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err, "the file should be on disk")
	assert.Equal(t, mp4Header+"frames", string(data), "the whole body should be written, sniffed bytes included")
}

func TestDiskStore_Save_UnsupportedFormat(t *testing.T) {
	store, f := createStore(t)
	defer f()

	_, err := store.Save("malware.exe", strings.NewReader(mp4Header))
	if assert.Error(t, err, "an unsupported extension should be rejected") {
		errors.AssertCode(t, err, 400)
	}

	_, err = store.Save("page.mp4", strings.NewReader("<html><body>hello</body></html>"))
	if assert.Error(t, err, "content that does not sniff as a video should be rejected") {
		errors.AssertCode(t, err, 400)
	}

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 0, "nothing should be written on disk")
}
