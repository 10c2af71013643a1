package upload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func write(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad_PNG(t *testing.T) {
	path := write(t, "page.png", pngHeader)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", p.Image.MIMEType)
	assert.Equal(t, pngHeader, p.Image.Data)
	assert.Equal(t, "file://"+filepath.ToSlash(path), p.URL)
}

func TestLoad_SniffsBeforeExtension(t *testing.T) {
	path := write(t, "page.txt", []byte("\xff\xd8\xff\xe0\x00\x10JFIF"))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", p.Image.MIMEType)
}

func TestLoad_RejectsText(t *testing.T) {
	path := write(t, "notes.png.txt", []byte("Il était une fois un renard."))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestLoad_RejectsDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.png"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotImage)
}

func TestDetectMIME_FallsBackToExtension(t *testing.T) {
	assert.Equal(t, "image/webp", DetectMIME("page.webp", []byte{0, 1, 2, 3}))
	assert.Equal(t, "application/octet-stream", DetectMIME("page.bin", []byte{0, 1, 2, 3}))
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "page.png"), ExpandPath("~/page.png"))
	assert.Equal(t, "/tmp/my page.png", ExpandPath(" '/tmp/my page.png'\n"))
	assert.Equal(t, "page.png", ExpandPath(`"page.png"`))
}
