// Package upload loads the page image the pupil picked.
package upload

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/lectio/internal/llm"
)

// MaxBytes is the largest image sent inline to a provider.
const MaxBytes = 20 << 20

var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("image is too large")
)

// Picked is a loaded image ready for the gateway.
type Picked struct {
	Path  string
	URL   string
	Image llm.Image
}

// Load reads path and checks that it holds an image. The content is
// sniffed first; the extension is only consulted when sniffing is
// inconclusive.
func Load(path string) (Picked, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Picked{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return Picked{}, fmt.Errorf("open image: %w", err)
	}
	if info.IsDir() {
		return Picked{}, fmt.Errorf("%s: %w", path, ErrNotImage)
	}
	if info.Size() > MaxBytes {
		return Picked{}, fmt.Errorf("%s (%d bytes): %w", path, info.Size(), ErrTooLarge)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return Picked{}, fmt.Errorf("read image: %w", err)
	}

	mt := DetectMIME(abs, data)
	if !strings.HasPrefix(mt, "image/") {
		return Picked{}, fmt.Errorf("%s (%s): %w", path, mt, ErrNotImage)
	}

	return Picked{
		Path:  abs,
		URL:   FileURL(abs),
		Image: llm.Image{MIMEType: mt, Data: data},
	}, nil
}

// DetectMIME returns the media type of data, without parameters.
func DetectMIME(path string, data []byte) string {
	mt := http.DetectContentType(data)
	if mt == "application/octet-stream" || strings.HasPrefix(mt, "text/plain") {
		if ext := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ext != "" {
			mt = ext
		}
	}
	if base, _, err := mime.ParseMediaType(mt); err == nil {
		return base
	}
	return mt
}

// FileURL returns the file:// URL of an absolute path.
func FileURL(abs string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

// ExpandPath trims whitespace and the quotes left by terminal drag and
// drop, and resolves a leading "~/".
func ExpandPath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), `"'`)
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}
