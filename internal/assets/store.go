// Package assets persists uploaded photo content and hands back stable URLs.
package assets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

// PlaceholderURL is returned when an item is created without a photo.
const PlaceholderURL = "https://via.placeholder.com/100"

// RoutePrefix is the static-file route uploaded photos are served under.
const RoutePrefix = "/uploads"

// ErrUploadFailed indicates the photo content could not be persisted.
var ErrUploadFailed = errors.New("assets: upload failed")

// Upload carries the content of one uploaded file plus its original name.
// Handlers parse the transport (multipart form) and pass this record down,
// so consumers never touch *http.Request.
type Upload struct {
	Filename string
	Content  io.Reader
}

// Store writes photos into a single flat directory and never deletes or
// overwrites a file. Names stay collision-free for the process lifetime.
type Store struct {
	dir     string
	baseURL string
	seq     atomic.Uint64
}

// NewStore builds a Store rooted at dir. The directory is created lazily on
// first write. baseURL is the external scheme+host the service is reachable
// under, without a trailing slash.
func NewStore(dir, baseURL string) *Store {
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Dir returns the content directory used for uploads.
func (s *Store) Dir() string {
	return s.dir
}

// Resolve persists the upload and returns the absolute URL it will be served
// from. A nil upload resolves to the placeholder URL.
func (s *Store) Resolve(upload *Upload) (string, error) {
	if upload == nil || upload.Content == nil {
		return PlaceholderURL, nil
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	name := s.storedName(upload.Filename)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if _, err := io.Copy(f, upload.Content); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return fmt.Sprintf("%s%s/%s", s.baseURL, RoutePrefix, name), nil
}

// storedName builds "<token>-<originalFilename>". The token combines a
// nanosecond timestamp with a process-wide counter so back-to-back uploads
// within the same clock tick still get distinct names.
func (s *Store) storedName(original string) string {
	token := fmt.Sprintf("%d.%d", time.Now().UnixNano(), s.seq.Add(1))
	return token + "-" + sanitizeFilename(original)
}

// sanitizeFilename strips any path components and characters that would
// break the flat directory layout or the serving route.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." || name == ".." {
		return "photo"
	}
	return name
}
