package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/autokomis-pl/autokomis-api/internal/httperr"
)

// MaxFileSize is the upload ceiling (8 MiB).
const MaxFileSize = 8 << 20

const urlPrefix = "/uploads/"

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".avif": true,
}

var (
	errBadExtension = httperr.ErrBusiness("Dozwolone formaty: JPG, PNG, WebP, AVIF.")
	errTooLarge     = httperr.ErrBusiness("Plik jest za duży (maksymalnie 8 MB).")
)

// Store writes uploaded car images into a single local directory.
type Store struct {
	dir string
	log *zap.SugaredLogger
}

func New(dir string, log *zap.SugaredLogger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// SaveCarImage validates and persists one uploaded file, returning the
// stored filename. Nothing is written when validation fails.
func (s *Store) SaveCarImage(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", errBadExtension
	}
	if fh.Size > MaxFileSize {
		return "", errTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("car_%d_%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	// the declared size is checked above; the reader is capped anyway so a
	// lying Content-Length cannot push past the ceiling
	written, err := io.Copy(dst, io.LimitReader(src, MaxFileSize+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if written > MaxFileSize {
		os.Remove(path)
		return "", errTooLarge
	}

	s.makeThumbnail(name)

	return name, nil
}

// Remove deletes a stored file and its thumbnail. Best-effort: failures
// are logged, never returned.
func (s *Store) Remove(name string) {
	if name == "" {
		return
	}
	for _, n := range []string{name, ThumbName(name)} {
		err := os.Remove(filepath.Join(s.dir, n))
		if err != nil && !os.IsNotExist(err) {
			s.log.Warnw("failed to remove stored file", "file", n, "err", err)
		}
	}
}

// URL maps a stored filename to its public path.
func (s *Store) URL(name string) string {
	return urlPrefix + name
}

// NameFromURL is the inverse of URL; empty when the url is not ours.
func (s *Store) NameFromURL(url string) string {
	if !strings.HasPrefix(url, urlPrefix) {
		return ""
	}
	return strings.TrimPrefix(url, urlPrefix)
}
