// Package cas implements the download cache for fetched artifacts.
package cas

import (
	"io"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/zerr"
)

var unsafeFileChars = regexp.MustCompile(`[^\w-]+`)

// Store implements ports.ArtifactCache as a flat directory keyed by a sanitised URL.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir. The directory is created on first write.
func NewStore(dir string) *Store {
	return &Store{root: filepath.Clean(dir)}
}

// Path returns where the artifact for url lives.
func (s *Store) Path(url string) string {
	return filepath.Join(s.root, FileName(url))
}

// Has reports whether a non-empty artifact for url is stored.
func (s *Store) Has(url string) bool {
	info, err := os.Stat(s.Path(url))
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}

// Put copies r into the store through a temp file that is renamed into place.
func (s *Store) Put(url string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", s.root)
	}

	path := s.Path(url)
	if err := s.atomicWrite(path, r); err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "url", url), "path", path)
	}
	return path, nil
}

func (s *Store) atomicWrite(path string, r io.Reader) error {
	tmpFile, err := os.CreateTemp(s.root, "download-*.partial")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	written, err := io.Copy(tmpFile, r)
	if err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if written == 0 {
		return domain.ErrDownloadEmpty
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// FileName maps url to a file name by replacing every run of characters outside [A-Za-z0-9_-] with "_".
func FileName(url string) string {
	return unsafeFileChars.ReplaceAllString(url, "_")
}
