package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrTooLarge is returned when an upload exceeds the configured limit
var ErrTooLarge = errors.New("file exceeds the maximum upload size")

// FileStore keeps uploaded scripts as plain files in a single directory
type FileStore struct {
	dir      string
	maxBytes int64
}

// NewFileStore creates dir if needed and returns a store writing into it
func NewFileStore(dir string, maxBytes int64) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &FileStore{dir: dir, maxBytes: maxBytes}, nil
}

// MaxBytes returns the upload size limit
func (s *FileStore) MaxBytes() int64 {
	return s.maxBytes
}

// StoredName derives a unique storage name keeping the script extension,
// e.g. "premium.vip.js" becomes "premium.vip-<uuid>.js"
func StoredName(originalName string) string {
	base := filepath.Base(originalName)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s-%s%s", stem, strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
}

// Save writes r under a fresh storage name and returns that name and the
// number of bytes written
func (s *FileStore) Save(originalName string, r io.Reader) (string, int64, error) {
	name := StoredName(originalName)
	path := s.Path(name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()

	if err == nil && n > s.maxBytes {
		err = ErrTooLarge
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		if errors.Is(err, ErrTooLarge) {
			return "", 0, err
		}
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	return name, n, nil
}

// Open opens a stored file for reading
func (s *FileStore) Open(name string) (*os.File, error) {
	return os.Open(s.Path(name))
}

// Remove deletes a stored file. A missing file is not an error.
func (s *FileStore) Remove(name string) error {
	if err := os.Remove(s.Path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// Path returns the on-disk location of a stored file
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
