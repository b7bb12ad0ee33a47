package blob

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes blobs into a directory on disk. Files are served back
// by the HTTP layer under BaseURL, so the returned reference is
// BaseURL/name.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	dst := filepath.Join(s.Dir, filepath.Base(name))
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", err
	}
	return s.BaseURL + "/" + filepath.Base(name), nil
}

func (s *LocalStore) Remove(ctx context.Context, name string) error {
	return os.Remove(filepath.Join(s.Dir, filepath.Base(name)))
}

var _ Store = (*LocalStore)(nil)
