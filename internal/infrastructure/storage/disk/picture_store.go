package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PictureStore persists uploaded profile images on the local filesystem.
// Files get generated uuid names that keep the original extension; the
// returned path is the public URL path under which the router serves the
// upload directory.
type PictureStore struct {
	dir        string // filesystem directory, e.g. ./uploads
	publicPath string // URL prefix, e.g. /uploads
}

func NewPictureStore(dir, publicPath string) *PictureStore {
	return &PictureStore{
		dir:        dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
	}
}

// Store writes src under a generated name and returns the public path. The
// storage directory is created on first use.
func (s *PictureStore) Store(ctx context.Context, src io.Reader, originalFilename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("picture store: create dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalFilename))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("picture store: create file: %w", err)
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("picture store: write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("picture store: close file: %w", err)
	}

	return s.publicPath + "/" + name, nil
}

// Delete removes a stored picture. A file that is already gone is treated as
// deleted.
func (s *PictureStore) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, ok := s.fileName(path)
	if !ok {
		return fmt.Errorf("picture store: %q is not a managed path", path)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("picture store: delete: %w", err)
	}
	return nil
}

// Managed reports whether path points into this store's public prefix.
// External URLs on a record's picture field are never touched.
func (s *PictureStore) Managed(path string) bool {
	_, ok := s.fileName(path)
	return ok
}

// fileName extracts the bare file name from a public path, rejecting
// anything outside the prefix or containing path traversal.
func (s *PictureStore) fileName(path string) (string, bool) {
	if !strings.HasPrefix(path, s.publicPath+"/") {
		return "", false
	}
	name := strings.TrimPrefix(path, s.publicPath+"/")
	if name == "" || name != filepath.Base(name) {
		return "", false
	}
	return name, true
}
