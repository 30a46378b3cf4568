package imagestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists uploaded project images. Save returns a stable relative
// path suitable for storing on the project record; Delete removes a
// previously saved image by that path. Deleting a path that no longer exists
// is not an error.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, relPath string) error
}

// uniqueName prefixes the client-supplied filename with a fresh uuid so
// uploads never collide and never traverse out of the upload directory.
func uniqueName(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	return uuid.New().String() + "_" + base
}

// DiskStore writes images under root and reports paths relative to the
// public /img/uploads prefix, matching what the rendering layer serves.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

func (s *DiskStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uniqueName(filename)
	fullPath := filepath.Join(s.root, name)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("close image file: %w", err)
	}

	return "/img/uploads/" + name, nil
}

func (s *DiskStore) Delete(_ context.Context, relPath string) error {
	name := path.Base(relPath)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete image file: %w", err)
	}
	return nil
}
