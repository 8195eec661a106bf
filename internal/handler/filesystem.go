package handler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var ErrOutsideRoot = fmt.Errorf("%w: path escapes document root", ErrNotFound)

// Filesystem reads a whole file named by a request path such as "/a.html".
type Filesystem interface {
	ReadFile(path string) ([]byte, error)
}

// RootFS resolves request paths under a single directory. Lookups that
// would leave the directory, through ".." or symlinks, fail with
// ErrOutsideRoot.
type RootFS struct {
	root *os.Root
}

func OpenRoot(dir string) (*RootFS, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open document root %q: %w", dir, err)
	}
	return &RootFS{root: root}, nil
}

func (r *RootFS) ReadFile(path string) ([]byte, error) {
	name := strings.TrimLeft(path, "/")
	if name == "" {
		return nil, ErrNotFound
	}
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return nil, fmt.Errorf("%w: %s", ErrOutsideRoot, name)
	}

	info, err := r.root.Stat(name)
	if err != nil {
		return nil, classify(name, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotFound, name)
	}

	content, err := r.root.ReadFile(name)
	if err != nil {
		return nil, classify(name, err)
	}
	return content, nil
}

func (r *RootFS) Close() error {
	return r.root.Close()
}

func classify(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fmt.Errorf("read %s: %w", name, err)
}
