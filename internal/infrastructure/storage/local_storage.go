package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// LocalStorage keeps uploads on the local filesystem under a root directory
// that is also served as static files.
type LocalStorage struct {
	root      string
	publicURL string
	log       *logrus.Logger
}

// NewLocalStorage creates the root directory if needed.
func NewLocalStorage(root, publicURL string, log *logrus.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", root, err)
	}
	return &LocalStorage{
		root:      root,
		publicURL: publicURL,
		log:       log,
	}, nil
}

// Root returns the directory uploads are written to.
func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) Save(ctx context.Context, content io.Reader, originalName, folder, desiredName string) (*StoredObject, error) {
	folder = NormalizeFolder(folder)
	name := ResolveName(originalName, desiredName)
	relPath := RelativePath(folder, name)
	target := filepath.Join(s.root, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create folder for %s: %w", relPath, err)
	}

	f, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", relPath, err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", relPath, err)
	}

	s.log.Debugf("Stored file %s", relPath)

	return &StoredObject{
		URL:  JoinURL(s.publicURL, relPath),
		Path: relPath,
	}, nil
}

func (s *LocalStorage) Remove(ctx context.Context, reference string) error {
	if reference == "" {
		return nil
	}

	relPath := CleanReference(reference, s.publicURL)
	if relPath == "" {
		return nil
	}
	target := filepath.Join(s.root, filepath.FromSlash(relPath))

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", relPath, err)
	}
	// Only files are removable; folders under the root stay.
	if info.IsDir() {
		s.log.Debugf("Skipping removal of directory %s", relPath)
		return nil
	}

	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to remove %s: %w", relPath, err)
	}

	s.log.Debugf("Removed file %s", relPath)
	return nil
}
