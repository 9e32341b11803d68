package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/reachdrift/internal/domain"
)

// Store is a file-based implementation of domain.TranscriptCache. Each
// transcript is one text file named after its key and mode.
type Store struct{}

// New creates a new file-based transcript cache.
func New() *Store {
	return &Store{}
}

// Load reads a cached transcript. A miss returns ("", false, nil).
func (s *Store) Load(root, key string, mode domain.Mode) (string, bool, error) {
	data, err := os.ReadFile(cachePath(root, key, mode))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

// Save writes a transcript to the cache, creating directories as needed.
func (s *Store) Save(root, key string, mode domain.Mode, transcript string) error {
	if err := os.MkdirAll(cacheDir(root), 0755); err != nil {
		return err
	}
	return os.WriteFile(cachePath(root, key, mode), []byte(transcript), 0644)
}

// Invalidate removes every cached transcript under root.
func (s *Store) Invalidate(root string) error {
	if err := os.RemoveAll(cacheDir(root)); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}

func cacheDir(root string) string {
	return filepath.Join(root, ".reachdrift", "cache")
}

func cachePath(root, key string, mode domain.Mode) string {
	return filepath.Join(cacheDir(root), key+"."+string(mode)+".txt")
}
