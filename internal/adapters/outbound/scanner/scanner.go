package scanner

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/abdidvp/reachdrift/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	".reachdrift":  true,
	"target":       true,
	"vendor":       true,
	"node_modules": true,
}

// FileScanner implements domain.FileScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan walks root and returns every file whose slash-separated path
// relative to root matches an include pattern and no exclude pattern.
// Exclude patterns that match a directory prune it.
func (s *FileScanner) Scan(root string, include, exclude []string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, err
	}

	result := &domain.ScanResult{
		RootPath: absPath,
	}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absPath, path)
		rel := filepath.ToSlash(relPath)

		if d.IsDir() {
			if path != absPath && (skipDirs[d.Name()] || matchAny(exclude, rel)) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchAny(include, rel) && !matchAny(exclude, rel) {
			result.Files = append(result.Files, relPath)
		}
		return nil
	})

	return result, err
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
