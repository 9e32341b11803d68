package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/abdidvp/reachdrift/internal/domain"
)

const historyFile = ".reachdrift/history/runs.json"

// FileHistory implements domain.RunHistory using JSON file storage. Appends
// hold an exclusive lock on a sidecar lock file so concurrent runs over the
// same tree do not drop entries.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(root string, entry domain.RunEntry) error {
	fp := filepath.Join(root, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	lock := flock.New(fp + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking history: %w", err)
	}
	defer lock.Unlock()

	entries, err := h.Load(root)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return atomicWrite(fp, data)
}

func (h *FileHistory) Load(root string) ([]domain.RunEntry, error) {
	fp := filepath.Join(root, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", historyFile, err)
	}

	return entries, nil
}

// atomicWrite replaces path via a temp file in the same directory and a rename.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
