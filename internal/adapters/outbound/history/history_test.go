package history_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/abdidvp/reachdrift/internal/adapters/outbound/history"
	"github.com/abdidvp/reachdrift/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.RunEntry{
		RunID:         "7d1f0c2e",
		Timestamp:     "2026-02-25T10:00:00Z",
		CommitHash:    "abc1234",
		Files:         12,
		Discrepancies: 2,
		Matches:       7,
		NoUnreachable: 3,
	}

	require.NoError(t, h.Save(dir, entry))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.RunEntry{RunID: "r1", Discrepancies: 4}))
	require.NoError(t, h.Save(dir, domain.RunEntry{RunID: "r2", Discrepancies: 2}))
	require.NoError(t, h.Save(dir, domain.RunEntry{RunID: "r3", Discrepancies: 0}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "r1", entries[0].RunID)
	assert.Equal(t, "r3", entries[2].RunID)
}

func TestHistory_LoadEmpty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestHistory_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".reachdrift", "history", "runs.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("not json"), 0644))

	_, err := history.New().Load(dir)
	assert.Error(t, err)
}

func TestHistory_ConcurrentSavesKeepAllEntries(t *testing.T) {
	dir := t.TempDir()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, history.New().Save(dir, domain.RunEntry{Files: 1}))
		}()
	}
	wg.Wait()

	entries, err := history.New().Load(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 8)
}
