package cli_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	crateDir     = "../../../../testdata/crate"
	transcripts  = "../../../../testdata/transcripts"
	fakeVerifier = "../../../../testdata/fake_verifier.sh"
)

// setupCrate copies the fixture crate into a temp dir with a config that
// runs the fake verifier.
func setupCrate(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "crate")
	require.NoError(t, os.CopyFS(dir, os.DirFS(crateDir)))

	script, err := filepath.Abs(fakeVerifier)
	require.NoError(t, err)

	cfg := fmt.Sprintf(`verifier:
  command: [sh, %q]
  args: []
  cover_args: [--cover, location]
  output_args: [--json-ui]
`, script)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".reachdrift.yaml"), []byte(cfg), 0644))
	return dir
}
