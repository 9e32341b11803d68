package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/abdidvp/reachdrift/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "reachdrift-e2e")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(dir, "reachdrift")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/reachdrift")
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		panic("build failed: " + string(out))
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// fixtureCrate copies the fixture crate into a temp dir configured to run
// the fake verifier.
func fixtureCrate(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "crate")
	require.NoError(t, os.CopyFS(dir, os.DirFS("../../testdata/crate")))

	script, err := filepath.Abs("../../testdata/fake_verifier.sh")
	require.NoError(t, err)

	cfg := fmt.Sprintf("verifier:\n  command: [sh, %q]\n  args: []\n", script)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".reachdrift.yaml"), []byte(cfg), 0644))
	return dir
}

func transcript(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/transcripts", name))
	return abs
}

func run(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := exec.Command(binaryPath, args...)
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return out.String(), errOut.String(), exitCode
}

// --- Scan Tests ---

func TestE2E_Scan(t *testing.T) {
	out, stderr, code := run(t, "scan", fixtureCrate(t))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "reachdrift")
	assert.Contains(t, out, "reach/discrepancy/test.rs")
	assert.Contains(t, stderr, "reach/broken/test.rs")
}

func TestE2E_ScanJSON(t *testing.T) {
	out, _, code := run(t, "scan", fixtureCrate(t), "--json")
	assert.Equal(t, 0, code)

	var summary domain.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 4, summary.Files())
	assert.Equal(t, []string{"reach/matched/test.rs"}, summary.Matches)
	assert.NotEmpty(t, summary.RunID)
}

func TestE2E_ScanCI(t *testing.T) {
	_, stderr, code := run(t, "scan", fixtureCrate(t), "--ci")
	assert.Equal(t, 1, code, "should exit 1 when drift is found")
	assert.Contains(t, stderr, "1 discrepancies, 1 failures")
}

func TestE2E_ScanLinesFraming(t *testing.T) {
	out, _, code := run(t, "scan", fixtureCrate(t), "--framing", "lines", "--json")
	assert.Equal(t, 0, code)

	var summary domain.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, []string{"reach/clean/test.rs"}, summary.NoUnreachable)
}

func TestE2E_ScanHistory(t *testing.T) {
	root := fixtureCrate(t)
	_, _, code := run(t, "scan", root)
	require.Equal(t, 0, code)

	out, _, code := run(t, "scan", root, "--history")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Run History")
	assert.FileExists(t, filepath.Join(root, ".reachdrift", "history", "runs.json"))
}

func TestE2E_ScanInvalidPath(t *testing.T) {
	_, stderr, code := run(t, "scan", "/nonexistent/path")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error:")
}

// --- Compare Tests ---

func TestE2E_Compare(t *testing.T) {
	out, _, code := run(t, "compare",
		"--coverage", transcript("coverage_matched.txt"),
		"--property", transcript("property_unreachable.txt"),
		"--json",
	)
	assert.Equal(t, 0, code)

	var r domain.FileResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, domain.Matched, r.Classification)
}

func TestE2E_CompareTruncated(t *testing.T) {
	_, stderr, code := run(t, "compare", "--property", transcript("truncated.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "malformed report")
}

// --- Misc ---

func TestE2E_Schema(t *testing.T) {
	out, _, code := run(t, "schema")
	assert.Equal(t, 0, code)
	assert.True(t, json.Valid([]byte(out)))
}

func TestE2E_Version(t *testing.T) {
	out, _, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "reachdrift")
}
