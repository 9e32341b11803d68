package application_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdidvp/reachdrift/internal/adapters/outbound/config"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/parser"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/scanner"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/verifier"
	"github.com/abdidvp/reachdrift/internal/application"
	"github.com/abdidvp/reachdrift/internal/domain"
	"github.com/abdidvp/reachdrift/internal/logger"
	"github.com/stretchr/testify/require"
)

const (
	crateDir     = "../../testdata/crate"
	transcripts  = "../../testdata/transcripts"
	fakeVerifier = "../../testdata/fake_verifier.sh"
)

// setupCrate copies the fixture crate into a temp dir and points its config
// at the fake verifier, so runs never write into testdata.
func setupCrate(t *testing.T, extra string) string {
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
%s`, script, extra)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".reachdrift.yaml"), []byte(cfg), 0644))
	return dir
}

func newDriftService(opts ...application.DriftOption) *application.DriftService {
	return application.NewDriftService(
		scanner.New(),
		config.New(),
		func(c domain.VerifierConfig) domain.Verifier { return verifier.New(c, logger.Discard()) },
		func(f domain.Framing) domain.ReportParser { return parser.New(f) },
		logger.Discard(),
		opts...,
	)
}

func readTranscript(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(transcripts, name))
	require.NoError(t, err)
	return string(data)
}
