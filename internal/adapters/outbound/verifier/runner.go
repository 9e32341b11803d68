package verifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/abdidvp/reachdrift/internal/domain"
)

// waitDelay bounds how long Run waits for output pipes after the process
// is killed on cancellation.
const waitDelay = 5 * time.Second

const maxStderrInError = 512

// Runner implements domain.Verifier by executing the configured command.
type Runner struct {
	cfg domain.VerifierConfig
	log *slog.Logger
}

// New creates a Runner for the given verifier setup.
func New(cfg domain.VerifierConfig, log *slog.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// Run executes the verifier on file in the given mode and returns its
// trimmed standard output. A non-zero exit is not an error by itself: the
// verifier exits non-zero whenever a property fails, and the transcript is
// still complete. It is an error when the process cannot start, is
// cancelled or times out, or exits non-zero without writing anything.
func (r *Runner) Run(ctx context.Context, file string, mode domain.Mode) (string, error) {
	argv := r.cfg.CommandLine(file, mode)
	if len(argv) == 0 || argv[0] == "" {
		return "", fmt.Errorf("%w: empty verifier command", domain.ErrExternalTool)
	}

	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	cmdline := strings.Join(argv, " ")
	r.log.Debug("running verifier", "mode", mode, "cmd", cmdline)

	start := time.Now()
	err := cmd.Run()
	r.log.Debug("verifier finished", "mode", mode, "file", file,
		"duration", time.Since(start).Round(time.Millisecond), "exit", exitCode(cmd))

	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("%w: '%s': %w", domain.ErrExternalTool, cmdline, ctxErr)
	}

	out := strings.TrimSpace(stdout.String())
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: '%s': %v", domain.ErrExternalTool, cmdline, err)
		}
		if out == "" {
			return "", fmt.Errorf("%w: '%s' exited with code %d: %s",
				domain.ErrExternalTool, cmdline, exitErr.ExitCode(), stderrTail(stderr.String()))
		}
	}
	if out == "" {
		return "", fmt.Errorf("%w: '%s' returned no output", domain.ErrExternalTool, cmdline)
	}

	return out, nil
}

func exitCode(cmd *exec.Cmd) int {
	if cmd.ProcessState == nil {
		return -1
	}
	return cmd.ProcessState.ExitCode()
}

func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxStderrInError {
		s = "..." + s[len(s)-maxStderrInError:]
	}
	if s == "" {
		return "no stderr"
	}
	return s
}
