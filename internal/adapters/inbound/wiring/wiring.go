// Package wiring assembles the outbound adapters shared by the CLI and the
// MCP server.
package wiring

import (
	"log/slog"

	"github.com/abdidvp/reachdrift/internal/adapters/outbound/config"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/history"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/parser"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/scanner"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/verifier"
	"github.com/abdidvp/reachdrift/internal/application"
	"github.com/abdidvp/reachdrift/internal/domain"
)

// NewDriftService wires the outbound adapters into a DriftService.
func NewDriftService(log *slog.Logger, opts ...application.DriftOption) *application.DriftService {
	return application.NewDriftService(
		scanner.New(),
		config.New(),
		func(c domain.VerifierConfig) domain.Verifier { return verifier.New(c, log) },
		func(f domain.Framing) domain.ReportParser { return parser.New(f) },
		log,
		opts...,
	)
}

// RecordRun attaches the HEAD commit of root to s and, if the run completed,
// appends it to the run history. Both steps are best-effort.
func RecordRun(root string, s *domain.Summary, completed bool, log *slog.Logger) {
	if hash, err := gitinfo.New().CommitHash(root); err == nil {
		s.CommitHash = hash
	}
	if !completed {
		return
	}
	if err := history.New().Save(root, s.Entry()); err != nil {
		log.Debug("saving history", "err", err)
	}
}
