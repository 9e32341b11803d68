package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/abdidvp/reachdrift/internal/domain"
	"github.com/abdidvp/reachdrift/internal/domain/reach"
)

// VerifierFactory builds a verifier for the effective command setup of a run.
type VerifierFactory func(domain.VerifierConfig) domain.Verifier

// ParserFactory builds a report parser for a framing strategy.
type ParserFactory func(domain.Framing) domain.ReportParser

// DriftService orchestrates a batch:
// load config → scan → per file (coverage run, property run, parse, classify) → fold.
type DriftService struct {
	scanner      domain.FileScanner
	configLoader domain.ConfigLoader
	newVerifier  VerifierFactory
	newParser    ParserFactory
	cache        domain.TranscriptCache
	log          *slog.Logger

	framing  domain.Framing
	command  []string
	onResult func(domain.FileResult)
}

// DriftOption adjusts a DriftService.
type DriftOption func(*DriftService)

// WithCache enables the transcript cache. A nil cache disables it.
func WithCache(c domain.TranscriptCache) DriftOption {
	return func(s *DriftService) { s.cache = c }
}

// WithFraming overrides the framing strategy from the config file.
func WithFraming(f domain.Framing) DriftOption {
	return func(s *DriftService) { s.framing = f }
}

// WithCommand overrides verifier.command from the config file.
func WithCommand(argv []string) DriftOption {
	return func(s *DriftService) { s.command = argv }
}

// WithOnResult registers a hook called after each file is classified.
func WithOnResult(fn func(domain.FileResult)) DriftOption {
	return func(s *DriftService) { s.onResult = fn }
}

func NewDriftService(
	scanner domain.FileScanner,
	configLoader domain.ConfigLoader,
	newVerifier VerifierFactory,
	newParser ParserFactory,
	log *slog.Logger,
	opts ...DriftOption,
) *DriftService {
	s := &DriftService{
		scanner:      scanner,
		configLoader: configLoader,
		newVerifier:  newVerifier,
		newParser:    newParser,
		log:          log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes every candidate file under root one at a time. Per-file
// faults become Failed results and the batch continues. If ctx is cancelled
// the summary built so far is returned together with the context error.
func (s *DriftService) Run(ctx context.Context, root string) (*domain.Summary, error) {
	started := time.Now()

	// 0. Load config and apply overrides
	cfg, err := s.configLoader.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if s.framing != "" {
		cfg.Framing = s.framing
	}
	if len(s.command) > 0 {
		cfg.Verifier.Command = s.command
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 1. Scan for candidate files
	scan, err := s.scanner.Scan(root, cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	s.log.Debug("scan complete", "root", scan.RootPath, "files", len(scan.Files))

	verifier := s.newVerifier(cfg.Verifier)
	parser := s.newParser(cfg.Framing)

	summary := domain.NewSummary()
	summary.RunID = uuid.NewString()
	summary.Root = scan.RootPath
	summary.StartedAt = started

	// 2. Classify each file in discovery order
	for _, rel := range scan.Files {
		if err := ctx.Err(); err != nil {
			summary.Duration = time.Since(started)
			return &summary, err
		}

		result := s.processFile(ctx, scan.RootPath, rel, cfg.Verifier, verifier, parser)
		if result.Classification == domain.Failed {
			if err := ctx.Err(); err != nil {
				summary.Duration = time.Since(started)
				return &summary, err
			}
			s.log.Warn("file failed", "path", rel, "err", result.Cause)
		}

		if s.onResult != nil {
			s.onResult(result)
		}
		summary = summary.With(result)
	}

	summary.Duration = time.Since(started)
	return &summary, nil
}

func (s *DriftService) processFile(
	ctx context.Context,
	root, rel string,
	vcfg domain.VerifierConfig,
	verifier domain.Verifier,
	parser domain.ReportParser,
) domain.FileResult {
	abs := filepath.Join(root, rel)

	content, err := os.ReadFile(abs)
	if err != nil {
		return domain.FailedResult(rel, fmt.Errorf("reading input: %w", err))
	}
	key := domain.TranscriptKey(filepath.ToSlash(rel), content, vcfg)

	reports := make(map[domain.Mode]*domain.VerificationReport, 2)
	for _, mode := range []domain.Mode{domain.ModeCoverage, domain.ModeProperty} {
		report, err := s.report(ctx, root, key, abs, mode, verifier, parser)
		if err != nil {
			return domain.FailedResult(rel, err)
		}
		if report.Skipped > 0 {
			s.log.Debug("skipped entries without required fields", "path", rel, "mode", mode, "count", report.Skipped)
		}
		reports[mode] = report
	}

	return reach.Classify(rel, reports[domain.ModeCoverage], reports[domain.ModeProperty])
}

// report returns the parsed report for file in mode. A cached transcript is
// used only if it still parses; otherwise the verifier runs, and its output
// is cached once it has parsed.
func (s *DriftService) report(
	ctx context.Context,
	root, key, file string,
	mode domain.Mode,
	verifier domain.Verifier,
	parser domain.ReportParser,
) (*domain.VerificationReport, error) {
	if s.cache != nil {
		raw, ok, err := s.cache.Load(root, key, mode)
		switch {
		case err != nil:
			s.log.Debug("cache read failed", "file", file, "mode", mode, "err", err)
		case ok:
			if report, err := parser.Parse(raw); err == nil {
				s.log.Debug("cache hit", "file", file, "mode", mode)
				return report, nil
			}
			s.log.Debug("discarding unparsable cached transcript", "file", file, "mode", mode)
		}
	}

	raw, err := verifier.Run(ctx, file, mode)
	if err != nil {
		return nil, fmt.Errorf("%s run: %w", mode, err)
	}

	report, err := parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s report: %w", mode, err)
	}

	if s.cache != nil {
		if err := s.cache.Save(root, key, mode, raw); err != nil {
			s.log.Debug("cache write failed", "file", file, "mode", mode, "err", err)
		}
	}
	return report, nil
}
