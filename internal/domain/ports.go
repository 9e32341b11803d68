package domain

import "context"

// FileScanner finds candidate input files under a root directory.
type FileScanner interface {
	Scan(root string, include, exclude []string) (*ScanResult, error)
}

// ScanResult holds the candidate files found under RootPath, relative to it,
// in discovery order.
type ScanResult struct {
	RootPath string   `json:"root_path"`
	Files    []string `json:"files"`
}

// ReportParser turns a raw verifier transcript into a report.
type ReportParser interface {
	Parse(raw string) (*VerificationReport, error)
}

// Verifier runs the external verifier on one file in one mode and returns
// its raw transcript.
type Verifier interface {
	Run(ctx context.Context, file string, mode Mode) (string, error)
}

// ConfigLoader loads the tool configuration for a root directory.
type ConfigLoader interface {
	Load(root string) (Config, error)
}

// TranscriptCache stores raw transcripts keyed by input content and verifier setup.
type TranscriptCache interface {
	Load(root, key string, mode Mode) (string, bool, error)
	Save(root, key string, mode Mode, transcript string) error
}

// RunHistory persists condensed results of past runs.
type RunHistory interface {
	Save(root string, entry RunEntry) error
	Load(root string) ([]RunEntry, error)
}

// GitInfo reports version-control facts about a directory.
type GitInfo interface {
	CommitHash(path string) (string, error)
}
