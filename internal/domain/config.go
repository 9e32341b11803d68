package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// VerifierConfig describes the two command shapes used per file. Coverage
// mode is Command + Args + file + BackendSeparator + CoverArgs + OutputArgs;
// property mode is the same without CoverArgs.
type VerifierConfig struct {
	Command          []string      `yaml:"command"           json:"command"`
	Args             []string      `yaml:"args"              json:"args,omitempty"`
	BackendSeparator string        `yaml:"backend_separator" json:"backend_separator,omitempty"`
	CoverArgs        []string      `yaml:"cover_args"        json:"cover_args,omitempty"`
	OutputArgs       []string      `yaml:"output_args"       json:"output_args,omitempty"`
	Timeout          time.Duration `yaml:"timeout"           json:"timeout,omitempty"`
}

// Config holds the tool configuration loaded from .reachdrift.yaml.
type Config struct {
	Verifier VerifierConfig `yaml:"verifier" json:"verifier"`
	Framing  Framing        `yaml:"framing"  json:"framing"`
	Include  []string       `yaml:"include"  json:"include"`
	Exclude  []string       `yaml:"exclude"  json:"exclude,omitempty"`
}

// DefaultConfig returns the kani command shapes and a scan of every .rs file.
func DefaultConfig() Config {
	return Config{
		Verifier: VerifierConfig{
			Command:          []string{"kani"},
			Args:             []string{"--enable-unstable", "--no-unwinding-checks", "--output-format=old"},
			BackendSeparator: "--cbmc-args",
			CoverArgs:        []string{"--cover", "location"},
			OutputArgs:       []string{"--json-ui"},
		},
		Framing: FramingBalanced,
		Include: []string{"**/*.rs"},
	}
}

// CommandLine returns argv for running the verifier on file in mode.
func (v VerifierConfig) CommandLine(file string, mode Mode) []string {
	argv := make([]string, 0, len(v.Command)+len(v.Args)+len(v.CoverArgs)+len(v.OutputArgs)+2)
	argv = append(argv, v.Command...)
	argv = append(argv, v.Args...)
	argv = append(argv, file)
	if v.BackendSeparator != "" {
		argv = append(argv, v.BackendSeparator)
	}
	if mode == ModeCoverage {
		argv = append(argv, v.CoverArgs...)
	}
	return append(argv, v.OutputArgs...)
}

// Fingerprint identifies the verifier setup independent of the input file.
func (v VerifierConfig) Fingerprint() string {
	return strings.Join(v.CommandLine("", ModeCoverage), "\x00")
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if len(c.Verifier.Command) == 0 || strings.TrimSpace(c.Verifier.Command[0]) == "" {
		return fmt.Errorf("verifier.command must not be empty")
	}
	if c.Verifier.Timeout < 0 {
		return fmt.Errorf("verifier.timeout must be >= 0 (got %s)", c.Verifier.Timeout)
	}

	if c.Framing != "" && !isValidFraming(c.Framing) {
		return fmt.Errorf("unknown framing %q (valid: balanced, lines)", c.Framing)
	}

	for _, p := range c.Include {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid include pattern %q", p)
		}
	}
	for _, p := range c.Exclude {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q", p)
		}
	}

	return nil
}

func isValidFraming(f Framing) bool {
	for _, v := range ValidFramings {
		if f == v {
			return true
		}
	}
	return false
}
