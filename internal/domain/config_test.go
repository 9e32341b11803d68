package domain_test

import (
	"testing"
	"time"

	"github.com/abdidvp/reachdrift/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, domain.FramingBalanced, cfg.Framing)
	assert.Equal(t, []string{"**/*.rs"}, cfg.Include)
}

func TestVerifierConfig_CommandLine(t *testing.T) {
	v := domain.DefaultConfig().Verifier

	assert.Equal(t, []string{
		"kani", "--enable-unstable", "--no-unwinding-checks", "--output-format=old",
		"tests/a.rs", "--cbmc-args", "--cover", "location", "--json-ui",
	}, v.CommandLine("tests/a.rs", domain.ModeCoverage))

	assert.Equal(t, []string{
		"kani", "--enable-unstable", "--no-unwinding-checks", "--output-format=old",
		"tests/a.rs", "--cbmc-args", "--json-ui",
	}, v.CommandLine("tests/a.rs", domain.ModeProperty))
}

func TestVerifierConfig_CommandLineWithoutSeparator(t *testing.T) {
	v := domain.VerifierConfig{Command: []string{"sh", "fake.sh"}, CoverArgs: []string{"--cover"}}
	assert.Equal(t, []string{"sh", "fake.sh", "f.rs", "--cover"}, v.CommandLine("f.rs", domain.ModeCoverage))
	assert.Equal(t, []string{"sh", "fake.sh", "f.rs"}, v.CommandLine("f.rs", domain.ModeProperty))
}

func TestVerifierConfig_FingerprintChangesWithArgs(t *testing.T) {
	a := domain.DefaultConfig().Verifier
	b := domain.DefaultConfig().Verifier
	b.Args = append(b.Args, "--extra")
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, a.Fingerprint(), domain.DefaultConfig().Verifier.Fingerprint())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{"empty command", func(c *domain.Config) { c.Verifier.Command = nil }, "verifier.command"},
		{"blank command", func(c *domain.Config) { c.Verifier.Command = []string{" "} }, "verifier.command"},
		{"negative timeout", func(c *domain.Config) { c.Verifier.Timeout = -time.Second }, "verifier.timeout"},
		{"unknown framing", func(c *domain.Config) { c.Framing = "guess" }, "unknown framing"},
		{"bad include", func(c *domain.Config) { c.Include = []string{"[a-"} }, "invalid include"},
		{"bad exclude", func(c *domain.Config) { c.Exclude = []string{"{a,b"} }, "invalid exclude"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateAcceptsLinesFraming(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Framing = domain.FramingLines
	assert.NoError(t, cfg.Validate())
}
