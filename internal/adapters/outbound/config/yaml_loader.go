package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/reachdrift/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".reachdrift.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .reachdrift.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .reachdrift.yaml from root.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(root string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(root, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	cfg = mergeConfig(domain.DefaultConfig(), cfg)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}

// mergeConfig overlays explicit overrides on top of defaults.
// Explicit (non-zero) values always win.
func mergeConfig(base, override domain.Config) domain.Config {
	result := base

	v := override.Verifier
	if len(v.Command) > 0 {
		result.Verifier.Command = v.Command
	}
	// Argument lists are replaced whenever the key is present, so an empty
	// list in the file clears the default.
	if v.Args != nil {
		result.Verifier.Args = v.Args
	}
	if v.BackendSeparator != "" {
		result.Verifier.BackendSeparator = v.BackendSeparator
	}
	if v.CoverArgs != nil {
		result.Verifier.CoverArgs = v.CoverArgs
	}
	if v.OutputArgs != nil {
		result.Verifier.OutputArgs = v.OutputArgs
	}
	if v.Timeout != 0 {
		result.Verifier.Timeout = v.Timeout
	}

	if override.Framing != "" {
		result.Framing = override.Framing
	}
	if len(override.Include) > 0 {
		result.Include = override.Include
	}
	if len(override.Exclude) > 0 {
		result.Exclude = override.Exclude
	}

	return result
}
