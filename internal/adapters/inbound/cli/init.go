package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/reachdrift/internal/domain"
)

const configFileName = ".reachdrift.yaml"

func newInitCmd() *cobra.Command {
	var (
		framing string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .reachdrift.yaml configuration file",
		Long:  "Create a .reachdrift.yaml holding the default verifier command shapes, framing and file globs.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			cfg := domain.DefaultConfig()
			cfg.Framing = domain.Framing(framing)
			if err := cfg.Validate(); err != nil {
				return err
			}

			content, err := generateConfig(cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&framing, "framing", string(domain.FramingBalanced), "Transcript framing (balanced, lines)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .reachdrift.yaml")

	return cmd
}

func generateConfig(cfg domain.Config) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	header := "# reachdrift configuration\n" +
		"# coverage run: command args FILE backend_separator cover_args output_args\n" +
		"# property run: the same without cover_args\n\n"
	return append([]byte(header), body...), nil
}
