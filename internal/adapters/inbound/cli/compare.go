package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdidvp/reachdrift/internal/adapters/outbound/parser"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/tui"
	"github.com/abdidvp/reachdrift/internal/application"
	"github.com/abdidvp/reachdrift/internal/domain"
)

func newCompareCmd() *cobra.Command {
	var (
		coverageFile string
		propertyFile string
		framing      string
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "compare [name]",
		Short: "Classify a pair of saved verifier transcripts",
		Long:  "Classify one file from transcripts captured earlier, without running the verifier.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if framing != "" && framing != string(domain.FramingBalanced) && framing != string(domain.FramingLines) {
				return fmt.Errorf("unknown framing %q (valid: balanced, lines)", framing)
			}

			propertyRaw, err := os.ReadFile(propertyFile)
			if err != nil {
				return fmt.Errorf("reading property transcript: %w", err)
			}
			var coverageRaw []byte
			if coverageFile != "" {
				if coverageRaw, err = os.ReadFile(coverageFile); err != nil {
					return fmt.Errorf("reading coverage transcript: %w", err)
				}
			}

			name := propertyFile
			if len(args) > 0 {
				name = args[0]
			}

			svc := application.NewCompareService(parser.New(domain.Framing(framing)))
			result := svc.Compare(name, string(coverageRaw), string(propertyRaw))

			if jsonOutput {
				if err := renderJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderFileResult(result))
			}

			if result.Classification == domain.Failed {
				return result.Cause
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&coverageFile, "coverage", "", "Coverage-mode transcript file")
	cmd.Flags().StringVar(&propertyFile, "property", "", "Property-mode transcript file")
	cmd.Flags().StringVar(&framing, "framing", "", "Transcript framing: balanced or lines")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	_ = cmd.MarkFlagRequired("property")

	return cmd
}
