package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abdidvp/reachdrift/internal/adapters/inbound/wiring"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/cache"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/history"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/tui"
	"github.com/abdidvp/reachdrift/internal/application"
	"github.com/abdidvp/reachdrift/internal/domain"
)

func newScanCmd() *cobra.Command {
	var (
		jsonOutput  bool
		ciMode      bool
		noCache     bool
		showHistory bool
		framing     string
		verifierCmd string
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Classify every source file under a directory",
		Long: "Run the verifier in coverage and property mode on every candidate file and classify each one as " +
			"no_unreachable_detected, discrepancy, matched or failed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if showHistory {
				entries, err := history.New().Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := newLogger(cmd)
			opts := []application.DriftOption{application.WithFraming(domain.Framing(framing))}
			if verifierCmd != "" {
				opts = append(opts, application.WithCommand(strings.Fields(verifierCmd)))
			}
			if !noCache {
				opts = append(opts, application.WithCache(cache.New()))
			}
			if !jsonOutput {
				out := cmd.OutOrStdout()
				opts = append(opts, application.WithOnResult(func(r domain.FileResult) {
					fmt.Fprint(out, tui.RenderDiagnostics(r))
				}))
			}

			summary, runErr := wiring.NewDriftService(log, opts...).Run(ctx, absPath)
			if summary == nil {
				return fmt.Errorf("scan failed: %w", runErr)
			}
			wiring.RecordRun(absPath, summary, runErr == nil, log)

			if jsonOutput {
				if err := renderJSON(cmd, summary); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(summary))
			}

			if runErr != nil {
				return fmt.Errorf("scan interrupted: %w", runErr)
			}
			if ciMode && !summary.Clean() {
				return fmt.Errorf("%d discrepancies, %d failures", len(summary.Discrepancies), len(summary.Failures))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output summary as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 on discrepancies or failures")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Always run the verifier, ignoring cached transcripts")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show run history")
	cmd.Flags().StringVar(&framing, "framing", "", "Transcript framing: balanced or lines (overrides config)")
	cmd.Flags().StringVar(&verifierCmd, "verifier", "", "Verifier command (overrides verifier.command)")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
