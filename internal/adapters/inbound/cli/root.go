package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abdidvp/reachdrift/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reachdrift",
		Short: "Find reachability drift between coverage and property verification",
		Long: "reachdrift runs the verifier twice per source file, once with location coverage and once without, " +
			"and reports files where property mode proves a line unreachable that coverage mode never instrumented.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newCompareCmd())
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newCacheCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// newLogger builds the stderr logger for cmd, honoring --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logger.New(cmd.ErrOrStderr(), verbose)
}
