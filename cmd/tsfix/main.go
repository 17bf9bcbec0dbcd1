package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/tsfix/pkg/status"
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		userLogger := status.NewUserLogger(context.Background())
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}

// newRootCmd builds the root command with flags and logging wiring
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tsfix",
		Short: "Rewrite dot-notation index-signature accesses to bracket notation",
		Long: `tsfix rewrites TypeScript sources in place, converting dot-notation
property accesses (process.env.API_KEY, user.email) into bracket notation
(process.env['API_KEY'], user['email']) so they compile under
noPropertyAccessFromIndexSignature (TS4111).

Run it from the project root; by default it walks src and scripts for
.ts/.tsx files and also fixes next.config.ts.`,
		SilenceUsage: true,
		// Flags are only parsed once cobra dispatches the command, so the
		// log level has to be applied here rather than in main
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.Logger.WithContext(cmd.Context())
			userLogger := status.NewUserLogger(ctx)

			op, err := newFixOperation(ctx, cmd, userLogger)
			if err != nil {
				return err
			}

			summary, err := op.Run(ctx)
			if err != nil {
				return err
			}

			userLogger.LogSummary(summary)
			if summary.Errored() && !noFail {
				os.Exit(1)
			}
			return nil
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	return rootCmd
}
