package cmd

import (
	"github.com/mozilla-it/heroku-audit/internal/metrics"
	"github.com/mozilla-it/heroku-audit/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var revokeDryRun bool

var revokeCmd = &cobra.Command{
	Use:   "revoke <email>...",
	Short: "Revoke membership of the supplied emails",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		auditor, err := newAuditor()
		if err != nil {
			return err
		}

		status, summary, err := auditor.RevokeMembership(ctx, args, revokeDryRun)
		if err != nil {
			return err
		}

		if !revokeDryRun {
			logrus.Info(summary.String())
			emitMetrics(ctx, func(e *metrics.Emitter) error {
				return e.EmitRevocations(ctx, summary)
			})
		}

		return output.Emit(cmd.OutOrStdout(), status, cfg.Output.Clipboard)
	},
}

func init() {
	revokeCmd.Flags().BoolVar(&revokeDryRun, "dry-run", false, "Preview revocations without calling the API")
	rootCmd.AddCommand(revokeCmd)
}
