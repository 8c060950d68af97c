package cmd

import (
	"github.com/mozilla-it/heroku-audit/internal/output"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <email>...",
	Short: "Verify membership of the supplied emails",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		auditor, err := newAuditor()
		if err != nil {
			return err
		}
		status, err := auditor.VerifyMembership(cmd.Context(), args)
		if err != nil {
			return err
		}
		return output.Emit(cmd.OutOrStdout(), status, cfg.Output.Clipboard)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
