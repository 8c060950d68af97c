package cmd

import (
	"github.com/mozilla-it/heroku-audit/internal/output"
	"github.com/spf13/cobra"
)

var emailsCmd = &cobra.Command{
	Use:   "emails",
	Short: "List all member emails",
	RunE: func(cmd *cobra.Command, args []string) error {
		auditor, err := newAuditor()
		if err != nil {
			return err
		}
		emails, err := auditor.MemberEmails(cmd.Context())
		if err != nil {
			return err
		}
		return output.Emit(cmd.OutOrStdout(), emails, cfg.Output.Clipboard)
	},
}

func init() {
	rootCmd.AddCommand(emailsCmd)
}
