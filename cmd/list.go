package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/mozilla-it/heroku-audit/internal/metrics"
	"github.com/mozilla-it/heroku-audit/internal/models"
	"github.com/mozilla-it/heroku-audit/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	listAll    bool
	listOutput string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all problem members",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		auditor, err := newAuditor()
		if err != nil {
			return err
		}

		accounts, err := auditor.ProblemMembers(ctx, listAll)
		if err != nil {
			return err
		}

		// Metrics cover the whole membership, not just the filtered view.
		// The member list is memoized, so this costs no extra API call.
		if all, sumErr := auditor.Accounts(ctx); sumErr == nil {
			summary := models.Summarize(all)
			logrus.Info(summary.String())
			emitMetrics(ctx, func(e *metrics.Emitter) error {
				return e.EmitAudit(ctx, summary)
			})
		}

		var lines []string
		switch listOutput {
		case "json":
			data, err := json.MarshalIndent(accounts, "", "  ")
			if err != nil {
				return err
			}
			lines = []string{string(data)}
		case "text":
			lines = output.AccountLines(accounts)
		default:
			return fmt.Errorf("unsupported output format %q (want text or json)", listOutput)
		}

		return output.Emit(cmd.OutOrStdout(), lines, cfg.Output.Clipboard)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show all members, not just problem members")
	listCmd.Flags().StringVar(&listOutput, "output", "text", "Output format: text or json")
	rootCmd.AddCommand(listCmd)
}
