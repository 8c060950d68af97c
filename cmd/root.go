package cmd

import (
	"context"
	"fmt"

	"github.com/mozilla-it/heroku-audit/internal/audit"
	"github.com/mozilla-it/heroku-audit/internal/config"
	"github.com/mozilla-it/heroku-audit/internal/heroku"
	"github.com/mozilla-it/heroku-audit/internal/log"
	"github.com/mozilla-it/heroku-audit/internal/metrics"
	"github.com/mozilla-it/heroku-audit/internal/secrets"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	flagToken     string
	flagTeam      string
	flagClip      bool
	flagNoClip    bool
	flagLogLevel  string
	flagLogFormat string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "heroku-audit",
	Short: "Audit and offboard Heroku team member accounts",
	Long: `A CLI tool for auditing the members of a Heroku team against account
policy and revoking non-compliant or departing members.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		overrideConfigFromFlags(cmd, loaded)

		logger := log.NewLogger(loaded.Log.Level, loaded.Log.Format)
		logrus.SetFormatter(logger.Formatter)
		logrus.SetLevel(logger.Level)
		logrus.SetOutput(logger.Out)

		cfg = loaded
		return nil
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Heroku API token, op:// or sm:// reference [env: HEROKU_TOKEN]")
	rootCmd.PersistentFlags().StringVar(&flagTeam, "team", "", "Heroku team to query (default mozillacorporation) [env: HEROKU_TEAM]")
	rootCmd.PersistentFlags().BoolVar(&flagClip, "clip", false, "Place output on the clipboard [env: HEROKU_USE_CLIPBOARD]")
	rootCmd.PersistentFlags().BoolVar(&flagNoClip, "no-clip", false, "Do not place output on the clipboard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text or json")
}

func overrideConfigFromFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("token") {
		cfg.Heroku.Token = flagToken
	}
	if cmd.Flags().Changed("team") {
		cfg.Heroku.Team = flagTeam
	}
	if cmd.Flags().Changed("no-clip") {
		cfg.Output.Clipboard = false
	} else if cmd.Flags().Changed("clip") {
		cfg.Output.Clipboard = flagClip
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = flagLogFormat
	}
}

// newAuditor resolves credentials and builds an auditor for the configured
// team. A token resolution failure is fatal to the run: nothing else can
// proceed without one.
func newAuditor() (*audit.Auditor, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	token, err := secrets.Resolve(cfg.Heroku.Token, cfg.Heroku.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("resolving heroku token: %w", err)
	}
	client, err := heroku.NewClient(cfg.Heroku.APIURL, token)
	if err != nil {
		return nil, err
	}
	return audit.New(client, cfg.Heroku.Team), nil
}

// emitMetrics publishes counters through fn when metrics are enabled.
// Metric failures are warnings, never fatal.
func emitMetrics(ctx context.Context, fn func(*metrics.Emitter) error) {
	if !cfg.Metrics.Enabled {
		return
	}
	emitter, err := metrics.NewEmitter(ctx, cfg.Metrics.Region, cfg.Metrics.Namespace)
	if err != nil {
		logrus.WithError(err).Warn("CloudWatch metrics emitter init failed")
		return
	}
	if err := fn(emitter); err != nil {
		logrus.WithError(err).Warn("publishing CloudWatch metrics failed")
	}
}
