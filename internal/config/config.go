package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from file, environment variables, and defaults.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("heroku.team", "mozillacorporation")
	v.SetDefault("heroku.api_url", "https://api.heroku.com")
	v.SetDefault("output.clipboard", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", "HerokuAudit")
	v.SetDefault("metrics.region", "us-west-2")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("heroku.token", "HEROKU_TOKEN")
	_ = v.BindEnv("heroku.token_file", "HEROKU_TOKEN_FILE")
	_ = v.BindEnv("heroku.team", "HEROKU_TEAM")
	_ = v.BindEnv("heroku.api_url", "HEROKU_API_URL")
	_ = v.BindEnv("output.clipboard", "HEROKU_USE_CLIPBOARD")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")
	_ = v.BindEnv("metrics.enabled", "METRICS_ENABLED")
	_ = v.BindEnv("metrics.namespace", "METRICS_NAMESPACE")
	_ = v.BindEnv("metrics.region", "METRICS_REGION")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Explicitly map values to avoid tag mismatch issues.
	cfg.Heroku.Team = v.GetString("heroku.team")
	cfg.Heroku.Token = v.GetString("heroku.token")
	cfg.Heroku.TokenFile = v.GetString("heroku.token_file")
	cfg.Heroku.APIURL = v.GetString("heroku.api_url")

	cfg.Output.Clipboard = v.GetBool("output.clipboard")

	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")

	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")
	cfg.Metrics.Namespace = v.GetString("metrics.namespace")
	cfg.Metrics.Region = v.GetString("metrics.region")

	return cfg, nil
}
