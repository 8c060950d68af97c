package config

import (
	"fmt"
	"strings"
)

// Validate ensures configuration is complete enough to reach the API.
// Email arguments and token contents are treated as opaque strings; the server
// is the authority on their validity.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var errs []string

	if cfg.Heroku.Team == "" {
		errs = append(errs, "heroku.team is required")
	}
	if cfg.Heroku.Token == "" && cfg.Heroku.TokenFile == "" {
		errs = append(errs, "heroku.token or heroku.token_file is required")
	}

	if cfg.Metrics.Enabled {
		if cfg.Metrics.Namespace == "" {
			errs = append(errs, "metrics.namespace is required")
		}
		if cfg.Metrics.Region == "" {
			errs = append(errs, "metrics.region is required")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
