package config

// Config holds all configuration for one invocation.
type Config struct {
	Heroku  HerokuConfig  `json:"heroku"`
	Output  OutputConfig  `json:"output"`
	Log     LogConfig     `json:"log"`
	Metrics MetricsConfig `json:"metrics"`
}

// HerokuConfig holds Platform API settings.
type HerokuConfig struct {
	Team      string `json:"team"`
	Token     string `json:"-"`
	TokenFile string `json:"token_file,omitempty"`
	APIURL    string `json:"api_url"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	Clipboard bool `json:"clipboard"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// MetricsConfig holds optional CloudWatch metrics settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled"`
	Namespace string `json:"namespace"`
	Region    string `json:"region"`
}
