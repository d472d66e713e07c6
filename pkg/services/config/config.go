package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config carries the startup settings of the notifier. All of it is read
// once at startup; a missing required key is a fatal startup error, not a
// reporting error.
type Config struct {
	// ReportingTimezone is the IANA zone the "current date" is taken in,
	// e.g. "Asia/Tokyo".
	ReportingTimezone string `mapstructure:"reporting_timezone"`
	// SlackWebhookURL is the incoming-webhook endpoint the report goes to.
	SlackWebhookURL string `mapstructure:"slack_webhook_url"`
	// AWSProfile selects a shared-config profile; empty uses the default
	// credential chain.
	AWSProfile string `mapstructure:"aws_profile"`
	// RequestTimeout bounds each outbound HTTP call.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Load reads configuration from the environment, optionally seeded from a
// config file (any format viper understands).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("request_timeout", 30*time.Second)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal only sees env values for keys that are explicitly bound.
	for _, key := range []string{
		"reporting_timezone",
		"slack_webhook_url",
		"aws_profile",
		"request_timeout",
	} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.ReportingTimezone == "" {
		return nil, fmt.Errorf("reporting_timezone is required (env REPORTING_TIMEZONE)")
	}
	if cfg.SlackWebhookURL == "" {
		return nil, fmt.Errorf("slack_webhook_url is required (env SLACK_WEBHOOK_URL)")
	}

	return &cfg, nil
}
