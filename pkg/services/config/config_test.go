package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("REPORTING_TIMEZONE", "Asia/Tokyo")
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/T000/B000/XXX")
	t.Setenv("AWS_PROFILE", "")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", cfg.ReportingTimezone)
	assert.Equal(t, "https://hooks.slack.com/services/T000/B000/XXX", cfg.SlackWebhookURL)
	assert.Equal(t, "", cfg.AWSProfile)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoad_TimeoutOverride(t *testing.T) {
	t.Setenv("REPORTING_TIMEZONE", "Asia/Tokyo")
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/T000/B000/XXX")
	t.Setenv("REQUEST_TIMEOUT", "45s")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "reporting_timezone: America/New_York\n" +
		"slack_webhook_url: https://hooks.slack.com/services/T111/B111/YYY\n" +
		"aws_profile: billing\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "America/New_York", cfg.ReportingTimezone)
	assert.Equal(t, "billing", cfg.AWSProfile)
}

func TestLoad_MissingTimezone(t *testing.T) {
	t.Setenv("REPORTING_TIMEZONE", "")
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/T000/B000/XXX")

	_, err := Load("")

	assert.ErrorContains(t, err, "reporting_timezone")
}

func TestLoad_MissingWebhookURL(t *testing.T) {
	t.Setenv("REPORTING_TIMEZONE", "Asia/Tokyo")
	t.Setenv("SLACK_WEBHOOK_URL", "")

	_, err := Load("")

	assert.ErrorContains(t, err, "slack_webhook_url")
}
