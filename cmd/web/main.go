package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/cost-notifier/pkg/server"
	"github.com/de-tools/cost-notifier/pkg/services/aws_ce"
	"github.com/de-tools/cost-notifier/pkg/services/config"
	"github.com/de-tools/cost-notifier/pkg/services/notify"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve cost report previews over HTTP",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a config file (settings also read from env)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := aws_ce.NewClient(ctx, cfg.AWSProfile)
	if err != nil {
		return fmt.Errorf("failed to create cost explorer client: %w", err)
	}

	notifier := notify.NewSlackNotifier(cfg.SlackWebhookURL, cfg.RequestTimeout)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msg("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Client:   client,
			Notifier: notifier,
			Timezone: cfg.ReportingTimezone,
		},
	})

	return api.Start()
}
