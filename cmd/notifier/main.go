package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/de-tools/cost-notifier/pkg/services/aws_ce"
	"github.com/de-tools/cost-notifier/pkg/services/config"
	"github.com/de-tools/cost-notifier/pkg/services/notify"
	"github.com/de-tools/cost-notifier/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	dateStr  string
	dryRun   bool
	schedule string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "cost-notifier",
		Short: "Report AWS costs for the current month to Slack",
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a config file (settings also read from env)")
	rootCmd.Flags().StringVar(&dateStr, "date", "", "Reporting date as YYYY-MM-DD (default: today in the reporting timezone)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the message instead of posting it to Slack")
	rootCmd.Flags().StringVar(&schedule, "schedule", "", "Cron expression; keep running and report on this schedule")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
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

	var notifier report.Notifier = notify.NewSlackNotifier(cfg.SlackWebhookURL, cfg.RequestTimeout)
	if dryRun {
		notifier = notify.NewConsoleNotifier(os.Stdout)
	}

	if schedule != "" {
		return runScheduled(ctx, cfg, client, notifier)
	}
	return runOnce(ctx, cfg, client, notifier)
}

func runOnce(ctx context.Context, cfg *config.Config, client report.CostAndUsageAPI, notifier report.Notifier) error {
	logger := zerolog.Ctx(ctx)

	reportingDate, err := resolveReportingDate(cfg.ReportingTimezone)
	if err != nil {
		return err
	}
	logger.Info().Str("reporting_date", reportingDate.Format("2006-01-02")).Msg("starting cost report")

	runCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	return report.Run(runCtx, client, notifier, reportingDate)
}

// runScheduled keeps the process alive and fires a report on the given
// cron expression, standing in for the EventBridge trigger when running
// outside Lambda. A failed run is logged and the schedule keeps going.
func runScheduled(ctx context.Context, cfg *config.Config, client report.CostAndUsageAPI, notifier report.Notifier) error {
	logger := zerolog.Ctx(ctx)

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := runOnce(ctx, cfg, client, notifier); err != nil {
			logger.Error().Err(err).Msg("scheduled cost report failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	logger.Info().Str("schedule", schedule).Msg("running on schedule")
	c.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	cronCtx := c.Stop()
	<-cronCtx.Done()
	return nil
}

func resolveReportingDate(tz string) (time.Time, error) {
	if dateStr != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid reporting timezone %q: %w", tz, err)
		}
		t, err := time.ParseInLocation("2006-01-02", dateStr, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q: %w", dateStr, err)
		}
		return t, nil
	}
	return report.DateInTimezone(time.Now(), tz)
}
