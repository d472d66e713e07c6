package report

import (
	"context"
	"time"

	"github.com/de-tools/cost-notifier/pkg/models/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Notifier delivers a rendered report to the destination channel.
type Notifier interface {
	Send(ctx context.Context, msg domain.NotificationMessage) error
}

// Run executes one reporting cycle: query the total and per-service costs
// for the period ending at reportingDate, render the message and hand it to
// the notifier. The two billing queries run concurrently; nothing is sent
// unless both succeed.
func Run(ctx context.Context, client CostAndUsageAPI, notifier Notifier, reportingDate time.Time) error {
	msg, err := Assemble(ctx, client, reportingDate)
	if err != nil {
		return err
	}

	if err := notifier.Send(ctx, msg); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Msg("cost report delivered")
	return nil
}

// Assemble runs the query and build steps without sending, for dry runs
// and report previews.
func Assemble(ctx context.Context, client CostAndUsageAPI, reportingDate time.Time) (domain.NotificationMessage, error) {
	logger := zerolog.Ctx(ctx)

	dateRange := NewReportDateRange(reportingDate)
	explorer := NewExplorer(client, dateRange)

	var (
		total    domain.TotalCost
		services []domain.ServiceCost
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = explorer.RequestTotalCost(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		services, err = explorer.RequestServiceCosts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.NotificationMessage{}, err
	}

	logger.Info().
		Str("period", total.DateRange.String()).
		Int("services", len(services)).
		Msg("cost report assembled")

	return BuildNotificationMessage(total, services), nil
}
