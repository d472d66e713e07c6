package report

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/de-tools/cost-notifier/pkg/models/domain"
)

// CostAndUsageAPI is the slice of the Cost Explorer client used by the
// reporting pipeline. *costexplorer.Client satisfies it.
type CostAndUsageAPI interface {
	GetCostAndUsage(
		ctx context.Context,
		params *costexplorer.GetCostAndUsageInput,
		optFns ...func(*costexplorer.Options),
	) (*costexplorer.GetCostAndUsageOutput, error)
}

// Explorer queries AWS costs for a fixed reporting period.
type Explorer struct {
	client    CostAndUsageAPI
	dateRange ReportDateRange
}

func NewExplorer(client CostAndUsageAPI, dateRange ReportDateRange) *Explorer {
	return &Explorer{client: client, dateRange: dateRange}
}

// RequestTotalCost fetches the ungrouped cost total for the period.
// A single round trip; transport failures are not retried.
func (e *Explorer) RequestTotalCost(ctx context.Context) (domain.TotalCost, error) {
	out, err := e.client.GetCostAndUsage(ctx, e.buildRequest(false))
	if err != nil {
		return domain.TotalCost{}, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	return ParseTotalCost(out)
}

// RequestServiceCosts fetches the per-service cost breakdown for the period.
func (e *Explorer) RequestServiceCosts(ctx context.Context) ([]domain.ServiceCost, error) {
	out, err := e.client.GetCostAndUsage(ctx, e.buildRequest(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	return ParseServiceCosts(out)
}

// buildRequest assembles the GetCostAndUsage request for the period.
// The total and the per-service requests differ only in the grouping
// dimension. Pagination is not followed: the monthly report fits a single
// page in practice, and a paginated response would be silently truncated.
func (e *Explorer) buildRequest(groupByService bool) *costexplorer.GetCostAndUsageInput {
	interval := e.dateRange.AsDateInterval()
	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod:  &interval,
		Granularity: types.GranularityMonthly,
		Metrics:     []string{metricAmortizedCost},
	}

	if groupByService {
		input.GroupBy = []types.GroupDefinition{
			{
				Type: types.GroupDefinitionTypeDimension,
				Key:  aws.String("SERVICE"),
			},
		}
	}

	return input
}
