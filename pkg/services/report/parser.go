package report

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/de-tools/cost-notifier/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const metricAmortizedCost = "AmortizedCost"

// ParseTotalCost extracts the aggregate cost and its reporting period from
// a GetCostAndUsage response. The response is expected to carry a single
// time bucket with an AmortizedCost total.
func ParseTotalCost(out *costexplorer.GetCostAndUsageOutput) (domain.TotalCost, error) {
	bucket, err := firstResultByTime(out)
	if err != nil {
		return domain.TotalCost{}, err
	}

	if bucket.TimePeriod == nil {
		return domain.TotalCost{}, fmt.Errorf("%w: result has no time period", domain.ErrMissingField)
	}
	start, err := parseTimestamp(aws.ToString(bucket.TimePeriod.Start))
	if err != nil {
		return domain.TotalCost{}, err
	}
	end, err := parseTimestamp(aws.ToString(bucket.TimePeriod.End))
	if err != nil {
		return domain.TotalCost{}, err
	}

	metric, ok := bucket.Total[metricAmortizedCost]
	if !ok {
		return domain.TotalCost{}, fmt.Errorf("%w: no %s total", domain.ErrMissingField, metricAmortizedCost)
	}
	cost, err := parseMetricValue(metric)
	if err != nil {
		return domain.TotalCost{}, err
	}

	return domain.TotalCost{
		DateRange: domain.ReportedDateRange{StartDate: start, EndDate: end},
		Cost:      cost,
	}, nil
}

// ParseServiceCosts extracts one cost record per service group from a
// grouped GetCostAndUsage response, keeping the order the API returned.
func ParseServiceCosts(out *costexplorer.GetCostAndUsageOutput) ([]domain.ServiceCost, error) {
	bucket, err := firstResultByTime(out)
	if err != nil {
		return nil, err
	}

	if len(bucket.Groups) == 0 {
		return nil, fmt.Errorf("%w: response has no service groups", domain.ErrMissingField)
	}

	costs := make([]domain.ServiceCost, 0, len(bucket.Groups))
	for _, group := range bucket.Groups {
		if len(group.Keys) == 0 {
			return nil, fmt.Errorf("%w: group has no keys", domain.ErrMissingField)
		}
		metric, ok := group.Metrics[metricAmortizedCost]
		if !ok {
			return nil, fmt.Errorf("%w: group %q has no %s metric",
				domain.ErrMissingField, group.Keys[0], metricAmortizedCost)
		}
		cost, err := parseMetricValue(metric)
		if err != nil {
			return nil, err
		}
		costs = append(costs, domain.ServiceCost{
			ServiceName: group.Keys[0],
			Cost:        cost,
		})
	}

	return costs, nil
}

func firstResultByTime(out *costexplorer.GetCostAndUsageOutput) (types.ResultByTime, error) {
	if out == nil || len(out.ResultsByTime) == 0 {
		return types.ResultByTime{}, fmt.Errorf("%w: response has no results by time", domain.ErrMissingField)
	}
	return out.ResultsByTime[0], nil
}

func parseMetricValue(v types.MetricValue) (domain.Cost, error) {
	amount, err := decimal.NewFromString(aws.ToString(v.Amount))
	if err != nil {
		return domain.Cost{}, fmt.Errorf("%w: %q", domain.ErrMalformedCost, aws.ToString(v.Amount))
	}
	return domain.Cost{Amount: amount, Unit: aws.ToString(v.Unit)}, nil
}

func parseTimestamp(ts string) (time.Time, error) {
	t, err := time.Parse(dateLayout, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not %s", domain.ErrInvalidTimestamp, ts, dateLayout)
	}
	return t, nil
}
