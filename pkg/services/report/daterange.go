package report

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone data for minimal images and Lambda containers

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/de-tools/cost-notifier/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// DateInTimezone resolves an instant to its calendar date in the named
// timezone, truncated to midnight in that zone.
func DateInTimezone(now time.Time, tz string) (time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unknown timezone %q", domain.ErrInvalidDate, tz)
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc), nil
}

// ReportDateRange is the period costs are aggregated over.
type ReportDateRange struct {
	StartDate time.Time
	EndDate   time.Time
}

// NewReportDateRange computes the reporting period ending at reportingDate.
// The start is the first day of the reporting date's month, except when the
// reporting date itself is the 1st: then the range covers the full previous
// month, so a report run on the 1st still has a non-empty period.
func NewReportDateRange(reportingDate time.Time) ReportDateRange {
	firstOfMonth := time.Date(
		reportingDate.Year(), reportingDate.Month(), 1,
		0, 0, 0, 0, reportingDate.Location(),
	)

	start := firstOfMonth
	if reportingDate.Day() == 1 {
		start = firstOfMonth.AddDate(0, -1, 0)
	}

	return ReportDateRange{StartDate: start, EndDate: reportingDate}
}

// AsDateInterval renders the range as the wire-level request interval,
// start and end as YYYY-MM-DD bounds.
func (r ReportDateRange) AsDateInterval() types.DateInterval {
	return types.DateInterval{
		Start: aws.String(r.StartDate.Format(dateLayout)),
		End:   aws.String(r.EndDate.Format(dateLayout)),
	}
}
