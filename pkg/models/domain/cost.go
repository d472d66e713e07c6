package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Cost is a monetary amount together with its currency unit.
type Cost struct {
	Amount decimal.Decimal
	Unit   string
}

// String renders the amount to two decimal places, e.g. "132.23 USD".
// StringFixed rounds half away from zero, so 0.005 USD becomes "0.01 USD".
func (c Cost) String() string {
	return fmt.Sprintf("%s %s", c.Amount.StringFixed(2), c.Unit)
}

// ReportedDateRange is the aggregation period echoed back by the billing API.
// Only the calendar date components are meaningful.
type ReportedDateRange struct {
	StartDate time.Time
	EndDate   time.Time
}

// String renders the range as "MM/DD~MM/DD".
func (r ReportedDateRange) String() string {
	return fmt.Sprintf("%02d/%02d~%02d/%02d",
		r.StartDate.Month(), r.StartDate.Day(),
		r.EndDate.Month(), r.EndDate.Day())
}

// TotalCost is the aggregate cost over a reporting period, ungrouped.
type TotalCost struct {
	DateRange ReportedDateRange
	Cost      Cost
}

// ServiceCost is the cost attributable to a single AWS service
// over the same reporting period.
type ServiceCost struct {
	ServiceName string
	Cost        Cost
}

// NotificationMessage is the rendered cost report. It is built once per
// run and discarded after sending.
type NotificationMessage struct {
	// Header displays the total cost for the period.
	Header string
	// Body lists the cost of each service, one line per service.
	Body string
}
