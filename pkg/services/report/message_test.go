package report

import (
	"testing"

	"github.com/de-tools/cost-notifier/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func usd(amount string) domain.Cost {
	return domain.Cost{Amount: decimal.RequireFromString(amount), Unit: "USD"}
}

func TestBuildNotificationMessage(t *testing.T) {
	total := domain.TotalCost{
		DateRange: domain.ReportedDateRange{
			StartDate: date(2021, 7, 1),
			EndDate:   date(2021, 7, 11),
		},
		Cost: usd("1.357"),
	}
	services := []domain.ServiceCost{
		{ServiceName: "AWS CloudTrail", Cost: usd("1.234")},
		{ServiceName: "AWS Cost Explorer", Cost: usd("0.123")},
	}

	actual := BuildNotificationMessage(total, services)

	assert.Equal(t, "07/01~07/11の請求額は、1.36 USDです。", actual.Header)
	assert.Equal(t, "・AWS CloudTrail: 1.23 USD\n・AWS Cost Explorer: 0.12 USD", actual.Body)
}

func TestBuildNotificationMessage_SortsDescending(t *testing.T) {
	total := domain.TotalCost{
		DateRange: domain.ReportedDateRange{
			StartDate: date(2021, 7, 1),
			EndDate:   date(2021, 7, 18),
		},
		Cost: usd("32650.48"),
	}
	services := []domain.ServiceCost{
		{ServiceName: "Amazon Simple Storage Service", Cost: usd("1234.56")},
		{ServiceName: "Amazon Elastic Compute Cloud", Cost: usd("31415.92")},
	}

	actual := BuildNotificationMessage(total, services)

	assert.Equal(t,
		"・Amazon Elastic Compute Cloud: 31415.92 USD\n・Amazon Simple Storage Service: 1234.56 USD",
		actual.Body)
}

func TestBuildNotificationMessage_TiesKeepInputOrder(t *testing.T) {
	total := domain.TotalCost{Cost: usd("2.00")}
	services := []domain.ServiceCost{
		{ServiceName: "Service A", Cost: usd("1.00")},
		{ServiceName: "Service B", Cost: usd("1.00")},
	}

	actual := BuildNotificationMessage(total, services)

	assert.Equal(t, "・Service A: 1.00 USD\n・Service B: 1.00 USD", actual.Body)
}

func TestBuildNotificationMessage_DropsCostsRenderingAsZero(t *testing.T) {
	total := domain.TotalCost{
		DateRange: domain.ReportedDateRange{
			StartDate: date(2021, 7, 1),
			EndDate:   date(2021, 7, 18),
		},
		Cost: usd("1.235"),
	}
	// 0.001 and 0.004 both render as "0.00 USD" and are dropped even
	// though the raw amounts are nonzero. 0.005 rounds up to 0.01 and
	// stays.
	services := []domain.ServiceCost{
		{ServiceName: "AWS CloudTrail", Cost: usd("1.23")},
		{ServiceName: "Amazon Route 53", Cost: usd("0.001")},
		{ServiceName: "AWS Key Management Service", Cost: usd("0.004")},
		{ServiceName: "AWS Cost Explorer", Cost: usd("0.005")},
	}

	actual := BuildNotificationMessage(total, services)

	assert.Equal(t,
		"・AWS CloudTrail: 1.23 USD\n・AWS Cost Explorer: 0.01 USD",
		actual.Body)
}

func TestBuildNotificationMessage_EmptyBodyWhenAllFiltered(t *testing.T) {
	total := domain.TotalCost{Cost: usd("0.002")}
	services := []domain.ServiceCost{
		{ServiceName: "Amazon Route 53", Cost: usd("0.001")},
	}

	actual := BuildNotificationMessage(total, services)

	assert.Equal(t, "", actual.Body)
}

func TestBuildNotificationMessage_DoesNotMutateInput(t *testing.T) {
	services := []domain.ServiceCost{
		{ServiceName: "Service A", Cost: usd("1.00")},
		{ServiceName: "Service B", Cost: usd("2.00")},
	}

	BuildNotificationMessage(domain.TotalCost{Cost: usd("3.00")}, services)

	assert.Equal(t, "Service A", services[0].ServiceName)
	assert.Equal(t, "Service B", services[1].ServiceName)
}
