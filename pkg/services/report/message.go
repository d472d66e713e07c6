package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/cost-notifier/pkg/models/domain"
)

// BuildNotificationMessage renders parsed costs into the message posted to
// the channel. Service lines are sorted by amount descending (ties keep
// their API order); a service whose cost renders as "0.00 <unit>" is
// dropped entirely, so sub-cent amounts like 0.001 never show up.
func BuildNotificationMessage(total domain.TotalCost, services []domain.ServiceCost) domain.NotificationMessage {
	sorted := make([]domain.ServiceCost, len(services))
	copy(sorted, services)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cost.Amount.GreaterThan(sorted[j].Cost.Amount)
	})

	lines := make([]string, 0, len(sorted))
	for _, s := range sorted {
		rendered := s.Cost.String()
		// The filter is on the formatted value, not the raw amount.
		if rendered == "0.00 "+s.Cost.Unit {
			continue
		}
		lines = append(lines, fmt.Sprintf("・%s: %s", s.ServiceName, rendered))
	}

	return domain.NotificationMessage{
		Header: fmt.Sprintf("%sの請求額は、%sです。", total.DateRange, total.Cost),
		Body:   strings.Join(lines, "\n"),
	}
}
