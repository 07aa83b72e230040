// Package report derives presentation values from the server-computed
// production-capacity report. Everything here reduces over the report's
// items; server totals are displayed as-is and never recomputed.
package report

import (
	"sort"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// Summary is the KPI strip at the top of the dashboard.
type Summary struct {
	ProductCount     int
	TotalUnits       float64
	AverageUnitPrice float64
	GrandTotalValue  float64
}

// Summarize reduces the report items into the dashboard KPIs. The grand
// total is copied from the report, not summed again.
func Summarize(r *domain.CapacityReport) Summary {
	if r == nil {
		return Summary{}
	}

	var sum Summary
	sum.ProductCount = len(r.Items)
	sum.GrandTotalValue = r.GrandTotalValue

	var priceSum float64
	for _, item := range r.Items {
		sum.TotalUnits += item.ProducibleQuantity
		priceSum += item.UnitPrice
	}
	if sum.ProductCount > 0 {
		sum.AverageUnitPrice = priceSum / float64(sum.ProductCount)
	}
	return sum
}

// TopByValue returns the n highest-value items, descending, without
// mutating the report's own slice. n <= 0 or n beyond the item count
// returns all items sorted.
func TopByValue(r *domain.CapacityReport, n int) []domain.CapacityItem {
	if r == nil || len(r.Items) == 0 {
		return nil
	}

	items := append([]domain.CapacityItem(nil), r.Items...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TotalValue > items[j].TotalValue
	})

	if n > 0 && n < len(items) {
		items = items[:n]
	}
	return items
}

// ProducibleShare maps each product code to its fraction of total producible
// units, feeding the distribution chart. Returns nil when nothing is
// producible.
func ProducibleShare(r *domain.CapacityReport) map[string]float64 {
	if r == nil {
		return nil
	}

	var total float64
	for _, item := range r.Items {
		total += item.ProducibleQuantity
	}
	if total == 0 {
		return nil
	}

	share := make(map[string]float64, len(r.Items))
	for _, item := range r.Items {
		share[item.ProductCode] = item.ProducibleQuantity / total
	}
	return share
}
