package analytics

import (
	"math"
	"time"
)

type CustomerAggregate struct {
	CustomerKey  string    `json:"customerKey"`
	OrderCount   int       `json:"orderCount"`
	TotalSpent   float64   `json:"totalSpent"`
	FirstOrderAt time.Time `json:"firstOrderAt"`
	LastOrderAt  time.Time `json:"lastOrderAt"`
}

// countableOrder is the engine-wide inclusion gate: the order's status must be
// in the filter, its timestamp must be usable for bucketing, and its amount
// must be finite. Orders failing any of these are excluded wholesale.
func countableOrder(order Order, filter StatusFilter) bool {
	if !filter.Includes(order.Status) {
		return false
	}
	if order.Timestamp.IsZero() {
		return false
	}
	if math.IsNaN(order.TotalAmount) || math.IsInf(order.TotalAmount, 0) {
		return false
	}
	return true
}

// BuildCustomerAggregates folds the orders into one aggregate per customer in
// a single pass. First/last timestamps are running min/max. Orders without a
// customer key are skipped.
func BuildCustomerAggregates(orders []Order, filter StatusFilter) map[string]*CustomerAggregate {
	aggregates := make(map[string]*CustomerAggregate)
	for _, order := range orders {
		if order.CustomerKey == "" || !countableOrder(order, filter) {
			continue
		}
		agg := aggregates[order.CustomerKey]
		if agg == nil {
			agg = &CustomerAggregate{
				CustomerKey:  order.CustomerKey,
				FirstOrderAt: order.Timestamp,
				LastOrderAt:  order.Timestamp,
			}
			aggregates[order.CustomerKey] = agg
		}
		agg.OrderCount += 1
		agg.TotalSpent += order.TotalAmount
		if order.Timestamp.Before(agg.FirstOrderAt) {
			agg.FirstOrderAt = order.Timestamp
		}
		if order.Timestamp.After(agg.LastOrderAt) {
			agg.LastOrderAt = order.Timestamp
		}
	}
	return aggregates
}

// BuildCategoryRevenue sums unitPrice*quantity per resolved category across
// all line items of the included orders. Items with no resolvable category
// contribute to no bucket and to no denominator.
func BuildCategoryRevenue(orders []Order, filter StatusFilter, catalogue *CatalogueIndex) map[string]float64 {
	revenue := make(map[string]float64)
	for _, order := range orders {
		if !countableOrder(order, filter) {
			continue
		}
		for _, item := range order.Items {
			category, ok := ResolveCategory(item, catalogue)
			if !ok {
				continue
			}
			revenue[category] += item.UnitPrice * float64(item.Quantity)
		}
	}
	return revenue
}

// SafePercentage reports 0 for a zero denominator, never NaN or Inf.
func SafePercentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (part / total) * 100
}

// GrowthPercent is the month-over-month growth rounded to the nearest
// integer. Growth from zero to something is 100, zero to zero is 0.
func GrowthPercent(current, previous float64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round((current - previous) / previous * 100))
}

// Round1 rounds to one decimal, halves away from zero.
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}
