package analytics

import (
	"sort"
	"time"
)

type SegmentSummary struct {
	Segment               string  `json:"segment"`
	Count                 int     `json:"count"`
	AverageSpend          float64 `json:"averageSpend"`
	PercentageOfCustomers float64 `json:"percentageOfCustomers"`
	PercentageOfRevenue   float64 `json:"percentageOfRevenue"`
}

type CohortMonth struct {
	Label              string  `json:"label"`
	NewCustomers       int     `json:"newCustomers"`
	ReturningCustomers int     `json:"returningCustomers"`
	ExistingBefore     int     `json:"existingCustomersBeforeMonth"`
	RetentionPercent   float64 `json:"retentionPercent"`
}

type CustomerReport struct {
	TotalCustomers         int              `json:"totalCustomers"`
	ActiveCustomers        int              `json:"activeCustomers"`
	Segments               []SegmentSummary `json:"segments"`
	RetentionRate          float64          `json:"retentionRate"`
	RetentionCohorts       []CohortMonth    `json:"retentionCohorts"`
	NewCustomersThisMonth  int              `json:"newCustomersThisMonth"`
	NewCustomersPercentage float64          `json:"newCustomersPercentage"`
}

type SegmentThresholds struct {
	VIPMinOrders     int
	RegularMinOrders int
}

func DefaultSegmentThresholds() SegmentThresholds {
	return SegmentThresholds{VIPMinOrders: 10, RegularMinOrders: 3}
}

const (
	SegmentVIP     = "vip"
	SegmentRegular = "regular"
	SegmentNew     = "new"
)

// A customer is active when their last order is within this window of now.
const activeCustomerWindow = 30 * 24 * time.Hour

// AnalyzeCustomers segments the customer base and reconstructs six months of
// retention cohorts. The aggregates must have been built from the same orders
// and filter, so cohort membership and segment membership agree.
func AnalyzeCustomers(aggregates map[string]*CustomerAggregate, orders []Order, now time.Time, filter StatusFilter, thresholds SegmentThresholds) CustomerReport {
	report := CustomerReport{
		TotalCustomers: len(aggregates),
	}

	activeCutoff := now.Add(-activeCustomerWindow)
	thisMonth := MonthRange(now, 0)

	repeatCustomers := 0
	var totalRevenue float64
	for _, agg := range aggregates {
		totalRevenue += agg.TotalSpent
		if !agg.LastOrderAt.Before(activeCutoff) {
			report.ActiveCustomers += 1
		}
		if agg.OrderCount > 1 {
			repeatCustomers += 1
		}
		if thisMonth.Contains(agg.FirstOrderAt) {
			report.NewCustomersThisMonth += 1
		}
	}

	report.Segments = buildSegments(aggregates, thresholds, totalRevenue)
	report.RetentionRate = Round1(SafePercentage(float64(repeatCustomers), float64(report.TotalCustomers)))
	report.RetentionCohorts = buildRetentionCohorts(aggregates, orders, now, filter)
	report.NewCustomersPercentage = Round1(SafePercentage(float64(report.NewCustomersThisMonth), float64(report.ActiveCustomers)))
	return report
}

func classifySegment(orderCount int, thresholds SegmentThresholds) string {
	switch {
	case orderCount >= thresholds.VIPMinOrders:
		return SegmentVIP
	case orderCount >= thresholds.RegularMinOrders:
		return SegmentRegular
	default:
		return SegmentNew
	}
}

func buildSegments(aggregates map[string]*CustomerAggregate, thresholds SegmentThresholds, totalRevenue float64) []SegmentSummary {
	counts := map[string]int{}
	spend := map[string]float64{}
	for _, agg := range aggregates {
		segment := classifySegment(agg.OrderCount, thresholds)
		counts[segment] += 1
		spend[segment] += agg.TotalSpent
	}

	totalCustomers := len(aggregates)
	segments := make([]SegmentSummary, 0, 3)
	for _, segment := range []string{SegmentVIP, SegmentRegular, SegmentNew} {
		summary := SegmentSummary{
			Segment:               segment,
			Count:                 counts[segment],
			PercentageOfCustomers: Round1(SafePercentage(float64(counts[segment]), float64(totalCustomers))),
			PercentageOfRevenue:   Round1(SafePercentage(spend[segment], totalRevenue)),
		}
		if summary.Count > 0 {
			summary.AverageSpend = spend[segment] / float64(summary.Count)
		}
		segments = append(segments, summary)
	}
	return segments
}

// buildRetentionCohorts derives, per trailing month, how many customers first
// appeared then and how many earlier customers came back. Orders are indexed
// per customer once and binary-searched per month boundary instead of
// rescanning the full order list for every month.
func buildRetentionCohorts(aggregates map[string]*CustomerAggregate, orders []Order, now time.Time, filter StatusFilter) []CohortMonth {
	ordersByCustomer := make(map[string][]time.Time, len(aggregates))
	for _, order := range orders {
		if order.CustomerKey == "" || !countableOrder(order, filter) {
			continue
		}
		if _, ok := aggregates[order.CustomerKey]; !ok {
			continue
		}
		ordersByCustomer[order.CustomerKey] = append(ordersByCustomer[order.CustomerKey], order.Timestamp)
	}
	for _, timestamps := range ordersByCustomer {
		sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })
	}

	months := LastNMonths(now, monthlySeriesLength)
	cohorts := make([]CohortMonth, 0, len(months))
	for _, month := range months {
		cohort := CohortMonth{Label: month.Label}
		for key, agg := range aggregates {
			if month.Contains(agg.FirstOrderAt) {
				cohort.NewCustomers += 1
				continue
			}
			if !agg.FirstOrderAt.Before(month.Start) {
				continue
			}
			cohort.ExistingBefore += 1
			if orderedWithin(ordersByCustomer[key], month) {
				cohort.ReturningCustomers += 1
			}
		}
		retention := SafePercentage(float64(cohort.ReturningCustomers), float64(cohort.ExistingBefore))
		if retention > 100 {
			retention = 100
		}
		cohort.RetentionPercent = Round1(retention)
		cohorts = append(cohorts, cohort)
	}
	return cohorts
}

// orderedWithin reports whether the sorted timestamps contain at least one
// instant inside the range.
func orderedWithin(timestamps []time.Time, r Range) bool {
	idx := sort.Search(len(timestamps), func(i int) bool {
		return !timestamps[i].Before(r.Start)
	})
	return idx < len(timestamps) && timestamps[idx].Before(r.End)
}
