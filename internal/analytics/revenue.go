package analytics

import (
	"sort"
	"time"
)

type WeeklyRevenuePoint struct {
	Label      string  `json:"label"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"orderCount"`
}

type CategoryRevenue struct {
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type MonthlyRevenuePoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Growth  int     `json:"growth"`
}

type TopProduct struct {
	ProductID  string  `json:"productId,omitempty"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type RevenueReport struct {
	RevenueThisMonth     float64               `json:"revenueThisMonth"`
	RevenueLastMonth     float64               `json:"revenueLastMonth"`
	GrowthPercentage     int                   `json:"growthPercentage"`
	WeeklyRevenue        []WeeklyRevenuePoint  `json:"weeklyRevenue"`
	AverageWeeklyRevenue float64               `json:"averageWeeklyRevenue"`
	RevenueByCategory    []CategoryRevenue     `json:"revenueByCategory"`
	MonthlyGrowth        []MonthlyRevenuePoint `json:"monthlyGrowth"`
	TopProducts          []TopProduct          `json:"topProducts"`
}

const (
	weeklySeriesLength  = 12
	monthlySeriesLength = 6
	topProductsLimit    = 10
)

// AnalyzeRevenue computes the revenue dashboard from an order snapshot. The
// catalogue resolves categories for items that carry none inline; the filter
// decides which statuses count as revenue.
func AnalyzeRevenue(orders []Order, now time.Time, catalogue *CatalogueIndex, filter StatusFilter) RevenueReport {
	report := RevenueReport{}

	thisMonth := MonthRange(now, 0)
	lastMonth := MonthRange(now, 1)

	weeks := LastNWeeks(now, weeklySeriesLength)
	weekly := make([]WeeklyRevenuePoint, len(weeks))
	for i, week := range weeks {
		weekly[i] = WeeklyRevenuePoint{Label: week.Label}
	}

	// One extra month seeds the growth of the oldest entry in the series.
	months := LastNMonths(now, monthlySeriesLength+1)
	monthlyRevenue := make([]float64, len(months))

	for _, order := range orders {
		if !countableOrder(order, filter) {
			continue
		}
		if thisMonth.Contains(order.Timestamp) {
			report.RevenueThisMonth += order.TotalAmount
		} else if lastMonth.Contains(order.Timestamp) {
			report.RevenueLastMonth += order.TotalAmount
		}
		for i, week := range weeks {
			if week.Contains(order.Timestamp) {
				weekly[i].Revenue += order.TotalAmount
				weekly[i].OrderCount += 1
				break
			}
		}
		for i, month := range months {
			if month.Contains(order.Timestamp) {
				monthlyRevenue[i] += order.TotalAmount
				break
			}
		}
	}

	report.GrowthPercentage = GrowthPercent(report.RevenueThisMonth, report.RevenueLastMonth)
	report.WeeklyRevenue = weekly

	var weeklyTotal float64
	for _, point := range weekly {
		weeklyTotal += point.Revenue
	}
	report.AverageWeeklyRevenue = weeklyTotal / float64(len(weekly))

	report.MonthlyGrowth = make([]MonthlyRevenuePoint, 0, monthlySeriesLength)
	for i := 1; i < len(months); i++ {
		report.MonthlyGrowth = append(report.MonthlyGrowth, MonthlyRevenuePoint{
			Label:   months[i].Label,
			Revenue: monthlyRevenue[i],
			Growth:  GrowthPercent(monthlyRevenue[i], monthlyRevenue[i-1]),
		})
	}

	report.RevenueByCategory = categoryBreakdown(orders, filter, catalogue)
	report.TopProducts = topProducts(orders, filter)
	return report
}

func categoryBreakdown(orders []Order, filter StatusFilter, catalogue *CatalogueIndex) []CategoryRevenue {
	revenueByCategory := BuildCategoryRevenue(orders, filter, catalogue)

	var total float64
	for _, revenue := range revenueByCategory {
		total += revenue
	}

	breakdown := make([]CategoryRevenue, 0, len(revenueByCategory))
	for name, revenue := range revenueByCategory {
		breakdown = append(breakdown, CategoryRevenue{
			Name:       name,
			Revenue:    revenue,
			Percentage: Round1(SafePercentage(revenue, total)),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Revenue != breakdown[j].Revenue {
			return breakdown[i].Revenue > breakdown[j].Revenue
		}
		return breakdown[i].Name < breakdown[j].Name
	})
	return breakdown
}

func topProducts(orders []Order, filter StatusFilter) []TopProduct {
	type productAgg struct {
		productID string
		name      string
		quantity  int
		revenue   float64
	}

	products := make(map[string]*productAgg)
	for _, order := range orders {
		if !countableOrder(order, filter) {
			continue
		}
		for _, item := range order.Items {
			key := item.ProductID
			if key == "" {
				key = "name::" + normalizeName(item.Name)
			}
			agg := products[key]
			if agg == nil {
				agg = &productAgg{productID: item.ProductID, name: item.Name}
				products[key] = agg
			}
			agg.quantity += item.Quantity
			agg.revenue += item.UnitPrice * float64(item.Quantity)
		}
	}

	var total float64
	for _, agg := range products {
		total += agg.revenue
	}

	result := make([]TopProduct, 0, len(products))
	for _, agg := range products {
		result = append(result, TopProduct{
			ProductID:  agg.productID,
			Name:       agg.name,
			Quantity:   agg.quantity,
			Revenue:    agg.revenue,
			Percentage: Round1(SafePercentage(agg.revenue, total)),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Quantity != result[j].Quantity {
			return result[i].Quantity > result[j].Quantity
		}
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].Name < result[j].Name
	})
	if len(result) > topProductsLimit {
		result = result[:topProductsLimit]
	}
	return result
}
