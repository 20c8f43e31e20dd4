package analytics

import "time"

type DayOfWeekBucket struct {
	Day        string  `json:"day"`
	Orders     int     `json:"orders"`
	Percentage float64 `json:"percentageOfTotal"`
}

type HourBucket struct {
	Hour       int     `json:"hour"`
	Orders     int     `json:"orders"`
	Percentage float64 `json:"percentageOfTotal"`
}

type WeeklyVolumePoint struct {
	Label  string `json:"label"`
	Orders int    `json:"orders"`
	Growth int    `json:"growth"`
}

type OrdersReport struct {
	OrdersThisMonth       int                 `json:"ordersThisMonth"`
	OrdersLastMonth       int                 `json:"ordersLastMonth"`
	OrdersGrowth          int                 `json:"ordersGrowth"`
	AverageOrderValue     float64             `json:"averageOrderValue"`
	OrdersByDayOfWeek     []DayOfWeekBucket   `json:"ordersByDayOfWeek"`
	PeakDay               string              `json:"peakDay"`
	OrdersByHour          []HourBucket        `json:"ordersByHour"`
	PeakHour              int                 `json:"peakHour"`
	WeekendVsWeekdayRatio float64             `json:"weekendVsWeekdayRatio"`
	WeeklyVolume          []WeeklyVolumePoint `json:"weeklyVolume"`
}

// Service hours: the hour distribution is displayed for 11:00-23:59 only.
// Orders outside the window still count toward totals and percentages.
const (
	serviceHourFirst = 11
	serviceHourLast  = 23
)

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// AnalyzeOrders computes the order-volume dashboard. The filter is always
// caller-supplied; whether cancelled or pending orders count toward volume is
// the caller's call, never this function's.
func AnalyzeOrders(orders []Order, now time.Time, filter StatusFilter) OrdersReport {
	report := OrdersReport{}

	thisMonth := MonthRange(now, 0)
	lastMonth := MonthRange(now, 1)

	weeks := LastNWeeks(now, weeklySeriesLength)
	weeklyCounts := make([]int, len(weeks))

	var dayCounts [7]int
	var hourCounts [24]int
	totalOrders := 0
	var totalAmount float64

	for _, order := range orders {
		if !countableOrder(order, filter) {
			continue
		}
		totalOrders += 1
		totalAmount += order.TotalAmount

		if thisMonth.Contains(order.Timestamp) {
			report.OrdersThisMonth += 1
		} else if lastMonth.Contains(order.Timestamp) {
			report.OrdersLastMonth += 1
		}

		// Rotate so Monday is index 0 regardless of Go's Sunday-first numbering.
		dayCounts[(int(order.Timestamp.Weekday())+6)%7] += 1
		hourCounts[order.Timestamp.Hour()] += 1

		for i, week := range weeks {
			if week.Contains(order.Timestamp) {
				weeklyCounts[i] += 1
				break
			}
		}
	}

	report.OrdersGrowth = GrowthPercent(float64(report.OrdersThisMonth), float64(report.OrdersLastMonth))
	if totalOrders > 0 {
		report.AverageOrderValue = totalAmount / float64(totalOrders)
	}

	report.OrdersByDayOfWeek = make([]DayOfWeekBucket, 0, 7)
	peakDayIdx := -1
	for i := 0; i < 7; i++ {
		report.OrdersByDayOfWeek = append(report.OrdersByDayOfWeek, DayOfWeekBucket{
			Day:        dayNames[i],
			Orders:     dayCounts[i],
			Percentage: Round1(SafePercentage(float64(dayCounts[i]), float64(totalOrders))),
		})
		if dayCounts[i] > 0 && (peakDayIdx < 0 || dayCounts[i] > dayCounts[peakDayIdx]) {
			peakDayIdx = i
		}
	}
	if peakDayIdx >= 0 {
		report.PeakDay = dayNames[peakDayIdx]
	}

	report.OrdersByHour = make([]HourBucket, 0, serviceHourLast-serviceHourFirst+1)
	peakHourIdx := -1
	for hour := serviceHourFirst; hour <= serviceHourLast; hour++ {
		report.OrdersByHour = append(report.OrdersByHour, HourBucket{
			Hour:       hour,
			Orders:     hourCounts[hour],
			Percentage: Round1(SafePercentage(float64(hourCounts[hour]), float64(totalOrders))),
		})
		if hourCounts[hour] > 0 && (peakHourIdx < 0 || hourCounts[hour] > hourCounts[peakHourIdx]) {
			peakHourIdx = hour
		}
	}
	if peakHourIdx >= 0 {
		report.PeakHour = peakHourIdx
	}

	report.WeekendVsWeekdayRatio = weekendVsWeekdayRatio(dayCounts)

	report.WeeklyVolume = make([]WeeklyVolumePoint, 0, len(weeks))
	for i, week := range weeks {
		growth := 0
		if i > 0 {
			growth = GrowthPercent(float64(weeklyCounts[i]), float64(weeklyCounts[i-1]))
		}
		report.WeeklyVolume = append(report.WeeklyVolume, WeeklyVolumePoint{
			Label:  week.Label,
			Orders: weeklyCounts[i],
			Growth: growth,
		})
	}

	return report
}

func weekendVsWeekdayRatio(dayCounts [7]int) float64 {
	weekdayTotal := 0
	for i := 0; i < 5; i++ {
		weekdayTotal += dayCounts[i]
	}
	weekendTotal := dayCounts[5] + dayCounts[6]
	if weekdayTotal == 0 {
		return 0
	}
	weekdayAvg := float64(weekdayTotal) / 5
	weekendAvg := float64(weekendTotal) / 2
	return Round1((weekendAvg/weekdayAvg - 1) * 100)
}
