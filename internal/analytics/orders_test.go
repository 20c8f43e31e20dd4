package analytics

import (
	"testing"
	"time"
)

func TestAnalyzeOrdersDayOfWeek(t *testing.T) {
	// Monday 2025-03-10 through Sunday 2025-03-16.
	now := time.Date(2025, time.March, 16, 20, 0, 0, 0, time.UTC)
	day := func(offset, hour int) time.Time {
		return time.Date(2025, time.March, 10+offset, hour, 0, 0, 0, time.UTC)
	}

	orders := []Order{
		testOrder("1", day(0, 12), StatusDelivered, 10, "a"),
		testOrder("2", day(0, 13), StatusDelivered, 10, "b"),
		testOrder("3", day(2, 12), StatusDelivered, 10, "c"),
		testOrder("4", day(5, 19), StatusDelivered, 10, "d"), // Saturday
	}

	report := AnalyzeOrders(orders, now, DeliveredStatuses())

	if len(report.OrdersByDayOfWeek) != 7 {
		t.Fatalf("expected 7 day buckets, got %d", len(report.OrdersByDayOfWeek))
	}
	if report.OrdersByDayOfWeek[0].Day != "Monday" || report.OrdersByDayOfWeek[6].Day != "Sunday" {
		t.Fatalf("buckets must run Monday..Sunday, got %s..%s",
			report.OrdersByDayOfWeek[0].Day, report.OrdersByDayOfWeek[6].Day)
	}
	if report.OrdersByDayOfWeek[0].Orders != 2 {
		t.Fatalf("expected 2 Monday orders, got %d", report.OrdersByDayOfWeek[0].Orders)
	}
	if report.OrdersByDayOfWeek[0].Percentage != 50 {
		t.Fatalf("expected Monday at 50%%, got %v", report.OrdersByDayOfWeek[0].Percentage)
	}
	if report.PeakDay != "Monday" {
		t.Fatalf("expected peak day Monday, got %s", report.PeakDay)
	}
}

func TestAnalyzeOrdersPeakDayTieBreak(t *testing.T) {
	now := time.Date(2025, time.March, 16, 20, 0, 0, 0, time.UTC)
	orders := []Order{
		testOrder("1", time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC), StatusDelivered, 10, "a"), // Wednesday
		testOrder("2", time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC), StatusDelivered, 10, "b"), // Monday
	}

	report := AnalyzeOrders(orders, now, DeliveredStatuses())
	if report.PeakDay != "Monday" {
		t.Fatalf("ties must resolve to the earliest day in Monday-first order, got %s", report.PeakDay)
	}
}

func TestAnalyzeOrdersHourWindow(t *testing.T) {
	now := time.Date(2025, time.March, 16, 20, 0, 0, 0, time.UTC)
	orders := []Order{
		testOrder("1", time.Date(2025, time.March, 12, 2, 0, 0, 0, time.UTC), StatusDelivered, 10, "a"),
		testOrder("2", time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC), StatusDelivered, 10, "b"),
		testOrder("3", time.Date(2025, time.March, 13, 12, 30, 0, 0, time.UTC), StatusDelivered, 10, "c"),
		testOrder("4", time.Date(2025, time.March, 13, 19, 0, 0, 0, time.UTC), StatusDelivered, 10, "d"),
	}

	report := AnalyzeOrders(orders, now, DeliveredStatuses())

	if len(report.OrdersByHour) != 13 {
		t.Fatalf("expected 13 service-hour buckets (11..23), got %d", len(report.OrdersByHour))
	}
	if report.OrdersByHour[0].Hour != 11 || report.OrdersByHour[12].Hour != 23 {
		t.Fatalf("hour window must span 11..23")
	}

	var noon HourBucket
	for _, bucket := range report.OrdersByHour {
		if bucket.Hour == 12 {
			noon = bucket
		}
		if bucket.Hour == 2 {
			t.Fatalf("hours outside the service window must not appear in the series")
		}
	}
	if noon.Orders != 2 {
		t.Fatalf("expected 2 orders at noon, got %d", noon.Orders)
	}
	// The 02:00 order is outside the window but still in the denominator.
	if noon.Percentage != 50 {
		t.Fatalf("expected noon at 50%% of all 4 orders, got %v", noon.Percentage)
	}
	if report.PeakHour != 12 {
		t.Fatalf("expected peak hour 12, got %d", report.PeakHour)
	}
}

func TestAnalyzeOrdersWeekendVsWeekday(t *testing.T) {
	now := time.Date(2025, time.March, 16, 20, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return time.Date(2025, time.March, 10+offset, 12, 0, 0, 0, time.UTC)
	}

	orders := []Order{
		testOrder("1", day(0), StatusDelivered, 10, "a"),
		testOrder("2", day(1), StatusDelivered, 10, "b"),
		testOrder("3", day(2), StatusDelivered, 10, "c"),
		testOrder("4", day(3), StatusDelivered, 10, "d"),
		testOrder("5", day(4), StatusDelivered, 10, "e"),
		testOrder("6", day(5), StatusDelivered, 10, "f"),
		testOrder("7", day(5), StatusDelivered, 10, "g"),
		testOrder("8", day(6), StatusDelivered, 10, "h"),
		testOrder("9", day(6), StatusDelivered, 10, "i"),
	}

	report := AnalyzeOrders(orders, now, DeliveredStatuses())

	// Weekday average 1/day, weekend average 2/day: +100%.
	if report.WeekendVsWeekdayRatio != 100 {
		t.Fatalf("expected ratio 100, got %v", report.WeekendVsWeekdayRatio)
	}
}

func TestAnalyzeOrdersWeekendRatioNoWeekdays(t *testing.T) {
	now := time.Date(2025, time.March, 16, 20, 0, 0, 0, time.UTC)
	orders := []Order{
		testOrder("1", time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC), StatusDelivered, 10, "a"),
	}

	report := AnalyzeOrders(orders, now, DeliveredStatuses())
	if report.WeekendVsWeekdayRatio != 0 {
		t.Fatalf("zero weekday volume must report 0, got %v", report.WeekendVsWeekdayRatio)
	}
}

func TestAnalyzeOrdersWeeklyVolume(t *testing.T) {
	now := time.Date(2025, time.March, 20, 18, 0, 0, 0, time.UTC)
	thisWeek := time.Date(2025, time.March, 18, 12, 0, 0, 0, time.UTC)
	lastWeek := thisWeek.AddDate(0, 0, -7)

	orders := []Order{
		testOrder("1", lastWeek, StatusDelivered, 10, "a"),
		testOrder("2", thisWeek, StatusDelivered, 10, "b"),
		testOrder("3", thisWeek.Add(time.Hour), StatusDelivered, 10, "c"),
	}

	report := AnalyzeOrders(orders, now, DeliveredStatuses())

	if len(report.WeeklyVolume) != 12 {
		t.Fatalf("expected 12 weekly entries, got %d", len(report.WeeklyVolume))
	}
	if report.WeeklyVolume[0].Growth != 0 {
		t.Fatalf("first entry growth must be 0, got %d", report.WeeklyVolume[0].Growth)
	}
	last := report.WeeklyVolume[11]
	if last.Orders != 2 || last.Growth != 100 {
		t.Fatalf("expected current week {2 orders, 100%% growth}, got %+v", last)
	}
}

func TestAnalyzeOrdersStatusFilterIsExplicit(t *testing.T) {
	now := time.Date(2025, time.March, 16, 20, 0, 0, 0, time.UTC)
	ts := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)
	orders := []Order{
		testOrder("1", ts, StatusDelivered, 10, "a"),
		testOrder("2", ts, StatusCancelled, 10, "b"),
		testOrder("3", ts, StatusPending, 10, "c"),
	}

	all := AnalyzeOrders(orders, now, AllStatuses())
	if all.OrdersThisMonth != 3 {
		t.Fatalf("all-statuses filter must count everything, got %d", all.OrdersThisMonth)
	}

	delivered := AnalyzeOrders(orders, now, DeliveredStatuses())
	if delivered.OrdersThisMonth != 1 {
		t.Fatalf("delivered filter must count 1, got %d", delivered.OrdersThisMonth)
	}

	none := AnalyzeOrders(orders, now, nil)
	if none.OrdersThisMonth != 0 {
		t.Fatalf("a nil filter matches nothing, got %d", none.OrdersThisMonth)
	}
}

func TestAnalyzeOrdersEmptyInput(t *testing.T) {
	now := time.Date(2025, time.March, 16, 20, 0, 0, 0, time.UTC)
	report := AnalyzeOrders(nil, now, AllStatuses())

	if report.OrdersThisMonth != 0 || report.OrdersGrowth != 0 {
		t.Fatalf("empty input must produce zero counts, got %+v", report)
	}
	if report.PeakDay != "" {
		t.Fatalf("no orders means no peak day, got %q", report.PeakDay)
	}
	if report.PeakHour != 0 {
		t.Fatalf("no orders means no peak hour, got %d", report.PeakHour)
	}
	if len(report.OrdersByDayOfWeek) != 7 || len(report.OrdersByHour) != 13 {
		t.Fatalf("distributions keep their fixed bucket counts")
	}
}
