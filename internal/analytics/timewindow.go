package analytics

import "time"

// Range is a half-open [Start, End) window. An instant equal to Start belongs
// to the range, an instant equal to End belongs to the next one.
type Range struct {
	Start time.Time
	End   time.Time
	Label string
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// MonthRange returns the calendar month offset months before now, in now's
// location. Offset 0 is the current month.
func MonthRange(now time.Time, offset int) Range {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -offset, 0)
	return Range{
		Start: start,
		End:   start.AddDate(0, 1, 0),
		Label: start.Format("Jan 2006"),
	}
}

// WeekRange returns the ISO week (Monday start) offset weeks before now,
// labeled by its Monday.
func WeekRange(now time.Time, offset int) Range {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monday := day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
	start := monday.AddDate(0, 0, -7*offset)
	return Range{
		Start: start,
		End:   start.AddDate(0, 0, 7),
		Label: start.Format("Jan 02"),
	}
}

// LastNMonths returns n contiguous month ranges ending with the current
// month, oldest first.
func LastNMonths(now time.Time, n int) []Range {
	ranges := make([]Range, 0, n)
	for offset := n - 1; offset >= 0; offset-- {
		ranges = append(ranges, MonthRange(now, offset))
	}
	return ranges
}

// LastNWeeks returns n contiguous week ranges ending with the current week,
// oldest first.
func LastNWeeks(now time.Time, n int) []Range {
	ranges := make([]Range, 0, n)
	for offset := n - 1; offset >= 0; offset-- {
		ranges = append(ranges, WeekRange(now, offset))
	}
	return ranges
}
