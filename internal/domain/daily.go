package domain

import "time"

// SumBytes totals peak + off-peak over the given days.
func SumBytes(days []DayUsage) int64 {
	var total int64
	for _, d := range days {
		total += d.TotalBytes()
	}
	return total
}

// MaxDayBytes returns the largest single-day total, for chart scaling.
func MaxDayBytes(days []DayUsage) int64 {
	var max int64
	for _, d := range days {
		if t := d.TotalBytes(); t > max {
			max = t
		}
	}
	return max
}

// BusiestDay returns the day with the highest total consumption.
// The second return is false when days is empty.
func BusiestDay(days []DayUsage) (DayUsage, bool) {
	if len(days) == 0 {
		return DayUsage{}, false
	}
	best := days[0]
	for _, d := range days[1:] {
		if d.TotalBytes() > best.TotalBytes() {
			best = d
		}
	}
	return best, true
}

// FilterMonth returns the days falling in the given month, evaluated in
// the timezone of each day's own Date value.
func FilterMonth(days []DayUsage, year int, month time.Month) []DayUsage {
	filtered := make([]DayUsage, 0, len(days))
	for _, d := range days {
		if d.Date.Year() == year && d.Date.Month() == month {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
