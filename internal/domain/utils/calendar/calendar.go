// Package calendar builds month grids for schedule views.
package calendar

import "time"

// MonthGrid returns the weeks of a month as rows of day numbers, Monday
// first. Cells outside the month are zero, so a month starting on Wednesday
// opens with [0 0 1 2 3 4 5].
func MonthGrid(year int, month time.Month) [][7]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// time.Weekday is Sunday-based; shift to Monday = 0.
	offset := (int(first.Weekday()) + 6) % 7

	var weeks [][7]int
	week := [7]int{}
	col := offset
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col != 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// MonthBounds returns the first and last instant-of-day dates of a month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
