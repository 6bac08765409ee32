package aggregation

import (
	"fmt"
	"time"
)

// PeriodUnit is the calendar width of a trailing bucket.
type PeriodUnit string

const (
	UnitMonth   PeriodUnit = "month"
	UnitQuarter PeriodUnit = "quarter"
)

// Bucket is one calendar period of a trailing window. End is exclusive.
type Bucket[T any] struct {
	Label string
	Start time.Time
	End   time.Time
	Rows  []T
}

// BucketByTrailingPeriod returns exactly count consecutive calendar buckets,
// oldest first, the last one containing end. Rows are placed by date(row);
// rows outside the window are dropped and empty buckets are kept.
func BucketByTrailingPeriod[T any](rows []T, date func(T) time.Time, unit PeriodUnit, count int, end time.Time) []Bucket[T] {
	if count <= 0 {
		return []Bucket[T]{}
	}

	step := 1
	if unit == UnitQuarter {
		step = 3
	}

	last := PeriodStart(end, unit)
	buckets := make([]Bucket[T], count)
	for i := 0; i < count; i++ {
		start := last.AddDate(0, -step*(count-1-i), 0)
		buckets[i] = Bucket[T]{
			Label: PeriodLabel(start, unit),
			Start: start,
			End:   start.AddDate(0, step, 0),
			Rows:  []T{},
		}
	}

	windowStart := buckets[0].Start
	windowEnd := buckets[count-1].End
	for _, row := range rows {
		d := date(row)
		if d.Before(windowStart) || !d.Before(windowEnd) {
			continue
		}
		for i := range buckets {
			if !d.Before(buckets[i].Start) && d.Before(buckets[i].End) {
				buckets[i].Rows = append(buckets[i].Rows, row)
				break
			}
		}
	}

	return buckets
}

// PeriodStart truncates t to the first instant of its month or quarter.
func PeriodStart(t time.Time, unit PeriodUnit) time.Time {
	month := t.Month()
	if unit == UnitQuarter {
		month = time.Month((int(month)-1)/3*3 + 1)
	}
	return time.Date(t.Year(), month, 1, 0, 0, 0, 0, t.Location())
}

// PeriodLabel formats the period containing t, e.g. "2025-03" or "2025-Q1".
func PeriodLabel(t time.Time, unit PeriodUnit) string {
	if unit == UnitQuarter {
		return QuarterLabel(t)
	}
	return t.Format("2006-01")
}

// QuarterLabel formats the calendar quarter containing t as "2006-Q1".
func QuarterLabel(t time.Time) string {
	return fmt.Sprintf("%d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
}

// MonthsBetween counts whole calendar months from start to end (negative when end precedes start).
func MonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	return months
}

// YearsBetween counts whole years from start to end.
func YearsBetween(start, end time.Time) int {
	years := end.Year() - start.Year()
	if end.Month() < start.Month() || (end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	return years
}
