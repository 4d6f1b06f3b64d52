// Package interval implements the minute-based interval arithmetic the time
// window calculator is built on. Intervals are half-open in spirit but stored
// as (start, end) minute pairs with start < end; ends past 1440 represent
// spans that wrap beyond the reference midnight.
package interval

import (
	"fmt"
	"sort"
)

const minutesPerDay = 1440

// Interval is a span of minutes since the day's reference midnight.
type Interval struct {
	Start int
	End   int
}

// Normalize corrects a raw (start, end) pair for midnight wrap: when end does
// not exceed start, the span is taken to continue into the next day and end is
// shifted by 24 hours. An interval that stays degenerate after correction is
// rejected.
func Normalize(start, end int) (Interval, error) {
	if end <= start {
		end += minutesPerDay
	}
	if end <= start {
		return Interval{}, fmt.Errorf("degenerate interval [%d, %d]", start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// Intersect returns the strict overlap of a and b. Touching endpoints do not
// count as overlap.
func Intersect(a, b Interval) (Interval, bool) {
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := a.End
	if b.End < end {
		end = b.End
	}
	if start >= end {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// Merge collapses overlapping or touching intervals into a minimal sorted
// non-overlapping cover. The input slice is not modified.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []Interval{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if cur.Start <= last.End {
			if cur.End > last.End {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// Subtract removes every sub-interval from main and returns the remaining
// gaps in ascending order. Subs are merged first, so overlapping break
// definitions behave as one block.
func Subtract(main Interval, subs []Interval) []Interval {
	merged := Merge(subs)

	var available []Interval
	cursor := main.Start
	for _, sub := range merged {
		if sub.End <= cursor || sub.Start >= main.End {
			continue
		}
		if sub.Start > cursor {
			available = append(available, Interval{Start: cursor, End: sub.Start})
		}
		if sub.End > cursor {
			cursor = sub.End
		}
	}
	if cursor < main.End {
		available = append(available, Interval{Start: cursor, End: main.End})
	}
	return available
}
