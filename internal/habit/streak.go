// Package habit tracks daily habits: completion toggling, reward wiring, and
// the consecutive-day streak calculation.
package habit

import (
	"sort"
	"time"
)

// DateLayout is the calendar-date format used for completion marks.
const DateLayout = "2006-01-02"

// Today formats now as a completion date.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// Streak returns the current consecutive-day streak for a set of completion
// dates (YYYY-MM-DD). The most recent completion must be today or yesterday,
// otherwise the streak is 0; not having completed today yet does not break
// it, since yesterday still counts. From there it walks backward, counting
// dates exactly one calendar day apart, and stops at the first gap.
//
// Pure and deterministic: callers recompute it whole whenever the completion
// set changes rather than patching it incrementally.
func Streak(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	// ISO dates sort lexicographically; newest first.
	sorted := append([]string(nil), dates...)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	yesterday := today.AddDate(0, 0, -1)
	last := sorted[0]
	if last != Today(today) && last != Today(yesterday) {
		return 0
	}

	expected, err := time.Parse(DateLayout, last)
	if err != nil {
		return 0
	}

	streak := 0
	for _, date := range sorted {
		if date != Today(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
