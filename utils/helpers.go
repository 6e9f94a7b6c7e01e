package utils

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// CurrentDate returns today in YYYY-MM-DD format.
func CurrentDate() string {
	return time.Now().Format(dateLayout)
}

// CurrentTimestamp returns the current UTC time in RFC 3339 format.
func CurrentTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// CalculateStreak counts consecutive calendar days ending at the most
// recent date in the list. Unparseable dates break the streak.
func CalculateStreak(dates []string) int {
	if len(dates) == 0 {
		return 0
	}

	sorted := make([]string, len(dates))
	copy(sorted, dates)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	streak := 1
	for i := 0; i < len(sorted)-1; i++ {
		current, err := time.Parse(dateLayout, sorted[i])
		if err != nil {
			break
		}
		previous, err := time.Parse(dateLayout, sorted[i+1])
		if err != nil {
			break
		}

		diff := int(current.Sub(previous).Hours() / 24)
		if diff == 1 {
			streak++
		} else if diff == 0 {
			// Same day logged twice does not extend or break the run.
			continue
		} else {
			break
		}
	}
	return streak
}
