package analytics

import (
	"math"
	"strconv"
)

// percent returns completed/total*100, or 0 when total is 0.
func percent(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// round1 rounds to one decimal place, halves away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatRate renders a completion rate with one decimal place, or "0" when
// there is nothing to divide by.
func FormatRate(completed, total int) string {
	if total == 0 {
		return "0"
	}
	return strconv.FormatFloat(round1(percent(completed, total)), 'f', 1, 64)
}

func newBucket(completed, total int) Bucket {
	return Bucket{Total: total, Completed: completed, Rate: FormatRate(completed, total)}
}
