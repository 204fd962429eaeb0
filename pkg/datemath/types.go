package datemath

import "time"

// References holds the calendar dates resolved for a single reference instant.
type References struct {
	Now              time.Time
	Today            time.Time
	Tomorrow         time.Time
	DayAfterTomorrow time.Time
	ThisWeekFriday   time.Time
	NextWeekMonday   time.Time
}
