package datemath

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ClockLayout is the 24-hour time-of-day format.
const ClockLayout = "15:04"

const (
	fallbackHour = 9
	msPerDay     = 24 * 60 * 60 * 1000
)

// Combine merges a YYYY-MM-DD date and an HH:mm time into one instant in the
// parser's timezone with zero seconds. The second return value is false when
// either part was malformed and the result is the fallback "today at 09:00".
// A wall time skipped by a daylight-saving jump moves forward by the jump,
// so 02:30 on a spring-forward night becomes 03:30.
func (p *Parser) Combine(date, clock string, now time.Time) (time.Time, bool) {
	y, m, d, ok := splitDate(date)
	if ok {
		var hh, mm int
		hh, mm, ok = splitClock(clock)
		if ok {
			return p.wallClock(y, m, d, hh, mm), true
		}
	}

	today := p.StartOfDay(now)
	return today.Add(fallbackHour * time.Hour), false
}

func (p *Parser) wallClock(y, m, d, hh, mm int) time.Time {
	t := time.Date(y, time.Month(m), d, hh, mm, 0, 0, p.location)
	if t.Hour() == hh && t.Minute() == mm {
		return t
	}

	// Reapply the requested wall time with the offset in effect at t; in a gap
	// that lands on the far side of the transition.
	_, offset := t.Zone()
	shifted := time.Date(y, time.Month(m), d, hh, mm, 0, 0, time.UTC).
		Add(-time.Duration(offset) * time.Second).
		In(p.location)
	if shifted.After(t) {
		return shifted
	}
	return t
}

// Split is the inverse of Combine.
func (p *Parser) Split(t time.Time) (date, clock string) {
	local := t.In(p.location)
	return local.Format(DateLayout), local.Format(ClockLayout)
}

// CeilDays returns the number of days from -> to, rounded up the same way
// the dashboard does: a task due one hour from now is one day away.
func CeilDays(from, to time.Time) int {
	ms := to.Sub(from).Milliseconds()
	return int(math.Ceil(float64(ms) / msPerDay))
}

func splitDate(s string) (year, month, day int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var err error
	if year, err = strconv.Atoi(parts[0]); err != nil || year < 1 {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(parts[1]); err != nil || month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	if day, err = strconv.Atoi(parts[2]); err != nil || day < 1 || day > daysIn(year, month) {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

func splitClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	var err error
	if hour, err = strconv.Atoi(parts[0]); err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	if minute, err = strconv.Atoi(parts[1]); err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
