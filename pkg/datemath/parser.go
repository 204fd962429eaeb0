package datemath

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format exchanged with the model and clients.
const DateLayout = "2006-01-02"

// Parser resolves calendar-relative dates in a fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Seoul"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser bound to an already loaded location.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's reference timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// Today returns today's date.
func (p *Parser) Today(now time.Time) time.Time {
	return p.StartOfDay(now)
}

// Tomorrow returns today + 1 day.
func (p *Parser) Tomorrow(now time.Time) time.Time {
	return p.addDays(now, 1)
}

// DayAfterTomorrow returns today + 2 days.
func (p *Parser) DayAfterTomorrow(now time.Time) time.Time {
	return p.addDays(now, 2)
}

// ThisWeekFriday returns the Friday of the current week. On a Friday it is
// today; on a Saturday it rolls over to the coming Friday.
func (p *Parser) ThisWeekFriday(now time.Time) time.Time {
	wd := int(now.In(p.location).Weekday())

	var days int
	switch {
	case wd == int(time.Friday):
		days = 0
	case wd > int(time.Friday):
		days = 7 - wd + int(time.Friday)
	default:
		days = int(time.Friday) - wd
	}
	return p.addDays(now, days)
}

// NextWeekMonday returns the first Monday strictly after today.
func (p *Parser) NextWeekMonday(now time.Time) time.Time {
	wd := int(now.In(p.location).Weekday())
	days := (int(time.Monday) - wd + 7) % 7
	if days == 0 {
		days = 7
	}
	return p.addDays(now, days)
}

// StartOfWeek returns midnight of the Sunday that opens the current week.
func (p *Parser) StartOfWeek(now time.Time) time.Time {
	wd := int(now.In(p.location).Weekday())
	return p.addDays(now, -wd)
}

// References resolves every reference date used in prompts for one instant.
func (p *Parser) References(now time.Time) References {
	local := now.In(p.location)
	return References{
		Now:              local,
		Today:            p.Today(now),
		Tomorrow:         p.Tomorrow(now),
		DayAfterTomorrow: p.DayAfterTomorrow(now),
		ThisWeekFriday:   p.ThisWeekFriday(now),
		NextWeekMonday:   p.NextWeekMonday(now),
	}
}

// FormatDate renders t as YYYY-MM-DD in the parser's timezone.
func (p *Parser) FormatDate(t time.Time) string {
	return t.In(p.location).Format(DateLayout)
}

// addDays works on the calendar date so DST shifts never move the day.
func (p *Parser) addDays(now time.Time, days int) time.Time {
	t := now.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day()+days, 0, 0, 0, 0, p.location)
}
