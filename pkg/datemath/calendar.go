package datemath

import (
	"math"
	"strings"
	"time"
)

// ISODate is the wire format for date-only values.
const ISODate = "2006-01-02"

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// LookupMonth resolves a full or abbreviated English month name.
func LookupMonth(name string) (time.Month, bool) {
	m, ok := months[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// WeekBounds returns Monday 00:00 and Sunday 23:59:59.999 of the week containing t.
// Sunday belongs to the week that started six days earlier.
func (p *Parser) WeekBounds(t time.Time) (time.Time, time.Time) {
	day := p.StartOfDay(t)
	offset := 1 - int(day.Weekday())
	if day.Weekday() == time.Sunday {
		offset = -6
	}
	monday := day.AddDate(0, 0, offset)
	sunday := p.EndOfDay(monday.AddDate(0, 0, 6))
	return monday, sunday
}

// MonthBounds returns the first day 00:00 and last day 23:59:59.999 of month in year.
func (p *Parser) MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, p.location)
	last := first.AddDate(0, 1, -1)
	return first, p.EndOfDay(last)
}

// ParseISO parses a YYYY-MM-DD string as local midnight.
func (p *Parser) ParseISO(s string) (time.Time, error) {
	return time.ParseInLocation(ISODate, s, p.location)
}

// ISO formats t as a local YYYY-MM-DD date.
func (p *Parser) ISO(t time.Time) string {
	return t.In(p.location).Format(ISODate)
}

// FormatDate renders a date for display, e.g. "Mon, Mar 2, 2026".
func (p *Parser) FormatDate(t time.Time) string {
	return t.In(p.location).Format("Mon, Jan 2, 2006")
}

// FormatTime renders a clock time for display, e.g. "3:04 PM".
func (p *Parser) FormatTime(t time.Time) string {
	return t.In(p.location).Format("3:04 PM")
}

// DaysBetween counts whole calendar days from a to b in the parser's timezone.
func (p *Parser) DaysBetween(a, b time.Time) int {
	return int(math.Round(p.StartOfDay(b).Sub(p.StartOfDay(a)).Hours() / 24))
}
