package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative and loose date strings to absolute time.Time values
// in a fixed timezone.
type Parser struct {
	location *time.Location
}

var (
	inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	ordinalRe    = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?(?:\s+of)?\s+([a-z]+)$`)
	monthDayRe   = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?$`)
	numericRe    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2}|\d{4}))?$`)
)

// NewParserInLocation creates a parser bound to an already loaded location.
func NewParserInLocation(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("unrecognised relative date %q", relative)
}

// ParseLoose parses a single calendar date written the way people type it:
// "15th march", "march 15", "friday", "15/3", "15/3/2026" or a bare "march".
// Dates without a year land in baseTime's year; a bare weekday resolves to its
// next occurrence (today counts); a bare month resolves to its first day.
func (p *Parser) ParseLoose(text string, baseTime time.Time) (time.Time, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	base := baseTime.In(p.location)
	year := base.Year()

	if wd, ok := weekdays[text]; ok {
		diff := (int(wd) - int(base.Weekday()) + 7) % 7
		return p.StartOfDay(base.AddDate(0, 0, diff)), nil
	}

	if m, ok := LookupMonth(text); ok {
		return time.Date(year, m, 1, 0, 0, 0, 0, p.location), nil
	}

	if m := ordinalRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, ok := LookupMonth(m[2])
		if !ok {
			return time.Time{}, fmt.Errorf("unknown month %q", m[2])
		}
		return p.date(year, month, day)
	}

	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		month, ok := LookupMonth(m[1])
		if !ok {
			return time.Time{}, fmt.Errorf("unknown month %q", m[1])
		}
		day, _ := strconv.Atoi(m[2])
		return p.date(year, month, day)
	}

	if m := numericRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if len(m[3]) == 2 {
				year += 2000
			}
		}
		if month < 1 || month > 12 {
			return time.Time{}, fmt.Errorf("invalid month in %q", text)
		}
		return p.date(year, time.Month(month), day)
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", text)
}

// date builds a start-of-day time and rejects days that overflow the month.
func (p *Parser) date(year int, month time.Month, day int) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if day < 1 || t.Month() != month {
		return time.Time{}, fmt.Errorf("day %d out of range for %s %d", day, month, year)
	}
	return t, nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59.999 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(24*time.Hour - time.Millisecond)
}
