package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"workspace-assistant/internal/query"
	"workspace-assistant/pkg/datemath"
)

const (
	monthAlt    = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`
	fullMonths  = `january|february|march|april|may|june|july|august|september|october|november|december`
	weekdayAlt  = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	ordinalSufx = `(?:st|nd|rd|th)?`
)

var (
	monthRangeRe = regexp.MustCompile(`\b(?:in|during|for)\s+(` + monthAlt + `)\b`)
	singleDateRe = regexp.MustCompile(
		`\b\d{1,2}` + ordinalSufx + `(?:\s+of)?\s+(?:` + monthAlt + `)\b` +
			`|\b(?:` + monthAlt + `)\s+\d{1,2}` + ordinalSufx + `\b` +
			`|\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b` +
			`|\b(?:` + weekdayAlt + `)\b` +
			`|\b(?:` + fullMonths + `)\b`,
	)
)

// ParseDateFromQuery resolves the first date reference in the query relative
// to now, in now's location. Rules are checked in a fixed order and the first
// one that applies wins. A single-date phrase that cannot be turned into a real
// date yields an empty range and an error wrapping ErrUnparsableDate; callers
// log it and carry on.
func ParseDateFromQuery(q string, now time.Time) (DateRange, error) {
	lower := strings.ToLower(q)
	p := datemath.NewParserInLocation(now.Location())

	switch {
	case strings.Contains(lower, "this week"):
		return weekRange(p, now), nil
	case strings.Contains(lower, "next week"):
		return weekRange(p, now.AddDate(0, 0, 7)), nil
	case strings.Contains(lower, "today"):
		return DateRange{TargetDate: p.ISO(now)}, nil
	case strings.Contains(lower, "tomorrow"):
		return DateRange{TargetDate: p.ISO(now.AddDate(0, 0, 1))}, nil
	case strings.Contains(lower, "yesterday"):
		return DateRange{TargetDate: p.ISO(now.AddDate(0, 0, -1))}, nil
	}

	if m := monthRangeRe.FindStringSubmatch(lower); m != nil {
		month, _ := datemath.LookupMonth(m[1])
		first, last := p.MonthBounds(now.In(p.Location()).Year(), month)
		start, end := p.ISO(first), p.ISO(last)
		return DateRange{
			StartDate:         start,
			EndDate:           end,
			DateFilters:       []string{query.DueAfter(start), query.DueBefore(end)},
			MatchedMonthToken: m[1],
		}, nil
	}

	if phrase := singleDateRe.FindString(lower); phrase != "" {
		t, err := p.ParseLoose(phrase, now)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: %q: %v", ErrUnparsableDate, phrase, err)
		}
		return DateRange{TargetDate: p.ISO(t)}, nil
	}

	return DateRange{}, nil
}

func weekRange(p *datemath.Parser, at time.Time) DateRange {
	monday, sunday := p.WeekBounds(at)
	start, end := p.ISO(monday), p.ISO(sunday)
	return DateRange{
		StartDate:   start,
		EndDate:     end,
		DateFilters: []string{query.DueAfter(start), query.DueBefore(end)},
	}
}
