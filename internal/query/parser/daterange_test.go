package parser_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"workspace-assistant/internal/query/parser"
)

// Wednesday.
var now = time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC)

func TestParseDateFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		now   time.Time
		want  parser.DateRange
	}{
		{
			name:  "this week",
			query: "events this week",
			now:   now,
			want: parser.DateRange{
				StartDate:   "2026-10-19",
				EndDate:     "2026-10-25",
				DateFilters: []string{"due_after:2026-10-19", "due_before:2026-10-25"},
			},
		},
		{
			name:  "this week on a sunday",
			query: "What's due this week?",
			now:   time.Date(2026, 10, 25, 22, 0, 0, 0, time.UTC),
			want: parser.DateRange{
				StartDate:   "2026-10-19",
				EndDate:     "2026-10-25",
				DateFilters: []string{"due_after:2026-10-19", "due_before:2026-10-25"},
			},
		},
		{
			name:  "next week",
			query: "meetings next week",
			now:   now,
			want: parser.DateRange{
				StartDate:   "2026-10-26",
				EndDate:     "2026-11-01",
				DateFilters: []string{"due_after:2026-10-26", "due_before:2026-11-01"},
			},
		},
		{name: "today", query: "anything today?", now: now, want: parser.DateRange{TargetDate: "2026-10-21"}},
		{name: "tomorrow", query: "what's due tomorrow", now: now, want: parser.DateRange{TargetDate: "2026-10-22"}},
		{name: "yesterday", query: "what did I finish yesterday", now: now, want: parser.DateRange{TargetDate: "2026-10-20"}},
		{
			name:  "month range",
			query: "tasks in March",
			now:   now,
			want: parser.DateRange{
				StartDate:         "2026-03-01",
				EndDate:           "2026-03-31",
				DateFilters:       []string{"due_after:2026-03-01", "due_before:2026-03-31"},
				MatchedMonthToken: "march",
			},
		},
		{
			name:  "month abbreviation",
			query: "events during sept",
			now:   now,
			want: parser.DateRange{
				StartDate:         "2026-09-01",
				EndDate:           "2026-09-30",
				DateFilters:       []string{"due_after:2026-09-01", "due_before:2026-09-30"},
				MatchedMonthToken: "sept",
			},
		},
		{name: "ordinal", query: "what's due on 15th November", now: now, want: parser.DateRange{TargetDate: "2026-11-15"}},
		{name: "month day", query: "tasks due nov 4", now: now, want: parser.DateRange{TargetDate: "2026-11-04"}},
		{name: "weekday", query: "anything on friday", now: now, want: parser.DateRange{TargetDate: "2026-10-23"}},
		{name: "numeric", query: "due 5/12", now: now, want: parser.DateRange{TargetDate: "2026-12-05"}},
		{name: "no date", query: "show me my notes", now: now, want: parser.DateRange{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDateFromQuery(tt.query, tt.now)
			if err != nil {
				t.Fatalf("ParseDateFromQuery() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDateFromQuery(%q) = %+v, want %+v", tt.query, got, tt.want)
			}

			again, _ := parser.ParseDateFromQuery(tt.query, tt.now)
			if !reflect.DeepEqual(again, got) {
				t.Errorf("second call = %+v, want %+v", again, got)
			}
		})
	}
}

func TestParseDateFromQuery_Unparsable(t *testing.T) {
	got, err := parser.ParseDateFromQuery("what's due on 31/2", now)
	if !errors.Is(err, parser.ErrUnparsableDate) {
		t.Fatalf("error = %v, want ErrUnparsableDate", err)
	}
	if !got.IsZero() {
		t.Errorf("range = %+v, want empty", got)
	}
}

func TestHasTimeReference(t *testing.T) {
	tests := []struct {
		query string
		dr    parser.DateRange
		want  bool
	}{
		{query: "show my notes", want: false},
		{query: "what's due", want: true},
		{query: "events in October", want: true},
		{query: "meetings next week", want: true},
		{query: "tasks scheduled", want: false},
		{query: "anything on friday", dr: parser.DateRange{TargetDate: "2026-10-23"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := parser.HasTimeReference(tt.query, tt.dr); got != tt.want {
				t.Errorf("HasTimeReference(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
