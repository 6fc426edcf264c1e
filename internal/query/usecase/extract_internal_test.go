package usecase

import (
	"testing"

	"workspace-assistant/internal/model"
)

func TestExtractors(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{name: "note topic", fn: extractNoteTopic, in: "notes about the Q3 budget?", want: "the Q3 budget"},
		{name: "project phrase", fn: extractProjectPhrase, in: "urgent tasks for the Website Redesign project", want: "Website Redesign"},
		{name: "project phrase after earlier preposition", fn: extractProjectPhrase, in: "tasks in my list for the Apollo project", want: "Apollo"},
		{name: "file name", fn: extractFileName, in: `find the file called "draft v2".`, want: "draft v2"},
		{name: "search term", fn: extractSearchTerm, in: "tasks mentioning invoices", want: "invoices"},
		{name: "priority", fn: extractPriority, in: "priority LOW tasks", want: "low"},
		{name: "urgent", fn: extractPriority, in: "urgent tasks", want: "high"},
		{name: "meeting type", fn: extractMeetingType, in: "any stand-ups?", want: "standup"},
		{name: "file type", fn: extractFileType, in: "show my photos", want: model.FileTypeImage},
		{name: "document", fn: extractFileType, in: "my docs", want: model.FileTypeDocument},
		{name: "no match", fn: extractNoteTopic, in: "my notes", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTimelineDays(t *testing.T) {
	tests := map[string]int{
		"timeline for the next 14 days": 14,
		"roadmap within 3 days":         3,
		"timeline":                      0,
	}
	for in, want := range tests {
		if got := extractTimelineDays(in); got != want {
			t.Errorf("extractTimelineDays(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestFilterByProject(t *testing.T) {
	tasks := []model.Task{
		{Title: "a", ProjectName: "Website Redesign"},
		{Title: "b", ProjectName: "Apollo"},
		{Title: "c"},
	}
	got := filterByProject(tasks, "website")
	if len(got) != 1 || got[0].Title != "a" {
		t.Errorf("filterByProject() = %+v", got)
	}
	if len(tasks) != 3 || tasks[1].Title != "b" {
		t.Error("filterByProject must not modify its input")
	}
}
