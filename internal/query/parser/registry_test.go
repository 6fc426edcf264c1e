package parser_test

import (
	"testing"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query/parser"
)

func TestHas(t *testing.T) {
	tests := []struct {
		query    string
		category parser.Category
		want     bool
	}{
		{query: "Any meetings tomorrow?", category: parser.CategoryMeeting, want: true},
		{query: "recall the budget", category: parser.CategoryMeeting, want: false},
		{query: "what's on my calendar", category: parser.CategoryCalendar, want: true},
		{query: "show my to-do list", category: parser.CategoryTask, want: true},
		{query: "Show PDFs", category: parser.CategoryFile, want: true},
		{query: "how far along is Apollo", category: parser.CategoryProgress, want: true},
		{query: "project roadmap", category: parser.CategoryTimeline, want: true},
		{query: "my notes", category: parser.CategoryNote, want: true},
		{query: "footnotes", category: parser.CategoryNote, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := parser.Has(tt.query, tt.category); got != tt.want {
				t.Errorf("Has(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestInferTaskStatus(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "show my completed tasks", want: model.TaskStatusDone},
		{query: "what am I working on", want: model.TaskStatusInProgress},
		{query: "pending tasks", want: model.TaskStatusTodo},
		{query: "todo tasks that are done", want: model.TaskStatusTodo},
		{query: "show tasks", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := parser.InferTaskStatus(tt.query); got != tt.want {
				t.Errorf("InferTaskStatus(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestInferProjectStatus(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "list my current projects", want: model.ProjectStatusActive},
		{query: "finished projects", want: model.ProjectStatusCompleted},
		{query: "which projects are on hold", want: model.ProjectStatusOnHold},
		{query: "show my projects", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := parser.InferProjectStatus(tt.query); got != tt.want {
				t.Errorf("InferProjectStatus(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestMonthLookup(t *testing.T) {
	if idx, ok := parser.MonthIndex("Sept"); !ok || idx != 8 {
		t.Errorf("MonthIndex(Sept) = %d, %v", idx, ok)
	}
	if _, ok := parser.MonthIndex("smarch"); ok {
		t.Error("MonthIndex(smarch) should fail")
	}
	if got := parser.MonthDisplayName("dec"); got != "December" {
		t.Errorf("MonthDisplayName(dec) = %q", got)
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	kw := parser.Keywords(parser.CategoryNote)
	kw[0] = "mutated"
	if parser.Keywords(parser.CategoryNote)[0] == "mutated" {
		t.Error("Keywords must not expose registry storage")
	}
}
