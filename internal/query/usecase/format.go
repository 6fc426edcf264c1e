package usecase

import (
	"fmt"
	"strings"
	"time"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query/parser"
)

// capLines keeps at most maxItems lines and notes how many were dropped.
func (uc *implUseCase) capLines(lines []string) []string {
	if len(lines) <= uc.maxItems {
		return lines
	}
	rest := len(lines) - uc.maxItems
	return append(lines[:uc.maxItems:uc.maxItems], fmt.Sprintf("…and %d more", rest))
}

func statusMarker(status string) string {
	switch status {
	case model.TaskStatusDone:
		return markerDone
	case model.TaskStatusInProgress:
		return markerInProgress
	default:
		return markerTodo
	}
}

func priorityMarker(priority string) string {
	switch strings.ToLower(priority) {
	case "high":
		return markerHigh
	case "medium":
		return markerMedium
	case "low":
		return markerLow
	default:
		return ""
	}
}

// statusLabel is the adjective used in headers, e.g. "completed tasks".
func statusLabel(status string) string {
	switch status {
	case model.TaskStatusTodo:
		return "to-do "
	case model.TaskStatusInProgress:
		return "in-progress "
	case model.TaskStatusDone:
		return "completed "
	default:
		return ""
	}
}

func (uc *implUseCase) isOverdue(t model.Task, now time.Time) bool {
	return t.HasDueDate() && !t.IsDone() && t.DueDate < uc.dateMath.ISO(now)
}

// formatTask renders one task line without the list prefix.
func (uc *implUseCase) formatTask(t model.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString(statusMarker(t.Status))
	b.WriteString(" **")
	b.WriteString(t.Title)
	b.WriteString("**")
	if m := priorityMarker(t.Priority); m != "" {
		b.WriteString(" ")
		b.WriteString(m)
	}
	if t.HasDueDate() {
		b.WriteString(" (due ")
		b.WriteString(uc.formatISODate(t.DueDate))
		if uc.isOverdue(t, now) {
			b.WriteString(" " + markerOverdue + " overdue")
		}
		b.WriteString(")")
	}
	if t.ProjectName != "" {
		fmt.Fprintf(&b, " [%s]", t.ProjectName)
	}
	for _, l := range t.Labels {
		b.WriteString(" #")
		b.WriteString(l)
	}
	return b.String()
}

// formatEvent renders one event line without the list prefix. Timed events
// within one local day show a time span; longer ones show a date span.
func (uc *implUseCase) formatEvent(e model.Event) string {
	return fmt.Sprintf("**%s**: %s", e.Title, uc.formatEventWhen(e))
}

func (uc *implUseCase) formatEventWhen(e model.Event) string {
	dm := uc.dateMath
	start, end := e.StartTime, e.EndTime

	if e.AllDay {
		// All-day ends are exclusive midnights.
		last := end.Add(-time.Nanosecond)
		if end.IsZero() || dm.ISO(last) <= dm.ISO(start) {
			return dm.FormatDate(start) + " (all day)"
		}
		return dm.FormatDate(start) + " - " + dm.FormatDate(last)
	}

	if end.IsZero() || !end.After(start) {
		return dm.FormatDate(start) + ", " + dm.FormatTime(start)
	}
	if dm.ISO(start) == dm.ISO(end) {
		return fmt.Sprintf("%s, %s - %s", dm.FormatDate(start), dm.FormatTime(start), dm.FormatTime(end))
	}
	return fmt.Sprintf("%s %s - %s %s", dm.FormatDate(start), dm.FormatTime(start), dm.FormatDate(end), dm.FormatTime(end))
}

// formatISODate renders a stored YYYY-MM-DD for display, falling back to the
// raw value.
func (uc *implUseCase) formatISODate(iso string) string {
	t, err := uc.dateMath.ParseISO(iso)
	if err != nil {
		return iso
	}
	return uc.dateMath.FormatDate(t)
}

// describePeriod renders the date reference of a query for headers:
// "today", "this week", "in March", "on Fri, Oct 23, 2026". Empty when the
// query carried no date.
func (uc *implUseCase) describePeriod(r request) string {
	d := r.dates
	switch {
	case d.IsMonthRange():
		return "in " + parser.MonthDisplayName(d.MatchedMonthToken)
	case d.HasRange():
		if r.mentions("next week") && !r.mentions("this week") {
			return "next week"
		}
		return "this week"
	case d.TargetDate != "":
		switch d.TargetDate {
		case uc.dateMath.ISO(r.now):
			return "today"
		case uc.dateMath.ISO(r.now.AddDate(0, 0, 1)):
			return "tomorrow"
		case uc.dateMath.ISO(r.now.AddDate(0, 0, -1)):
			return "yesterday"
		}
		return "on " + uc.formatISODate(d.TargetDate)
	}
	return ""
}

func numbered(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if strings.HasPrefix(l, "…") {
			out[i] = l
			continue
		}
		out[i] = fmt.Sprintf("%d. %s", i+1, l)
	}
	return out
}

func bulleted(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if strings.HasPrefix(l, "…") {
			out[i] = l
			continue
		}
		out[i] = "- " + l
	}
	return out
}

func render(header string, lines []string) string {
	return header + "\n" + joinLines(lines)
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return strings.TrimSpace(string(r[:n])) + "..."
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
