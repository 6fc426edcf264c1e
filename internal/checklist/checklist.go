package checklist

import (
	"regexp"
	"strings"
)

var (
	// captures indent, checkbox state and text: "  - [x] Task name"
	checkboxRe = regexp.MustCompile(`(?m)^([ \t]*)[-*] \[([ xX])\] (.+)$`)
	fencedRe   = regexp.MustCompile("(?s)```.*?```")
	inlineRe   = regexp.MustCompile("`[^`]+`")
)

// Item is a single markdown checkbox.
type Item struct {
	Checked bool
	Text    string
}

// Stats summarizes the checkboxes of one document.
type Stats struct {
	Total     int
	Completed int
	// NextOpen is the text of the first unchecked box, if any.
	NextOpen string
}

// Percent is the rounded-down completion percentage; 0 when there are no items.
func (s Stats) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Completed * 100 / s.Total
}

// sanitize drops code blocks so checkbox examples inside them are not counted.
func sanitize(content string) string {
	return inlineRe.ReplaceAllString(fencedRe.ReplaceAllString(content, ""), "")
}

// Parse extracts every checkbox from markdown content in document order.
func Parse(content string) []Item {
	matches := checkboxRe.FindAllStringSubmatch(sanitize(content), -1)
	items := make([]Item, 0, len(matches))
	for _, m := range matches {
		items = append(items, Item{
			Checked: strings.EqualFold(m[2], "x"),
			Text:    strings.TrimSpace(m[3]),
		})
	}
	return items
}

// Summarize counts checked boxes in content and finds the first open one.
func Summarize(content string) Stats {
	var s Stats
	for _, it := range Parse(content) {
		s.Total++
		if it.Checked {
			s.Completed++
		} else if s.NextOpen == "" {
			s.NextOpen = it.Text
		}
	}
	return s
}
