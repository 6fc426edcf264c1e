package usecase

import (
	"context"
	"fmt"
	"strings"

	"workspace-assistant/internal/checklist"
	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query/repository"
)

func (uc *implUseCase) handleNotes(ctx context.Context, r request) (string, bool) {
	opt := repository.ListNotesOptions{
		UserID:        r.userID,
		ContentSearch: extractNoteTopic(r.text),
		ProjectName:   extractProjectPhrase(r.text),
		PinnedOnly:    r.mentions("pinned") || r.mentions("important"),
	}
	if opt.ProjectName == "" && r.project.Found() {
		opt.ProjectName = r.project.ProjectName
	}

	notes, err := uc.repo.ListNotes(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.handleNotes: user=%s: %v", r.userID, err)
		return apologyNotes, true
	}

	desc := describeNoteFilter(opt)
	if len(notes) == 0 {
		return fmt.Sprintf("You don't have any %s.", desc), true
	}

	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		line := formatNoteTitle(n)
		if content := truncate(n.Content, noteTruncateChars); content != "" {
			line += "\n   " + strings.ReplaceAll(content, "\n", " ")
		}
		lines = append(lines, line)
	}
	return render(fmt.Sprintf("Here are your %s:", desc), numbered(uc.capLines(lines))), true
}

func describeNoteFilter(opt repository.ListNotesOptions) string {
	desc := "notes"
	if opt.PinnedOnly {
		desc = "pinned notes"
	}
	if opt.ContentSearch != "" {
		desc += fmt.Sprintf(" about %q", opt.ContentSearch)
	}
	if opt.ProjectName != "" {
		desc += fmt.Sprintf(" in the %q project", opt.ProjectName)
	}
	return desc
}

func formatNoteTitle(n model.Note) string {
	title := n.Title
	if title == "" {
		title = truncate(n.Content, 40)
	}
	line := "**" + title + "**"
	if n.Pinned {
		line = markerPinned + " " + line
	}
	if n.ProjectName != "" {
		line += " [" + n.ProjectName + "]"
	}
	if cl := checklist.Summarize(n.Content); cl.Total > 0 {
		progress := fmt.Sprintf("%d/%d done, %d%%", cl.Completed, cl.Total, cl.Percent())
		if cl.NextOpen != "" {
			progress += ", next: " + cl.NextOpen
		}
		line += " (" + progress + ")"
	}
	return line
}
