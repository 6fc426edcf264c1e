package usecase

import (
	"context"
	"errors"
	"fmt"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query/parser"
	"workspace-assistant/internal/query/repository"
)

// itemSection is one category of a project listing.
type itemSection struct {
	itemType parser.ItemType
	title    string
	lines    []string
}

func (uc *implUseCase) handleProjectItems(ctx context.Context, r request) (string, bool) {
	name := r.project.ProjectName
	items, err := uc.repo.GetProjectItems(ctx, repository.GetProjectOptions{UserID: r.userID, ProjectRef: name})
	if errors.Is(err, repository.ErrProjectNotFound) {
		return fmt.Sprintf("I couldn't find any items for the %q project.", name), true
	}
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.handleProjectItems: user=%s project=%q: %v", r.userID, name, err)
		return fmt.Sprintf(apologyItems, name), true
	}
	if items.IsEmpty() {
		return fmt.Sprintf("I couldn't find any items for the %q project.", items.Project.Name), true
	}

	sections := uc.itemSections(items, r)
	if r.project.ItemType != parser.ItemAll {
		for _, s := range sections {
			if s.itemType != r.project.ItemType {
				continue
			}
			if len(s.lines) == 0 {
				return fmt.Sprintf("The %q project doesn't have any %s.", items.Project.Name, s.itemType), true
			}
			header := fmt.Sprintf("Here are the %s in the %q project:", s.itemType, items.Project.Name)
			return render(header, bulleted(uc.capLines(s.lines))), true
		}
	}

	var nonEmpty []itemSection
	for _, s := range sections {
		if len(s.lines) > 0 {
			nonEmpty = append(nonEmpty, s)
		}
	}

	out := fmt.Sprintf("Here's everything in the %q project:", items.Project.Name)
	for _, s := range nonEmpty {
		out += "\n"
		if len(nonEmpty) > 1 {
			out += fmt.Sprintf("\n**%s (%d)**\n", s.title, len(s.lines))
		}
		out += joinLines(bulleted(uc.capLines(s.lines)))
	}
	return out, true
}

func (uc *implUseCase) itemSections(items model.ProjectItems, r request) []itemSection {
	tasks := itemSection{itemType: parser.ItemTasks, title: "Tasks"}
	for _, t := range items.Tasks {
		tasks.lines = append(tasks.lines, uc.formatTask(t, r.now))
	}
	events := itemSection{itemType: parser.ItemEvents, title: "Events"}
	for _, e := range items.Events {
		events.lines = append(events.lines, uc.formatEvent(e))
	}
	notes := itemSection{itemType: parser.ItemNotes, title: "Notes"}
	for _, n := range items.Notes {
		notes.lines = append(notes.lines, formatNoteTitle(n))
	}
	files := itemSection{itemType: parser.ItemFiles, title: "Files"}
	for _, f := range items.Files {
		files.lines = append(files.lines, uc.formatFile(f, false))
	}
	return []itemSection{tasks, events, notes, files}
}
