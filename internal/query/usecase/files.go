package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query/repository"
)

var fileTypeNames = map[string]string{
	model.FileTypePDF:      "PDF files",
	model.FileTypeImage:    "images",
	model.FileTypeVideo:    "videos",
	model.FileTypeDocument: "documents",
}

func (uc *implUseCase) handleFiles(ctx context.Context, r request) (string, bool) {
	opt := repository.ListFilesOptions{
		UserID:      r.userID,
		FileType:    extractFileType(r.lower),
		NameSearch:  extractFileName(r.text),
		ProjectName: extractProjectPhrase(r.text),
	}
	if opt.ProjectName == "" && r.project.Found() {
		opt.ProjectName = r.project.ProjectName
	}

	files, err := uc.repo.ListFiles(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.handleFiles: user=%s: %v", r.userID, err)
		return apologyFiles, true
	}

	desc := describeFileFilter(opt)
	if len(files) == 0 {
		return fmt.Sprintf("You don't have any %s.", desc), true
	}

	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, uc.formatFile(f, true))
	}
	return render(fmt.Sprintf("Here are your %s:", desc), numbered(uc.capLines(lines))), true
}

func describeFileFilter(opt repository.ListFilesOptions) string {
	desc := "files"
	if name, ok := fileTypeNames[opt.FileType]; ok {
		desc = name
	}
	if opt.NameSearch != "" {
		desc += fmt.Sprintf(" named %q", opt.NameSearch)
	}
	if opt.ProjectName != "" {
		desc += fmt.Sprintf(" in the %q project", opt.ProjectName)
	}
	return desc
}

func fileIcon(fileType string) string {
	switch fileType {
	case model.FileTypePDF:
		return "📄"
	case model.FileTypeImage:
		return "🖼️"
	case model.FileTypeVideo:
		return "🎬"
	default:
		return "📝"
	}
}

// formatFile renders one file line. withLinks adds the linked project, task
// and event names.
func (uc *implUseCase) formatFile(f model.File, withLinks bool) string {
	line := fmt.Sprintf("%s **%s** (%s, uploaded %s)", fileIcon(f.FileType), f.Name,
		humanize.Bytes(uint64(max(f.Size, 0))), uc.dateMath.FormatDate(f.UploadedAt))
	if !withLinks {
		return line
	}

	var links []string
	if f.ProjectName != "" {
		links = append(links, "Project: "+f.ProjectName)
	}
	if f.TaskTitle != "" {
		links = append(links, "Task: "+f.TaskTitle)
	}
	if f.EventTitle != "" {
		links = append(links, "Event: "+f.EventTitle)
	}
	if len(links) > 0 {
		line += " · " + strings.Join(links, " · ")
	}
	return line
}
