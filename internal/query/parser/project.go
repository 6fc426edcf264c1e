package parser

import "strings"

// ExtractProjectInfo resolves an optional project name and item type from the
// query. Patterns are tried in a fixed order and the first acceptable match
// wins. Suggestions and commands never reference a project.
func ExtractProjectInfo(query string) ProjectInfo {
	if IsSuggestionRequest(query) || IsCommandQuery(query) {
		return ProjectInfo{}
	}

	var info ProjectInfo
	for _, p := range reg.projectPatterns {
		m := p.re.FindStringSubmatch(query)
		if m == nil {
			continue
		}

		name := CleanProjectName(m[p.nameGroup])
		if name == "" {
			continue
		}
		if _, ok := reg.questionWords[strings.ToLower(name)]; ok {
			continue
		}

		info.ProjectName = name
		if p.typeGroup > 0 && p.typeGroup < len(m) {
			info.ItemType = classifyItemType(m[p.typeGroup])
		}
		break
	}

	if _, ok := reg.genericNouns[strings.ToLower(info.ProjectName)]; ok {
		return ProjectInfo{}
	}
	return info
}

// CleanProjectName drops stop words and surrounding quotes or punctuation.
// A leftmost match can run through an earlier phrase ("on Friday for the
// Apollo"), so only the words after the last preposition are kept.
func CleanProjectName(raw string) string {
	words := strings.Fields(raw)
	for i := len(words) - 1; i >= 0; i-- {
		if isPreposition(strings.Trim(words[i], "\"'.,!?;:()")) {
			words = words[i+1:]
			break
		}
	}
	kept := words[:0]
	for _, w := range words {
		w = strings.Trim(w, "\"'.,!?;:()")
		if w == "" || IsStopWord(w) {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

func classifyItemType(word string) ItemType {
	w := strings.ToLower(word)
	switch {
	case strings.Contains(w, "task"):
		return ItemTasks
	case strings.Contains(w, "event"):
		return ItemEvents
	case strings.Contains(w, "note"):
		return ItemNotes
	case strings.Contains(w, "file"):
		return ItemFiles
	default:
		return ItemAll
	}
}
