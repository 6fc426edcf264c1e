package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query/parser"
)

var (
	aboutRe         = regexp.MustCompile(`(?i)\b(?:about|regarding|on the topic of)\s+["']?(.+?)["']?\s*[?.!]*$`)
	projectPhraseRe = regexp.MustCompile(`(?i)\b(?:in|for|from|under)\s+(?:the\s+|my\s+)?["']?([\p{L}\p{N}][\p{L}\p{N} .&'_-]*?)["']?\s+project\b`)
	namedRe         = regexp.MustCompile(`(?i)\b(?:named|called|titled)\s+["']?(.+?)["']?\s*[?.!]*$`)
	searchRe        = regexp.MustCompile(`(?i)\b(?:about|mentioning|containing|related to|regarding)\s+["']?(.+?)["']?\s*[?.!]*$`)
	priorityRe      = regexp.MustCompile(`(?i)\b(high|medium|low)[\s-]+priority\b|\bpriority\s+(high|medium|low)\b|\b(urgent|important)\b`)
	timelineDaysRe  = regexp.MustCompile(`(?i)\b(?:next|within|in|over)\s+(?:the\s+next\s+)?(\d{1,3})\s+days?\b`)
	meetingTypeRe   = regexp.MustCompile(`(?i)\b(meeting|call|standup|stand-up|review|planning)s?\b`)
)

// firstGroup returns the first non-empty capture group of re in s, trimmed.
func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	for _, g := range m[min(1, len(m)):] {
		if g = strings.TrimSpace(g); g != "" {
			return g
		}
	}
	return ""
}

func extractNoteTopic(q string) string {
	return firstGroup(aboutRe, q)
}

func extractProjectPhrase(q string) string {
	return parser.CleanProjectName(firstGroup(projectPhraseRe, q))
}

func extractFileName(q string) string {
	return firstGroup(namedRe, q)
}

func extractSearchTerm(q string) string {
	return firstGroup(searchRe, q)
}

// extractPriority maps priority phrasing to a stored level; urgent and
// important mean high.
func extractPriority(q string) string {
	p := strings.ToLower(firstGroup(priorityRe, q))
	if p == "urgent" || p == "important" {
		return "high"
	}
	return p
}

// extractTimelineDays returns the "next N days" window, or 0.
func extractTimelineDays(q string) int {
	n, err := strconv.Atoi(firstGroup(timelineDaysRe, q))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// extractMeetingType returns the meeting word used as a title filter.
func extractMeetingType(q string) string {
	t := strings.ToLower(firstGroup(meetingTypeRe, q))
	if t == "stand-up" {
		return "standup"
	}
	return t
}

// extractFileType classifies by keyword containment, checked pdf, image,
// video, then document.
func extractFileType(lower string) string {
	switch {
	case strings.Contains(lower, "pdf"):
		return model.FileTypePDF
	case containsAny(lower, "image", "photo", "picture", "png", "jpg", "jpeg", "screenshot"):
		return model.FileTypeImage
	case containsAny(lower, "video", "movie", "recording", "mp4"):
		return model.FileTypeVideo
	case containsAny(lower, "document", "doc", "spreadsheet", "presentation"):
		return model.FileTypeDocument
	default:
		return ""
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
