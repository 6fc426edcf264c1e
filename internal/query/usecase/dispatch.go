package usecase

import (
	"context"
	"strings"
	"time"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query"
	"workspace-assistant/internal/query/parser"
)

// request is one query with everything extracted from it up front.
// Branch predicates read it and never call back into the data layer.
type request struct {
	userID  string
	text    string
	lower   string
	now     time.Time
	project parser.ProjectInfo
	dates   parser.DateRange
	timeRef bool
}

func (r request) has(c parser.Category) bool {
	return parser.Has(r.text, c)
}

func (r request) mentions(phrase string) bool {
	return strings.Contains(r.lower, phrase)
}

// branch is one intent. handle returns ok=false to let the next branch try.
type branch struct {
	intent query.Intent
	match  func(request) bool
	handle func(context.Context, request) (string, bool)
}

// buildBranches lists intents in priority order. The first branch whose
// predicate holds and whose handler produces text wins.
func (uc *implUseCase) buildBranches() []branch {
	return []branch{
		{intent: query.IntentTimeReferenced, match: matchTimeReferenced, handle: uc.handleTimeReferenced},
		{intent: query.IntentProjectItems, match: matchProjectItems, handle: uc.handleProjectItems},
		{intent: query.IntentProjectList, match: matchProjectList, handle: uc.handleProjectList},
		{intent: query.IntentCalendar, match: matchCalendar, handle: uc.handleCalendar},
		{intent: query.IntentNotes, match: matchNotes, handle: uc.handleNotes},
		{intent: query.IntentProjectProgress, match: matchProjectProgress, handle: uc.handleProjectProgress},
		{intent: query.IntentProjectTimeline, match: matchProjectTimeline, handle: uc.handleProjectTimeline},
		{intent: query.IntentFiles, match: matchFiles, handle: uc.handleFiles},
		{intent: query.IntentEvents, match: matchEvents, handle: uc.handleEvents},
		{intent: query.IntentTasks, match: matchTasks, handle: uc.handleTasks},
	}
}

// Answer validates the caller and runs the dispatcher.
func (uc *implUseCase) Answer(ctx context.Context, sc model.Scope, input query.AnswerInput) (query.AnswerOutput, error) {
	if strings.TrimSpace(sc.UserID) == "" {
		return query.AnswerOutput{}, query.ErrMissingUser
	}

	uc.l.Infof(ctx, "Answer: user=%s query=%q", sc.UserID, input.Query)

	answer, intent, ok := uc.dispatch(ctx, sc.UserID, input.Query)
	if !ok {
		return query.AnswerOutput{Intent: query.IntentNone}, nil
	}
	return query.AnswerOutput{Answer: answer, Handled: true, Intent: intent}, nil
}

// HandleUserDataQuery returns the rendered answer, or ok=false when no intent matched.
func (uc *implUseCase) HandleUserDataQuery(ctx context.Context, userID string, q string) (string, bool) {
	answer, _, ok := uc.dispatch(ctx, userID, q)
	return answer, ok
}

func (uc *implUseCase) dispatch(ctx context.Context, userID, q string) (string, query.Intent, bool) {
	if strings.TrimSpace(q) == "" {
		return "", query.IntentNone, false
	}

	req := uc.newRequest(ctx, userID, q)
	for _, b := range uc.branches {
		if !b.match(req) {
			continue
		}
		if answer, ok := b.handle(ctx, req); ok {
			uc.l.Debugf(ctx, "dispatch: user=%s intent=%s", userID, b.intent)
			return answer, b.intent, true
		}
	}

	uc.l.Debugf(ctx, "dispatch: user=%s no intent matched", userID)
	return "", query.IntentNone, false
}

func (uc *implUseCase) newRequest(ctx context.Context, userID, q string) request {
	now := uc.now().In(uc.dateMath.Location())

	dates, err := parser.ParseDateFromQuery(q, now)
	if err != nil {
		uc.l.Warnf(ctx, "dispatch: date extraction: %v", err)
	}

	return request{
		userID:  userID,
		text:    q,
		lower:   strings.ToLower(q),
		now:     now,
		project: parser.ExtractProjectInfo(q),
		dates:   dates,
		timeRef: parser.HasTimeReference(q, dates),
	}
}

func matchTimeReferenced(r request) bool {
	return r.timeRef && (isTaskQuery(r) || isEventQuery(r))
}

// matchProjectItems defers all-type project queries that ask about progress
// or a timeline; an explicit item type always stays here.
func matchProjectItems(r request) bool {
	if !r.project.Found() {
		return false
	}
	if r.project.ItemType != parser.ItemAll {
		return true
	}
	return !r.has(parser.CategoryProgress) && !r.has(parser.CategoryTimeline)
}

func matchProjectList(r request) bool {
	return r.has(parser.CategoryProject) && !r.project.Found()
}

func matchCalendar(r request) bool {
	return r.has(parser.CategoryCalendar)
}

func matchNotes(r request) bool {
	return r.has(parser.CategoryNote)
}

func matchProjectProgress(r request) bool {
	return r.project.Found() && r.has(parser.CategoryProgress)
}

func matchProjectTimeline(r request) bool {
	return r.project.Found() && r.has(parser.CategoryTimeline)
}

func matchFiles(r request) bool {
	return r.has(parser.CategoryFile)
}

func matchEvents(r request) bool {
	return r.has(parser.CategoryMeeting)
}

func matchTasks(r request) bool {
	return isTaskQuery(r)
}

func isTaskQuery(r request) bool {
	return r.has(parser.CategoryTask) || r.has(parser.CategoryTaskQuery)
}

func isEventQuery(r request) bool {
	return r.has(parser.CategoryCalendar) || r.has(parser.CategoryMeeting)
}
