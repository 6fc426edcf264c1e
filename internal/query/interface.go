package query

import (
	"context"

	"workspace-assistant/internal/model"
)

// UseCase answers natural-language questions about a user's workspace data.
type UseCase interface {
	// Answer classifies the question and renders a response from the user's data.
	// It only fails on invalid scope; unmatched questions come back with Handled=false.
	Answer(ctx context.Context, sc model.Scope, input AnswerInput) (AnswerOutput, error)

	// HandleUserDataQuery runs the dispatcher and returns the answer text, or
	// ok=false when no intent matched.
	HandleUserDataQuery(ctx context.Context, userID string, query string) (answer string, ok bool)
}
