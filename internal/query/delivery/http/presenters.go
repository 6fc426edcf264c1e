package http

import (
	"strings"

	"workspace-assistant/internal/query"
)

// --- Request DTOs ---

type askReq struct {
	Query string `json:"query" binding:"required,max=1000"`
}

func (r askReq) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return query.ErrEmptyQuery
	}
	return nil
}

func (r askReq) toInput() query.AnswerInput {
	return query.AnswerInput{Query: strings.TrimSpace(r.Query)}
}

// --- Response DTOs ---

type askResp struct {
	Answer  string `json:"answer"`
	Handled bool   `json:"handled"`
	Intent  string `json:"intent"`
}

func (h *handler) newAskResp(out query.AnswerOutput) askResp {
	return askResp{
		Answer:  out.Answer,
		Handled: out.Handled,
		Intent:  string(out.Intent),
	}
}
