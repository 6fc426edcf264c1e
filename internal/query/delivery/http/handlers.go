package http

import (
	"github.com/gin-gonic/gin"

	"workspace-assistant/pkg/response"
)

// Ask godoc
// @Summary     Ask a question about your data
// @Description Classifies a natural-language question about tasks, events, projects, notes or files and answers it from the caller's data. When no intent matches, handled is false and answer is empty.
// @Tags        Query
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user id"
// @Param       body      body   askReq true "Question"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/query [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAskReq(c)
	if err != nil {
		h.l.Warnf(ctx, "query.http.Ask.processAskReq: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Answer(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "query.http.Ask.uc.Answer: %v", err)
		if mapped := h.mapError(err); mapped != nil {
			response.Error(c, mapped, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newAskResp(output))
}
