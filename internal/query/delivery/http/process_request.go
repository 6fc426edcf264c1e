package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workspace-assistant/internal/middleware"
	"workspace-assistant/internal/model"
	pkgErrors "workspace-assistant/pkg/errors"
)

// processAskReq binds the request body and resolves the caller's scope.
func (h *handler) processAskReq(c *gin.Context) (askReq, model.Scope, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.validate(); err != nil {
		if mapped := h.mapError(err); mapped != nil {
			return req, model.Scope{}, mapped
		}
		return req, model.Scope{}, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sc, ok := middleware.GetScopeFromContext(c.Request.Context())
	if !ok {
		return req, model.Scope{}, errScopeNotFound
	}
	return req, sc, nil
}
