package http

import (
	"errors"
	"net/http"

	"workspace-assistant/internal/query"
	pkgErrors "workspace-assistant/pkg/errors"
)

var errScopeNotFound = pkgErrors.NewHTTPError(http.StatusUnauthorized, "missing user scope")

// mapError translates known use-case errors into HTTP errors; nil means the
// error is internal.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, query.ErrEmptyQuery):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, query.ErrEmptyQuery.Error())
	case errors.Is(err, query.ErrMissingUser):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, query.ErrMissingUser.Error())
	default:
		return nil
	}
}
