package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"workspace-assistant/internal/model"
	"workspace-assistant/pkg/response"
)

type scopeCtxKey struct{}

// SetScope stores the caller's scope on ctx.
func SetScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored by Auth.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc, ok
}

// Auth resolves the caller from the X-User-ID header set by the upstream
// gateway. Requests without it are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: missing %s header", HeaderUserID)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := model.Scope{
			UserID:   userID,
			Username: strings.TrimSpace(c.GetHeader(HeaderUsername)),
		}
		c.Request = c.Request.WithContext(SetScope(c.Request.Context(), sc))
		c.Next()
	}
}
