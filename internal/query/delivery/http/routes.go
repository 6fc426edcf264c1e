package http

import (
	"github.com/gin-gonic/gin"

	"workspace-assistant/internal/middleware"
)

// RegisterRoutes maps the query endpoints onto rg. Every route requires a
// caller scope and is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("", mw.Auth(), mw.RateLimit(), h.Ask)
}
