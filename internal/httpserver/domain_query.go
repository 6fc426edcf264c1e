package httpserver

import (
	"context"

	queryHTTP "workspace-assistant/internal/query/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupQueryDomain registers /api/v1/query.
//
// Pattern to follow when adding a new domain:
//  1. Build the use case in cmd and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, srv.mw)
func (srv HTTPServer) setupQueryDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := queryHTTP.New(srv.l, srv.queryUC)
	queryHTTP.RegisterRoutes(api.Group("/query"), h, srv.mw)

	srv.l.Infof(ctx, "Query domain registered")
	return nil
}
