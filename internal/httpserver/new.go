package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"workspace-assistant/internal/middleware"
	"workspace-assistant/internal/query"
	tgDelivery "workspace-assistant/internal/query/delivery/telegram"
	"workspace-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Storage, pinged by /ready
	db *sql.DB

	// Query domain
	queryUC         query.UseCase
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config

	DB *sql.DB

	// Query domain
	QueryUseCase query.UseCase
	// TelegramHandler is optional; nil skips the webhook route.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		db:              cfg.DB,
		queryUC:         cfg.QueryUseCase,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, cfg.Middleware)
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.queryUC == nil {
		return errors.New("query use case is required")
	}
	return nil
}
