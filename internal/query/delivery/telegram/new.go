package telegram

import (
	"github.com/gin-gonic/gin"

	"workspace-assistant/internal/query"
	pkgLog "workspace-assistant/pkg/log"
	pkgTelegram "workspace-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config controls how chat users map onto workspace users.
type Config struct {
	// UserID, when set, answers every chat against this workspace user.
	// Otherwise each sender gets "telegram_<user id>", and messages without a
	// sender get "telegram_chat_<chat id>".
	UserID string
}

type handler struct {
	l      pkgLog.Logger
	uc     query.UseCase
	bot    *pkgTelegram.Bot
	userID string
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc query.UseCase, bot *pkgTelegram.Bot, cfg Config) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		userID: cfg.UserID,
	}
}
