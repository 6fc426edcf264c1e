package telegram

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/gin-gonic/gin"

	pkgLog "workspace-assistant/pkg/log"
	pkgResponse "workspace-assistant/pkg/response"
	pkgTelegram "workspace-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and answers the message in the background so
// Telegram never waits on storage.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "query.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	requestID := pkgLog.RequestID(ctx)

	go func() {
		// The request context is cancelled once the response is written.
		bgCtx := pkgLog.WithRequestID(context.Background(), requestID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "query.telegram.processMessage: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, failureMessage)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage answers a single chat message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch command(text) {
	case cmdStart:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, startMessage, pkgTelegram.ParseModeMarkdown)
	case cmdHelp:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpMessage, pkgTelegram.ParseModeMarkdown)
	}

	answer, ok := h.uc.HandleUserDataQuery(ctx, h.resolveUser(msg), text)
	if !ok {
		return h.bot.SendMessage(ctx, msg.Chat.ID, fallbackMessage)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, trimReply(answer, maxReplyUnits))
}

func (h *handler) resolveUser(msg *pkgTelegram.Message) string {
	if h.userID != "" {
		return h.userID
	}
	if msg.From != nil {
		return fmt.Sprintf("telegram_%d", msg.From.ID)
	}
	return fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)
}

// command strips arguments and a trailing "@botname" from a slash command.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd)
}

// trimReply cuts text to at most limit UTF-16 units, preferring the last
// line break, and marks the cut.
func trimReply(text string, limit int) string {
	units := 0
	cut := -1
	for i, r := range text {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		if units+n > limit {
			cut = i
			break
		}
		units += n
	}
	if cut < 0 {
		return text
	}

	head := text[:cut]
	if nl := strings.LastIndex(head, "\n"); nl > 0 {
		head = head[:nl]
	}
	return head + truncatedMark
}
