package telegram

import (
	"strings"
	"testing"

	pkgTelegram "workspace-assistant/pkg/telegram"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/start", want: "/start"},
		{in: "/HELP", want: "/help"},
		{in: "/help@my_bot extra", want: "/help"},
		{in: "what's due today?", want: ""},
	}
	for _, tt := range tests {
		if got := command(tt.in); got != tt.want {
			t.Errorf("command(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrimReply(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		if got := trimReply("hello", 10); got != "hello" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("cuts at last line break", func(t *testing.T) {
		got := trimReply("line one\nline two\nline three", 20)
		if got != "line one\nline two"+truncatedMark {
			t.Errorf("got %q", got)
		}
	})

	t.Run("hard cut without line break", func(t *testing.T) {
		got := trimReply(strings.Repeat("a", 30), 10)
		if got != strings.Repeat("a", 10)+truncatedMark {
			t.Errorf("got %q", got)
		}
	})

	t.Run("emoji count as two units", func(t *testing.T) {
		// 📌 is outside the BMP and takes a surrogate pair.
		got := trimReply("📌📌📌", 4)
		if got != "📌📌"+truncatedMark {
			t.Errorf("got %q", got)
		}
	})
}

func TestResolveUser(t *testing.T) {
	chat := &pkgTelegram.Chat{ID: 123}
	tests := []struct {
		name   string
		userID string
		msg    *pkgTelegram.Message
		want   string
	}{
		{name: "configured user wins", userID: "u-1", msg: &pkgTelegram.Message{From: &pkgTelegram.User{ID: 456}, Chat: chat}, want: "u-1"},
		{name: "sender id", msg: &pkgTelegram.Message{From: &pkgTelegram.User{ID: 456}, Chat: chat}, want: "telegram_456"},
		{name: "no sender falls back to chat", msg: &pkgTelegram.Message{Chat: chat}, want: "telegram_chat_123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &handler{userID: tt.userID}
			if got := h.resolveUser(tt.msg); got != tt.want {
				t.Errorf("resolveUser() = %q, want %q", got, tt.want)
			}
		})
	}
}
