package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query"
	"workspace-assistant/internal/query/delivery/telegram"
	pkgTelegram "workspace-assistant/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	mu      sync.Mutex
	answer  string
	handled bool
	userID  string
	query   string
}

func (m *mockUseCase) Answer(ctx context.Context, sc model.Scope, input query.AnswerInput) (query.AnswerOutput, error) {
	return query.AnswerOutput{}, nil
}

func (m *mockUseCase) HandleUserDataQuery(ctx context.Context, userID string, q string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userID, m.query = userID, q
	return m.answer, m.handled
}

func (m *mockUseCase) lastCall() (string, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userID, m.query
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type sentMessages struct {
	mu   sync.Mutex
	msgs []pkgTelegram.SendMessageRequest
}

func (s *sentMessages) add(m pkgTelegram.SendMessageRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, m)
}

func (s *sentMessages) wait(t *testing.T, n int) []pkgTelegram.SendMessageRequest {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		if len(s.msgs) >= n {
			out := append([]pkgTelegram.SendMessageRequest(nil), s.msgs...)
			s.mu.Unlock()
			return out
		}
		s.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d message(s)", n)
	return nil
}

type testEnv struct {
	engine *gin.Engine
	uc     *mockUseCase
	sent   *sentMessages
}

func newTestEnv(t *testing.T, cfg telegram.Config) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sent := &sentMessages{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			var payload pkgTelegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&payload)
			sent.add(payload)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	uc := &mockUseCase{}
	engine := gin.New()
	h := telegram.New(&mockLogger{}, uc, bot, cfg)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{engine: engine, uc: uc, sent: sent}
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, telegram.Config{})

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env := newTestEnv(t, telegram.Config{})

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 1})
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("expected ignored status, got %s", w.Body.String())
	}
}

func TestHandleCommands(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "/start", want: "Welcome"},
		{text: "/help", want: "Things you can ask"},
		{text: "/help@workspace_bot", want: "Things you can ask"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			env := newTestEnv(t, telegram.Config{})

			if w := sendWebhook(env.engine, tt.text); w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			msgs := env.sent.wait(t, 1)
			if !strings.Contains(msgs[0].Text, tt.want) {
				t.Errorf("message %q does not contain %q", msgs[0].Text, tt.want)
			}
			if msgs[0].ParseMode != pkgTelegram.ParseModeMarkdown {
				t.Errorf("parse mode = %q, want Markdown", msgs[0].ParseMode)
			}
			if _, q := env.uc.lastCall(); q != "" {
				t.Errorf("commands must not reach the dispatcher, got %q", q)
			}
		})
	}
}

func TestHandleQuery_Answered(t *testing.T) {
	env := newTestEnv(t, telegram.Config{})
	env.uc.answer, env.uc.handled = "Here are your tasks due this week:\n1. Ship", true

	sendWebhook(env.engine, "  what's due this week?  ")
	msgs := env.sent.wait(t, 1)

	if msgs[0].Text != "Here are your tasks due this week:\n1. Ship" {
		t.Errorf("unexpected reply %q", msgs[0].Text)
	}
	if msgs[0].ChatID != 123 {
		t.Errorf("chat id = %d, want 123", msgs[0].ChatID)
	}
	userID, q := env.uc.lastCall()
	if userID != "telegram_456" || q != "what's due this week?" {
		t.Errorf("dispatcher got (%q, %q)", userID, q)
	}
}

func TestHandleQuery_ConfiguredUser(t *testing.T) {
	env := newTestEnv(t, telegram.Config{UserID: "u-1"})
	env.uc.answer, env.uc.handled = "ok", true

	sendWebhook(env.engine, "my tasks")
	env.sent.wait(t, 1)

	if userID, _ := env.uc.lastCall(); userID != "u-1" {
		t.Errorf("user id = %q, want u-1", userID)
	}
}

func TestHandleQuery_Fallback(t *testing.T) {
	env := newTestEnv(t, telegram.Config{})

	sendWebhook(env.engine, "tell me a joke")
	msgs := env.sent.wait(t, 1)

	if !strings.Contains(msgs[0].Text, "/help") {
		t.Errorf("expected fallback hint, got %q", msgs[0].Text)
	}
}

func TestHandleQuery_LongAnswerTrimmed(t *testing.T) {
	env := newTestEnv(t, telegram.Config{})
	line := strings.Repeat("x", 99) + "\n"
	env.uc.answer, env.uc.handled = strings.Repeat(line, 100), true

	sendWebhook(env.engine, "all my tasks")
	msgs := env.sent.wait(t, 1)

	if n := len(msgs[0].Text); n > pkgTelegram.MaxMessageLength {
		t.Errorf("reply length %d exceeds limit", n)
	}
	if !strings.HasSuffix(msgs[0].Text, "…") {
		t.Errorf("expected truncation marker, got suffix %q", msgs[0].Text[len(msgs[0].Text)-10:])
	}
}
