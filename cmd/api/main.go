package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"workspace-assistant/config"
	_ "workspace-assistant/docs" // Swagger docs
	"workspace-assistant/internal/httpserver"
	"workspace-assistant/internal/middleware"
	tgDelivery "workspace-assistant/internal/query/delivery/telegram"
	"workspace-assistant/internal/query/repository/sqlite"
	"workspace-assistant/internal/query/usecase"
	"workspace-assistant/internal/seed"
	"workspace-assistant/pkg/log"
	"workspace-assistant/pkg/telegram"
)

// @title       Workspace Assistant API
// @description Answers natural-language questions about a user's tasks, events, projects, notes and files.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Workspace Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Assistant.Timezone)

	// 3. Storage
	db, err := sqlite.Open(cfg.Storage.SQLitePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to migrate database: %v", err)
	}
	logger.Infof(ctx, "SQLite ready at %s", cfg.Storage.SQLitePath)

	loc := cfg.Assistant.Location()
	store := sqlite.New(db, logger, sqlite.Options{Location: loc})

	// 4. Optional fixture
	if cfg.Storage.SeedFile != "" {
		fixture, err := seed.LoadFile(cfg.Storage.SeedFile)
		if err != nil {
			logger.Fatalf(ctx, "Failed to load seed file: %v", err)
		}
		wrote, sum, err := seed.New(logger, store, seed.Options{Location: loc}).SeedIfEmpty(ctx, fixture)
		if err != nil {
			logger.Fatalf(ctx, "Failed to seed workspace: %v", err)
		}
		if wrote {
			logger.Infof(ctx, "Seeded workspace for %s: %+v", fixture.UserID, sum)
		}
	}

	// 5. Query domain
	queryUC := usecase.New(logger, store, usecase.Config{
		Location:     loc,
		TimelineDays: cfg.Assistant.TimelineDays,
		MaxListItems: cfg.Assistant.MaxListItems,
	})

	// 6. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.Enabled() {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, queryUC, bot, tgDelivery.Config{UserID: cfg.Telegram.UserID})
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is not set")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RateLimitPerMin:   cfg.RateLimit.PerMin,
			RateLimitDisabled: !cfg.RateLimit.Enabled,
		},
		DB:              db,
		QueryUseCase:    queryUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

// registerWebhook points Telegram at this service, auto-detecting an ngrok
// tunnel when no webhook URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI, defaultNgrokAttempts)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook not registered: no webhook URL")
		return
	}
	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
