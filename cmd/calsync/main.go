package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"workspace-assistant/config"
	"workspace-assistant/internal/calendarsync"
	"workspace-assistant/internal/query/repository/sqlite"
	"workspace-assistant/pkg/gcalendar"
	"workspace-assistant/pkg/log"
)

// calsync imports Google Calendar events into the workspace database once
// and exits. Flags override the google_calendar config section.
func main() {
	userID := flag.String("user", "", "workspace user id (default google_calendar.sync_user_id)")
	calendarID := flag.String("calendar", "", "calendar id (default google_calendar.calendar_id)")
	days := flag.Int("days", 0, "days ahead to import (default google_calendar.sync_days)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	input := calendarsync.SyncInput{
		UserID:     firstNonEmpty(*userID, cfg.GoogleCalendar.SyncUserID),
		CalendarID: firstNonEmpty(*calendarID, cfg.GoogleCalendar.CalendarID),
		Days:       cfg.GoogleCalendar.SyncDays,
	}
	if *days > 0 {
		input.Days = *days
	}
	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Fatal(ctx, "google_calendar.credentials_path is not set")
	}

	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		logger.Fatalf(ctx, "Google Calendar not available: %v", err)
	}

	db, err := sqlite.Open(cfg.Storage.SQLitePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()
	if err := sqlite.Migrate(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to migrate database: %v", err)
	}

	loc := cfg.Assistant.Location()
	store := sqlite.New(db, logger, sqlite.Options{Location: loc})
	syncer := calendarsync.New(logger, calendarClient, store, calendarsync.Options{Location: loc})

	out, err := syncer.Sync(ctx, input)
	if err != nil {
		logger.Fatalf(ctx, "Calendar import failed: %v", err)
	}
	logger.Infof(ctx, "Calendar import done: fetched=%d upserted=%d failed=%d", out.Fetched, out.Upserted, out.Failed)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
