package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JellyPork/bunflow/config"
	_ "github.com/JellyPork/bunflow/docs" // Swagger docs
	"github.com/JellyPork/bunflow/internal/httpserver"
	"github.com/JellyPork/bunflow/internal/quickadd"
	"github.com/JellyPork/bunflow/internal/reminder"
	gcalNotifier "github.com/JellyPork/bunflow/internal/reminder/notifier/gcal"
	localNotifier "github.com/JellyPork/bunflow/internal/reminder/notifier/local"
	taskHTTP "github.com/JellyPork/bunflow/internal/task/delivery/http"
	"github.com/JellyPork/bunflow/internal/task/repository/sqlite"
	"github.com/JellyPork/bunflow/internal/task/usecase"
	"github.com/JellyPork/bunflow/pkg/datemath"
	"github.com/JellyPork/bunflow/pkg/gcalendar"
	"github.com/JellyPork/bunflow/pkg/log"
	"github.com/JellyPork/bunflow/pkg/telegram"
)

// @title       Bunflow API
// @description Productivity core: natural-language quick-add, recurring reminders, tasks and tags.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Bunflow...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	store, err := sqlite.Open(sqlite.Config{
		Path:        cfg.SQLite.Path,
		BusyTimeout: time.Duration(cfg.SQLite.BusyTimeoutMS) * time.Millisecond,
	}, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer store.Close()
	logger.Infof(ctx, "Database ready at %s", cfg.SQLite.Path)

	// 4. Quick-add parser
	dateParser, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}
	parser := quickadd.New(dateParser)

	// 5. Reminder backend
	var notifier reminder.Notifier
	switch cfg.Reminder.Mode {
	case "gcal":
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Errorf(ctx, "Google Calendar unavailable: %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			return
		}
		notifier = gcalNotifier.New(logger, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.Parser.Timezone)
		logger.Info(ctx, "Reminders via Google Calendar")
	default:
		var sender localNotifier.Sender
		if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
			sender = telegram.NewBot(cfg.Telegram.BotToken)
			logger.Info(ctx, "Reminders via in-process timers, delivered over Telegram")
		} else {
			logger.Info(ctx, "Reminders via in-process timers (log delivery only)")
		}
		local := localNotifier.New(logger, sender, cfg.Telegram.ChatID)
		defer local.Stop()
		notifier = local
	}

	scheduler := reminder.New(logger, notifier)

	// 6. Task domain
	taskUC := usecase.New(logger, store.Tasks(), store.Tags(), scheduler, parser)
	taskHandler := taskHTTP.New(logger, taskUC)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		TaskHandler:     taskHandler,
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

	logger.Info(ctx, "Server stopped gracefully")
}
