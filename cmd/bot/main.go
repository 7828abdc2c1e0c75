package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dictbot/internal/config"
	"dictbot/internal/handler"
	"dictbot/internal/logging"
	"dictbot/internal/middleware"
	"dictbot/internal/repository/dictapi"
	"dictbot/internal/repository/memory"
	"dictbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, cfgErr := config.Load()

	level := "info"
	if cfgErr == nil {
		level = cfg.LogLevel
	}

	// Initialize logger
	logger, err := logging.New(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfgErr != nil {
		logger.Fatal("Failed to load config", zap.Error(cfgErr))
	}

	logger.Info("Starting dictionary bot",
		zap.String("dictionary_url", cfg.Dictionary.BaseURL),
		zap.Duration("session_idle_ttl", cfg.Session.IdleTTL),
	)

	// Initialize repositories
	dictRepo := dictapi.NewClientWithURL(cfg.Dictionary.BaseURL, logger)
	sessionRepo := memory.NewSessionRepo()

	// Initialize services
	wordService := service.NewWordService(dictRepo, sessionRepo, logger)
	sessionService := service.NewSessionService(sessionRepo, cfg.Session.IdleTTL, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Handler error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.SessionMiddleware(sessionService, logger))

	h := handler.NewHandler(bot, wordService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start session sweeper in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runSessionSweeper(ctx, sessionService, h, cfg.Session.SweepInterval, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// runSessionSweeper periodically ends idle sessions and forgets their chat state
func runSessionSweeper(
	ctx context.Context,
	sessionService *service.SessionService,
	h *handler.Handler,
	interval time.Duration,
	logger *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Session sweeper stopped")
			return
		case <-ticker.C:
			h.ClearStates(sessionService.CleanupIdleSessions())
		}
	}
}
