package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mensabot/mensa-bot/internal/config"
	"github.com/mensabot/mensa-bot/internal/database"
	"github.com/mensabot/mensa-bot/internal/domain/parser"
	"github.com/mensabot/mensa-bot/internal/domain/service"
	"github.com/mensabot/mensa-bot/internal/fetcher"
	"github.com/mensabot/mensa-bot/internal/handlers"
	"github.com/mensabot/mensa-bot/internal/notifier"
	"github.com/mensabot/mensa-bot/migrator/sqlite"
	"github.com/slack-go/slack"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Bot stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	loc, _ := cfg.Location()
	cutover, _ := cfg.Cutover()
	notificationTime, _ := cfg.Notification()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return err
	}
	logger.Info("Migrations completed successfully")

	pageFetcher := fetcher.New(&http.Client{Timeout: cfg.Fetch.Timeout}, cfg.Fetch.MinInterval, logger)
	menuParser := parser.New(logger, time.Now)
	slackNotifier := notifier.New(slack.New(cfg.SlackBotToken), logger)

	dm := database.NewInstance(db)

	noSubscribers, err := dm.Subscription().IsEmpty(context.Background())
	if err != nil {
		return err
	}
	if noSubscribers {
		logger.Info("No channel is subscribed yet, new menus will only be stored")
	}

	services := service.NewInstance(service.Config{
		URLs:             cfg.Menu.URLs,
		Location:         loc,
		Cutover:          cutover,
		NotificationTime: notificationTime,
	}, dm, pageFetcher, menuParser, slackNotifier, service.NewClock(), logger)

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(services.Menu, cfg.SlackSigningSecret, cutover, logger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "port", cfg.Port, "menu_urls", cfg.Menu.URLs,
			"notification_time", notificationTime.String(), "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
