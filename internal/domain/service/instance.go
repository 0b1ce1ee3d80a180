package service

import (
	"context"
	"log/slog"

	"github.com/mensabot/mensa-bot/internal/domain/contract"
)

type Instance struct {
	Menu      contract.MenuService
	Scheduler *Scheduler
}

func NewInstance(cfg Config, dm contract.DataManager, fetcher contract.PageFetcher, parser contract.MenuParser,
	notifier contract.Notifier, clock contract.Clock, logger *slog.Logger) *Instance {
	menuService := newMenuService(cfg, dm, fetcher, parser, notifier, clock, logger)

	return &Instance{
		Menu:      menuService,
		Scheduler: NewScheduler(clock, cfg.Location, cfg.NotificationTime, scheduledCycle(menuService, logger), logger),
	}
}

func scheduledCycle(s contract.MenuService, logger *slog.Logger) func(ctx context.Context) {
	return func(ctx context.Context) {
		if _, err := s.RunCycle(ctx); err != nil {
			logger.Error("Scheduled fetch cycle failed", "error", err)
		}
	}
}
