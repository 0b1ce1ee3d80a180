package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mensabot/mensa-bot/internal/domain"
	"github.com/mensabot/mensa-bot/internal/domain/contract"
	"github.com/mensabot/mensa-bot/internal/domain/dates"
	"github.com/mensabot/mensa-bot/internal/domain/entity"
	"github.com/mensabot/mensa-bot/internal/metrics"
)

// Config is what the services need to know about the cafeteria.
type Config struct {
	URLs             []string
	Location         *time.Location
	Cutover          dates.TimeOfDay
	NotificationTime dates.TimeOfDay
}

type menuService struct {
	dm       contract.DataManager
	fetcher  contract.PageFetcher
	parser   contract.MenuParser
	notifier contract.Notifier
	clock    contract.Clock
	logger   *slog.Logger
	cfg      Config
}

func newMenuService(cfg Config, dm contract.DataManager, fetcher contract.PageFetcher, parser contract.MenuParser,
	notifier contract.Notifier, clock contract.Clock, logger *slog.Logger) *menuService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &menuService{
		dm:       dm,
		fetcher:  fetcher,
		parser:   parser,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
		cfg:      cfg,
	}
}

// cycleResult is what a fetch cycle did.
type cycleResult struct {
	newData bool
	// announced is the menu pushed to subscribers, nil if none was.
	announced *entity.Menu
	// delivered holds the recipients that accepted announced.
	delivered map[string]bool
}

func (s *menuService) RunCycle(ctx context.Context) (bool, error) {
	result, err := s.runCycle(ctx)
	if err != nil {
		return false, err
	}
	return result.newData, nil
}

func (s *menuService) runCycle(ctx context.Context) (cycleResult, error) {
	logger := s.logger.With("cycle_id", uuid.NewString())
	logger.Info("Fetch cycle started", "urls", len(s.cfg.URLs))

	var parsed []entity.Menu
	for _, url := range s.cfg.URLs {
		markup, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			logger.Warn("Skipping menu page", "url", url, "error", err)
			continue
		}

		menus, err := s.parser.ParseMenus(markup)
		if err != nil {
			logger.Warn("Skipping unreadable menu page", "url", url, "error", err)
			continue
		}
		logger.Debug("Menu page parsed", "url", url, "menus", len(menus))
		parsed = append(parsed, menus...)
	}

	var changes []DayChange
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		changes, err = Reconcile(parsed, func(day time.Time) (*entity.Menu, error) {
			return tx.Menu().GetByDay(ctx, day)
		})
		if err != nil {
			return err
		}

		for _, change := range changes {
			if _, err := tx.Menu().Upsert(ctx, change.Menu); err != nil {
				return fmt.Errorf("failed to store menu for %s: %w", dates.Short(change.Menu.Day), err)
			}
			logger.Debug("Menu stored", "day", dates.Short(change.Menu.Day), "change", change.Kind.String(),
				"meals", len(change.Menu.Meals))
		}
		return nil
	})
	if err != nil {
		return cycleResult{}, fmt.Errorf("failed to reconcile menus: %w", err)
	}

	result := cycleResult{newData: HasNewData(changes)}
	metrics.CyclesTotal.WithLabelValues(strconv.FormatBool(result.newData)).Inc()
	logger.Info("Fetch cycle finished", "days", len(changes), "new_data", result.newData)

	if result.newData {
		result.announced, result.delivered = s.notifySubscribers(ctx, logger)
	}
	return result, nil
}

// notifySubscribers sends the next available menu to every subscription. It
// returns the menu and the recipients that accepted it. Failed deliveries do
// not stop the others.
func (s *menuService) notifySubscribers(ctx context.Context, logger *slog.Logger) (*entity.Menu, map[string]bool) {
	menu, err := s.nextAvailableMenu(ctx)
	if err != nil {
		logger.Error("Failed to load menu for notification", "error", err)
		return nil, nil
	}
	if menu == nil {
		logger.Info("No upcoming menu to announce")
		return nil, nil
	}

	subscriptions, err := s.dm.Subscription().ListAll(ctx)
	if err != nil {
		logger.Error("Failed to list subscriptions", "error", err)
		return nil, nil
	}

	logger.Info("Sending notifications", "day", dates.Short(menu.Day), "recipients", len(subscriptions))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		delivered = make(map[string]bool, len(subscriptions))
	)
	for _, sub := range subscriptions {
		wg.Add(1)
		go func(recipientID string) {
			defer wg.Done()
			if !s.notifier.Send(ctx, recipientID, *menu) {
				logger.Warn("Notification not delivered", "recipient", recipientID)
				return
			}
			mu.Lock()
			delivered[recipientID] = true
			mu.Unlock()
		}(sub.RecipientID)
	}
	wg.Wait()

	return menu, delivered
}

func (s *menuService) nextAvailableMenu(ctx context.Context) (*entity.Menu, error) {
	days, err := s.dm.Menu().ListDaysAscending(ctx)
	if err != nil {
		return nil, err
	}

	day, ok := dates.ResolveNextAvailableDay(days, s.now(), s.cfg.Cutover)
	if !ok {
		return nil, nil
	}
	return s.dm.Menu().GetByDay(ctx, day)
}

// ShowMenu answers a "show menu" request. The argument is empty, a keyword,
// "latest" or a dd.mm.yyyy date, optionally preceded by "refetch".
func (s *menuService) ShowMenu(ctx context.Context, recipientID, argument string) (*entity.Answer, error) {
	fields := strings.Fields(argument)
	refetch := len(fields) > 0 && dates.Normalize(fields[0]) == domain.KeywordRefetch
	if refetch {
		fields = fields[1:]
	}
	criterion := strings.Join(fields, " ")

	var cycle cycleResult
	if refetch {
		var err error
		if cycle, err = s.runCycle(ctx); err != nil {
			return nil, err
		}
	}

	answer, err := s.lookup(ctx, criterion)
	if err != nil {
		return nil, err
	}

	if answer.Menu == nil && !refetch {
		s.logger.Info("No stored menu, fetching", "criterion", answer.Criterion, "recipient", recipientID)
		if cycle, err = s.runCycle(ctx); err != nil {
			return nil, err
		}
		if cycle.newData {
			if answer, err = s.lookup(ctx, criterion); err != nil {
				return nil, err
			}
		}
	}

	if answer.Menu != nil && cycle.announced != nil && cycle.announced.Day.Equal(answer.Menu.Day) {
		answer.Delivered = cycle.delivered[recipientID]
	}

	return answer, nil
}

func (s *menuService) lookup(ctx context.Context, criterion string) (*entity.Answer, error) {
	keyword := dates.Normalize(criterion)

	switch keyword {
	case "":
		days, err := s.dm.Menu().ListDaysAscending(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list menu days: %w", err)
		}
		day, ok := dates.ResolveNextAvailableDay(days, s.now(), s.cfg.Cutover)
		if !ok {
			return &entity.Answer{Criterion: "the next days"}, nil
		}
		return s.answerFor(ctx, day, dates.Format(day))

	case domain.KeywordLatest:
		menu, err := s.dm.Menu().ListLatest(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest menu: %w", err)
		}
		return &entity.Answer{Menu: menu, Criterion: "the latest menu"}, nil
	}

	if day, ok := dates.ResolveKeyword(keyword, s.now()); ok {
		return s.answerFor(ctx, day, fmt.Sprintf("%s (%s)", keyword, dates.Short(day)))
	}

	day, err := dates.ParseDate(criterion)
	if err != nil {
		return nil, err
	}
	return s.answerFor(ctx, day, dates.Format(day))
}

func (s *menuService) answerFor(ctx context.Context, day time.Time, criterion string) (*entity.Answer, error) {
	menu, err := s.dm.Menu().GetByDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return &entity.Answer{Menu: menu, Criterion: criterion}, nil
}

func (s *menuService) Subscribe(ctx context.Context, recipientID string) (bool, error) {
	added, err := s.dm.Subscription().Add(ctx, recipientID)
	if err != nil {
		return false, fmt.Errorf("failed to subscribe: %w", err)
	}
	if added {
		s.logger.Info("Recipient subscribed", "recipient", recipientID)
	}
	return added, nil
}

func (s *menuService) Unsubscribe(ctx context.Context, recipientID string) (bool, error) {
	removed, err := s.dm.Subscription().Remove(ctx, recipientID)
	if err != nil {
		return false, fmt.Errorf("failed to unsubscribe: %w", err)
	}
	if removed {
		s.logger.Info("Recipient unsubscribed", "recipient", recipientID)
	}
	return removed, nil
}

func (s *menuService) now() time.Time {
	return s.clock.Now().In(s.cfg.Location)
}
