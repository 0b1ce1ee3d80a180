package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

import (
	"context"
	"time"

	"github.com/mensabot/mensa-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Menu() MenuRepo
	Subscription() SubscriptionRepo
}

// MenuRepo defines the contract for menu persistence
type MenuRepo interface {
	// GetByDay returns nil, nil when no menu is stored for day.
	GetByDay(ctx context.Context, day time.Time) (*entity.Menu, error)
	// Upsert stores menu, replacing the meals of an existing day. It reports
	// whether the day was new.
	Upsert(ctx context.Context, menu entity.Menu) (bool, error)
	// ListDaysAscending returns every stored day, oldest first.
	ListDaysAscending(ctx context.Context) ([]time.Time, error)
	// ListLatest returns the most recently updated menu, or nil, nil.
	ListLatest(ctx context.Context) (*entity.Menu, error)
}

// SubscriptionRepo defines the contract for subscription persistence
type SubscriptionRepo interface {
	// Add reports false when the recipient was already subscribed.
	Add(ctx context.Context, recipientID string) (bool, error)
	// Remove reports false when the recipient was not subscribed.
	Remove(ctx context.Context, recipientID string) (bool, error)
	Exists(ctx context.Context, recipientID string) (bool, error)
	ListAll(ctx context.Context) ([]entity.Subscription, error)
	IsEmpty(ctx context.Context) (bool, error)
}
