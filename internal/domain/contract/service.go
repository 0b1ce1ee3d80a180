package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"

	"github.com/mensabot/mensa-bot/internal/domain/entity"
)

// MenuService is what the chat surface needs from the bot.
type MenuService interface {
	// RunCycle fetches every configured page, stores what changed and
	// notifies subscribers when anything did. It reports whether new data arrived.
	RunCycle(ctx context.Context) (bool, error)
	ShowMenu(ctx context.Context, recipientID, argument string) (*entity.Answer, error)
	Subscribe(ctx context.Context, recipientID string) (bool, error)
	Unsubscribe(ctx context.Context, recipientID string) (bool, error)
}

// PageFetcher retrieves the markup of a menu page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// MenuParser turns page markup into day menus.
type MenuParser interface {
	ParseMenus(markup string) ([]entity.Menu, error)
}

// Notifier delivers a menu to one recipient. Failures are logged by the
// Notifier and reported as false.
type Notifier interface {
	Send(ctx context.Context, recipientID string, menu entity.Menu) bool
}
