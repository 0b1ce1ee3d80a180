package database

import (
	"context"
	"fmt"

	"github.com/mensabot/mensa-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	menuRepo         contract.MenuRepo
	subscriptionRepo contract.SubscriptionRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.menuRepo = newMenuRepository(i.db.conn)
	i.subscriptionRepo = newSubscriptionRepository(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *txInstance {
	return &txInstance{
		menuRepo:         newMenuRepository(db),
		subscriptionRepo: newSubscriptionRepository(db),
	}
}

// Menu returns the menu repository
func (i *instance) Menu() contract.MenuRepo {
	return i.menuRepo
}

// Subscription returns the subscription repository
func (i *instance) Subscription() contract.SubscriptionRepo {
	return i.subscriptionRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	err = fn(repoInstancesWithConn(tx))
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// txInstance is the DataManager handed to WithTransaction callbacks. It is
// already inside a transaction, so nesting runs fn on the same one.
type txInstance struct {
	menuRepo         contract.MenuRepo
	subscriptionRepo contract.SubscriptionRepo
}

func (t *txInstance) Menu() contract.MenuRepo {
	return t.menuRepo
}

func (t *txInstance) Subscription() contract.SubscriptionRepo {
	return t.subscriptionRepo
}

func (t *txInstance) WithTransaction(_ context.Context, fn func(dm contract.DataManager) error) error {
	return fn(t)
}
