package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mensabot/mensa-bot/internal/domain/contract"
	"github.com/mensabot/mensa-bot/internal/domain/entity"
)

type subscriptionRepository struct {
	db dbConn
}

func newSubscriptionRepository(db dbConn) contract.SubscriptionRepo {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Add(ctx context.Context, recipientID string) (bool, error) {
	query := `
		INSERT OR IGNORE INTO subscriptions (recipient_id, created_at)
		VALUES (?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, recipientID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to add subscription: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *subscriptionRepository) Remove(ctx context.Context, recipientID string) (bool, error) {
	query := `DELETE FROM subscriptions WHERE recipient_id = ?`

	result, err := r.db.ExecContext(ctx, query, recipientID)
	if err != nil {
		return false, fmt.Errorf("failed to remove subscription: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *subscriptionRepository) Exists(ctx context.Context, recipientID string) (bool, error) {
	query := `SELECT COUNT(1) FROM subscriptions WHERE recipient_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, recipientID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return count > 0, nil
}

func (r *subscriptionRepository) ListAll(ctx context.Context) ([]entity.Subscription, error) {
	query := `
		SELECT recipient_id, created_at
		FROM subscriptions
		ORDER BY created_at, recipient_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subscriptions []entity.Subscription
	for rows.Next() {
		var s entity.Subscription
		if err := rows.Scan(&s.RecipientID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subscriptions = append(subscriptions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscriptions: %w", err)
	}

	return subscriptions, nil
}

func (r *subscriptionRepository) IsEmpty(ctx context.Context) (bool, error) {
	query := `SELECT NOT EXISTS (SELECT 1 FROM subscriptions)`

	var empty bool
	if err := r.db.QueryRowContext(ctx, query).Scan(&empty); err != nil {
		return false, fmt.Errorf("failed to check subscriptions: %w", err)
	}
	return empty, nil
}
