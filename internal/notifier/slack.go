// Package notifier posts menus to Slack channels.
package notifier

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/mensabot/mensa-bot/internal/domain/contract"
	"github.com/mensabot/mensa-bot/internal/domain/dates"
	"github.com/mensabot/mensa-bot/internal/domain/entity"
	slackmsg "github.com/mensabot/mensa-bot/internal/domain/slack"
	"github.com/mensabot/mensa-bot/internal/metrics"
	"github.com/slack-go/slack"
)

// rejectionCodes are Slack API errors after which the channel will not
// accept the message no matter how often it is retried.
var rejectionCodes = map[string]bool{
	"channel_not_found": true,
	"not_in_channel":    true,
	"is_archived":       true,
	"restricted_action": true,
	"account_inactive":  true,
}

// IsRejection checks if err is a Slack error refusing delivery to the channel.
func IsRejection(err error) bool {
	var slackErr slack.SlackErrorResponse
	return errors.As(err, &slackErr) && rejectionCodes[slackErr.Err]
}

type SlackNotifier struct {
	client   contract.SlackClient
	logger   *slog.Logger
	attempts uint
	delay    time.Duration
}

type Option func(*SlackNotifier)

// WithRetry overrides the number of attempts and the initial backoff.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(n *SlackNotifier) {
		n.attempts = attempts
		n.delay = delay
	}
}

func New(client contract.SlackClient, logger *slog.Logger, opts ...Option) *SlackNotifier {
	n := &SlackNotifier{
		client:   client,
		logger:   logger,
		attempts: 3,
		delay:    time.Second,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Send posts menu to the channel recipientID. It never returns an error:
// failures are logged and reported as false.
func (n *SlackNotifier) Send(ctx context.Context, recipientID string, menu entity.Menu) bool {
	text, blocks := slackmsg.MenuMessage(menu)

	var lastErr error
	err := retry.Do(
		func() error {
			_, _, err := n.client.PostMessageContext(ctx, recipientID,
				slack.MsgOptionText(text, false),
				slack.MsgOptionBlocks(blocks...),
				slack.MsgOptionAsUser(false),
			)
			lastErr = err
			return err
		},
		retry.Attempts(n.attempts),
		retry.Delay(n.delay),
		retry.MaxDelay(10*n.delay),
		retry.MaxJitter(max(n.delay/2, time.Millisecond)),
		retry.Context(ctx),
		retry.OnRetry(func(attempt uint, err error) {
			n.logger.Info("Retrying menu notification", "recipient", recipientID, "attempt", attempt, "error", err)
		}),
		retry.RetryIf(func(err error) bool {
			return !IsRejection(err)
		}),
	)
	if err != nil {
		if lastErr == nil {
			lastErr = err
		}
		if IsRejection(lastErr) {
			metrics.NotificationsTotal.WithLabelValues(metrics.ResultRejected).Inc()
			n.logger.Warn("Channel rejected menu notification", "recipient", recipientID, "error", lastErr)
			return false
		}
		metrics.NotificationsTotal.WithLabelValues(metrics.ResultError).Inc()
		n.logger.Warn("Failed to deliver menu notification", "recipient", recipientID, "error", lastErr)
		return false
	}

	metrics.NotificationsTotal.WithLabelValues(metrics.ResultOK).Inc()
	n.logger.Info("Menu notification sent", "recipient", recipientID, "day", dates.Short(menu.Day))
	return true
}
