package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AhmedSalem104/voltyks/internal/domain"
)

//go:generate mockgen -source=notify.go -destination=mock_notify.go -package=notify

const (
	defaultFanout = 4
	enqueueWait   = 200 * time.Millisecond
)

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type TokenRepo interface {
	TokensByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// Dispatcher pushes a single notification to a single device.
type Dispatcher interface {
	Send(ctx context.Context, token, title, body string, relatedRequestID *int64, notificationType string, data map[string]string) error
}

type Notifier struct {
	notifications NotificationRepo
	tokens        TokenRepo
	dispatcher    Dispatcher
	workerPool    WorkerPoolI
	fanout        int
}

func New(notifications NotificationRepo, tokens TokenRepo, dispatcher Dispatcher, workerPool WorkerPoolI) *Notifier {
	return &Notifier{
		notifications: notifications,
		tokens:        tokens,
		dispatcher:    dispatcher,
		workerPool:    workerPool,
		fanout:        defaultFanout,
	}
}

// Notify records n and pushes it to every device of its recipient in the
// background. Failures are logged and never reach the caller.
func (s *Notifier) Notify(ctx context.Context, n domain.Notification, data map[string]string) {
	ctx = context.WithoutCancel(ctx)

	if err := s.notifications.Create(ctx, &n); err != nil {
		zap.L().Error("Failed to record notification", zap.String("type", n.Type), zap.Error(err))
	}
	if n.RecipientID == nil {
		return
	}

	enqueueCtx, cancel := context.WithTimeout(ctx, enqueueWait)
	defer cancel()
	err := s.workerPool.AddTask(enqueueCtx, func() error {
		return s.deliver(ctx, n, data)
	})
	if err != nil {
		zap.L().Error("Failed to queue notification",
			zap.String("recipient_id", n.RecipientID.String()),
			zap.String("type", n.Type),
			zap.Error(err),
		)
	}
}

func (s *Notifier) deliver(ctx context.Context, n domain.Notification, data map[string]string) error {
	tokens, err := s.tokens.TokensByUser(ctx, *n.RecipientID)
	if err != nil {
		return fmt.Errorf("failed to load device tokens for %s: %w", n.RecipientID, err)
	}

	var g errgroup.Group
	g.SetLimit(s.fanout)
	for _, token := range tokens {
		token := token
		g.Go(func() error {
			err := s.dispatcher.Send(ctx, token, n.Title, n.Body, n.RelatedRequestID, n.Type, data)
			if err != nil {
				zap.L().Warn("Push delivery failed",
					zap.String("recipient_id", n.RecipientID.String()),
					zap.String("type", n.Type),
					zap.Error(err),
				)
				return fmt.Errorf("push %s: %w", n.Type, err)
			}
			return nil
		})
	}
	return g.Wait()
}
