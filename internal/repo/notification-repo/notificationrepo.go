package notificationrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/AhmedSalem104/voltyks/internal/domain"
	"github.com/AhmedSalem104/voltyks/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (recipient_id, title, body, is_read, sent_at, related_request_id, type)
		VALUES ($1, $2, $3, FALSE, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, n.RecipientID, n.Title, n.Body, n.SentAt, n.RelatedRequestID, n.Type).Scan(&n.ID)
	if err != nil {
		zap.L().Error("can't save notification", zap.String("type", n.Type), zap.Error(err))
		return err
	}
	return nil
}
