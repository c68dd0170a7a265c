package ratingrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AhmedSalem104/voltyks/internal/domain"
	"github.com/AhmedSalem104/voltyks/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Exists(ctx context.Context, processID int64, raterID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM ratings_history WHERE process_id = $1 AND rater_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, processID, raterID).Scan(&exists); err != nil {
		zap.L().Error("can't check rating history", zap.Int64("process_id", processID), zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Create(ctx context.Context, h *domain.RatingHistory) error {
	query := `
		INSERT INTO ratings_history (process_id, rater_id, ratee_id, stars, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, h.ProcessID, h.RaterID, h.RateeID, h.Stars, h.CreatedAt).Scan(&h.ID)
		if err != nil {
			zap.L().Error("can't save rating history", zap.Int64("process_id", h.ProcessID), zap.Error(err))
			return err
		}
		return nil
	})
}
