package requestrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.ChargingRequest, error) {
	query := `
		SELECT id, requester_id, recipient_id, charger_id, status,
			requested_at, responded_at, confirmed_at, base_amount, fees, estimated_price
		FROM charging_requests
		WHERE id = $1
		FOR UPDATE
	`
	var req domain.ChargingRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.RequesterID, &req.RecipientID, &req.ChargerID, &req.Status,
		&req.RequestedAt, &req.RespondedAt, &req.ConfirmedAt, &req.BaseAmount, &req.Fees, &req.EstimatedPrice,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get charging request", zap.Int64("request_id", id), zap.Error(err))
		return nil, err
	}
	return &req, nil
}

// UpdateStatus mirrors a process status onto its charging request. Moving to
// PendingCompleted also stamps confirmed_at once.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE charging_requests
		SET status = $2,
			confirmed_at = CASE WHEN $2 = 'PendingCompleted' THEN COALESCE(confirmed_at, NOW()) ELSE confirmed_at END
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		zap.L().Error("failed to update charging request status", zap.Int64("request_id", id), zap.Error(err))
		return err
	}
	return nil
}
