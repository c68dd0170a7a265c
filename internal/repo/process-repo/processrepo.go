package processrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/AhmedSalem104/voltyks/internal/domain"
	"github.com/AhmedSalem104/voltyks/internal/pg"
)

const processColumns = `
	p.id, p.charger_request_id, p.vehicle_owner_id, p.charger_owner_id,
	p.estimated_price, p.amount_charged, p.amount_paid,
	p.status, COALESCE(p.sub_status, ''),
	p.vehicle_owner_rating, p.charger_owner_rating, p.default_rating_applied,
	p.rating_window_opened_at, p.date_created, p.date_completed`

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

type scanner interface {
	Scan(dest ...any) error
}

func scanProcess(row scanner, p *domain.Process, extra ...any) error {
	dest := []any{
		&p.ID, &p.ChargerRequestID, &p.VehicleOwnerID, &p.ChargerOwnerID,
		&p.EstimatedPrice, &p.AmountCharged, &p.AmountPaid,
		&p.Status, &p.SubStatus,
		&p.VehicleOwnerRating, &p.ChargerOwnerRating, &p.DefaultRatingApplied,
		&p.RatingWindowOpenedAt, &p.DateCreated, &p.DateCompleted,
	}
	return row.Scan(append(dest, extra...)...)
}

// Create stores every column scanProcess reads back, so a process survives a
// round trip unchanged apart from its new id.
func (r *Repository) Create(ctx context.Context, p *domain.Process) (int64, error) {
	query := `
		INSERT INTO processes (
			charger_request_id, vehicle_owner_id, charger_owner_id,
			estimated_price, amount_charged, amount_paid,
			status, sub_status,
			vehicle_owner_rating, charger_owner_rating, default_rating_applied,
			rating_window_opened_at, date_created, date_completed
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			p.ChargerRequestID, p.VehicleOwnerID, p.ChargerOwnerID,
			p.EstimatedPrice, p.AmountCharged, p.AmountPaid,
			p.Status, p.SubStatus,
			p.VehicleOwnerRating, p.ChargerOwnerRating, p.DefaultRatingApplied,
			p.RatingWindowOpenedAt, p.DateCreated, p.DateCompleted,
		).Scan(&p.ID)
		if err != nil {
			zap.L().Error("can't create process", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.Process, error) {
	return r.get(ctx, `SELECT`+processColumns+` FROM processes p WHERE p.id = $1`, id)
}

// GetForUpdate locks the row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.Process, error) {
	return r.get(ctx, `SELECT`+processColumns+` FROM processes p WHERE p.id = $1 FOR UPDATE`, id)
}

func (r *Repository) GetByRequestID(ctx context.Context, requestID int64) (*domain.Process, error) {
	return r.get(ctx, `SELECT`+processColumns+` FROM processes p WHERE p.charger_request_id = $1`, requestID)
}

func (r *Repository) get(ctx context.Context, query string, arg int64) (*domain.Process, error) {
	var p domain.Process
	err := scanProcess(r.db.QueryRow(ctx, query, arg), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get process", zap.Int64("arg", arg), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Update(ctx context.Context, p *domain.Process) error {
	query := `
		UPDATE processes
		SET estimated_price = $2, amount_charged = $3, amount_paid = $4,
			status = $5, sub_status = NULLIF($6, ''),
			vehicle_owner_rating = $7, charger_owner_rating = $8,
			default_rating_applied = $9, rating_window_opened_at = $10, date_completed = $11
		WHERE id = $1
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			p.ID, p.EstimatedPrice, p.AmountCharged, p.AmountPaid,
			p.Status, string(p.SubStatus),
			p.VehicleOwnerRating, p.ChargerOwnerRating,
			p.DefaultRatingApplied, p.RatingWindowOpenedAt, p.DateCompleted,
		)
		if err != nil {
			zap.L().Error("failed to update process", zap.Int64("process_id", p.ID), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Activity, error) {
	query := `
		SELECT` + processColumns + `, cr.charger_id, cr.base_amount, cr.fees
		FROM processes p
		JOIN charging_requests cr ON cr.id = p.charger_request_id
		WHERE p.vehicle_owner_id = $1 OR p.charger_owner_id = $1
		ORDER BY p.date_created DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user activities", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := scanProcess(rows, &a.Process, &a.ChargerID, &a.BaseAmount, &a.Fees); err != nil {
			zap.L().Error("can't scan activity row", zap.Error(err))
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// FindRatingWindowExpired returns processes whose rating window opened before
// cutoff, that still miss at least one rating and that are awaiting ratings:
// a party already rated, or the session was completed without both ratings.
func (r *Repository) FindRatingWindowExpired(ctx context.Context, cutoff time.Time) ([]int64, error) {
	query := `
		SELECT id
		FROM processes
		WHERE rating_window_opened_at IS NOT NULL
			AND rating_window_opened_at < $1
			AND default_rating_applied = FALSE
			AND (vehicle_owner_rating IS NULL OR charger_owner_rating IS NULL)
			AND (
				(status = 'Completed' AND sub_status IS NOT NULL)
				OR (status = 'PendingCompleted' AND (vehicle_owner_rating IS NOT NULL OR charger_owner_rating IS NOT NULL))
			)
		ORDER BY rating_window_opened_at ASC
	`
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		zap.L().Error("can't get processes with expired rating window", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan process id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
