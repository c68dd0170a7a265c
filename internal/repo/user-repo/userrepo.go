package userrepo

import (
	"context"

	"github.com/google/uuid"
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

// AddActivity appends processID to the user's current activities unless it is
// already there.
func (repo *Repository) AddActivity(ctx context.Context, userID uuid.UUID, processID int64) error {
	query := `
		UPDATE users
		SET current_activities = array_append(current_activities, $2)
		WHERE id = $1 AND NOT ($2 = ANY (current_activities))
	`
	if _, err := repo.db.Exec(ctx, query, userID, processID); err != nil {
		zap.L().Error("can't add user activity", zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}
	return nil
}

// ReleaseActivity removes processID from the user's current activities and
// makes the user available again once nothing is left.
func (repo *Repository) ReleaseActivity(ctx context.Context, userID uuid.UUID, processID int64) error {
	query := `
		UPDATE users
		SET current_activities = array_remove(current_activities, $2),
			is_available = CASE
				WHEN cardinality(array_remove(current_activities, $2)) = 0 THEN TRUE
				ELSE is_available
			END
		WHERE id = $1
	`
	if _, err := repo.db.Exec(ctx, query, userID, processID); err != nil {
		zap.L().Error("can't release user activity", zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}
	return nil
}

// RestoreAvailability marks an idle, unavailable user as available.
func (repo *Repository) RestoreAvailability(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users
		SET is_available = TRUE
		WHERE id = $1 AND is_available = FALSE AND cardinality(current_activities) = 0
	`
	if _, err := repo.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("can't restore user availability", zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}
	return nil
}

// ApplyRating folds stars into the user's running average.
func (repo *Repository) ApplyRating(ctx context.Context, userID uuid.UUID, stars float64) error {
	query := `
		UPDATE users
		SET rating = (rating * rating_count + $2) / (rating_count + 1),
			rating_count = rating_count + 1
		WHERE id = $1
	`
	if _, err := repo.db.Exec(ctx, query, userID, stars); err != nil {
		zap.L().Error("can't apply user rating", zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}
	return nil
}

// ListWithActivity returns users that are unavailable or track any activity.
func (repo *Repository) ListWithActivity(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, rating, rating_count, is_available, current_activities
		FROM users
		WHERE is_available = FALSE OR cardinality(current_activities) > 0
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get busy users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Rating, &u.RatingCount, &u.IsAvailable, &u.CurrentActivities); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (repo *Repository) TokensByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := repo.db.Query(ctx, "SELECT token FROM device_tokens WHERE user_id = $1", userID)
	if err != nil {
		zap.L().Error("can't get device tokens", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			zap.L().Error("can't scan device token", zap.Error(err))
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}
