package reportrepo

import (
	"context"

	"go.uber.org/zap"

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

func (r *Repository) ExistsForProcess(ctx context.Context, processID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM user_reports WHERE process_id = $1)", processID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check user reports", zap.Int64("process_id", processID), zap.Error(err))
		return false, err
	}
	return exists, nil
}
