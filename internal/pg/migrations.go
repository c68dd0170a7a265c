package pg

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/AhmedSalem104/voltyks/migrations"
)

// RunMigrations brings the schema up to the latest embedded version.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return migrate(ctx, db, migrations.Migrations)
}

func migrate(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("schema provider: %w", err)
	}
	applied, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("schema upgrade: %w", err)
	}
	for _, m := range applied {
		zap.L().Info("schema migration applied",
			zap.Int64("version", m.Source.Version),
			zap.String("file", m.Source.Path),
			zap.Duration("took", m.Duration),
		)
	}
	return nil
}
