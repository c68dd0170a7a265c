package pg

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedSalem104/voltyks/migrations"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"00001_users.sql",
		"00002_charging_requests.sql",
		"00003_processes.sql",
		"00004_ratings_history.sql",
		"00005_notifications_reports.sql",
	}, files)
}

func TestMigrate_NoDatabase(t *testing.T) {
	err := migrate(context.Background(), nil, migrations.Migrations)
	assert.ErrorContains(t, err, "schema provider")
}
