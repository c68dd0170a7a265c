package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		expected   bool
	}{
		{
			name:     "Plain error",
			err:      errors.New("boom"),
			expected: false,
		},
		{
			name:     "Unique violation any constraint",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "processes_charger_request_id_key"},
			expected: true,
		},
		{
			name:       "Unique violation wrapped and matching",
			err:        fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "processes_charger_request_id_key"}),
			constraint: "processes_charger_request_id_key",
			expected:   true,
		},
		{
			name:       "Unique violation on other constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "ratings_history_rater_uq"},
			constraint: "processes_charger_request_id_key",
			expected:   false,
		},
		{
			name:     "Foreign key violation",
			err:      &pgconn.PgError{Code: "23503"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}
