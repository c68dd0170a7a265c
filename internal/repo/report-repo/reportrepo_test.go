package reportrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestRepository_ExistsForProcess(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()
	repo := New(mock)
	query := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM user_reports WHERE process_id = $1)`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    bool
	}{
		{
			name: "Report filed",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(7)).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			result: true,
		},
		{
			name: "No reports",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(7)).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(7)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			exists, err := repo.ExistsForProcess(context.Background(), 7)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
