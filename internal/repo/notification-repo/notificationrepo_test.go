package notificationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/AhmedSalem104/voltyks/internal/domain"
)

func TestRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()
	repo := New(mock)

	recipient := uuid.New()
	requestID := int64(42)
	sentAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO notifications (recipient_id, title, body, is_read, sent_at, related_request_id, type)`)

	t.Run("Successfully saves notification", func(t *testing.T) {
		n := &domain.Notification{
			RecipientID:      &recipient,
			Title:            "Charging process closed",
			Body:             "Process #7 was closed as Aborted (timeout).",
			SentAt:           sentAt,
			RelatedRequestID: &requestID,
			Type:             domain.NotificationTerminated,
		}
		mock.ExpectQuery(query).
			WithArgs(&recipient, n.Title, n.Body, sentAt, &requestID, domain.NotificationTerminated).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

		assert.NoError(t, repo.Create(context.Background(), n))
		assert.Equal(t, int64(3), n.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		n := &domain.Notification{Title: "t", Body: "b", SentAt: sentAt, Type: domain.NotificationRated}
		mock.ExpectQuery(query).
			WithArgs((*uuid.UUID)(nil), "t", "b", sentAt, (*int64)(nil), domain.NotificationRated).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.Create(context.Background(), n))
		assert.Zero(t, n.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
