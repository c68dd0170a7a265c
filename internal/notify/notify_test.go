package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/AhmedSalem104/voltyks/internal/domain"
)

type mocks struct {
	notifications *MockNotificationRepo
	tokens        *MockTokenRepo
	dispatcher    *MockDispatcher
	workerPool    *MockWorkerPoolI
	taskErr       error
}

func NewMock(t *testing.T) (*Notifier, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		notifications: NewMockNotificationRepo(ctrl),
		tokens:        NewMockTokenRepo(ctrl),
		dispatcher:    NewMockDispatcher(ctrl),
		workerPool:    NewMockWorkerPoolI(ctrl),
	}
	return New(m.notifications, m.tokens, m.dispatcher, m.workerPool), m
}

// runInline executes queued tasks synchronously and keeps their result.
func (m *mocks) runInline() {
	m.workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task Task) error {
		m.taskErr = task()
		return nil
	})
}

func TestNotifier_Notify(t *testing.T) {
	recipient := uuid.MustParse("6a3f1b9e-0c1d-4f8a-9e2b-7d5c4a3b2e10")
	requestID := int64(42)
	notification := domain.Notification{
		RecipientID:      &recipient,
		Title:            "Charging session confirmed",
		Body:             "body",
		RelatedRequestID: &requestID,
		Type:             domain.NotificationConfirmed,
	}
	data := map[string]string{"processId": "7"}

	tests := []struct {
		name         string
		notification domain.Notification
		prepareMock  func(m *mocks)
		wantTaskErr  bool
	}{
		{
			name:         "Pushes to every device of the recipient",
			notification: notification,
			prepareMock: func(m *mocks) {
				m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.runInline()
				m.tokens.EXPECT().TokensByUser(gomock.Any(), recipient).Return([]string{"token-a", "token-b"}, nil)
				m.dispatcher.EXPECT().Send(gomock.Any(), "token-a", notification.Title, notification.Body, &requestID, domain.NotificationConfirmed, data).Return(nil)
				m.dispatcher.EXPECT().Send(gomock.Any(), "token-b", notification.Title, notification.Body, &requestID, domain.NotificationConfirmed, data).Return(nil)
			},
		},
		{
			name:         "Failed record still pushes",
			notification: notification,
			prepareMock: func(m *mocks) {
				m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
				m.runInline()
				m.tokens.EXPECT().TokensByUser(gomock.Any(), recipient).Return([]string{"token-a"}, nil)
				m.dispatcher.EXPECT().Send(gomock.Any(), "token-a", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:         "One failing device does not stop the others",
			notification: notification,
			prepareMock: func(m *mocks) {
				m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.runInline()
				m.tokens.EXPECT().TokensByUser(gomock.Any(), recipient).Return([]string{"token-a", "token-b"}, nil)
				m.dispatcher.EXPECT().Send(gomock.Any(), "token-a", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("unregistered"))
				m.dispatcher.EXPECT().Send(gomock.Any(), "token-b", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTaskErr: true,
		},
		{
			name:         "Token lookup failure is reported by the task",
			notification: notification,
			prepareMock: func(m *mocks) {
				m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.runInline()
				m.tokens.EXPECT().TokensByUser(gomock.Any(), recipient).Return(nil, errors.New("db down"))
			},
			wantTaskErr: true,
		},
		{
			name:         "Broadcast is recorded only",
			notification: domain.Notification{Title: "Maintenance", Type: "Broadcast"},
			prepareMock: func(m *mocks) {
				m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:         "Full queue drops the push",
			notification: notification,
			prepareMock: func(m *mocks) {
				m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier, m := NewMock(t)
			tt.prepareMock(m)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			notifier.Notify(ctx, tt.notification, data)

			if tt.wantTaskErr {
				assert.Error(t, m.taskErr)
			} else {
				assert.NoError(t, m.taskErr)
			}
		})
	}
}

func TestNotifier_WithWorkerPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifications := NewMockNotificationRepo(ctrl)
	tokens := NewMockTokenRepo(ctrl)
	dispatcher := NewMockDispatcher(ctrl)
	pool := NewWorkerPool(2, 8)
	notifier := New(notifications, tokens, dispatcher, pool)

	recipient := uuid.New()
	notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *domain.Notification) error {
		n.ID = 11
		return nil
	}).Times(3)
	tokens.EXPECT().TokensByUser(gomock.Any(), recipient).Return([]string{"token"}, nil).Times(3)
	dispatcher.EXPECT().Send(gomock.Any(), "token", gomock.Any(), gomock.Any(), gomock.Any(), domain.NotificationRated, gomock.Any()).Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		notifier.Notify(context.Background(), domain.Notification{RecipientID: &recipient, Type: domain.NotificationRated}, nil)
	}
	pool.Close()
}
