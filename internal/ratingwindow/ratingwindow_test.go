package ratingwindow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/AhmedSalem104/voltyks/internal/domain"
	"github.com/AhmedSalem104/voltyks/internal/pg"
	"github.com/AhmedSalem104/voltyks/internal/service/processservice"
)

var (
	testNow      = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	vehicleOwner = uuid.MustParse("6a3f1b9e-0c1d-4f8a-9e2b-7d5c4a3b2e10")
	chargerOwner = uuid.MustParse("9c2e7d4a-1b3f-4e6d-8a9c-0f1e2d3c4b50")
)

type mocks struct {
	requests  *processservice.MockRequestRepo
	processes *processservice.MockProcessRepo
	ratings   *processservice.MockRatingRepo
	users     *processservice.MockUserRepo
	reports   *processservice.MockReportRepo
	notifier  *processservice.MockNotifier
}

func NewMock(t *testing.T) (*Resolver, *mocks) {
	ctrl := gomock.NewController(t)
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	m := &mocks{
		requests:  processservice.NewMockRequestRepo(ctrl),
		processes: processservice.NewMockProcessRepo(ctrl),
		ratings:   processservice.NewMockRatingRepo(ctrl),
		users:     processservice.NewMockUserRepo(ctrl),
		reports:   processservice.NewMockReportRepo(ctrl),
		notifier:  processservice.NewMockNotifier(ctrl),
	}
	resolver := New(tx, processservice.Repos{
		Requests:  m.requests,
		Processes: m.processes,
		Ratings:   m.ratings,
		Users:     m.users,
		Reports:   m.reports,
	}, m.notifier, time.Minute, 5*time.Minute, WithClock(func() time.Time { return testNow }))
	return resolver, m
}

func ptr[T any](v T) *T {
	return &v
}

// expiredProcess was confirmed seven minutes ago and rated by the vehicle
// owner only.
func expiredProcess() *domain.Process {
	opened := testNow.Add(-7 * time.Minute)
	return &domain.Process{
		ID:                   7,
		ChargerRequestID:     42,
		VehicleOwnerID:       vehicleOwner,
		ChargerOwnerID:       chargerOwner,
		Status:               domain.StatusPendingCompleted,
		SubStatus:            domain.SubStatusAwaitingRatings,
		ChargerOwnerRating:   ptr(5.0),
		RatingWindowOpenedAt: &opened,
		DateCreated:          opened,
	}
}

func (m *mocks) expectFinalize(status domain.ProcessStatus, updated *domain.Process) {
	m.processes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Process) error {
		*updated = *p
		return nil
	})
	m.requests.EXPECT().UpdateStatus(gomock.Any(), int64(42), status.String()).Return(nil)
	m.users.EXPECT().ReleaseActivity(gomock.Any(), vehicleOwner, int64(7)).Return(nil)
	m.users.EXPECT().ReleaseActivity(gomock.Any(), chargerOwner, int64(7)).Return(nil)
}

func TestResolver_ResolveExpired(t *testing.T) {
	cutoff := testNow.Add(-5 * time.Minute)

	tests := []struct {
		name         string
		prepareMock  func(m *mocks, updated *domain.Process)
		wantResolved int
		check        func(t *testing.T, updated domain.Process)
	}{
		{
			name: "Missing rating is defaulted and process completed",
			prepareMock: func(m *mocks, updated *domain.Process) {
				m.processes.EXPECT().FindRatingWindowExpired(gomock.Any(), cutoff).Return([]int64{7}, nil)
				m.processes.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(expiredProcess(), nil)
				m.ratings.EXPECT().Create(gomock.Any(), &domain.RatingHistory{
					ProcessID: 7,
					RaterID:   domain.SystemRaterID,
					RateeID:   vehicleOwner,
					Stars:     domain.DefaultRating,
					CreatedAt: testNow,
				}).Return(nil)
				m.users.EXPECT().ApplyRating(gomock.Any(), vehicleOwner, domain.DefaultRating).Return(nil)
				m.reports.EXPECT().ExistsForProcess(gomock.Any(), int64(7)).Return(false, nil)
				m.expectFinalize(domain.StatusCompleted, updated)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, n domain.Notification, _ map[string]string) {
						assert.Equal(t, vehicleOwner, *n.RecipientID)
						assert.Equal(t, domain.NotificationDefaultRating, n.Type)
					})
			},
			wantResolved: 1,
			check: func(t *testing.T, updated domain.Process) {
				assert.Equal(t, domain.StatusCompleted, updated.Status)
				assert.Equal(t, domain.SubStatusNone, updated.SubStatus)
				assert.True(t, updated.DefaultRatingApplied)
				assert.Equal(t, ptr(3.0), updated.VehicleOwnerRating)
				assert.Equal(t, ptr(5.0), updated.ChargerOwnerRating)
				require.NotNil(t, updated.DateCompleted)
				assert.Equal(t, testNow, *updated.DateCompleted)
			},
		},
		{
			name: "Completed session without ratings defaults both sides",
			prepareMock: func(m *mocks, updated *domain.Process) {
				p := expiredProcess()
				p.ChargerOwnerRating = nil
				p.Status = domain.StatusCompleted
				completed := testNow.Add(-6 * time.Minute)
				p.DateCompleted = &completed

				m.processes.EXPECT().FindRatingWindowExpired(gomock.Any(), cutoff).Return([]int64{7}, nil)
				m.processes.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(p, nil)
				m.ratings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				m.users.EXPECT().ApplyRating(gomock.Any(), vehicleOwner, domain.DefaultRating).Return(nil)
				m.users.EXPECT().ApplyRating(gomock.Any(), chargerOwner, domain.DefaultRating).Return(nil)
				m.reports.EXPECT().ExistsForProcess(gomock.Any(), int64(7)).Return(false, nil)
				m.expectFinalize(domain.StatusCompleted, updated)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
			},
			wantResolved: 1,
			check: func(t *testing.T, updated domain.Process) {
				assert.True(t, updated.HasBothRatings())
				assert.Equal(t, testNow.Add(-6*time.Minute), *updated.DateCompleted)
			},
		},
		{
			name: "Reported process ends disputed",
			prepareMock: func(m *mocks, updated *domain.Process) {
				m.processes.EXPECT().FindRatingWindowExpired(gomock.Any(), cutoff).Return([]int64{7}, nil)
				m.processes.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(expiredProcess(), nil)
				m.ratings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.users.EXPECT().ApplyRating(gomock.Any(), vehicleOwner, domain.DefaultRating).Return(nil)
				m.reports.EXPECT().ExistsForProcess(gomock.Any(), int64(7)).Return(true, nil)
				m.expectFinalize(domain.StatusDisputed, updated)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantResolved: 1,
			check: func(t *testing.T, updated domain.Process) {
				assert.Equal(t, domain.StatusDisputed, updated.Status)
			},
		},
		{
			name: "Both ratings arrived meanwhile",
			prepareMock: func(m *mocks, _ *domain.Process) {
				p := expiredProcess()
				p.VehicleOwnerRating = ptr(4.0)
				m.processes.EXPECT().FindRatingWindowExpired(gomock.Any(), cutoff).Return([]int64{7}, nil)
				m.processes.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(p, nil)
			},
		},
		{
			name: "Default already applied",
			prepareMock: func(m *mocks, _ *domain.Process) {
				p := expiredProcess()
				p.DefaultRatingApplied = true
				m.processes.EXPECT().FindRatingWindowExpired(gomock.Any(), cutoff).Return([]int64{7}, nil)
				m.processes.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(p, nil)
			},
		},
		{
			name: "Finalized by another path",
			prepareMock: func(m *mocks, _ *domain.Process) {
				p := expiredProcess()
				p.Status = domain.StatusAborted
				p.SubStatus = domain.SubStatusNone
				m.processes.EXPECT().FindRatingWindowExpired(gomock.Any(), cutoff).Return([]int64{7}, nil)
				m.processes.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(p, nil)
			},
		},
		{
			name: "Concurrent resolver wins the unique index",
			prepareMock: func(m *mocks, _ *domain.Process) {
				m.processes.EXPECT().FindRatingWindowExpired(gomock.Any(), cutoff).Return([]int64{7}, nil)
				m.processes.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(expiredProcess(), nil)
				m.ratings.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23505", ConstraintName: "ratings_history_system_uq"})
			},
		},
		{
			name: "One failing candidate does not stop the cycle",
			prepareMock: func(m *mocks, updated *domain.Process) {
				m.processes.EXPECT().FindRatingWindowExpired(gomock.Any(), cutoff).Return([]int64{6, 7}, nil)
				m.processes.EXPECT().GetForUpdate(gomock.Any(), int64(6)).Return(nil, errors.New("deadlock detected"))
				m.processes.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(expiredProcess(), nil)
				m.ratings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.users.EXPECT().ApplyRating(gomock.Any(), vehicleOwner, domain.DefaultRating).Return(nil)
				m.reports.EXPECT().ExistsForProcess(gomock.Any(), int64(7)).Return(false, nil)
				m.expectFinalize(domain.StatusCompleted, updated)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantResolved: 1,
		},
		{
			name: "Failure before commit sends nothing",
			prepareMock: func(m *mocks, _ *domain.Process) {
				m.processes.EXPECT().FindRatingWindowExpired(gomock.Any(), cutoff).Return([]int64{7}, nil)
				m.processes.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(expiredProcess(), nil)
				m.ratings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.users.EXPECT().ApplyRating(gomock.Any(), vehicleOwner, domain.DefaultRating).Return(nil)
				m.reports.EXPECT().ExistsForProcess(gomock.Any(), int64(7)).Return(false, errors.New("timeout"))
			},
		},
		{
			name: "Candidate query fails",
			prepareMock: func(m *mocks, _ *domain.Process) {
				m.processes.EXPECT().FindRatingWindowExpired(gomock.Any(), cutoff).Return(nil, errors.New("db down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, m := NewMock(t)
			var updated domain.Process
			tt.prepareMock(m, &updated)

			resolved := resolver.ResolveExpired(context.Background())
			assert.Equal(t, tt.wantResolved, resolved)
			if tt.check != nil {
				tt.check(t, updated)
			}
		})
	}
}

func TestResolver_StopsBetweenCandidates(t *testing.T) {
	resolver, m := NewMock(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.processes.EXPECT().FindRatingWindowExpired(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, time.Time) ([]int64, error) {
		cancel()
		return []int64{6, 7}, nil
	})

	assert.Equal(t, 0, resolver.ResolveExpired(ctx))
}

func TestResolver_Run(t *testing.T) {
	resolver, m := NewMock(t)
	resolver.interval = 10 * time.Millisecond
	m.processes.EXPECT().FindRatingWindowExpired(gomock.Any(), gomock.Any()).Return(nil, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		resolver.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("resolver did not stop")
	}
}

func TestNew_Defaults(t *testing.T) {
	resolver := New(nil, processservice.Repos{}, nil, 0, 0)
	assert.Equal(t, DefaultInterval, resolver.interval)
	assert.Equal(t, DefaultWindow, resolver.window)
}
