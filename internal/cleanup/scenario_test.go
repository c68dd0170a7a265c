package cleanup_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedSalem104/voltyks/internal/cleanup"
	"github.com/AhmedSalem104/voltyks/internal/domain"
	"github.com/AhmedSalem104/voltyks/internal/dto"
	memrepo "github.com/AhmedSalem104/voltyks/internal/repo/mem-repo"
	"github.com/AhmedSalem104/voltyks/internal/service/processservice"
)

type world struct {
	t0      time.Time
	now     time.Time
	store   *memrepo.Store
	service *processservice.Service
	cleaner *cleanup.Cleaner
	vehicle uuid.UUID
	charger uuid.UUID
	request int64
}

func newWorld(t *testing.T) *world {
	t.Helper()
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w := &world{
		t0:      t0,
		now:     t0,
		store:   memrepo.New(),
		vehicle: uuid.New(),
		charger: uuid.New(),
	}
	w.store.PutUser(domain.User{ID: w.vehicle, IsAvailable: true})
	w.store.PutUser(domain.User{ID: w.charger, IsAvailable: true})
	w.request = w.store.PutRequest(domain.ChargingRequest{
		RequesterID:    w.vehicle,
		RecipientID:    w.charger,
		Status:         domain.RequestStatusConfirmed,
		EstimatedPrice: decimal.NewFromInt(60),
	})

	clock := func() time.Time { return w.now }
	w.service = processservice.New(w.store, processservice.Repos{
		Requests:  w.store.Requests(),
		Processes: w.store.Processes(),
		Ratings:   w.store.Ratings(),
		Users:     w.store.Users(),
		Reports:   w.store.Reports(),
	}, w.store.Outbox(), nil, processservice.WithClock(clock))
	w.cleaner = cleanup.New(w.store.Processes(), w.store.Users(), w.service, time.Minute, 10*time.Minute, cleanup.WithClock(clock))
	return w
}

func (w *world) confirm(t *testing.T) int64 {
	t.Helper()
	resp, err := w.service.ConfirmByVehicleOwner(context.Background(), w.vehicle, dto.ConfirmProcessRequestDTO{
		ChargerRequestID: w.request,
		AmountCharged:    decimal.NewFromInt(60),
		AmountPaid:       decimal.NewFromInt(60),
	})
	require.NoError(t, err)
	return resp.ProcessID
}

func (w *world) assertReleased(t *testing.T) {
	t.Helper()
	for _, id := range []uuid.UUID{w.vehicle, w.charger} {
		u := w.store.User(id)
		assert.Empty(t, u.CurrentActivities)
		assert.True(t, u.IsAvailable)
	}
}

func TestStaleProcessIsAborted(t *testing.T) {
	w := newWorld(t)
	pid := w.confirm(t)
	ctx := context.Background()

	w.now = w.t0.Add(5 * time.Minute)
	assert.Equal(t, cleanup.Stats{Users: 2}, w.cleaner.Sweep(ctx))
	p, _ := w.store.Process(pid)
	assert.Equal(t, domain.StatusPendingCompleted, p.Status)

	w.now = w.t0.Add(11 * time.Minute)
	stats := w.cleaner.Sweep(ctx)
	assert.Equal(t, cleanup.Stats{Users: 2, Aborted: 1, Released: 1}, stats)

	p, _ = w.store.Process(pid)
	assert.Equal(t, domain.StatusAborted, p.Status)
	assert.Equal(t, domain.SubStatusNone, p.SubStatus)
	assert.Equal(t, domain.RequestStatusAborted, w.store.Request(w.request).Status)
	w.assertReleased(t)

	notifications := len(w.store.Notifications())
	transitions := w.store.Transitions(pid)

	w.now = w.t0.Add(30 * time.Minute)
	assert.Equal(t, cleanup.Stats{}, w.cleaner.Sweep(ctx))
	assert.Len(t, w.store.Notifications(), notifications)
	assert.Equal(t, transitions, w.store.Transitions(pid))
	assert.Empty(t, w.store.RatingHistory(pid))
}

func TestTerminalProcessStillTrackedIsReleased(t *testing.T) {
	w := newWorld(t)
	pid := w.confirm(t)
	w.store.Mutate(pid, func(p *domain.Process) {
		p.Status = domain.StatusDisputed
	})
	notifications := len(w.store.Notifications())

	stats := w.cleaner.Sweep(context.Background())
	assert.Equal(t, cleanup.Stats{Users: 2, Released: 2}, stats)

	p, _ := w.store.Process(pid)
	assert.Equal(t, domain.StatusDisputed, p.Status)
	assert.Len(t, w.store.Notifications(), notifications)
	w.assertReleased(t)
}

func TestDriftIsRepaired(t *testing.T) {
	w := newWorld(t)
	stranger := uuid.New()
	w.store.PutUser(domain.User{ID: stranger, CurrentActivities: []int64{404}})
	pid := w.confirm(t)
	w.store.PutUser(domain.User{ID: uuid.New(), CurrentActivities: []int64{pid}})

	stats := w.cleaner.Sweep(context.Background())
	assert.Equal(t, 2, stats.Repaired)
	assert.Zero(t, stats.Aborted)

	u := w.store.User(stranger)
	assert.Empty(t, u.CurrentActivities)
	assert.True(t, u.IsAvailable)

	p, _ := w.store.Process(pid)
	assert.Equal(t, domain.StatusPendingCompleted, p.Status)
	assert.Equal(t, []int64{pid}, w.store.User(w.vehicle).CurrentActivities)
}

func TestCompletedProcessIsNotTouched(t *testing.T) {
	w := newWorld(t)
	pid := w.confirm(t)
	ctx := context.Background()

	_, err := w.service.SubmitRating(ctx, w.vehicle, dto.SubmitRatingRequestDTO{ProcessID: pid, RatingForOther: 5})
	require.NoError(t, err)
	_, err = w.service.SubmitRating(ctx, w.charger, dto.SubmitRatingRequestDTO{ProcessID: pid, RatingForOther: 4})
	require.NoError(t, err)

	w.now = w.t0.Add(time.Hour)
	assert.Equal(t, cleanup.Stats{}, w.cleaner.Sweep(ctx))

	p, _ := w.store.Process(pid)
	assert.Equal(t, domain.StatusCompleted, p.Status)
	w.assertReleased(t)
}
