package processservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedSalem104/voltyks/internal/domain"
	"github.com/AhmedSalem104/voltyks/internal/dto"
	memrepo "github.com/AhmedSalem104/voltyks/internal/repo/mem-repo"
	"github.com/AhmedSalem104/voltyks/internal/service/processservice"
)

type lifecycle struct {
	store   *memrepo.Store
	service *processservice.Service
	vehicle uuid.UUID
	charger uuid.UUID
	request int64
}

func newLifecycle(t *testing.T) *lifecycle {
	t.Helper()
	store := memrepo.New()
	l := &lifecycle{
		store:   store,
		vehicle: uuid.New(),
		charger: uuid.New(),
	}
	store.PutUser(domain.User{ID: l.vehicle, IsAvailable: true})
	store.PutUser(domain.User{ID: l.charger, IsAvailable: true})
	l.request = store.PutRequest(domain.ChargingRequest{
		RequesterID:    l.vehicle,
		RecipientID:    l.charger,
		Status:         domain.RequestStatusConfirmed,
		EstimatedPrice: decimal.NewFromInt(90),
	})
	l.service = processservice.New(store, processservice.Repos{
		Requests:  store.Requests(),
		Processes: store.Processes(),
		Ratings:   store.Ratings(),
		Users:     store.Users(),
		Reports:   store.Reports(),
	}, store.Outbox(), nil)
	return l
}

func (l *lifecycle) confirm(t *testing.T) int64 {
	t.Helper()
	resp, err := l.service.ConfirmByVehicleOwner(context.Background(), l.vehicle, dto.ConfirmProcessRequestDTO{
		ChargerRequestID: l.request,
		AmountCharged:    decimal.NewFromInt(90),
		AmountPaid:       decimal.NewFromInt(90),
	})
	require.NoError(t, err)
	return resp.ProcessID
}

func TestConfirmTracksActivityOnBothParties(t *testing.T) {
	l := newLifecycle(t)
	pid := l.confirm(t)

	assert.Equal(t, []int64{pid}, l.store.User(l.vehicle).CurrentActivities)
	assert.Equal(t, []int64{pid}, l.store.User(l.charger).CurrentActivities)
	assert.Equal(t, domain.RequestStatusPendingCompleted, l.store.Request(l.request).Status)

	_, err := l.service.ConfirmByVehicleOwner(context.Background(), l.vehicle, dto.ConfirmProcessRequestDTO{ChargerRequestID: l.request})
	assert.ErrorIs(t, err, processservice.ErrProcessExists)
	assert.Equal(t, []int64{pid}, l.store.User(l.vehicle).CurrentActivities)
	assert.Len(t, l.store.Notifications(), 1)
}

func TestDuplicateRatingIsRejected(t *testing.T) {
	l := newLifecycle(t)
	pid := l.confirm(t)
	ctx := context.Background()

	first, err := l.service.SubmitRating(ctx, l.vehicle, dto.SubmitRatingRequestDTO{ProcessID: pid, RatingForOther: 5})
	require.NoError(t, err)
	assert.Equal(t, "PendingCompleted", first.ProcessStatus)

	_, err = l.service.SubmitRating(ctx, l.vehicle, dto.SubmitRatingRequestDTO{ProcessID: pid, RatingForOther: 1})
	require.ErrorIs(t, err, processservice.ErrAlreadyRated)
	assert.ErrorIs(t, err, processservice.ErrValidation)

	p, ok := l.store.Process(pid)
	require.True(t, ok)
	require.NotNil(t, p.ChargerOwnerRating)
	assert.Equal(t, 5.0, *p.ChargerOwnerRating)
	assert.Nil(t, p.VehicleOwnerRating)
	assert.Len(t, l.store.RatingHistory(pid), 1)

	charger := l.store.User(l.charger)
	assert.Equal(t, 1, charger.RatingCount)
	assert.Equal(t, 5.0, charger.Rating)
}

func TestBothRatingsCompleteTheProcess(t *testing.T) {
	l := newLifecycle(t)
	pid := l.confirm(t)
	ctx := context.Background()

	_, err := l.service.SubmitRating(ctx, l.vehicle, dto.SubmitRatingRequestDTO{ProcessID: pid, RatingForOther: 4})
	require.NoError(t, err)
	resp, err := l.service.SubmitRating(ctx, l.charger, dto.SubmitRatingRequestDTO{ProcessID: pid, RatingForOther: 2})
	require.NoError(t, err)

	assert.Equal(t, "Completed", resp.ProcessStatus)
	assert.Equal(t, 2.0, *resp.YourRatingForOther)
	assert.Equal(t, 4.0, *resp.OtherRatingForYou)

	p, _ := l.store.Process(pid)
	assert.Equal(t, domain.SubStatusNone, p.SubStatus)
	assert.NotNil(t, p.DateCompleted)
	assert.Equal(t, domain.RequestStatusCompleted, l.store.Request(l.request).Status)
	for _, id := range []uuid.UUID{l.vehicle, l.charger} {
		u := l.store.User(id)
		assert.Empty(t, u.CurrentActivities)
		assert.True(t, u.IsAvailable)
	}

	summary, err := l.service.GetRatingsSummary(ctx, l.vehicle, pid)
	require.NoError(t, err)
	assert.True(t, summary.HasBoth)
}

func TestTerminateIsIdempotent(t *testing.T) {
	l := newLifecycle(t)
	pid := l.confirm(t)
	ctx := context.Background()

	changed, err := l.service.Terminate(ctx, pid, domain.StatusAborted, "timeout")
	require.NoError(t, err)
	assert.True(t, changed)

	afterFirst, _ := l.store.Process(pid)
	notifications := len(l.store.Notifications())
	ratings := len(l.store.RatingHistory(pid))

	changed, err = l.service.Terminate(ctx, pid, domain.StatusAborted, "cleanup")
	require.NoError(t, err)
	assert.False(t, changed)

	afterSecond, _ := l.store.Process(pid)
	assert.Equal(t, afterFirst, afterSecond)
	assert.Len(t, l.store.Notifications(), notifications)
	assert.Len(t, l.store.RatingHistory(pid), ratings)
	assert.Equal(t, 1, l.store.Transitions(pid))
	assert.Equal(t, domain.RequestStatusAborted, l.store.Request(l.request).Status)
	assert.Empty(t, l.store.User(l.vehicle).CurrentActivities)
}

func TestActivitiesFromBothSides(t *testing.T) {
	l := newLifecycle(t)
	pid := l.confirm(t)
	ctx := context.Background()

	mine, err := l.service.GetMyActivities(ctx, l.vehicle)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, pid, mine[0].ID)
	assert.Equal(t, "Outgoing", mine[0].Direction)
	assert.Equal(t, l.charger, mine[0].CounterpartyUserID)

	theirs, err := l.service.GetMyActivities(ctx, l.charger)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, "Incoming", theirs[0].Direction)
	assert.WithinDuration(t, time.Now(), theirs[0].DateCreated, time.Minute)
}
