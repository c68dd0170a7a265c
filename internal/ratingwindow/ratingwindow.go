// Package ratingwindow closes processes whose parties did not rate each other
// in time: missing ratings get the default rating and the process is
// finalized.
package ratingwindow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AhmedSalem104/voltyks/internal/domain"
	"github.com/AhmedSalem104/voltyks/internal/pg"
	"github.com/AhmedSalem104/voltyks/internal/service/processservice"
)

const (
	DefaultInterval = time.Minute
	DefaultWindow   = 5 * time.Minute
)

var errResolvedElsewhere = errors.New("default rating already recorded")

type Resolver struct {
	txManager pg.TXManager
	repos     processservice.Repos
	notifier  processservice.Notifier
	interval  time.Duration
	window    time.Duration
	now       func() time.Time
}

type Option func(*Resolver)

func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

func New(txManager pg.TXManager, repos processservice.Repos, notifier processservice.Notifier, interval, window time.Duration, opts ...Option) *Resolver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if window <= 0 {
		window = DefaultWindow
	}
	r := &Resolver{
		txManager: txManager,
		repos:     repos,
		notifier:  notifier,
		interval:  interval,
		window:    window,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run polls until ctx is done.
func (r *Resolver) Run(ctx context.Context) {
	zap.L().Info("Rating window resolver started", zap.Duration("interval", r.interval), zap.Duration("window", r.window))
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping rating window resolver")
			return
		case <-ticker.C:
			r.ResolveExpired(ctx)
		}
	}
}

// ResolveExpired runs a single poll cycle and returns how many processes it
// finalized.
func (r *Resolver) ResolveExpired(ctx context.Context) int {
	cutoff := r.now().Add(-r.window)
	ids, err := r.repos.Processes.FindRatingWindowExpired(ctx, cutoff)
	if err != nil {
		zap.L().Error("Failed to fetch processes with expired rating window", zap.Error(err))
		return 0
	}

	var resolved int
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		ok, err := r.resolve(ctx, id, cutoff)
		if err != nil {
			zap.L().Error("Failed to apply default rating", zap.Int64("process_id", id), zap.Error(err))
			continue
		}
		if ok {
			resolved++
		}
	}
	return resolved
}

func (r *Resolver) resolve(ctx context.Context, processID int64, cutoff time.Time) (bool, error) {
	var process domain.Process
	var defaulted []uuid.UUID

	err := r.txManager.Begin(context.WithoutCancel(ctx), func(ctx context.Context) error {
		defaulted = nil
		p, err := r.repos.Processes.GetForUpdate(ctx, processID)
		if err != nil {
			return err
		}
		if p == nil || !p.AwaitsDefaultRating() || !p.RatingWindowOpenedAt.Before(cutoff) {
			return errResolvedElsewhere
		}

		now := r.now()
		for _, rateeID := range []uuid.UUID{p.VehicleOwnerID, p.ChargerOwnerID} {
			received := p.RatingReceivedBy(rateeID)
			if *received != nil {
				continue
			}
			stars := domain.DefaultRating
			*received = &stars

			err := r.repos.Ratings.Create(ctx, &domain.RatingHistory{
				ProcessID: p.ID,
				RaterID:   domain.SystemRaterID,
				RateeID:   rateeID,
				Stars:     stars,
				CreatedAt: now,
			})
			if err != nil {
				if pg.IsUniqueViolation(err, "") {
					return errResolvedElsewhere
				}
				return err
			}
			if err := r.repos.Users.ApplyRating(ctx, rateeID, stars); err != nil {
				return err
			}
			defaulted = append(defaulted, rateeID)
		}

		reported, err := r.repos.Reports.ExistsForProcess(ctx, p.ID)
		if err != nil {
			return err
		}
		p.Status = domain.StatusCompleted
		if reported {
			p.Status = domain.StatusDisputed
		}
		p.SubStatus = domain.SubStatusNone
		p.DefaultRatingApplied = true
		if p.DateCompleted == nil {
			p.DateCompleted = &now
		}

		if err := r.repos.Processes.Update(ctx, p); err != nil {
			return err
		}
		if err := r.repos.Requests.UpdateStatus(ctx, p.ChargerRequestID, p.Status.String()); err != nil {
			return err
		}
		for _, userID := range []uuid.UUID{p.VehicleOwnerID, p.ChargerOwnerID} {
			if err := r.repos.Users.ReleaseActivity(ctx, userID, p.ID); err != nil {
				return err
			}
		}
		process = *p
		return nil
	})
	if errors.Is(err, errResolvedElsewhere) {
		zap.L().Debug("Rating window already resolved", zap.Int64("process_id", processID))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	zap.L().Info("Default rating applied",
		zap.Int64("process_id", process.ID),
		zap.String("status", process.Status.String()),
		zap.Int("defaulted", len(defaulted)),
	)
	r.notifyDefaulted(ctx, &process, defaulted)
	return true, nil
}

func (r *Resolver) notifyDefaulted(ctx context.Context, p *domain.Process, defaulted []uuid.UUID) {
	requestID := p.ChargerRequestID
	rating := strconv.FormatFloat(domain.DefaultRating, 'f', 1, 64)
	for _, userID := range defaulted {
		userID := userID
		r.notifier.Notify(ctx, domain.Notification{
			RecipientID:      &userID,
			Title:            "Rating window closed",
			Body:             fmt.Sprintf("You received a default rating of %s for process #%d.", rating, p.ID),
			SentAt:           r.now(),
			RelatedRequestID: &requestID,
			Type:             domain.NotificationDefaultRating,
		}, map[string]string{
			"processId": strconv.FormatInt(p.ID, 10),
			"rating":    rating,
			"status":    p.Status.String(),
		})
	}
}
