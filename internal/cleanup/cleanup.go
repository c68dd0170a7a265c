// Package cleanup repairs drift between users' current activities and the
// processes they point at, and aborts processes that stayed open too long.
package cleanup

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AhmedSalem104/voltyks/internal/domain"
)

//go:generate mockgen -source=cleanup.go -destination=mock_cleanup.go -package=cleanup

const (
	DefaultInterval = 5 * time.Minute
	DefaultTimeout  = 10 * time.Minute

	reasonTimeout = "timeout"
	reasonCleanup = "cleanup"
)

type ProcessRepo interface {
	Get(ctx context.Context, id int64) (*domain.Process, error)
}

type UserRepo interface {
	ListWithActivity(ctx context.Context) ([]domain.User, error)
	ReleaseActivity(ctx context.Context, userID uuid.UUID, processID int64) error
	RestoreAvailability(ctx context.Context, userID uuid.UUID) error
}

// Terminator closes a process idempotently and releases both of its parties.
type Terminator interface {
	Terminate(ctx context.Context, processID int64, status domain.ProcessStatus, reason string) (bool, error)
}

type Cleaner struct {
	processes  ProcessRepo
	users      UserRepo
	terminator Terminator
	interval   time.Duration
	timeout    time.Duration
	now        func() time.Time
}

type Option func(*Cleaner)

func WithClock(now func() time.Time) Option {
	return func(c *Cleaner) { c.now = now }
}

func New(processes ProcessRepo, users UserRepo, terminator Terminator, interval, timeout time.Duration, opts ...Option) *Cleaner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Cleaner{
		processes:  processes,
		users:      users,
		terminator: terminator,
		interval:   interval,
		timeout:    timeout,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run polls until ctx is done.
func (c *Cleaner) Run(ctx context.Context) {
	zap.L().Info("Stale process cleanup started", zap.Duration("interval", c.interval), zap.Duration("timeout", c.timeout))
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping stale process cleanup")
			return
		case <-ticker.C:
			c.Sweep(ctx)
		}
	}
}

// Stats summarizes one sweep.
type Stats struct {
	Users    int
	Repaired int
	Released int
	Aborted  int
}

// Sweep runs a single cleanup cycle.
func (c *Cleaner) Sweep(ctx context.Context) Stats {
	var stats Stats
	users, err := c.users.ListWithActivity(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch users with activities", zap.Error(err))
		return stats
	}

	for _, u := range users {
		if ctx.Err() != nil {
			break
		}
		stats.Users++
		c.sweepUser(ctx, u, &stats)
	}

	if stats.Repaired+stats.Released+stats.Aborted > 0 {
		zap.L().Info("Stale process cleanup finished",
			zap.Int("users", stats.Users),
			zap.Int("repaired", stats.Repaired),
			zap.Int("released", stats.Released),
			zap.Int("aborted", stats.Aborted),
		)
	}
	return stats
}

func (c *Cleaner) sweepUser(ctx context.Context, u domain.User, stats *Stats) {
	writeCtx := context.WithoutCancel(ctx)

	for _, processID := range u.CurrentActivities {
		if ctx.Err() != nil {
			return
		}
		log := zap.L().With(zap.String("user_id", u.ID.String()), zap.Int64("process_id", processID))

		p, err := c.processes.Get(ctx, processID)
		if err != nil {
			log.Error("Failed to load tracked process", zap.Error(err))
			continue
		}

		switch {
		case p == nil || !p.IsParty(u.ID):
			if err := c.users.ReleaseActivity(writeCtx, u.ID, processID); err != nil {
				log.Error("Failed to drop unknown activity", zap.Error(err))
				continue
			}
			log.Warn("Dropped activity without a matching process")
			stats.Repaired++

		case p.Status.IsTerminal():
			if _, err := c.terminator.Terminate(writeCtx, processID, p.Status, reasonCleanup); err != nil {
				log.Error("Failed to release terminal process", zap.Error(err))
				continue
			}
			stats.Released++

		case c.now().Sub(p.DateCreated) > c.timeout:
			changed, err := c.terminator.Terminate(writeCtx, processID, domain.StatusAborted, reasonTimeout)
			if err != nil {
				log.Error("Failed to abort stale process", zap.Error(err))
				continue
			}
			if changed {
				stats.Aborted++
			} else {
				stats.Released++
			}
		}
	}

	if err := c.users.RestoreAvailability(writeCtx, u.ID); err != nil {
		zap.L().Error("Failed to restore availability", zap.String("user_id", u.ID.String()), zap.Error(err))
	}
}
