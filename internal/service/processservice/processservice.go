package processservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AhmedSalem104/voltyks/internal/domain"
	"github.com/AhmedSalem104/voltyks/internal/pg"
)

//go:generate mockgen -source=processservice.go -destination=mock_processservice.go -package=processservice

const (
	processRequestConstraint = "processes_charger_request_id_key"
	raterConstraint          = "ratings_history_rater_uq"
)

type RequestRepo interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.ChargingRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ProcessRepo interface {
	Create(ctx context.Context, p *domain.Process) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Process, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Process, error)
	GetByRequestID(ctx context.Context, requestID int64) (*domain.Process, error)
	Update(ctx context.Context, p *domain.Process) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Activity, error)
	FindRatingWindowExpired(ctx context.Context, cutoff time.Time) ([]int64, error)
}

type RatingRepo interface {
	Exists(ctx context.Context, processID int64, raterID uuid.UUID) (bool, error)
	Create(ctx context.Context, h *domain.RatingHistory) error
}

type UserRepo interface {
	AddActivity(ctx context.Context, userID uuid.UUID, processID int64) error
	ReleaseActivity(ctx context.Context, userID uuid.UUID, processID int64) error
	RestoreAvailability(ctx context.Context, userID uuid.UUID) error
	ApplyRating(ctx context.Context, userID uuid.UUID, stars float64) error
	ListWithActivity(ctx context.Context) ([]domain.User, error)
}

type ReportRepo interface {
	ExistsForProcess(ctx context.Context, processID int64) (bool, error)
}

// Notifier delivers a notification after the owning transaction committed.
// It never reports failures back.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification, data map[string]string)
}

// Throttle holds per-pair rate-limit state owned by other modules.
type Throttle interface {
	Clear(ctx context.Context, a, b uuid.UUID) error
}

type Repos struct {
	Requests  RequestRepo
	Processes ProcessRepo
	Ratings   RatingRepo
	Users     UserRepo
	Reports   ReportRepo
}

type Service struct {
	txManager pg.TXManager
	repos     Repos
	notifier  Notifier
	throttle  Throttle
	now       func() time.Time
}

type Option func(*Service)

// WithClock replaces the wall clock used to stamp process dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(txManager pg.TXManager, repos Repos, notifier Notifier, throttle Throttle, opts ...Option) *Service {
	s := &Service{
		txManager: txManager,
		repos:     repos,
		notifier:  notifier,
		throttle:  throttle,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lockParty re-fetches the process for update and checks that callerID takes
// part in it.
func (s *Service) lockParty(ctx context.Context, processID int64, callerID uuid.UUID) (*domain.Process, error) {
	p, err := s.repos.Processes.GetForUpdate(ctx, processID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProcessNotFound
	}
	if !p.IsParty(callerID) {
		return nil, ErrNotParty
	}
	return p, nil
}

// releaseParties drops the process from both parties' current activities.
func (s *Service) releaseParties(ctx context.Context, p *domain.Process) error {
	for _, userID := range []uuid.UUID{p.VehicleOwnerID, p.ChargerOwnerID} {
		if err := s.repos.Users.ReleaseActivity(ctx, userID, p.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) notify(ctx context.Context, p *domain.Process, recipientID uuid.UUID, notificationType, title, body string, data map[string]string) {
	requestID := p.ChargerRequestID
	s.notifier.Notify(ctx, domain.Notification{
		RecipientID:      &recipientID,
		Title:            title,
		Body:             body,
		SentAt:           s.now(),
		RelatedRequestID: &requestID,
		Type:             notificationType,
	}, data)
	zap.L().Debug("notification queued",
		zap.Int64("process_id", p.ID),
		zap.String("recipient_id", recipientID.String()),
		zap.String("type", notificationType),
	)
}
