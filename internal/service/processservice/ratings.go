package processservice

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AhmedSalem104/voltyks/internal/domain"
	"github.com/AhmedSalem104/voltyks/internal/dto"
	"github.com/AhmedSalem104/voltyks/internal/pg"
	"github.com/AhmedSalem104/voltyks/pkg/validate"
)

// SubmitRating records the caller's rating of the other party. The second
// rating of a process completes it.
func (s *Service) SubmitRating(ctx context.Context, callerID uuid.UUID, req dto.SubmitRatingRequestDTO) (*dto.SubmitRatingResponseDTO, error) {
	if !validate.IsRating(req.RatingForOther) {
		return nil, ErrInvalidRating
	}

	var process domain.Process
	var rateeID uuid.UUID
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.lockParty(ctx, req.ProcessID, callerID)
		if err != nil {
			return err
		}
		if p.Status == domain.StatusAborted {
			return ErrProcessClosed
		}

		given := p.RatingGivenBy(callerID)
		if *given != nil {
			return ErrAlreadyRated
		}
		rated, err := s.repos.Ratings.Exists(ctx, p.ID, callerID)
		if err != nil {
			return err
		}
		if rated {
			return ErrAlreadyRated
		}

		now := s.now()
		stars := req.RatingForOther
		rateeID = p.Counterparty(callerID)
		*given = &stars

		err = s.repos.Ratings.Create(ctx, &domain.RatingHistory{
			ProcessID: p.ID,
			RaterID:   callerID,
			RateeID:   rateeID,
			Stars:     stars,
			CreatedAt: now,
		})
		if err != nil {
			if pg.IsUniqueViolation(err, raterConstraint) {
				return ErrAlreadyRated
			}
			return err
		}
		if err := s.repos.Users.ApplyRating(ctx, rateeID, stars); err != nil {
			return err
		}

		if p.HasBothRatings() {
			p.Status = domain.StatusCompleted
			p.SubStatus = domain.SubStatusNone
			if p.DateCompleted == nil {
				p.DateCompleted = &now
			}
			if err := s.repos.Requests.UpdateStatus(ctx, p.ChargerRequestID, domain.RequestStatusCompleted); err != nil {
				return err
			}
			if err := s.releaseParties(ctx, p); err != nil {
				return err
			}
		} else {
			// A started session stays marked as started; ratings are due either way.
			if p.SubStatus == domain.SubStatusNone {
				p.SubStatus = domain.SubStatusAwaitingRatings
			}
			if p.RatingWindowOpenedAt == nil {
				p.RatingWindowOpenedAt = &now
			}
		}

		if err := s.repos.Processes.Update(ctx, p); err != nil {
			return err
		}
		process = *p
		return nil
	})
	if err != nil {
		zap.L().Info("rating rejected", zap.Int64("process_id", req.ProcessID), zap.Error(err))
		return nil, txError("submit rating", err)
	}

	s.notify(ctx, &process, rateeID, domain.NotificationRated, "You received a rating",
		fmt.Sprintf("You were rated %.1f stars for process #%d.", req.RatingForOther, process.ID),
		map[string]string{
			"processId": strconv.FormatInt(process.ID, 10),
			"stars":     strconv.FormatFloat(req.RatingForOther, 'f', -1, 64),
		})

	return &dto.SubmitRatingResponseDTO{
		ProcessID:          process.ID,
		ProcessStatus:      process.Status.String(),
		YourRatingForOther: *process.RatingGivenBy(callerID),
		OtherRatingForYou:  *process.RatingReceivedBy(callerID),
	}, nil
}

func (s *Service) GetRatingsSummary(ctx context.Context, callerID uuid.UUID, processID int64) (*dto.RatingsSummaryResponseDTO, error) {
	p, err := s.repos.Processes.Get(ctx, processID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProcessNotFound
	}
	if !p.IsParty(callerID) {
		return nil, ErrNotParty
	}
	return &dto.RatingsSummaryResponseDTO{
		ProcessID:          p.ID,
		YourRatingForOther: *p.RatingGivenBy(callerID),
		OtherRatingForYou:  *p.RatingReceivedBy(callerID),
		HasBoth:            p.HasBothRatings(),
	}, nil
}
