package processservice

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AhmedSalem104/voltyks/internal/dto"
)

const (
	directionIncoming = "Incoming"
	directionOutgoing = "Outgoing"
)

// GetMyActivities lists every process the caller took part in, newest first.
func (s *Service) GetMyActivities(ctx context.Context, callerID uuid.UUID) ([]dto.ActivityResponseDTO, error) {
	activities, err := s.repos.Processes.ListByUser(ctx, callerID)
	if err != nil {
		zap.L().Error("failed to get activities", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ActivityResponseDTO, 0, len(activities))
	for _, a := range activities {
		asChargerOwner := a.ChargerOwnerID == callerID
		direction := directionOutgoing
		if asChargerOwner {
			direction = directionIncoming
		}
		result = append(result, dto.ActivityResponseDTO{
			ID:                 a.ID,
			ChargerRequestID:   a.ChargerRequestID,
			Status:             a.Status.String(),
			SubStatus:          string(a.SubStatus),
			Direction:          direction,
			IsAsChargerOwner:   asChargerOwner,
			IsAsVehicleOwner:   a.VehicleOwnerID == callerID,
			CounterpartyUserID: a.Counterparty(callerID),
			YourRatingForOther: *a.RatingGivenBy(callerID),
			OtherRatingForYou:  *a.RatingReceivedBy(callerID),
			ChargerID:          a.ChargerID,
			BaseAmount:         a.BaseAmount,
			Fees:               a.Fees,
			EstimatedPrice:     a.EstimatedPrice,
			AmountCharged:      a.AmountCharged,
			AmountPaid:         a.AmountPaid,
			DateCreated:        a.DateCreated,
			DateCompleted:      a.DateCompleted,
		})
	}
	return result, nil
}
