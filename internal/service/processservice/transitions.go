package processservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/AhmedSalem104/voltyks/internal/domain"
	"github.com/AhmedSalem104/voltyks/internal/dto"
	"github.com/AhmedSalem104/voltyks/internal/pg"
)

const (
	roleChargerOwner = "ChargerOwner"
	roleVehicleOwner = "VehicleOwner"
)

// ConfirmByVehicleOwner opens the process for an accepted charging request.
func (s *Service) ConfirmByVehicleOwner(ctx context.Context, callerID uuid.UUID, req dto.ConfirmProcessRequestDTO) (*dto.ConfirmProcessResponseDTO, error) {
	var process domain.Process
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		request, err := s.repos.Requests.GetForUpdate(ctx, req.ChargerRequestID)
		if err != nil {
			return err
		}
		if request == nil {
			return ErrRequestNotFound
		}
		if request.RequesterID != callerID {
			return ErrNotRequester
		}

		existing, err := s.repos.Processes.GetByRequestID(ctx, request.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrProcessExists
		}

		estimated := request.EstimatedPrice
		if req.EstimatedPrice != nil {
			estimated = *req.EstimatedPrice
		}
		now := s.now()
		process = domain.Process{
			ChargerRequestID:     request.ID,
			VehicleOwnerID:       request.RequesterID,
			ChargerOwnerID:       request.RecipientID,
			EstimatedPrice:       estimated,
			AmountCharged:        req.AmountCharged,
			AmountPaid:           req.AmountPaid,
			Status:               domain.StatusPendingCompleted,
			RatingWindowOpenedAt: &now,
			DateCreated:          now,
		}
		id, err := s.repos.Processes.Create(ctx, &process)
		if err != nil {
			if pg.IsUniqueViolation(err, processRequestConstraint) {
				return ErrProcessExists
			}
			return err
		}
		process.ID = id

		if err := s.repos.Requests.UpdateStatus(ctx, request.ID, domain.RequestStatusPendingCompleted); err != nil {
			return err
		}
		if err := s.repos.Users.AddActivity(ctx, process.VehicleOwnerID, process.ID); err != nil {
			return err
		}
		return s.repos.Users.AddActivity(ctx, process.ChargerOwnerID, process.ID)
	})
	if err != nil {
		zap.L().Info("process confirmation rejected", zap.Int64("request_id", req.ChargerRequestID), zap.Error(err))
		return nil, txError("confirm process", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Clear(ctx, process.VehicleOwnerID, process.ChargerOwnerID); err != nil {
			zap.L().Warn("failed to clear pairing throttle", zap.Int64("process_id", process.ID), zap.Error(err))
		}
	}

	echo := dto.NotificationEcho{
		RecipientID: process.ChargerOwnerID,
		Title:       "Charging session confirmed",
		Body: fmt.Sprintf("The vehicle owner confirmed the charging session. Amount charged: %s, amount paid: %s.",
			process.AmountCharged.StringFixed(2), process.AmountPaid.StringFixed(2)),
		Type: domain.NotificationConfirmed,
		Data: map[string]string{
			"processId":      strconv.FormatInt(process.ID, 10),
			"estimatedPrice": process.EstimatedPrice.String(),
			"amountCharged":  process.AmountCharged.String(),
			"amountPaid":     process.AmountPaid.String(),
		},
	}
	s.notify(ctx, &process, echo.RecipientID, echo.Type, echo.Title, echo.Body, echo.Data)

	zap.L().Info("process confirmed", zap.Int64("process_id", process.ID), zap.Int64("request_id", process.ChargerRequestID))
	return &dto.ConfirmProcessResponseDTO{
		ProcessID:    process.ID,
		Notification: echo,
	}, nil
}

// UpdateProcess changes monetary fields and, optionally, moves the process
// forward. Unrecognized status values leave the status untouched.
func (s *Service) UpdateProcess(ctx context.Context, callerID uuid.UUID, req dto.UpdateProcessRequestDTO) (*dto.UpdateProcessResponseDTO, error) {
	cmd := domain.CommandNone
	if req.Status != nil {
		cmd = domain.ParseCommand(*req.Status)
	}

	var process domain.Process
	var changes []string
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.lockParty(ctx, req.ProcessID, callerID)
		if err != nil {
			return err
		}
		if p.Status.IsTerminal() {
			return ErrProcessClosed
		}

		changes = applyAmounts(p, req)
		statusChange, err := s.applyCommand(ctx, p, cmd, s.now())
		if err != nil {
			return err
		}
		if statusChange != "" {
			changes = append(changes, statusChange)
		}

		if err := s.repos.Processes.Update(ctx, p); err != nil {
			return err
		}
		process = *p
		return nil
	})
	if err != nil {
		zap.L().Info("process update rejected", zap.Int64("process_id", req.ProcessID), zap.Error(err))
		return nil, txError("update process", err)
	}

	body := "No changes were made."
	if len(changes) > 0 {
		body = strings.Join(changes, "; ")
	}
	echo := dto.NotificationEcho{
		RecipientID: process.Counterparty(callerID),
		Title:       "Charging process updated",
		Body:        body,
		Type:        domain.NotificationUpdated,
		Data: map[string]string{
			"processId": strconv.FormatInt(process.ID, 10),
			"status":    process.Status.String(),
		},
	}
	s.notify(ctx, &process, echo.RecipientID, echo.Type, echo.Title, echo.Body, echo.Data)

	return &dto.UpdateProcessResponseDTO{
		ProcessID:    process.ID,
		Status:       process.Status.String(),
		Notification: echo,
	}, nil
}

// OwnerDecision is the transition surface used from either party's decision
// screen. Unlike UpdateProcess it rejects unrecognized decisions.
func (s *Service) OwnerDecision(ctx context.Context, callerID uuid.UUID, req dto.OwnerDecisionRequestDTO) (*dto.OwnerDecisionResponseDTO, error) {
	cmd := domain.ParseCommand(req.Decision)
	if cmd == domain.CommandNone {
		return nil, ErrUnknownDecision
	}

	var process domain.Process
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.lockParty(ctx, req.ProcessID, callerID)
		if err != nil {
			return err
		}
		if p.Status.IsTerminal() {
			return ErrProcessClosed
		}
		if _, err := s.applyCommand(ctx, p, cmd, s.now()); err != nil {
			return err
		}
		if err := s.repos.Processes.Update(ctx, p); err != nil {
			return err
		}
		process = *p
		return nil
	})
	if err != nil {
		zap.L().Info("owner decision rejected", zap.Int64("process_id", req.ProcessID), zap.Error(err))
		return nil, txError("owner decision", err)
	}

	role, roleTitle := roleVehicleOwner, "Vehicle owner"
	if callerID == process.ChargerOwnerID {
		role, roleTitle = roleChargerOwner, "Charger owner"
	}
	var title string
	switch cmd {
	case domain.CommandComplete:
		title = roleTitle + " confirmed the session"
	case domain.CommandStart:
		title = roleTitle + " started the session"
	default:
		title = roleTitle + " aborted the session"
	}
	s.notify(ctx, &process, process.Counterparty(callerID), domain.NotificationDecision, title,
		fmt.Sprintf("Process #%d is now %s.", process.ID, process.Status),
		map[string]string{
			"processId": strconv.FormatInt(process.ID, 10),
			"decision":  cmd.String(),
			"decidedBy": role,
		})

	return &dto.OwnerDecisionResponseDTO{
		ProcessID: process.ID,
		Status:    process.Status.String(),
		DecidedBy: role,
	}, nil
}

// applyCommand performs cmd on a locked, non-terminal process and mirrors the
// result onto its charging request. It returns a human readable change line.
func (s *Service) applyCommand(ctx context.Context, p *domain.Process, cmd domain.Command, now time.Time) (string, error) {
	switch cmd {
	case domain.CommandComplete:
		p.Status = domain.StatusCompleted
		if p.DateCompleted == nil {
			p.DateCompleted = &now
		}
		if p.HasBothRatings() {
			p.SubStatus = domain.SubStatusNone
		} else {
			p.SubStatus = domain.SubStatusAwaitingRatings
			if p.RatingWindowOpenedAt == nil {
				p.RatingWindowOpenedAt = &now
			}
		}
		if err := s.repos.Requests.UpdateStatus(ctx, p.ChargerRequestID, domain.RequestStatusCompleted); err != nil {
			return "", err
		}
		if err := s.releaseParties(ctx, p); err != nil {
			return "", err
		}
		return "Status: Completed", nil

	case domain.CommandStart:
		p.SubStatus = domain.SubStatusStarted
		if err := s.repos.Requests.UpdateStatus(ctx, p.ChargerRequestID, domain.RequestStatusStarted); err != nil {
			return "", err
		}
		return "Status: Started", nil

	case domain.CommandAbort, domain.CommandEndByReport:
		p.Status = domain.StatusAborted
		p.SubStatus = domain.SubStatusNone
		if err := s.repos.Requests.UpdateStatus(ctx, p.ChargerRequestID, domain.RequestStatusAborted); err != nil {
			return "", err
		}
		if err := s.releaseParties(ctx, p); err != nil {
			return "", err
		}
		return "Status: Aborted", nil
	}
	return "", nil
}

func applyAmounts(p *domain.Process, req dto.UpdateProcessRequestDTO) []string {
	var changes []string
	set := func(label string, field *decimal.Decimal, value *decimal.Decimal) {
		if value == nil || field.Equal(*value) {
			return
		}
		changes = append(changes, fmt.Sprintf("%s: %s -> %s", label, field.StringFixed(2), value.StringFixed(2)))
		*field = *value
	}
	set("Estimated price", &p.EstimatedPrice, req.EstimatedPrice)
	set("Amount charged", &p.AmountCharged, req.AmountCharged)
	set("Amount paid", &p.AmountPaid, req.AmountPaid)
	return changes
}

// Terminate moves a process into a terminal status unless it already is in
// one, and always releases both parties. Repeated calls converge on the same
// state; only the call that changes the status notifies. It reports whether
// the status changed.
func (s *Service) Terminate(ctx context.Context, processID int64, status domain.ProcessStatus, reason string) (bool, error) {
	var process domain.Process
	var changed bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.repos.Processes.GetForUpdate(ctx, processID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrProcessNotFound
		}

		if !p.Status.IsTerminal() {
			now := s.now()
			p.Status = status
			p.SubStatus = domain.SubStatusNone
			if status == domain.StatusCompleted && p.DateCompleted == nil {
				p.DateCompleted = &now
			}
			if err := s.repos.Processes.Update(ctx, p); err != nil {
				return err
			}
			if err := s.repos.Requests.UpdateStatus(ctx, p.ChargerRequestID, status.String()); err != nil {
				return err
			}
			changed = true
		}

		if err := s.releaseParties(ctx, p); err != nil {
			return err
		}
		process = *p
		return nil
	})
	if err != nil {
		return false, txError("terminate process", err)
	}

	if changed {
		zap.L().Info("process terminated",
			zap.Int64("process_id", processID),
			zap.String("status", status.String()),
			zap.String("reason", reason),
		)
		body := fmt.Sprintf("Process #%d was closed as %s (%s).", process.ID, process.Status, reason)
		data := map[string]string{
			"processId": strconv.FormatInt(process.ID, 10),
			"status":    process.Status.String(),
			"reason":    reason,
		}
		for _, userID := range []uuid.UUID{process.VehicleOwnerID, process.ChargerOwnerID} {
			s.notify(ctx, &process, userID, domain.NotificationTerminated, "Charging process closed", body, data)
		}
	}
	return changed, nil
}
