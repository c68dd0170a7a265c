package processes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AhmedSalem104/voltyks/internal/dto"
	"github.com/AhmedSalem104/voltyks/internal/service/processservice"
	"github.com/AhmedSalem104/voltyks/pkg/auth"
	"github.com/AhmedSalem104/voltyks/pkg/utils"
)

//go:generate mockgen -source=processes.go -destination=mock_processes.go -package=processes

type Service interface {
	ConfirmByVehicleOwner(ctx context.Context, callerID uuid.UUID, req dto.ConfirmProcessRequestDTO) (*dto.ConfirmProcessResponseDTO, error)
	UpdateProcess(ctx context.Context, callerID uuid.UUID, req dto.UpdateProcessRequestDTO) (*dto.UpdateProcessResponseDTO, error)
	OwnerDecision(ctx context.Context, callerID uuid.UUID, req dto.OwnerDecisionRequestDTO) (*dto.OwnerDecisionResponseDTO, error)
	SubmitRating(ctx context.Context, callerID uuid.UUID, req dto.SubmitRatingRequestDTO) (*dto.SubmitRatingResponseDTO, error)
	GetRatingsSummary(ctx context.Context, callerID uuid.UUID, processID int64) (*dto.RatingsSummaryResponseDTO, error)
	GetMyActivities(ctx context.Context, callerID uuid.UUID) ([]dto.ActivityResponseDTO, error)
}

type ProcessHandler struct {
	processService Service
}

func New(processService Service) *ProcessHandler {
	return &ProcessHandler{
		processService: processService,
	}
}

// ConfirmByVehicleOwner godoc
//
//	@Summary		Confirm a charging session
//	@Description	The vehicle owner confirms an accepted charging request and opens its process.
//	@Tags			Processes
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ConfirmProcessRequestDTO	true	"Charging request and amounts"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ConfirmProcessResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not the requester"
//	@Failure		404	{object}	utils.Response	"Charging request not found"
//	@Failure		409	{object}	utils.Response	"Process already exists"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/processes/confirm-by-vehicle-owner [post]
func (h *ProcessHandler) ConfirmByVehicleOwner(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmProcessRequestDTO
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.processService.ConfirmByVehicleOwner(r.Context(), callerID(r), req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateProcess godoc
//
//	@Summary		Update a process
//	@Description	Either party updates amounts or requests a status change.
//	@Tags			Processes
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.UpdateProcessRequestDTO	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UpdateProcessResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not a party"
//	@Failure		404	{object}	utils.Response	"Process not found"
//	@Failure		422	{object}	utils.Response	"Process is closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/processes/update [post]
func (h *ProcessHandler) UpdateProcess(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProcessRequestDTO
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.processService.UpdateProcess(r.Context(), callerID(r), req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// OwnerDecision godoc
//
//	@Summary		Decide on a process
//	@Description	Either party completes, starts, aborts or ends a process by report.
//	@Tags			Processes
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.OwnerDecisionRequestDTO	true	"Decision"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OwnerDecisionResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not a party"
//	@Failure		404	{object}	utils.Response	"Process not found"
//	@Failure		422	{object}	utils.Response	"Unknown decision or process is closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/processes/owner-decision [post]
func (h *ProcessHandler) OwnerDecision(w http.ResponseWriter, r *http.Request) {
	var req dto.OwnerDecisionRequestDTO
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.processService.OwnerDecision(r.Context(), callerID(r), req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// SubmitRating godoc
//
//	@Summary		Rate the other party
//	@Description	Each party rates the other once per process. The second rating completes the process.
//	@Tags			Processes
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.SubmitRatingRequestDTO	true	"Rating"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SubmitRatingResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not a party"
//	@Failure		404	{object}	utils.Response	"Process not found"
//	@Failure		409	{object}	utils.Response	"Already rated"
//	@Failure		422	{object}	utils.Response	"Rating out of range or process is closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/processes/submit-rating [post]
func (h *ProcessHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitRatingRequestDTO
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.processService.SubmitRating(r.Context(), callerID(r), req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetRatingsSummary godoc
//
//	@Summary		Ratings of a process
//	@Description	Returns both ratings of a process from the caller's perspective.
//	@Tags			Processes
//	@Produce		json
//	@Param			id	path	int	true	"Process id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RatingsSummaryResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed process id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not a party"
//	@Failure		404	{object}	utils.Response	"Process not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/processes/{id}/ratings [get]
func (h *ProcessHandler) GetRatingsSummary(w http.ResponseWriter, r *http.Request) {
	processID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || processID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid process id")
		return
	}
	resp, err := h.processService.GetRatingsSummary(r.Context(), callerID(r), processID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetMyActivities godoc
//
//	@Summary		List my processes
//	@Description	Every process the caller took part in, newest first.
//	@Tags			Processes
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ActivityResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/processes/my-activities [get]
func (h *ProcessHandler) GetMyActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.processService.GetMyActivities(r.Context(), callerID(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, activities)
}

func callerID(r *http.Request) uuid.UUID {
	userID, _ := auth.UserIDFromContext(r.Context())
	return userID
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, processservice.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, processservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, processservice.ErrProcessExists), errors.Is(err, processservice.ErrAlreadyRated):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, processservice.ErrValidation):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		zap.L().Error("process request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
