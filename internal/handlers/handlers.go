package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/AhmedSalem104/voltyks/docs"
	processhandlers "github.com/AhmedSalem104/voltyks/internal/handlers/processes"
	"github.com/AhmedSalem104/voltyks/internal/service"
	"github.com/AhmedSalem104/voltyks/pkg/auth"
	"github.com/AhmedSalem104/voltyks/pkg/utils"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type ProcessHandler interface {
	ConfirmByVehicleOwner(w http.ResponseWriter, r *http.Request)
	UpdateProcess(w http.ResponseWriter, r *http.Request)
	OwnerDecision(w http.ResponseWriter, r *http.Request)
	SubmitRating(w http.ResponseWriter, r *http.Request)
	GetRatingsSummary(w http.ResponseWriter, r *http.Request)
	GetMyActivities(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ProcessHandler ProcessHandler
	jwtService     auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		ProcessHandler: processhandlers.New(s.ProcessService),
		jwtService:     jwtService,
	}
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Router		/health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", Health)

	r.Route("/api/processes", func(r chi.Router) {
		r.Use(auth.Middleware(h.jwtService))
		r.Post("/confirm-by-vehicle-owner", h.ProcessHandler.ConfirmByVehicleOwner)
		r.Post("/update", h.ProcessHandler.UpdateProcess)
		r.Post("/owner-decision", h.ProcessHandler.OwnerDecision)
		r.Post("/submit-rating", h.ProcessHandler.SubmitRating)
		r.Get("/{id}/ratings", h.ProcessHandler.GetRatingsSummary)
		r.Get("/my-activities", h.ProcessHandler.GetMyActivities)
	})

	return r
}
