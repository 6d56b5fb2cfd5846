package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/dkovalev/creditplan/docs"
	creditshandlers "github.com/dkovalev/creditplan/internal/handlers/credits"
	planshandlers "github.com/dkovalev/creditplan/internal/handlers/plans"
	"github.com/dkovalev/creditplan/internal/service"
)

type CreditHandler interface {
	GetUserCredits(w http.ResponseWriter, r *http.Request)
}

type PlanHandler interface {
	InsertPlans(w http.ResponseWriter, r *http.Request)
	GetPlansPerformance(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	CreditHandler CreditHandler
	PlanHandler   PlanHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		CreditHandler: creditshandlers.New(s.CreditService),
		PlanHandler:   planshandlers.New(s.PlanService),
	}
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
	r.Get("/user_credits/{userID}", h.CreditHandler.GetUserCredits)
	r.Post("/plans_insert", h.PlanHandler.InsertPlans)
	r.Get("/plans_performance", h.PlanHandler.GetPlansPerformance)

	return r
}
