package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/auth"
	"paydesk/internal/domain/reports"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type Handler struct {
	service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequireCapability(auth.OpRegisterExport)).Get("/salaries/register.csv", h.handleRegisterCSV)
		r.With(middleware.RequireCapability(auth.OpRegisterExport)).Get("/salaries/register.xlsx", h.handleRegisterXLSX)
	})
}

func (h *Handler) handleRegisterCSV(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="salary_register.csv"`)
	if err := h.service.WriteRegisterCSV(r.Context(), identity, w); err != nil {
		shared.WriteError(w, err, requestID)
	}
}

func (h *Handler) handleRegisterXLSX(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="salary_register.xlsx"`)
	if err := h.service.WriteRegisterXLSX(r.Context(), identity, w); err != nil {
		shared.WriteError(w, err, requestID)
	}
}
