package employeeshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/auth"
	"paydesk/internal/domain/core"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type Handler struct {
	service *core.Service
}

func NewHandler(service *core.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequireCapability(auth.OpEmployeesRead)).Get("/", h.handleList)
		r.With(middleware.RequireCapability(auth.OpEmployeesRead)).Get("/search", h.handleSearch)
		r.With(middleware.RequireCapability(auth.OpEmployeesWrite)).Post("/", h.handleCreate)
		r.With(middleware.RequireCapability(auth.OpEmployeesRead)).Get("/{empID}", h.handleGet)
		r.With(middleware.RequireCapability(auth.OpEmployeesWrite)).Put("/{empID}", h.handleUpdate)
		r.With(middleware.RequireCapability(auth.OpEmployeesWrite)).Delete("/{empID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	employees, err := h.service.ListEmployees(r.Context(), identity)
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Success(w, employees, requestID)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	employees, err := h.service.SearchEmployees(r.Context(), identity, r.URL.Query().Get("q"))
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Success(w, employees, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	emp, err := h.service.GetEmployee(r.Context(), identity, chi.URLParam(r, "empID"))
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	var payload core.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON payload", requestID)
		return
	}

	emp, err := h.service.CreateEmployee(r.Context(), identity, payload)
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Created(w, emp, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	var payload core.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON payload", requestID)
		return
	}
	payload.EmpID = chi.URLParam(r, "empID")

	emp, err := h.service.UpdateEmployee(r.Context(), identity, payload)
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	if err := h.service.DeleteEmployee(r.Context(), identity, chi.URLParam(r, "empID")); err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}
