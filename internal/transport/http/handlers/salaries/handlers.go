package salarieshandler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/auth"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/domain/receipt"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type Handler struct {
	service  *payroll.Service
	exporter *receipt.Exporter
}

func NewHandler(service *payroll.Service, exporter *receipt.Exporter) *Handler {
	return &Handler{service: service, exporter: exporter}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/salaries", func(r chi.Router) {
		r.With(middleware.RequireCapability(auth.OpSalariesRead)).Get("/", h.handleList)
		r.With(middleware.RequireCapability(auth.OpSalariesWrite)).Post("/", h.handleCreate)
		r.With(middleware.RequireCapability(auth.OpSalariesRead)).Get("/{salaryID}", h.handleGet)
		r.With(middleware.RequireCapability(auth.OpSalariesWrite)).Put("/{salaryID}", h.handleUpdate)
		r.With(middleware.RequireCapability(auth.OpSalariesWrite)).Delete("/{salaryID}", h.handleDelete)
		r.With(middleware.RequireCapability(auth.OpSalariesRead)).Get("/{salaryID}/receipt", h.handleReceiptPreview)
		r.With(middleware.RequireCapability(auth.OpReceiptsExport)).Post("/{salaryID}/receipt/export", h.handleReceiptExport)
	})
	r.With(middleware.RequireCapability(auth.OpSalariesRead)).Get("/employees/{empID}/salaries", h.handleListForEmployee)
}

func salaryID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "salaryID"), 10, 64)
	return id, err == nil
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	records, err := h.service.ListSalaries(r.Context(), identity)
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handleListForEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	records, err := h.service.ListSalariesForEmployee(r.Context(), identity, chi.URLParam(r, "empID"))
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	id, ok := salaryID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "salary id must be an integer", requestID)
		return
	}
	rec, err := h.service.GetSalary(r.Context(), identity, id)
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Success(w, rec, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	var payload payroll.SalaryInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON payload", requestID)
		return
	}

	rec, err := h.service.CreateSalary(r.Context(), identity, payload)
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Created(w, rec, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	id, ok := salaryID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "salary id must be an integer", requestID)
		return
	}
	var payload payroll.SalaryInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON payload", requestID)
		return
	}

	rec, err := h.service.UpdateSalary(r.Context(), identity, id, payload)
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Success(w, rec, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	id, ok := salaryID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "salary id must be an integer", requestID)
		return
	}
	if err := h.service.DeleteSalary(r.Context(), identity, id); err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

// handleReceiptPreview returns the plain-text rendering for on-screen
// display, without writing anything to disk.
func (h *Handler) handleReceiptPreview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	id, ok := salaryID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "salary id must be an integer", requestID)
		return
	}
	row, err := h.service.Receipt(r.Context(), identity, id)
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(receipt.RenderText(receipt.Build(*row))))
}

func (h *Handler) handleReceiptExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	id, ok := salaryID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "salary id must be an integer", requestID)
		return
	}
	row, err := h.service.Receipt(r.Context(), identity, id)
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}

	result, err := h.exporter.Export(*row)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_error", err.Error(), requestID)
		return
	}
	api.Success(w, result, requestID)
}
