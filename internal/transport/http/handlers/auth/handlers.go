package authhandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/auth"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

const tokenTTL = 12 * time.Hour

type Handler struct {
	service *auth.Service
	secret  string
}

func NewHandler(service *auth.Service, secret string) *Handler {
	return &Handler{service: service, secret: secret}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	LoginAs  string `json:"loginAs"`
}

type loginResponse struct {
	Token      string `json:"token"`
	Role       string `json:"role"`
	EmployeeID string `json:"empId,omitempty"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON payload", requestID)
		return
	}
	if strings.TrimSpace(payload.Username) == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "bad_request", "username and password are required", requestID)
		return
	}

	var identity auth.Identity
	var err error
	switch strings.ToLower(payload.LoginAs) {
	case auth.RoleEmployee:
		identity, err = h.service.LoginEmployee(r.Context(), payload.Username, payload.Password)
	default:
		identity, err = h.service.LoginAdmin(r.Context(), payload.Username, payload.Password)
	}
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}

	token, err := auth.GenerateToken(h.secret, identity, tokenTTL)
	if err != nil {
		shared.WriteError(w, err, requestID)
		return
	}
	api.Success(w, loginResponse{Token: token, Role: identity.Role, EmployeeID: identity.EmployeeID}, requestID)
}
