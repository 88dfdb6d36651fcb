package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/api/v1/dto"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/middleware"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/model"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService service.UserService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewUserHandler(userService service.UserService, v *validator.Validate, logger zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, validate: v, logger: logger}
}

// RegisterRoutes mounts user routes. Reading the current user requires Basic
// auth; signing up does not.
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	getCurrentUser := authMw(http.HandlerFunc(h.getCurrentUser))
	mux.Handle("/users", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			getCurrentUser.ServeHTTP(w, r)
		case http.MethodPost:
			h.createUser(w, r)
		default:
			RouteNotFound(w)
		}
	}))
}

// getCurrentUser returns the authenticated user's non-secret fields.
func (h *UserHandler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFrom(r.Context())
	if !ok {
		accessDenied(w)
		return
	}

	// Re-read through the service so the response reflects the stored record.
	user, err := h.userService.Get(r.Context(), current.ID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := dto.UserResponseDTO{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	}
	respondJSON(w, http.StatusOK, resp)
}

// createUser signs up a new user. On success the response carries no body,
// only a Location header pointing at the root path.
func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid JSON payload"})
		return
	}
	if err := checkStruct(h.validate, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
	}
	if _, err := h.userService.Create(r.Context(), user); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}

func accessDenied(w http.ResponseWriter) {
	respondJSON(w, http.StatusUnauthorized, messageResponse{Message: "Access Denied"})
}
