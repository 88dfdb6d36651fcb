package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// messageResponse is the uniform error envelope. Message is either a string or
// a list of per-field messages.
type messageResponse struct {
	Message any `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError translates a failure into an HTTP response. The mapping is total:
// anything unclassified becomes a 500 rather than leaking the raw error.
func writeError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var validationErr *service.ValidationError
	var conflictErr *service.ConflictError
	var forbiddenErr *service.ForbiddenError

	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: validationErr.Messages})
	case errors.As(err, &conflictErr):
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: conflictErr.Messages})
	case errors.As(err, &forbiddenErr):
		respondJSON(w, http.StatusForbidden, messageResponse{Message: forbiddenErr.Message})
	case errors.Is(err, service.ErrCourseNotFound):
		respondJSON(w, http.StatusNotFound, messageResponse{Message: "Course not found"})
	case errors.Is(err, service.ErrUserNotFound):
		respondJSON(w, http.StatusNotFound, messageResponse{Message: "User not found"})
	default:
		logger.Error().Err(err).Msg("Unhandled error")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Internal Server Error"})
	}
}

// RouteNotFound is the catch-all response for unmatched routes.
func RouteNotFound(w http.ResponseWriter) {
	respondJSON(w, http.StatusNotFound, messageResponse{Message: "Route Not Found"})
}

// NotFoundHandler serves RouteNotFound for any request.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RouteNotFound(w)
	})
}

// NewValidator builds the request validator. Field names in violation
// messages come from the json tags so they match the wire format.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// validationError converts validator failures into the API's per-field
// messages, one per violated field.
func validationError(errs validator.ValidationErrors) *service.ValidationError {
	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		messages = append(messages, fmt.Sprintf("Please provide a value for '%s'", fieldErr.Field()))
	}
	return &service.ValidationError{Messages: messages}
}

// checkStruct runs the validator and shapes any failure for writeError.
func checkStruct(validate *validator.Validate, payload any) error {
	if err := validate.Struct(payload); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			return validationError(errs)
		}
		return err
	}
	return nil
}
