package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/api/v1/dto"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/middleware"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/model"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate, logger: logger}
}

// RegisterRoutes mounts course routes. Reads are public; mutations require
// Basic auth.
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	createCourse := authMw(http.HandlerFunc(h.createCourse))
	mutateCourse := authMw(http.HandlerFunc(h.mutateCourse))

	mux.Handle("/courses", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.listCourses(w, r)
		case http.MethodPost:
			createCourse.ServeHTTP(w, r)
		default:
			RouteNotFound(w)
		}
	}))
	mux.Handle("/courses/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.getCourse(w, r)
		case http.MethodPut, http.MethodDelete:
			mutateCourse.ServeHTTP(w, r)
		default:
			RouteNotFound(w)
		}
	}))
}

// courseID parses the trailing path segment. A non-numeric id is treated the
// same as a course that does not exist.
func courseID(r *http.Request) (int, error) {
	raw := strings.TrimPrefix(r.URL.Path, "/courses/")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, service.ErrCourseNotFound
	}
	return id, nil
}

func courseResponse(c *model.Course) dto.CourseResponseDTO {
	return dto.CourseResponseDTO{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
		User: dto.UserResponseDTO{
			ID:           c.Owner.ID,
			FirstName:    c.Owner.FirstName,
			LastName:     c.Owner.LastName,
			EmailAddress: c.Owner.EmailAddress,
		},
	}
}

// listCourses returns every course together with its owner.
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	responses := make([]dto.CourseResponseDTO, 0, len(courses))
	for i := range courses {
		responses = append(responses, courseResponse(&courses[i]))
	}
	respondJSON(w, http.StatusOK, responses)
}

// getCourse returns a single course with its owner, or a 404.
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	id, err := courseID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	course, err := h.courseService.GetCourse(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, courseResponse(course))
}

// createCourse stores a new course owned by the authenticated user. On success
// the response carries no body, only a Location header for the new course.
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		accessDenied(w)
		return
	}

	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid JSON payload"})
		return
	}
	if err := checkStruct(h.validate, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	course := &model.Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}
	created, err := h.courseService.CreateCourse(r.Context(), user, course)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/course/%d", created.ID))
	w.WriteHeader(http.StatusCreated)
}

// mutateCourse dispatches PUT and DELETE on /courses/{id}.
func (h *CourseHandler) mutateCourse(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		h.updateCourse(w, r)
	case http.MethodDelete:
		h.deleteCourse(w, r)
	default:
		RouteNotFound(w)
	}
}

func (h *CourseHandler) updateCourse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		accessDenied(w)
		return
	}
	id, err := courseID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req dto.CourseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid JSON payload"})
		return
	}
	// Validation runs before the ownership check, matching the request state
	// machine: validating -> owning-check -> executing.
	if err := checkStruct(h.validate, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	course := &model.Course{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}
	if err := h.courseService.UpdateCourse(r.Context(), user, course); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		accessDenied(w)
		return
	}
	id, err := courseID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.courseService.DeleteCourse(r.Context(), user, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
