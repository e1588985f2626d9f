package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dstasiak/med-reminder/internal/api/validation"
	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/service"
	"github.com/dstasiak/med-reminder/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	service service.DoseService
}

func NewScheduleHandler(service service.DoseService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Resolve handles POST /v1/schedules/{scheduleId}/resolve
// @Summary Resolve a dose
// @Description Mark a pending dose as taken or skipped. Resolving an already resolved dose is an idempotent no-op that returns the stored record with 200.
// @Tags schedules
// @Accept json
// @Produce json
// @Param scheduleId path string true "Schedule UUID" format(uuid)
// @Param request body domain.ResolveDoseRequest true "Resolution action"
// @Success 200 {object} domain.ScheduleResponse "Resolved (or previously resolved) schedule"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "Schedule not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /schedules/{scheduleId}/resolve [post]
func (h *ScheduleHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := uuid.Parse(chi.URLParam(r, "scheduleId"))
	if err != nil {
		problem.BadRequest("Invalid schedule ID format").Write(w)
		return
	}

	var req domain.ResolveDoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	schedule, _, err := h.service.Resolve(r.Context(), scheduleID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Schedule not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Action must be take or skip").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to resolve schedule").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schedule.ToResponse(time.Now().UTC()))
}

// Today handles GET /v1/profiles/{profileId}/schedules/today
// @Summary Today's schedules
// @Description List the profile's schedules for the current calendar day. A pending dose whose time has passed reads as overdue.
// @Tags schedules
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid)
// @Success 200 {array} domain.ScheduleResponse
// @Failure 400 {object} problem.Problem "Invalid profile ID"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/schedules/today [get]
func (h *ScheduleHandler) Today(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	schedules, err := h.service.Today(r.Context(), profileID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Profile not found").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to list today's schedules").Write(w)
		}
		return
	}

	now := time.Now().UTC()
	responses := make([]domain.ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = schedules[i].ToResponse(now)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

// History handles GET /v1/profiles/{profileId}/schedules
// @Summary Schedule history
// @Description Fetch paginated schedule history. Filter by date range. Results sorted by scheduled_time descending (newest first).
// @Tags schedules
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid)
// @Param from query string false "Start of date range (RFC3339)" format(date-time)
// @Param to query string false "End of date range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.ScheduleListResponse "Schedules with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/schedules [get]
func (h *ScheduleHandler) History(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.History(r.Context(), profileID, filter)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Profile not found").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to list schedules").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.ScheduleFilter, []problem.FieldError) {
	var filter domain.ScheduleFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
