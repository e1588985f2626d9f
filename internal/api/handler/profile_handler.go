package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dstasiak/med-reminder/internal/api/validation"
	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/service"
	"github.com/dstasiak/med-reminder/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Create handles POST /v1/profiles
// @Summary Create profile
// @Description Create a person profile with a daily wake/sleep window. Sleep time past midnight (e.g. 01:00) is supported.
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body domain.CreateProfileRequest true "Profile data"
// @Success 201 {object} domain.ProfileResponse "Profile created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTime):
			problem.BadRequest("Wake and sleep times must be 24h HH:MM clock values").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to create profile").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// GetByID handles GET /v1/profiles/{profileId}
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid)
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem "Invalid profile ID"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId} [get]
func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	profile, err := h.service.GetByID(r.Context(), profileID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Profile not found").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to get profile").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// List handles GET /v1/profiles
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} domain.ProfileResponse
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles [get]
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
			return
		}
		problem.InternalError("Failed to list profiles").Write(w)
		return
	}

	responses := make([]domain.ProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = profiles[i].ToResponse()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

// Update handles PUT /v1/profiles/{profileId}
// @Summary Update profile
// @Description Update profile attributes. Changing the wake/sleep window applies to courses created afterwards; existing schedules are not regenerated.
// @Tags profiles
// @Accept json
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid)
// @Param request body domain.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId} [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	var req domain.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.Update(r.Context(), profileID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Profile not found").Write(w)
		case errors.Is(err, domain.ErrInvalidTime):
			problem.BadRequest("Wake and sleep times must be 24h HH:MM clock values").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to update profile").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// Delete handles DELETE /v1/profiles/{profileId}
// @Summary Delete profile
// @Description Delete a profile, cascading to its medicines and schedules. Pending reminders are cancelled.
// @Tags profiles
// @Param profileId path string true "Profile UUID" format(uuid)
// @Success 204 "Profile deleted"
// @Failure 400 {object} problem.Problem "Invalid profile ID"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId} [delete]
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), profileID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Profile not found").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to delete profile").Write(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
