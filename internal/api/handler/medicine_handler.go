package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dstasiak/med-reminder/internal/api/validation"
	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/service"
	"github.com/dstasiak/med-reminder/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MedicineHandler struct {
	service service.MedicineService
}

func NewMedicineHandler(service service.MedicineService) *MedicineHandler {
	return &MedicineHandler{service: service}
}

// CreateMedicineResponse bundles the created medicine with its generated course.
type CreateMedicineResponse struct {
	Medicine  domain.MedicineResponse   `json:"medicine"`
	Schedules []domain.ScheduleResponse `json:"schedules"`
}

// Create handles POST /v1/profiles/{profileId}/medicines
// @Summary Add medicine
// @Description Add a medicine course. The full schedule batch for the course is generated immediately and reminders are registered for future doses. Medicines are immutable; to change a course, delete and re-create.
// @Tags medicines
// @Accept json
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid)
// @Param request body domain.CreateMedicineRequest true "Medicine course data"
// @Success 201 {object} CreateMedicineResponse "Medicine and generated schedules"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/medicines [post]
func (h *MedicineHandler) Create(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	var req domain.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	medicine, schedules, err := h.service.Create(r.Context(), profileID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Profile not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Invalid medicine parameters").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to create medicine").Write(w)
		}
		return
	}

	now := time.Now().UTC()
	response := CreateMedicineResponse{
		Medicine:  medicine.ToResponse(),
		Schedules: make([]domain.ScheduleResponse, len(schedules)),
	}
	for i := range schedules {
		response.Schedules[i] = schedules[i].ToResponse(now)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// GetByID handles GET /v1/medicines/{medicineId}
// @Summary Get medicine
// @Tags medicines
// @Produce json
// @Param medicineId path string true "Medicine UUID" format(uuid)
// @Success 200 {object} domain.MedicineResponse
// @Failure 400 {object} problem.Problem "Invalid medicine ID"
// @Failure 404 {object} problem.Problem "Medicine not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /medicines/{medicineId} [get]
func (h *MedicineHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	medicineID, err := uuid.Parse(chi.URLParam(r, "medicineId"))
	if err != nil {
		problem.BadRequest("Invalid medicine ID format").Write(w)
		return
	}

	medicine, err := h.service.GetByID(r.Context(), medicineID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Medicine not found").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to get medicine").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(medicine.ToResponse())
}

// List handles GET /v1/profiles/{profileId}/medicines
// @Summary List medicines
// @Tags medicines
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid)
// @Success 200 {array} domain.MedicineResponse
// @Failure 400 {object} problem.Problem "Invalid profile ID"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/medicines [get]
func (h *MedicineHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	medicines, err := h.service.ListByProfileID(r.Context(), profileID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Profile not found").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to list medicines").Write(w)
		}
		return
	}

	responses := make([]domain.MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = medicines[i].ToResponse()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

// Delete handles DELETE /v1/medicines/{medicineId}
// @Summary Delete medicine
// @Description Delete a medicine, cascading to all its schedules. Reminders registered for them are cancelled.
// @Tags medicines
// @Param medicineId path string true "Medicine UUID" format(uuid)
// @Success 204 "Medicine deleted"
// @Failure 400 {object} problem.Problem "Invalid medicine ID"
// @Failure 404 {object} problem.Problem "Medicine not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /medicines/{medicineId} [delete]
func (h *MedicineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	medicineID, err := uuid.Parse(chi.URLParam(r, "medicineId"))
	if err != nil {
		problem.BadRequest("Invalid medicine ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), medicineID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Medicine not found").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to delete medicine").Write(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
