package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/llm"
	"github.com/dstasiak/med-reminder/internal/report"
	"github.com/dstasiak/med-reminder/internal/service"
	"github.com/dstasiak/med-reminder/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// InsightsHandler handles the adherence analytics endpoints: the ratio
// itself, the exported report, and the LLM narrative.
type InsightsHandler struct {
	adherenceService service.AdherenceService
	insightsService  service.InsightsService
	exporter         *report.Exporter
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(
	adherenceService service.AdherenceService,
	insightsService service.InsightsService,
	exporter *report.Exporter,
) *InsightsHandler {
	return &InsightsHandler{
		adherenceService: adherenceService,
		insightsService:  insightsService,
		exporter:         exporter,
	}
}

// GetAdherence handles GET /v1/profiles/{profileId}/adherence
// @Summary Get adherence
// @Description Compute the profile's adherence percentage for a period. Defaults to the current calendar day. Every past-due dose counts in the denominator; only taken doses count in the numerator.
// @Tags adherence
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid)
// @Param from query string false "Start of period (RFC3339)" format(date-time)
// @Param to query string false "End of period (RFC3339)" format(date-time)
// @Success 200 {object} domain.AdherenceResponse "Adherence summary"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/adherence [get]
func (h *InsightsHandler) GetAdherence(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	from, to, fieldErrors := parsePeriod(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.adherenceService.Compute(r.Context(), profileID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Profile not found").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to compute adherence").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetReport handles GET /v1/profiles/{profileId}/report
// @Summary Export adherence report
// @Description Render the profile's adherence over a period as a Markdown document. Defaults to the last 7 days.
// @Tags adherence
// @Produce text/markdown
// @Param profileId path string true "Profile UUID" format(uuid)
// @Param from query string false "Start of period (RFC3339)" format(date-time)
// @Param to query string false "End of period (RFC3339)" format(date-time)
// @Success 200 {string} string "Markdown report"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/report [get]
func (h *InsightsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	from, to, fieldErrors := parsePeriod(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	document, err := h.exporter.Export(r.Context(), profileID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Profile not found").Write(w)
		case errors.Is(err, domain.ErrStorageUnavailable):
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to export report").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(document))
}

// GetInsights handles GET /v1/profiles/{profileId}/insights
// @Summary Get LLM adherence insights
// @Description Generate a non-medical adherence narrative from the last 30 days using an LLM. Unavailable (503) when no OpenAI key is configured.
// @Tags adherence
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid)
// @Success 200 {object} domain.InsightsResponse "Adherence narrative"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /profiles/{profileId}/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	result, err := h.insightsService.Generate(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.FeatureUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate insights from LLM").Write(w)
			return
		}
		if errors.Is(err, domain.ErrStorageUnavailable) {
			problem.StorageUnavailable("Storage is temporarily unavailable").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// parsePeriod parses optional from/to RFC3339 query parameters. Both zero
// when absent; services apply their own defaults.
func parsePeriod(r *http.Request) (time.Time, time.Time, []problem.FieldError) {
	var from, to time.Time
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			from = parsed
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			to = parsed
		}
	}

	if len(fieldErrors) > 0 {
		return from, to, fieldErrors
	}
	return from, to, nil
}
