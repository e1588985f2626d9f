package domain

import (
	"time"

	"github.com/google/uuid"
)

// InsightsContext is the aggregated adherence data handed to the LLM. It
// carries no raw identifiers beyond what the narrative needs.
type InsightsContext struct {
	ProfileName string              `json:"profile_name"`
	Window      InsightsWindow      `json:"window"`
	Adherence   AdherenceResponse   `json:"adherence"`
	Medicines   []MedicineBreakdown `json:"medicines"`
}

type InsightsWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// MedicineBreakdown summarizes one medicine's doses in the window.
type MedicineBreakdown struct {
	Name    string `json:"name"`
	Dose    string `json:"dose"`
	Taken   int    `json:"taken"`
	Skipped int    `json:"skipped"`
	Overdue int    `json:"overdue"`
}

// LLMInsightsOutput is the strict JSON shape the model must return.
type LLMInsightsOutput struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
}

// InsightsResponse is the response body for the insights endpoint.
type InsightsResponse struct {
	ProfileID   uuid.UUID         `json:"profile_id"`
	Window      InsightsWindow    `json:"window"`
	Adherence   int               `json:"adherence"`
	Narrative   LLMInsightsOutput `json:"narrative"`
	GeneratedAt time.Time         `json:"generated_at"`
}
