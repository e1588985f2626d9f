package domain

import (
	"time"

	"github.com/google/uuid"
)

// DoseStatus is the persisted resolution state of a schedule.
// OVERDUE is never stored; it is a display-only projection computed at read
// time from a pending status and a past scheduled time.
type DoseStatus string

const (
	DoseStatusPending DoseStatus = "pending"
	DoseStatusTaken   DoseStatus = "taken"
	DoseStatusSkipped DoseStatus = "skipped"
	DoseStatusOverdue DoseStatus = "overdue"
)

// DoseAction is a user decision on a pending dose.
type DoseAction string

const (
	DoseActionTake DoseAction = "take"
	DoseActionSkip DoseAction = "skip"
)

// Schedule is one concrete instant a dose is due. Schedules are created in
// bulk when a medicine is added (one batch per course) and each is mutated
// at most once, from pending to taken or skipped.
type Schedule struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MedicineID uuid.UUID `gorm:"type:uuid;not null;index" json:"medicine_id"`
	// ProfileID is denormalized from the medicine for indexed range lookups.
	ProfileID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_schedules_profile_time" json:"profile_id"`
	ScheduledTime   time.Time  `gorm:"not null;index:idx_schedules_profile_time" json:"scheduled_time"`
	Status          DoseStatus `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	ActualTakenTime *time.Time `json:"actual_taken_time,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Medicine Medicine `gorm:"foreignKey:MedicineID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// DisplayStatus projects the status shown to the user at the given instant:
// a pending schedule whose time has passed displays as overdue. Storage is
// never mutated for display.
func (s *Schedule) DisplayStatus(now time.Time) DoseStatus {
	if s.Status == DoseStatusPending && s.ScheduledTime.Before(now) {
		return DoseStatusOverdue
	}
	return s.Status
}

// Resolved reports whether the schedule has left the pending state.
func (s *Schedule) Resolved() bool {
	return s.Status != DoseStatusPending
}

// ResolveDoseRequest is the request body for resolving a schedule.
type ResolveDoseRequest struct {
	// take or skip
	Action DoseAction `json:"action" validate:"required,oneof=take skip" example:"take" enums:"take,skip"`
}

// ScheduleResponse is the response body for schedule endpoints. Status
// carries the displayed status, so a past-due pending dose reads as overdue.
type ScheduleResponse struct {
	ID              uuid.UUID  `json:"id"`
	MedicineID      uuid.UUID  `json:"medicine_id"`
	ProfileID       uuid.UUID  `json:"profile_id"`
	ScheduledTime   time.Time  `json:"scheduled_time"`
	Status          DoseStatus `json:"status"`
	ActualTakenTime *time.Time `json:"actual_taken_time,omitempty"`
}

func (s *Schedule) ToResponse(now time.Time) ScheduleResponse {
	return ScheduleResponse{
		ID:              s.ID,
		MedicineID:      s.MedicineID,
		ProfileID:       s.ProfileID,
		ScheduledTime:   s.ScheduledTime,
		Status:          s.DisplayStatus(now),
		ActualTakenTime: s.ActualTakenTime,
	}
}

// ScheduleListResponse is the response body for listing schedule history.
type ScheduleListResponse struct {
	Data       []ScheduleResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more"`
}

// ScheduleFilter contains filter parameters for listing schedules.
type ScheduleFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// AdherenceResponse summarizes dose completion for a period. Adherence is
// the ratio of taken doses to all past-due doses: skipped and overdue both
// count against it.
type AdherenceResponse struct {
	ProfileID uuid.UUID `json:"profile_id"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	// Percentage 0-100; 100 when nothing was due yet
	Adherence int `json:"adherence"`
	Taken     int `json:"taken"`
	Skipped   int `json:"skipped"`
	Overdue   int `json:"overdue"`
	Upcoming  int `json:"upcoming"`
}
