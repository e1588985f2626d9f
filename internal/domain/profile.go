package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a person using the app, with a daily wake/sleep window that
// drives "times a day" dose distribution.
type Profile struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(128);not null" json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	// Picture is an opaque base64-encoded image; compression happens client-side.
	Picture   string    `gorm:"type:text" json:"picture,omitempty"`
	WakeTime  string    `gorm:"type:varchar(5);not null" json:"wake_time"`
	SleepTime string    `gorm:"type:varchar(5);not null" json:"sleep_time"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// CreateProfileRequest is the request body for creating a profile.
// @Description Request payload for creating a person profile.
type CreateProfileRequest struct {
	// Display name
	Name string `json:"name" validate:"required,max=128" example:"Grandma Ola"`
	// Optional date of birth (RFC3339)
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" example:"1948-03-02T00:00:00Z"`
	// Optional base64-encoded picture
	Picture string `json:"picture,omitempty"`
	// Daily wake-up time, 24h HH:MM
	WakeTime string `json:"wake_time" validate:"required,hhmm" example:"07:00"`
	// Daily sleep time, 24h HH:MM (may be past midnight, e.g. 01:00)
	SleepTime string `json:"sleep_time" validate:"required,hhmm" example:"22:00"`
}

// UpdateProfileRequest is the request body for updating a profile.
// Changing the wake/sleep window does not regenerate schedules for
// existing courses.
type UpdateProfileRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,max=128"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Picture     *string    `json:"picture,omitempty"`
	WakeTime    *string    `json:"wake_time,omitempty" validate:"omitempty,hhmm"`
	SleepTime   *string    `json:"sleep_time,omitempty" validate:"omitempty,hhmm"`
}

// ProfileResponse is the response body for profile endpoints.
type ProfileResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Picture     string     `json:"picture,omitempty"`
	WakeTime    string     `json:"wake_time"`
	SleepTime   string     `json:"sleep_time"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (p *Profile) ToResponse() ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		Name:        p.Name,
		DateOfBirth: p.DateOfBirth,
		Picture:     p.Picture,
		WakeTime:    p.WakeTime,
		SleepTime:   p.SleepTime,
		CreatedAt:   p.CreatedAt,
	}
}

// Window resolves the profile's waking window from its clock strings.
func (p *Profile) Window() (WakingWindow, error) {
	return ResolveWakingWindow(p.WakeTime, p.SleepTime)
}
