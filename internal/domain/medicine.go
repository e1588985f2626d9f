package domain

import (
	"time"

	"github.com/google/uuid"
)

// Instruction tells the patient how a dose relates to meals and sleep.
// @Description Intake instruction. BEFORE_SLEEP overrides the frequency
// @Description fields entirely: one dose per day at the profile's sleep time.
type Instruction string

const (
	InstructionBeforeFood   Instruction = "BEFORE_FOOD"
	InstructionAfterFood    Instruction = "AFTER_FOOD"
	InstructionBeforeSleep  Instruction = "BEFORE_SLEEP"
	InstructionWithFood     Instruction = "WITH_FOOD"
	InstructionEmptyStomach Instruction = "EMPTY_STOMACH"
)

// FrequencyType determines how FrequencyValue is interpreted.
type FrequencyType string

const (
	// FrequencyTimesADay distributes N doses evenly across the waking window.
	FrequencyTimesADay FrequencyType = "TIMES_A_DAY"
	// FrequencyEveryXHours fires every X hours from the course start hour.
	FrequencyEveryXHours FrequencyType = "EVERY_X_HOURS"
)

// Medicine is a dosing rule owned by exactly one profile. Medicines are
// immutable after creation; editing a course means deleting the medicine
// (cascading to its schedules) and creating a new one.
type Medicine struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"profile_id"`
	Name           string        `gorm:"type:varchar(128);not null" json:"name"`
	Dose           string        `gorm:"type:varchar(64);not null" json:"dose"`
	CourseDays     int           `gorm:"not null" json:"course_days"`
	Instructions   Instruction   `gorm:"type:varchar(16);not null" json:"instructions"`
	FrequencyType  FrequencyType `gorm:"type:varchar(16);not null" json:"frequency_type"`
	FrequencyValue int           `gorm:"not null" json:"frequency_value"`
	StartDate      time.Time     `gorm:"not null" json:"start_date"`
	DoctorName     string        `gorm:"type:varchar(128)" json:"doctor_name,omitempty"`
	UsageNote      string        `gorm:"type:text" json:"usage_note,omitempty"`
	// PrescriptionImage is an opaque base64 blob; the core never decodes it.
	PrescriptionImage *string   `gorm:"type:text" json:"prescription_image,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// CreateMedicineRequest is the request body for creating a medicine.
// @Description Request payload for a new medicine course. The full schedule
// @Description batch is generated at creation time.
type CreateMedicineRequest struct {
	// Medicine name
	Name string `json:"name" validate:"required,max=128" example:"Amoxicillin"`
	// Dose per intake, free text
	Dose string `json:"dose" validate:"required,max=64" example:"500mg"`
	// Course length in days
	CourseDays int `json:"course_days" validate:"required,gt=0" example:"7"`
	// Intake instruction
	Instructions Instruction `json:"instructions" validate:"required,oneof=BEFORE_FOOD AFTER_FOOD BEFORE_SLEEP WITH_FOOD EMPTY_STOMACH" example:"AFTER_FOOD" enums:"BEFORE_FOOD,AFTER_FOOD,BEFORE_SLEEP,WITH_FOOD,EMPTY_STOMACH"`
	// Frequency interpretation
	FrequencyType FrequencyType `json:"frequency_type" validate:"required,oneof=TIMES_A_DAY EVERY_X_HOURS" example:"TIMES_A_DAY" enums:"TIMES_A_DAY,EVERY_X_HOURS"`
	// Doses per day, or hour interval, depending on frequency_type
	FrequencyValue int `json:"frequency_value" validate:"required,gt=0" example:"3"`
	// Course start instant; defaults to now when omitted
	StartDate *time.Time `json:"start_date,omitempty" example:"2024-05-01T08:00:00Z"`
	// Optional prescribing doctor
	DoctorName string `json:"doctor_name,omitempty" validate:"omitempty,max=128" example:"Dr. Nowak"`
	// Optional free-text usage note
	UsageNote string `json:"usage_note,omitempty"`
	// Optional base64 prescription image
	PrescriptionImage *string `json:"prescription_image,omitempty"`
}

// MedicineResponse is the response body for medicine endpoints.
type MedicineResponse struct {
	ID                uuid.UUID     `json:"id"`
	ProfileID         uuid.UUID     `json:"profile_id"`
	Name              string        `json:"name"`
	Dose              string        `json:"dose"`
	CourseDays        int           `json:"course_days"`
	Instructions      Instruction   `json:"instructions"`
	FrequencyType     FrequencyType `json:"frequency_type"`
	FrequencyValue    int           `json:"frequency_value"`
	StartDate         time.Time     `json:"start_date"`
	DoctorName        string        `json:"doctor_name,omitempty"`
	UsageNote         string        `json:"usage_note,omitempty"`
	PrescriptionImage *string       `json:"prescription_image,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}

func (m *Medicine) ToResponse() MedicineResponse {
	return MedicineResponse{
		ID:                m.ID,
		ProfileID:         m.ProfileID,
		Name:              m.Name,
		Dose:              m.Dose,
		CourseDays:        m.CourseDays,
		Instructions:      m.Instructions,
		FrequencyType:     m.FrequencyType,
		FrequencyValue:    m.FrequencyValue,
		StartDate:         m.StartDate,
		DoctorName:        m.DoctorName,
		UsageNote:         m.UsageNote,
		PrescriptionImage: m.PrescriptionImage,
		CreatedAt:         m.CreatedAt,
	}
}
