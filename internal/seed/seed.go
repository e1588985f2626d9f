package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/schedule"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Run seeds the database with sample profiles, medicines and their generated
// schedule batches. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Profile{}, &domain.Medicine{}, &domain.Schedule{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	profiles := []domain.Profile{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Grandma Ola", WakeTime: "06:30", SleepTime: "21:30"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Dawid", WakeTime: "07:00", SleepTime: "23:00"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Night Shift Marek", WakeTime: "14:00", SleepTime: "05:00"},
	}

	for _, profile := range profiles {
		if err := db.Where("id = ?", profile.ID).FirstOrCreate(&profile).Error; err != nil {
			return fmt.Errorf("failed to create profile %s: %w", profile.ID, err)
		}
	}

	medicines := []domain.Medicine{
		{
			ID:             uuid.MustParse("aaaaaaaa-1111-1111-1111-111111111111"),
			ProfileID:      profiles[0].ID,
			Name:           "Amoxicillin",
			Dose:           "500mg",
			CourseDays:     7,
			Instructions:   domain.InstructionAfterFood,
			FrequencyType:  domain.FrequencyTimesADay,
			FrequencyValue: 3,
			DoctorName:     "Dr. Nowak",
		},
		{
			ID:             uuid.MustParse("aaaaaaaa-2222-2222-2222-222222222222"),
			ProfileID:      profiles[0].ID,
			Name:           "Melatonin",
			Dose:           "3mg",
			CourseDays:     14,
			Instructions:   domain.InstructionBeforeSleep,
			FrequencyType:  domain.FrequencyTimesADay,
			FrequencyValue: 1,
		},
		{
			ID:             uuid.MustParse("aaaaaaaa-3333-3333-3333-333333333333"),
			ProfileID:      profiles[1].ID,
			Name:           "Ibuprofen",
			Dose:           "200mg",
			CourseDays:     3,
			Instructions:   domain.InstructionWithFood,
			FrequencyType:  domain.FrequencyEveryXHours,
			FrequencyValue: 8,
			UsageNote:      "Only if the headache comes back",
		},
	}

	generator := schedule.NewGenerator(schedule.BoundaryTruncate)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	profilesByID := make(map[uuid.UUID]domain.Profile, len(profiles))
	for _, p := range profiles {
		profilesByID[p.ID] = p
	}

	// Courses start a few days back so part of the batch is already past due
	// and adherence has something to chew on.
	now := time.Now().UTC()
	for i := range medicines {
		medicine := medicines[i]
		medicine.StartDate = now.AddDate(0, 0, -2).Truncate(time.Hour)

		var existing int64
		if err := db.Model(&domain.Medicine{}).Where("id = ?", medicine.ID).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check medicine %s: %w", medicine.ID, err)
		}
		if existing > 0 {
			continue
		}

		profile := profilesByID[medicine.ProfileID]
		window, err := profile.Window()
		if err != nil {
			return fmt.Errorf("invalid window for profile %s: %w", profile.ID, err)
		}

		if err := db.Create(&medicine).Error; err != nil {
			return fmt.Errorf("failed to create medicine %s: %w", medicine.ID, err)
		}

		schedules := generator.Generate(context.Background(), &medicine, window)
		for j := range schedules {
			// Resolve most past doses so the seeded history is realistic.
			if schedules[j].ScheduledTime.Before(now) {
				switch rng.Intn(10) {
				case 0:
					schedules[j].Status = domain.DoseStatusSkipped
				case 1:
					// leave pending, displays as overdue
				default:
					takenAt := schedules[j].ScheduledTime.Add(time.Duration(rng.Intn(20)) * time.Minute)
					schedules[j].Status = domain.DoseStatusTaken
					schedules[j].ActualTakenTime = &takenAt
				}
			}
		}

		if err := db.Create(&schedules).Error; err != nil {
			return fmt.Errorf("failed to create schedules for %s: %w", medicine.ID, err)
		}
	}

	log.Println("Seed completed")
	return nil
}
