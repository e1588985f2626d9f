package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BoundaryPolicy controls what happens to an every-X-hours dose whose
// candidate time would cross midnight into the next calendar day.
type BoundaryPolicy int

const (
	// BoundaryTruncate drops the crossing dose. This matches the historical
	// behavior: the last dose of a boundary day is lost rather than carried
	// over, so an 8-hour rule starting at 22:00 yields one dose per day.
	BoundaryTruncate BoundaryPolicy = iota
	// BoundaryWrap carries the crossing dose into the next calendar day.
	BoundaryWrap
)

// Generator expands a medicine's dosing rule and its profile's waking
// window into the concrete dose instants for the whole course. Generation
// is deterministic apart from the fresh ids; each invocation is independent
// and nothing is persisted here.
type Generator struct {
	policy BoundaryPolicy
}

func NewGenerator(policy BoundaryPolicy) *Generator {
	return &Generator{policy: policy}
}

// Generate emits one pending schedule per dose instant, ordered by time,
// covering every course day starting at the medicine's start date.
func (g *Generator) Generate(ctx context.Context, medicine *domain.Medicine, window domain.WakingWindow) []domain.Schedule {
	tracer := otel.Tracer("med-reminder-api/schedule")
	_, span := tracer.Start(ctx, "Generator.Generate",
		trace.WithAttributes(
			attribute.String("medicine.id", medicine.ID.String()),
			attribute.String("medicine.frequency_type", string(medicine.FrequencyType)),
			attribute.Int("medicine.frequency_value", medicine.FrequencyValue),
			attribute.Int("medicine.course_days", medicine.CourseDays),
		),
	)
	defer span.End()

	var schedules []domain.Schedule

	start := medicine.StartDate
	for day := 0; day < medicine.CourseDays; day++ {
		// Midnight of course day `day` in the start date's location.
		dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()).AddDate(0, 0, day)

		switch {
		case medicine.Instructions == domain.InstructionBeforeSleep:
			// One dose at sleep time; frequency fields are ignored. The
			// effective hour may exceed 23 for a past-midnight window, in
			// which case the instant normalizes into the following day.
			at := dayStart.Add(time.Duration(window.EffectiveSleepHour)*time.Hour + time.Duration(window.SleepMinute)*time.Minute)
			schedules = append(schedules, newPendingSchedule(medicine, at))

		case medicine.FrequencyType == domain.FrequencyEveryXHours:
			if medicine.FrequencyValue <= 0 {
				continue
			}
			dosesPerDay := 24 / medicine.FrequencyValue
			for i := 0; i < dosesPerDay; i++ {
				hour := start.Hour() + i*medicine.FrequencyValue
				if hour >= 24 && g.policy == BoundaryTruncate {
					continue
				}
				at := dayStart.Add(time.Duration(hour) * time.Hour)
				schedules = append(schedules, newPendingSchedule(medicine, at))
			}

		default: // TIMES_A_DAY
			if medicine.FrequencyValue <= 0 {
				// Guarded upstream by validation; emit nothing rather than
				// divide by zero.
				continue
			}
			interval := float64(window.Duration()) / float64(medicine.FrequencyValue)
			for i := 0; i < medicine.FrequencyValue; i++ {
				totalMinutes := int(float64(window.WakeHour*60) + float64(i)*interval*60)
				hour := (totalMinutes / 60) % 24
				minute := totalMinutes % 60
				at := dayStart.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
				schedules = append(schedules, newPendingSchedule(medicine, at))
			}
		}
	}

	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].ScheduledTime.Before(schedules[j].ScheduledTime)
	})

	span.SetAttributes(attribute.Int("schedule.count", len(schedules)))
	return schedules
}

func newPendingSchedule(medicine *domain.Medicine, at time.Time) domain.Schedule {
	return domain.Schedule{
		ID:            uuid.New(),
		MedicineID:    medicine.ID,
		ProfileID:     medicine.ProfileID,
		ScheduledTime: at,
		Status:        domain.DoseStatusPending,
	}
}
