package service

import (
	"context"
	"math"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AdherenceService aggregates a profile's schedules into a completion ratio.
type AdherenceService interface {
	// Compute calculates adherence for the given period. A zero from/to
	// defaults to the current calendar day.
	Compute(ctx context.Context, profileID uuid.UUID, from, to time.Time) (*domain.AdherenceResponse, error)
}

type adherenceService struct {
	scheduleRepo repository.ScheduleRepository
	profileRepo  repository.ProfileRepository
	now          func() time.Time
}

func NewAdherenceService(scheduleRepo repository.ScheduleRepository, profileRepo repository.ProfileRepository) AdherenceService {
	return &adherenceService{
		scheduleRepo: scheduleRepo,
		profileRepo:  profileRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *adherenceService) Compute(ctx context.Context, profileID uuid.UUID, from, to time.Time) (*domain.AdherenceResponse, error) {
	tracer := otel.Tracer("med-reminder-api/adherence")
	ctx, span := tracer.Start(ctx, "AdherenceService.Compute",
		trace.WithAttributes(
			attribute.String("profile.id", profileID.String()),
		),
	)
	defer span.End()

	exists, err := s.profileRepo.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	now := s.now()
	if from.IsZero() || to.IsZero() {
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		from, to = dayStart, dayStart.AddDate(0, 0, 1)
	}

	schedules, err := s.scheduleRepo.ListByDateRange(ctx, profileID, from, to)
	if err != nil {
		return nil, err
	}

	response := Summarize(schedules, now)
	response.ProfileID = profileID
	response.From = from
	response.To = to

	span.SetAttributes(
		attribute.Int("adherence.percent", response.Adherence),
		attribute.Int("adherence.schedules", len(schedules)),
	)
	return &response, nil
}

// Summarize computes the adherence ratio and status counts for a set of
// schedules at the given instant. Strict definition: every past-due dose
// counts in the denominator, and only taken doses count in the numerator,
// so skipped and overdue doses both pull the ratio down. No past-due doses
// means 100%.
func Summarize(schedules []domain.Schedule, now time.Time) domain.AdherenceResponse {
	var response domain.AdherenceResponse

	past := 0
	for _, s := range schedules {
		if !s.ScheduledTime.Before(now) {
			response.Upcoming++
			continue
		}
		past++
		switch s.DisplayStatus(now) {
		case domain.DoseStatusTaken:
			response.Taken++
		case domain.DoseStatusSkipped:
			response.Skipped++
		case domain.DoseStatusOverdue:
			response.Overdue++
		}
	}

	if past == 0 {
		response.Adherence = 100
		return response
	}

	response.Adherence = int(math.Round(100 * float64(response.Taken) / float64(past)))
	return response
}
