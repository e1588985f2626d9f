package service

import (
	"context"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/llm"
	"github.com/dstasiak/med-reminder/internal/repository"
	"github.com/google/uuid"
)

// DefaultInsightsWindowDays is the lookback window for adherence insights.
const DefaultInsightsWindowDays = 30

// InsightsService generates an LLM adherence narrative for a profile.
type InsightsService interface {
	Generate(ctx context.Context, profileID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	adherenceService AdherenceService
	llmClient        llm.InsightsLLM
	profileRepo      repository.ProfileRepository
	medicineRepo     repository.MedicineRepository
	scheduleRepo     repository.ScheduleRepository
	now              func() time.Time
}

func NewInsightsService(
	adherenceService AdherenceService,
	llmClient llm.InsightsLLM,
	profileRepo repository.ProfileRepository,
	medicineRepo repository.MedicineRepository,
	scheduleRepo repository.ScheduleRepository,
) InsightsService {
	return &insightsService{
		adherenceService: adherenceService,
		llmClient:        llmClient,
		profileRepo:      profileRepo,
		medicineRepo:     medicineRepo,
		scheduleRepo:     scheduleRepo,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *insightsService) Generate(ctx context.Context, profileID uuid.UUID) (*domain.InsightsResponse, error) {
	if s.llmClient == nil {
		return nil, llm.ErrOpenAIUnavailable
	}

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	from := now.AddDate(0, 0, -DefaultInsightsWindowDays)

	adherence, err := s.adherenceService.Compute(ctx, profileID, from, now)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.medicineBreakdown(ctx, profileID, from, now)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		ProfileName: profile.Name,
		Window:      domain.InsightsWindow{From: from, To: now},
		Adherence:   *adherence,
		Medicines:   breakdown,
	}

	narrative, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		ProfileID:   profileID,
		Window:      insightsCtx.Window,
		Adherence:   adherence.Adherence,
		Narrative:   *narrative,
		GeneratedAt: now,
	}, nil
}

func (s *insightsService) medicineBreakdown(ctx context.Context, profileID uuid.UUID, from, to time.Time) ([]domain.MedicineBreakdown, error) {
	medicines, err := s.medicineRepo.ListByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	schedules, err := s.scheduleRepo.ListByDateRange(ctx, profileID, from, to)
	if err != nil {
		return nil, err
	}

	byMedicine := make(map[uuid.UUID]*domain.MedicineBreakdown, len(medicines))
	breakdown := make([]domain.MedicineBreakdown, len(medicines))
	for i, m := range medicines {
		breakdown[i] = domain.MedicineBreakdown{Name: m.Name, Dose: m.Dose}
		byMedicine[m.ID] = &breakdown[i]
	}

	now := s.now()
	for _, sched := range schedules {
		entry, ok := byMedicine[sched.MedicineID]
		if !ok {
			continue
		}
		switch sched.DisplayStatus(now) {
		case domain.DoseStatusTaken:
			entry.Taken++
		case domain.DoseStatusSkipped:
			entry.Skipped++
		case domain.DoseStatusOverdue:
			entry.Overdue++
		}
	}

	return breakdown, nil
}
