package service

import (
	"context"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/notify"
	"github.com/dstasiak/med-reminder/internal/repository"
	"github.com/dstasiak/med-reminder/pkg/pagination"
	"github.com/google/uuid"
)

type DoseService interface {
	// Resolve applies a take/skip decision to a pending schedule.
	// Returns (schedule, applied, error); applied is false when the
	// schedule was already resolved, which is treated as an idempotent
	// success rather than a conflict.
	Resolve(ctx context.Context, scheduleID uuid.UUID, action domain.DoseAction) (*domain.Schedule, bool, error)
	// Today lists the profile's schedules for the current calendar day.
	Today(ctx context.Context, profileID uuid.UUID) ([]domain.Schedule, error)
	// History lists the profile's schedules newest first with cursor
	// pagination.
	History(ctx context.Context, profileID uuid.UUID, filter domain.ScheduleFilter) (*domain.ScheduleListResponse, error)
	// DuePending returns every pending schedule whose instant has passed.
	// Idempotent read: same inputs, same result; dedup is the poller's job.
	DuePending(ctx context.Context, now time.Time) ([]domain.Schedule, error)
}

type doseService struct {
	repo        repository.ScheduleRepository
	profileRepo repository.ProfileRepository
	notifier    notify.Notifier
	now         func() time.Time
}

func NewDoseService(repo repository.ScheduleRepository, profileRepo repository.ProfileRepository, notifier notify.Notifier) DoseService {
	return &doseService{
		repo:        repo,
		profileRepo: profileRepo,
		notifier:    notifier,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *doseService) Resolve(ctx context.Context, scheduleID uuid.UUID, action domain.DoseAction) (*domain.Schedule, bool, error) {
	sched, err := s.repo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, false, err
	}

	// Stored status is checked right before the write so a duplicate user
	// action or a second poll-triggered resolution becomes a no-op.
	if sched.Resolved() {
		return sched, false, nil
	}

	switch action {
	case domain.DoseActionTake:
		now := s.now()
		sched.Status = domain.DoseStatusTaken
		sched.ActualTakenTime = &now
	case domain.DoseActionSkip:
		sched.Status = domain.DoseStatusSkipped
		sched.ActualTakenTime = nil
	default:
		return nil, false, domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, sched); err != nil {
		return nil, false, err
	}

	// The dose is settled; drop any reminder still registered for it.
	s.notifier.Cancel(sched.ID)

	return sched, true, nil
}

func (s *doseService) Today(ctx context.Context, profileID uuid.UUID) ([]domain.Schedule, error) {
	exists, err := s.profileRepo.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.repo.ListByDateRange(ctx, profileID, dayStart, dayStart.AddDate(0, 0, 1))
}

func (s *doseService) History(ctx context.Context, profileID uuid.UUID, filter domain.ScheduleFilter) (*domain.ScheduleListResponse, error) {
	exists, err := s.profileRepo.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	schedules, err := s.repo.List(ctx, profileID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(schedules) > limit
	if hasMore {
		schedules = schedules[:limit]
	}

	now := s.now()
	response := &domain.ScheduleListResponse{
		Data: make([]domain.ScheduleResponse, len(schedules)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i, sched := range schedules {
		response.Data[i] = sched.ToResponse(now)
	}

	if hasMore && len(schedules) > 0 {
		last := schedules[len(schedules)-1]
		cursor := &pagination.Cursor{
			ID:          last.ID,
			ScheduledAt: last.ScheduledTime,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *doseService) DuePending(ctx context.Context, now time.Time) ([]domain.Schedule, error) {
	return s.repo.ListDuePending(ctx, now)
}
