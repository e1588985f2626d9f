package service

import (
	"context"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/notify"
	"github.com/dstasiak/med-reminder/internal/repository"
	"github.com/google/uuid"
)

type ProfileService interface {
	Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type profileService struct {
	repo         repository.ProfileRepository
	medicineRepo repository.MedicineRepository
	scheduleRepo repository.ScheduleRepository
	notifier     notify.Notifier
}

func NewProfileService(
	repo repository.ProfileRepository,
	medicineRepo repository.MedicineRepository,
	scheduleRepo repository.ScheduleRepository,
	notifier notify.Notifier,
) ProfileService {
	return &profileService{
		repo:         repo,
		medicineRepo: medicineRepo,
		scheduleRepo: scheduleRepo,
		notifier:     notifier,
	}
}

func (s *profileService) Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	// Clock strings must resolve to a window before anything is stored.
	if _, err := domain.ResolveWakingWindow(req.WakeTime, req.SleepTime); err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:          uuid.New(),
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		Picture:     req.Picture,
		WakeTime:    req.WakeTime,
		SleepTime:   req.SleepTime,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *profileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *profileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.repo.List(ctx)
}

// Update edits profile attributes. A changed wake/sleep window applies to
// courses created afterwards; existing schedules are not regenerated.
func (s *profileService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.DateOfBirth != nil {
		profile.DateOfBirth = req.DateOfBirth
	}
	if req.Picture != nil {
		profile.Picture = *req.Picture
	}
	if req.WakeTime != nil {
		profile.WakeTime = *req.WakeTime
	}
	if req.SleepTime != nil {
		profile.SleepTime = *req.SleepTime
	}

	if _, err := profile.Window(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Delete removes the profile and cascades to its medicines and schedules.
// Pending reminders for the profile are cancelled first; reminder delivery
// being unavailable never blocks the deletion.
func (s *profileService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	pending, err := s.scheduleRepo.ListPendingByProfileID(ctx, id)
	if err != nil {
		return err
	}
	for _, schedule := range pending {
		s.notifier.Cancel(schedule.ID)
	}

	if err := s.scheduleRepo.DeleteByProfileID(ctx, id); err != nil {
		return err
	}
	if err := s.medicineRepo.DeleteByProfileID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
