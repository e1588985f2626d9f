package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/notify"
	"github.com/dstasiak/med-reminder/internal/repository"
	"github.com/dstasiak/med-reminder/internal/schedule"
	"github.com/google/uuid"
)

type MedicineService interface {
	// Create stores the medicine, generates its full-course schedule batch
	// and registers reminders for the future doses.
	Create(ctx context.Context, profileID uuid.UUID, req *domain.CreateMedicineRequest) (*domain.Medicine, []domain.Schedule, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error)
	ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Medicine, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type medicineService struct {
	repo         repository.MedicineRepository
	profileRepo  repository.ProfileRepository
	scheduleRepo repository.ScheduleRepository
	generator    *schedule.Generator
	notifier     notify.Notifier
}

func NewMedicineService(
	repo repository.MedicineRepository,
	profileRepo repository.ProfileRepository,
	scheduleRepo repository.ScheduleRepository,
	generator *schedule.Generator,
	notifier notify.Notifier,
) MedicineService {
	return &medicineService{
		repo:         repo,
		profileRepo:  profileRepo,
		scheduleRepo: scheduleRepo,
		generator:    generator,
		notifier:     notifier,
	}
}

func (s *medicineService) Create(ctx context.Context, profileID uuid.UUID, req *domain.CreateMedicineRequest) (*domain.Medicine, []domain.Schedule, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, nil, err
	}

	// Validated at the handler; re-checked so no caller can produce a
	// partial or empty course batch.
	if req.CourseDays <= 0 || req.FrequencyValue <= 0 {
		return nil, nil, domain.ErrInvalidInput
	}

	window, err := profile.Window()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	startDate := time.Now().UTC()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	medicine := &domain.Medicine{
		ID:                uuid.New(),
		ProfileID:         profileID,
		Name:              req.Name,
		Dose:              req.Dose,
		CourseDays:        req.CourseDays,
		Instructions:      req.Instructions,
		FrequencyType:     req.FrequencyType,
		FrequencyValue:    req.FrequencyValue,
		StartDate:         startDate,
		DoctorName:        req.DoctorName,
		UsageNote:         req.UsageNote,
		PrescriptionImage: req.PrescriptionImage,
	}

	schedules := s.generator.Generate(ctx, medicine, window)

	// One transaction for medicine and course, so a failed batch never
	// leaves a medicine row without schedules.
	if err := s.repo.CreateWithCourse(ctx, medicine, schedules); err != nil {
		return nil, nil, err
	}

	// Reminder registration is best-effort: past doses are skipped and a
	// missing delivery channel never fails the creation.
	title := fmt.Sprintf("Time for %s's medication!", profile.Name)
	body := fmt.Sprintf("Take %s (%s)", medicine.Name, medicine.Dose)
	for _, sched := range schedules {
		s.notifier.Schedule(sched.ID, sched.ScheduledTime, title, body)
	}

	return medicine, schedules, nil
}

func (s *medicineService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *medicineService) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Medicine, error) {
	exists, err := s.profileRepo.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.repo.ListByProfileID(ctx, profileID)
}

// Delete removes the medicine and cascades to its schedules, cancelling any
// reminder still registered under them.
func (s *medicineService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	schedules, err := s.scheduleRepo.ListByMedicineID(ctx, id)
	if err != nil {
		return err
	}
	for _, sched := range schedules {
		s.notifier.Cancel(sched.ID)
	}

	if err := s.scheduleRepo.DeleteByMedicineID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
