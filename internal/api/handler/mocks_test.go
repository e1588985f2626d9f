package handler

import (
	"context"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/google/uuid"
)

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	createFunc  func(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	listFunc    func(ctx context.Context) ([]domain.Profile, error)
	updateFunc  func(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error)
	deleteFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *MockProfileService) Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Profile{ID: uuid.New(), Name: req.Name, WakeTime: req.WakeTime, SleepTime: req.SleepTime}, nil
}

func (m *MockProfileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *MockProfileService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return nil, domain.ErrNotFound
}

func (m *MockProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return domain.ErrNotFound
}

// MockMedicineService is a mock implementation of MedicineService
type MockMedicineService struct {
	createFunc          func(ctx context.Context, profileID uuid.UUID, req *domain.CreateMedicineRequest) (*domain.Medicine, []domain.Schedule, error)
	getByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Medicine, error)
	listByProfileIDFunc func(ctx context.Context, profileID uuid.UUID) ([]domain.Medicine, error)
	deleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *MockMedicineService) Create(ctx context.Context, profileID uuid.UUID, req *domain.CreateMedicineRequest) (*domain.Medicine, []domain.Schedule, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, profileID, req)
	}
	return &domain.Medicine{ID: uuid.New(), ProfileID: profileID, Name: req.Name}, nil, nil
}

func (m *MockMedicineService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockMedicineService) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Medicine, error) {
	if m.listByProfileIDFunc != nil {
		return m.listByProfileIDFunc(ctx, profileID)
	}
	return nil, nil
}

func (m *MockMedicineService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return domain.ErrNotFound
}

// MockDoseService is a mock implementation of DoseService
type MockDoseService struct {
	resolveFunc    func(ctx context.Context, scheduleID uuid.UUID, action domain.DoseAction) (*domain.Schedule, bool, error)
	todayFunc      func(ctx context.Context, profileID uuid.UUID) ([]domain.Schedule, error)
	historyFunc    func(ctx context.Context, profileID uuid.UUID, filter domain.ScheduleFilter) (*domain.ScheduleListResponse, error)
	duePendingFunc func(ctx context.Context, now time.Time) ([]domain.Schedule, error)
}

func (m *MockDoseService) Resolve(ctx context.Context, scheduleID uuid.UUID, action domain.DoseAction) (*domain.Schedule, bool, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, scheduleID, action)
	}
	return nil, false, domain.ErrNotFound
}

func (m *MockDoseService) Today(ctx context.Context, profileID uuid.UUID) ([]domain.Schedule, error) {
	if m.todayFunc != nil {
		return m.todayFunc(ctx, profileID)
	}
	return nil, nil
}

func (m *MockDoseService) History(ctx context.Context, profileID uuid.UUID, filter domain.ScheduleFilter) (*domain.ScheduleListResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, profileID, filter)
	}
	return &domain.ScheduleListResponse{}, nil
}

func (m *MockDoseService) DuePending(ctx context.Context, now time.Time) ([]domain.Schedule, error) {
	if m.duePendingFunc != nil {
		return m.duePendingFunc(ctx, now)
	}
	return nil, nil
}

// MockAdherenceService is a mock implementation of AdherenceService
type MockAdherenceService struct {
	computeFunc func(ctx context.Context, profileID uuid.UUID, from, to time.Time) (*domain.AdherenceResponse, error)
}

func (m *MockAdherenceService) Compute(ctx context.Context, profileID uuid.UUID, from, to time.Time) (*domain.AdherenceResponse, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, profileID, from, to)
	}
	return nil, domain.ErrNotFound
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, profileID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, profileID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, profileID)
	}
	return nil, domain.ErrNotFound
}
