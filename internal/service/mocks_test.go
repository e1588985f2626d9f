package service

import (
	"context"
	"sync"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/google/uuid"
)

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	profiles map[uuid.UUID]*domain.Profile
	err      error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[uuid.UUID]*domain.Profile),
	}
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profile.CreatedAt = time.Now()
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	profile, ok := m.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (m *MockProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Profile
	for _, p := range m.profiles {
		result = append(result, *p)
	}
	return result, nil
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	delete(m.profiles, id)
	return nil
}

func (m *MockProfileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.profiles[id]
	return ok, nil
}

func (m *MockProfileRepository) SetError(err error) {
	m.err = err
}

// MockMedicineRepository is a mock implementation of MedicineRepository.
// When scheduleStore is wired, CreateWithCourse writes the batch through it
// and mirrors the real transaction: a failing batch stores nothing.
type MockMedicineRepository struct {
	medicines     map[uuid.UUID]*domain.Medicine
	scheduleStore *MockScheduleRepository
	err           error
}

func NewMockMedicineRepository() *MockMedicineRepository {
	return &MockMedicineRepository{
		medicines: make(map[uuid.UUID]*domain.Medicine),
	}
}

func (m *MockMedicineRepository) CreateWithCourse(ctx context.Context, medicine *domain.Medicine, schedules []domain.Schedule) error {
	if m.err != nil {
		return m.err
	}
	if m.scheduleStore != nil && m.scheduleStore.err != nil {
		return m.scheduleStore.err
	}
	if medicine.ID == uuid.Nil {
		medicine.ID = uuid.New()
	}
	medicine.CreatedAt = time.Now()
	m.medicines[medicine.ID] = medicine
	if m.scheduleStore != nil {
		return m.scheduleStore.CreateBatch(ctx, schedules)
	}
	return nil
}

func (m *MockMedicineRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	if m.err != nil {
		return nil, m.err
	}
	medicine, ok := m.medicines[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return medicine, nil
}

func (m *MockMedicineRepository) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Medicine, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Medicine
	for _, med := range m.medicines {
		if med.ProfileID == profileID {
			result = append(result, *med)
		}
	}
	return result, nil
}

func (m *MockMedicineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	delete(m.medicines, id)
	return nil
}

func (m *MockMedicineRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for id, med := range m.medicines {
		if med.ProfileID == profileID {
			delete(m.medicines, id)
		}
	}
	return nil
}

// MockScheduleRepository is a mock implementation of ScheduleRepository
type MockScheduleRepository struct {
	schedules map[uuid.UUID]*domain.Schedule
	err       error
}

func NewMockScheduleRepository() *MockScheduleRepository {
	return &MockScheduleRepository{
		schedules: make(map[uuid.UUID]*domain.Schedule),
	}
}

func (m *MockScheduleRepository) CreateBatch(ctx context.Context, schedules []domain.Schedule) error {
	if m.err != nil {
		return m.err
	}
	for i := range schedules {
		s := schedules[i]
		m.schedules[s.ID] = &s
	}
	return nil
}

func (m *MockScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.schedules[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (m *MockScheduleRepository) Update(ctx context.Context, schedule *domain.Schedule) error {
	if m.err != nil {
		return m.err
	}
	m.schedules[schedule.ID] = schedule
	return nil
}

func (m *MockScheduleRepository) List(ctx context.Context, profileID uuid.UUID, filter domain.ScheduleFilter) ([]domain.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Schedule
	for _, s := range m.schedules {
		if s.ProfileID != profileID {
			continue
		}
		if filter.From != nil && s.ScheduledTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && s.ScheduledTime.After(*filter.To) {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *MockScheduleRepository) ListByDateRange(ctx context.Context, profileID uuid.UUID, from, to time.Time) ([]domain.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Schedule
	for _, s := range m.schedules {
		if s.ProfileID == profileID && !s.ScheduledTime.Before(from) && s.ScheduledTime.Before(to) {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *MockScheduleRepository) ListByMedicineID(ctx context.Context, medicineID uuid.UUID) ([]domain.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Schedule
	for _, s := range m.schedules {
		if s.MedicineID == medicineID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *MockScheduleRepository) ListPendingByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Schedule
	for _, s := range m.schedules {
		if s.ProfileID == profileID && s.Status == domain.DoseStatusPending {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *MockScheduleRepository) ListDuePending(ctx context.Context, now time.Time) ([]domain.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Schedule
	for _, s := range m.schedules {
		if s.Status == domain.DoseStatusPending && !s.ScheduledTime.After(now) {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *MockScheduleRepository) DeleteByMedicineID(ctx context.Context, medicineID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for id, s := range m.schedules {
		if s.MedicineID == medicineID {
			delete(m.schedules, id)
		}
	}
	return nil
}

func (m *MockScheduleRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for id, s := range m.schedules {
		if s.ProfileID == profileID {
			delete(m.schedules, id)
		}
	}
	return nil
}

func (m *MockScheduleRepository) SetError(err error) {
	m.err = err
}

// MockNotifier records schedule/cancel calls.
type MockNotifier struct {
	mu        sync.Mutex
	scheduled map[uuid.UUID]time.Time
	cancelled []uuid.UUID
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{
		scheduled: make(map[uuid.UUID]time.Time),
	}
}

func (m *MockNotifier) Schedule(id uuid.UUID, fireAt time.Time, title, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduled[id] = fireAt
}

func (m *MockNotifier) Cancel(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelled = append(m.cancelled, id)
}

func (m *MockNotifier) ScheduledCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.scheduled)
}

func (m *MockNotifier) CancelledCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cancelled)
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
