package repository

import (
	"context"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	// CreateBatch inserts a full course batch atomically; a failed insert
	// rolls back the whole batch so no partial course is ever persisted.
	CreateBatch(ctx context.Context, schedules []domain.Schedule) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error)
	Update(ctx context.Context, schedule *domain.Schedule) error
	List(ctx context.Context, profileID uuid.UUID, filter domain.ScheduleFilter) ([]domain.Schedule, error)
	ListByDateRange(ctx context.Context, profileID uuid.UUID, from, to time.Time) ([]domain.Schedule, error)
	ListByMedicineID(ctx context.Context, medicineID uuid.UUID) ([]domain.Schedule, error)
	ListPendingByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Schedule, error)
	ListDuePending(ctx context.Context, now time.Time) ([]domain.Schedule, error)
	DeleteByMedicineID(ctx context.Context, medicineID uuid.UUID) error
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) CreateBatch(ctx context.Context, schedules []domain.Schedule) error {
	if len(schedules) == 0 {
		return nil
	}
	return storageErr(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&schedules).Error
	}))
}

func (r *scheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error) {
	var schedule domain.Schedule
	err := r.db.WithContext(ctx).First(&schedule, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return &schedule, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *domain.Schedule) error {
	return storageErr(r.db.WithContext(ctx).Save(schedule).Error)
}

func (r *scheduleRepository) List(ctx context.Context, profileID uuid.UUID, filter domain.ScheduleFilter) ([]domain.Schedule, error) {
	query := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("scheduled_time DESC")

	if filter.From != nil {
		query = query.Where("scheduled_time >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("scheduled_time <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: records strictly after the cursor position.
			query = query.Where(
				"(scheduled_time < ?) OR (scheduled_time = ? AND id < ?)",
				cursor.ScheduledAt, cursor.ScheduledAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results.
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var schedules []domain.Schedule
	if err := query.Find(&schedules).Error; err != nil {
		return nil, storageErr(err)
	}
	return schedules, nil
}

func (r *scheduleRepository) ListByDateRange(ctx context.Context, profileID uuid.UUID, from, to time.Time) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Where("scheduled_time >= ? AND scheduled_time < ?", from, to).
		Order("scheduled_time ASC").
		Find(&schedules).Error
	return schedules, storageErr(err)
}

func (r *scheduleRepository) ListByMedicineID(ctx context.Context, medicineID uuid.UUID) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := r.db.WithContext(ctx).
		Where("medicine_id = ?", medicineID).
		Order("scheduled_time ASC").
		Find(&schedules).Error
	return schedules, storageErr(err)
}

func (r *scheduleRepository) ListPendingByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Where("status = ?", domain.DoseStatusPending).
		Find(&schedules).Error
	return schedules, storageErr(err)
}

func (r *scheduleRepository) ListDuePending(ctx context.Context, now time.Time) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.DoseStatusPending).
		Where("scheduled_time <= ?", now).
		Order("scheduled_time ASC").
		Find(&schedules).Error
	return schedules, storageErr(err)
}

func (r *scheduleRepository) DeleteByMedicineID(ctx context.Context, medicineID uuid.UUID) error {
	return storageErr(r.db.WithContext(ctx).Delete(&domain.Schedule{}, "medicine_id = ?", medicineID).Error)
}

func (r *scheduleRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error {
	return storageErr(r.db.WithContext(ctx).Delete(&domain.Schedule{}, "profile_id = ?", profileID).Error)
}
