package repository

import (
	"context"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicineRepository interface {
	// CreateWithCourse inserts the medicine and its generated schedule batch
	// in one transaction; a failed batch never leaves a medicine without a
	// course.
	CreateWithCourse(ctx context.Context, medicine *domain.Medicine, schedules []domain.Schedule) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error)
	ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Medicine, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error
}

type medicineRepository struct {
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) CreateWithCourse(ctx context.Context, medicine *domain.Medicine, schedules []domain.Schedule) error {
	return storageErr(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(medicine).Error; err != nil {
			return err
		}
		if len(schedules) == 0 {
			return nil
		}
		return tx.Create(&schedules).Error
	}))
}

func (r *medicineRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	var medicine domain.Medicine
	err := r.db.WithContext(ctx).First(&medicine, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return &medicine, nil
}

func (r *medicineRepository) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Medicine, error) {
	var medicines []domain.Medicine
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at ASC").
		Find(&medicines).Error
	return medicines, storageErr(err)
}

func (r *medicineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return storageErr(r.db.WithContext(ctx).Delete(&domain.Medicine{}, "id = ?", id).Error)
}

func (r *medicineRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error {
	return storageErr(r.db.WithContext(ctx).Delete(&domain.Medicine{}, "profile_id = ?", profileID).Error)
}
