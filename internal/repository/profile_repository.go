package repository

import (
	"context"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	return storageErr(r.db.WithContext(ctx).Create(profile).Error)
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&profiles).Error
	return profiles, storageErr(err)
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	return storageErr(r.db.WithContext(ctx).Save(profile).Error)
}

func (r *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return storageErr(r.db.WithContext(ctx).Delete(&domain.Profile{}, "id = ?", id).Error)
}

func (r *profileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Profile{}).Where("id = ?", id).Count(&count).Error
	return count > 0, storageErr(err)
}
