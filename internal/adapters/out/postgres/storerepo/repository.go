package storerepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/store"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStoreRepository implements StoreRepository using GORM.
type GormStoreRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStoreRepository creates a new GORM store repository.
func NewGormStoreRepository(db *gorm.DB, tracker aggregateTracker) *GormStoreRepository {
	return &GormStoreRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new store and its service catalog to the database.
func (r *GormStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing store to the database. The service catalog is
// replaced wholesale so removed services and prices do not linger.
func (r *GormStoreRepository) Update(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&StoreDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("Services").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.replaceCatalog(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStoreRepository) replaceCatalog(ctx context.Context, dto StoreDTO) error {
	err := r.db.WithContext(ctx).
		Where("service_id IN (?)",
			r.db.Model(&ServiceDTO{}).Select("id").Where("store_id = ?", dto.ID)).
		Delete(&ClothingPriceDTO{}).Error
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).
		Where("store_id = ?", dto.ID).
		Delete(&ServiceDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Services) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Services).Error
}

// Get retrieves a store with its catalog by ID.
func (r *GormStoreRepository) Get(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	err := r.db.WithContext(ctx).
		Preload("Services.Prices").
		Preload("Services").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a store by login email.
func (r *GormStoreRepository) GetByEmail(ctx context.Context, email string) (*store.Store, error) {
	var dto StoreDTO
	err := r.db.WithContext(ctx).
		Preload("Services.Prices").
		Preload("Services").
		First(&dto, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
