package promotionrepo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/promotion"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPromotionRepository implements PromotionRepository using GORM.
type GormPromotionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPromotionRepository creates a new GORM promotion repository.
func NewGormPromotionRepository(db *gorm.DB, tracker aggregateTracker) *GormPromotionRepository {
	return &GormPromotionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new promotion to the database.
func (r *GormPromotionRepository) Add(ctx context.Context, aggregate *promotion.Promotion) error {
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

// Update saves an existing promotion to the database.
func (r *GormPromotionRepository) Update(ctx context.Context, aggregate *promotion.Promotion) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PromotionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a promotion by ID.
func (r *GormPromotionRepository) Get(ctx context.Context, id kernel.UUID) (*promotion.Promotion, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PromotionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("promotion", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a promotion by its coupon code. The row is locked FOR
// UPDATE so that concurrent redemptions inside placement transactions
// serialize instead of over-redeeming a usage-limited coupon.
func (r *GormPromotionRepository) GetByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	var dto PromotionDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveExpired retrieves promotions still flagged active whose validity
// window has passed. Used by the expiry sweep to deactivate stale coupons.
func (r *GormPromotionRepository) GetAllActiveExpired(
	ctx context.Context,
	now time.Time,
) ([]*promotion.Promotion, error) {
	var dtos []PromotionDTO
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND valid_till < ?", true, now).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	promotions := make([]*promotion.Promotion, 0, len(dtos))
	for _, dto := range dtos {
		p, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		promotions = append(promotions, p)
	}

	return promotions, nil
}
