// Package promotionrepo provides data transfer objects and mapping functions
// for promotion persistence.
package promotionrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/promotion"

	"github.com/google/uuid"
)

// PromotionDTO represents the database structure for persisting promotion
// aggregates. Code carries a unique index because redemption looks promotions
// up by coupon code.
type PromotionDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code           string    `gorm:"uniqueIndex"`
	Description    string
	DiscountType   string `gorm:"type:varchar(16)"`
	DiscountValue  float64
	MaxDiscount    float64
	MinOrderAmount float64
	ValidFrom      time.Time
	ValidTill      time.Time
	UsageLimit     int
	UsedCount      int
	IsActive       bool `gorm:"index"`
}

// TableName specifies the database table name for promotion entities.
func (PromotionDTO) TableName() string {
	return "promotions"
}

// fromDomain converts a promotion domain aggregate to its database
// representation.
func fromDomain(aggregate *promotion.Promotion) PromotionDTO {
	return PromotionDTO{
		ID:             aggregate.ID().Bytes(),
		Code:           aggregate.Code(),
		Description:    aggregate.Description(),
		DiscountType:   aggregate.DiscountType().String(),
		DiscountValue:  aggregate.DiscountValue(),
		MaxDiscount:    aggregate.MaxDiscount(),
		MinOrderAmount: aggregate.MinOrderAmount(),
		ValidFrom:      aggregate.ValidFrom(),
		ValidTill:      aggregate.ValidTill(),
		UsageLimit:     aggregate.UsageLimit(),
		UsedCount:      aggregate.UsedCount(),
		IsActive:       aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a promotion domain aggregate using
// RestorePromotion.
func toDomain(dto PromotionDTO) (*promotion.Promotion, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	discountType, err := promotion.DiscountTypeFromString(dto.DiscountType)
	if err != nil {
		return nil, err
	}

	return promotion.RestorePromotion(promotion.NewPromotionParams{
		ID:             id,
		Code:           dto.Code,
		Description:    dto.Description,
		DiscountType:   discountType,
		DiscountValue:  dto.DiscountValue,
		MaxDiscount:    dto.MaxDiscount,
		MinOrderAmount: dto.MinOrderAmount,
		ValidFrom:      dto.ValidFrom,
		ValidTill:      dto.ValidTill,
		UsageLimit:     dto.UsageLimit,
	}, dto.UsedCount, dto.IsActive)
}
