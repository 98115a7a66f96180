package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActivePromotionsQueryHandler reads the redeemable promotion list from
// the database.
type GetActivePromotionsQueryHandler struct {
	db *gorm.DB
}

// NewGetActivePromotionsQueryHandler creates a handler for redeemable
// promotion queries.
func NewGetActivePromotionsQueryHandler(db *gorm.DB) GetActivePromotionsQueryHandler {
	return GetActivePromotionsQueryHandler{db: db}
}

// Handle executes the query. A usage_limit of zero means unlimited
// redemptions, matching the domain rule.
func (h GetActivePromotionsQueryHandler) Handle(
	ctx context.Context,
	query GetActivePromotionsQuery,
) ([]GetActivePromotionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			description,
			discount_type,
			discount_value,
			max_discount,
			min_order_amount,
			valid_till
		FROM promotions
		WHERE is_active = TRUE
			AND valid_from <= ?
			AND valid_till >= ?
			AND (usage_limit = 0 OR used_count < usage_limit)
		ORDER BY valid_till
	`, query.Now(), query.Now()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	promotions := make([]GetActivePromotionsQueryResponse, 0)
	for rows.Next() {
		var resp GetActivePromotionsQueryResponse
		var id uuid.UUID
		var validTill time.Time

		err = rows.Scan(
			&id,
			&resp.Code,
			&resp.Description,
			&resp.DiscountType,
			&resp.DiscountValue,
			&resp.MaxDiscount,
			&resp.MinOrderAmount,
			&validTill,
		)
		if err != nil {
			return nil, err
		}

		promotionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = promotionID
		resp.ValidTill = validTill

		promotions = append(promotions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return promotions, nil
}
