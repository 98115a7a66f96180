package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler reads the claimable order feed from the
// database. The feed mirrors the predicate the claim update uses, so an order
// shown here is claimable unless another partner wins first.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for claimable order
// feed queries.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns pending, unassigned orders oldest first.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			s.name,
			u.name,
			o.total_amount,
			o.pickup_text,
			o.pickup_date,
			o.created_at
		FROM orders o
		JOIN stores s ON s.id = o.store_id
		JOIN users u ON u.id = o.user_id
		WHERE o.status = ? AND o.delivery_partner_id IS NULL
		ORDER BY o.created_at
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableOrdersQueryResponse
		var id uuid.UUID
		var storeName, userName, pickupText string
		var totalAmount float64
		var pickupDate, createdAt time.Time

		err = rows.Scan(&id, &storeName, &userName, &totalAmount, &pickupText, &pickupDate, &createdAt)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = orderID
		resp.StoreName = storeName
		resp.UserName = userName
		resp.TotalAmount = totalAmount
		resp.PickupAddressText = pickupText
		resp.PickupDate = pickupDate
		resp.CreatedAt = createdAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
