package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoreOrdersQueryHandler reads a store's order list from the database.
type GetStoreOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreOrdersQueryHandler creates a handler for store order list
// queries.
func NewGetStoreOrdersQueryHandler(db *gorm.DB) GetStoreOrdersQueryHandler {
	return GetStoreOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the store's orders newest first,
// narrowed to one status when the query carries a filter.
func (h GetStoreOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStoreOrdersQuery,
) ([]GetStoreOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			u.name,
			o.status,
			o.payment_status,
			o.total_amount,
			o.pickup_date,
			o.created_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.store_id = ?
	`
	args := []any{query.StoreID().Bytes()}

	if status := query.Status(); status != nil {
		sql += " AND o.status = ?"
		args = append(args, status.String())
	}
	sql += " ORDER BY o.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetStoreOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetStoreOrdersQueryResponse
		var id uuid.UUID
		var userName, status, paymentStatus string
		var totalAmount float64
		var pickupDate, createdAt time.Time

		err = rows.Scan(&id, &userName, &status, &paymentStatus, &totalAmount, &pickupDate, &createdAt)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = orderID
		resp.UserName = userName
		resp.Status = status
		resp.PaymentStatus = paymentStatus
		resp.TotalAmount = totalAmount
		resp.PickupDate = pickupDate
		resp.CreatedAt = createdAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
