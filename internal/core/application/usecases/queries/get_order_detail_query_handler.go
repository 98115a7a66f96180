package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler reads one order with its lines from the
// database, scoped to the owning store.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle executes the query. The store scope is part of the row predicate, so
// a mismatched store and a missing order are indistinguishable to the caller.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			u.name,
			p.name,
			o.status,
			o.payment_status,
			o.payment_method,
			o.discount_amount,
			o.total_amount,
			o.pickup_text,
			o.delivery_text,
			o.pickup_date,
			o.delivery_date,
			o.notes
		FROM orders o
		JOIN users u ON u.id = o.user_id
		LEFT JOIN delivery_partners p ON p.id = o.delivery_partner_id
		WHERE o.id = ? AND o.store_id = ?
	`, query.OrderID().Bytes(), query.StoreID().Bytes()).Row()

	var resp GetOrderDetailQueryResponse
	var id uuid.UUID
	var partnerName sql.NullString
	var deliveryDate sql.NullTime

	err := row.Scan(
		&id,
		&resp.UserName,
		&partnerName,
		&resp.Status,
		&resp.PaymentStatus,
		&resp.PaymentMethod,
		&resp.DiscountAmount,
		&resp.TotalAmount,
		&resp.PickupAddressText,
		&resp.DeliveryAddressText,
		&resp.PickupDate,
		&deliveryDate,
		&resp.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderDetailQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	resp.ID = orderID

	if partnerName.Valid {
		resp.DeliveryPartnerName = &partnerName.String
	}
	if deliveryDate.Valid {
		deliveredAt := deliveryDate.Time
		resp.DeliveryDate = &deliveredAt
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderDetailQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			service_name,
			quantity,
			price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		if err = rows.Scan(&item.ServiceName, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		item.Subtotal = item.Price * float64(item.Quantity)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
