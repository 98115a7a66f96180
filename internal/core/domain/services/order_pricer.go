package services

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/store"
)

// RequestedLine is a customer's raw order line before pricing: which service,
// which clothing type, how many garments. Prices are never taken from the
// client; the pricer resolves them from the store catalog.
type RequestedLine struct {
	ServiceID      kernel.UUID
	ClothingTypeID kernel.UUID
	Quantity       int
}

// OrderPricer is a domain service that turns a customer's requested lines
// into priced order items using the fulfilling store's catalog.
//
// Business rules:
//   - Every requested service must exist in the store's catalog
//   - Every clothing type must be priced by the requested service
//   - The item carries the catalog price and service name at order time,
//     so later catalog edits do not change placed orders
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price resolves the requested lines against the store catalog and returns
// constructed order items. It fails on the first line the store cannot serve.
func (op OrderPricer) Price(s *store.Store, lines []RequestedLine) ([]order.Item, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		service, err := s.ServiceByID(line.ServiceID)
		if err != nil {
			return nil, err
		}

		price, err := s.PriceFor(line.ServiceID, line.ClothingTypeID)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(service.ID(), service.Name(), line.ClothingTypeID, line.Quantity, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
