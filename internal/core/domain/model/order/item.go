package order

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line of a laundry order: a store service applied to a
// clothing type at a quantity and unit price. The service name is carried
// denormalized so store staff can read order sheets without a lookup.
//
// Invariants:
//   - quantity is a positive integer
//   - price is non-negative
//   - serviceID and clothingTypeID reference existing catalog entries
//     (checked by the order-placement operation, not here)
//
// Item is an immutable value object; its subtotal is quantity times price.
type Item struct { //nolint:recvcheck //using for validation
	serviceID      kernel.UUID
	serviceName    string
	clothingTypeID kernel.UUID
	quantity       int
	price          float64

	guard guard.ConstructorGuard
}

// NewItem creates an order line with validation.
//
// Parameters:
//   - serviceID: catalog identifier of the store service (wash, iron, dry-clean...)
//   - serviceName: display name of the service, denormalized onto the order
//   - clothingTypeID: catalog identifier of the garment type
//   - quantity: number of garments (must be positive)
//   - price: unit price (must be non-negative)
//
// Returns an aggregated validation error if any field is invalid.
func NewItem(
	serviceID kernel.UUID,
	serviceName string,
	clothingTypeID kernel.UUID,
	quantity int,
	price float64,
) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setServiceID(serviceID),
		item.setServiceName(serviceName),
		item.setClothingTypeID(clothingTypeID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ServiceID returns the catalog identifier of the service.
func (i Item) ServiceID() kernel.UUID {
	return i.serviceID
}

// ServiceName returns the denormalized display name of the service.
func (i Item) ServiceName() string {
	return i.serviceName
}

// ClothingTypeID returns the catalog identifier of the garment type.
func (i Item) ClothingTypeID() kernel.UUID {
	return i.clothingTypeID
}

// Quantity returns the number of garments on this line.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price of this line.
func (i Item) Price() float64 {
	return i.price
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() float64 {
	return float64(i.quantity) * i.price
}

func (i *Item) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.serviceID = id
	return nil
}

func (i *Item) setServiceName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("serviceName")
	}
	i.serviceName = name
	return nil
}

func (i *Item) setClothingTypeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.clothingTypeID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}
	i.price = price
	return nil
}
