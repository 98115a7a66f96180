package store

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrServiceIsNotConstructed is returned when a Service instance was not
// created via the NewService constructor.
var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

// ErrPricesAreRequired is returned when attempting to create a service
// without any clothing-type price.
var ErrPricesAreRequired = errs.NewValueIsRequiredError("prices")

// ClothingPrice is a single price point of a service: what the store charges
// for one garment of the given clothing type.
type ClothingPrice struct {
	ClothingTypeID kernel.UUID
	Price          float64
}

// Service is a laundry service offered by a store (wash and fold, dry
// cleaning, ironing) with a price per clothing type. It is a value object
// embedded in the Store aggregate.
type Service struct {
	// id uniquely identifies the service within the marketplace
	id kernel.UUID
	// name is the customer-facing service name
	name string
	// description is optional free text about the service
	description string
	// prices maps clothing types to per-garment prices; never empty
	prices []ClothingPrice
	// guard ensures the service was properly constructed
	guard guard.ConstructorGuard
}

// NewService creates a Service with validation. Every price entry needs a
// valid clothing type and a non-negative price.
func NewService(id kernel.UUID, name, description string, prices []ClothingPrice) (Service, error) {
	s := Service{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setPrices(prices),
	); err != nil {
		return Service{}, err
	}

	return s, nil
}

// Validate checks if the Service was properly constructed.
func (s Service) Validate() error {
	return s.guard.Validate(ErrServiceIsNotConstructed)
}

// ID returns the service's unique identifier.
func (s Service) ID() kernel.UUID {
	return s.id
}

// Name returns the customer-facing service name.
func (s Service) Name() string {
	return s.name
}

// Description returns the optional service description.
func (s Service) Description() string {
	return s.description
}

// Prices returns a copy of the per-clothing-type price list.
func (s Service) Prices() []ClothingPrice {
	prices := make([]ClothingPrice, len(s.prices))
	copy(prices, s.prices)
	return prices
}

// PriceFor returns the per-garment price for the given clothing type.
// The second return value is false when the service does not cover it.
func (s Service) PriceFor(clothingTypeID kernel.UUID) (float64, bool) {
	for _, p := range s.prices {
		if p.ClothingTypeID.IsEqual(clothingTypeID) {
			return p.Price, true
		}
	}
	return 0, false
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Service) setPrices(prices []ClothingPrice) error {
	if len(prices) == 0 {
		return ErrPricesAreRequired
	}
	for _, p := range prices {
		if err := p.ClothingTypeID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("clothingTypeId", err)
		}
		if p.Price < 0 {
			return errs.NewValueIsInvalidError("price")
		}
	}
	s.prices = make([]ClothingPrice, len(prices))
	copy(s.prices, prices)
	return nil
}
