package kernel

import (
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// ErrTextAddressIsRequired is returned when the free-text part of an address is empty.
var ErrTextAddressIsRequired = errs.NewValueIsRequiredError("textAddress")

// Address is a value object pairing a human-readable address string with its
// geographic location. Orders carry two of these: a pickup address and a
// delivery address. The zero value is invalid and will fail validation.
//
// Example:
//
//	point, _ := kernel.NewGeoPoint(12.9716, 77.5946)
//	addr, err := kernel.NewAddress("12 MG Road, Bengaluru", point)
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	text     string
	location GeoPoint
	guard    guard.ConstructorGuard
}

// NewAddress creates an Address from a non-empty text address and a validated
// geo location. Returns an aggregated error if either part is invalid.
func NewAddress(text string, location GeoPoint) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setText(text),
		address.setLocation(location),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks if the Address was properly constructed using the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Text returns the human-readable address string.
func (a Address) Text() string {
	return a.text
}

// Location returns the geographic location of the address.
func (a Address) Location() GeoPoint {
	return a.location
}

// String returns a human-readable representation of the address.
func (a Address) String() string {
	return fmt.Sprintf("%s %s", a.text, a.location)
}

// IsEqual compares two addresses for equality.
// Both addresses must be properly constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	sameLocation, err := a.location.IsEqual(other.location)
	if err != nil {
		return false, err
	}

	return a.text == other.text && sameLocation, nil
}

func (a *Address) setText(text string) error {
	if text == "" {
		return ErrTextAddressIsRequired
	}
	a.text = text
	return nil
}

func (a *Address) setLocation(location GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}
