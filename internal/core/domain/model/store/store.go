package store

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// Domain errors for store operations.
var (
	// ErrNameIsRequired is returned when attempting to create a store without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a store without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPhoneIsRequired is returned when attempting to create a store without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrPasswordHashIsRequired is returned when attempting to create a store without credentials.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrStoreIsNotConstructed is returned when using an improperly initialized Store.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")
	// ErrServiceAlreadyExists is returned when adding a service whose ID the store already offers.
	ErrServiceAlreadyExists = errors.New("service already exists")
)

// Store represents a laundry store in the marketplace. It is an aggregate
// root that manages the store's identity, its catalog of services, and its
// visibility to customers.
//
// Business rules:
//   - A store must have a name, email, phone, credentials, and an address
//   - Service IDs are unique within a store
//   - A store receives orders only while online and not suspended
//   - Suspension is an operations action and overrides the online flag
type Store struct {
	// id uniquely identifies the store
	id kernel.UUID
	// name is the customer-facing store name
	name string
	// email is the store's login identity
	email string
	// phone is the store's contact number
	phone string
	// passwordHash is the bcrypt hash of the store's password
	passwordHash string
	// address is the store's physical location
	address kernel.Address
	// services is the store's catalog
	services []Service
	// isOnline is toggled by the store to start and stop receiving orders
	isOnline bool
	// isSuspended is set by operations and overrides isOnline
	isSuspended bool
	// guard ensures the store was properly constructed
	guard guard.ConstructorGuard
}

// NewStore registers a new store. The store starts online and not suspended;
// the catalog may start empty and be filled with AddService.
func NewStore(id kernel.UUID, name, email, phone, passwordHash string, address kernel.Address) (*Store, error) {
	s := &Store{
		isOnline: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setEmail(email),
		s.setPhone(phone),
		s.setPasswordHash(passwordHash),
		s.setAddress(address),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStore reconstructs a Store aggregate from persistent storage,
// including its catalog and visibility flags.
func RestoreStore(
	id kernel.UUID,
	name, email, phone, passwordHash string,
	address kernel.Address,
	services []Service,
	isOnline, isSuspended bool,
) (*Store, error) {
	s := &Store{
		isOnline:    isOnline,
		isSuspended: isSuspended,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setEmail(email),
		s.setPhone(phone),
		s.setPasswordHash(passwordHash),
		s.setAddress(address),
	); err != nil {
		return nil, err
	}

	for _, service := range services {
		if err := s.AddService(service); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Validate checks if the Store was properly constructed.
func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// IsEqual compares two stores by their unique identifiers.
func (s *Store) IsEqual(other *Store) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name returns the customer-facing store name.
func (s *Store) Name() string {
	return s.name
}

// Email returns the store's login identity.
func (s *Store) Email() string {
	return s.email
}

// Phone returns the store's contact number.
func (s *Store) Phone() string {
	return s.phone
}

// PasswordHash returns the bcrypt hash of the store's password.
func (s *Store) PasswordHash() string {
	return s.passwordHash
}

// Address returns the store's physical location.
func (s *Store) Address() kernel.Address {
	return s.address
}

// Services returns a copy of the store's catalog.
func (s *Store) Services() []Service {
	services := make([]Service, len(s.services))
	copy(services, s.services)
	return services
}

// IsOnline reports whether the store toggled itself open.
func (s *Store) IsOnline() bool {
	return s.isOnline
}

// IsSuspended reports whether operations suspended the store.
func (s *Store) IsSuspended() bool {
	return s.isSuspended
}

// IsAcceptingOrders reports whether customers can place orders with the
// store: it is online and not suspended.
func (s *Store) IsAcceptingOrders() bool {
	return s.isOnline && !s.isSuspended
}

// SetOnline toggles whether the store receives new orders.
func (s *Store) SetOnline(online bool) {
	s.isOnline = online
}

// Suspend blocks the store from receiving orders until Unsuspend. Idempotent.
func (s *Store) Suspend() {
	s.isSuspended = true
}

// Unsuspend lifts an operations suspension. Idempotent.
func (s *Store) Unsuspend() {
	s.isSuspended = false
}

// AddService adds a service to the catalog. The service ID must not already
// be present.
func (s *Store) AddService(service Service) error {
	if err := service.Validate(); err != nil {
		return err
	}
	for _, existing := range s.services {
		if existing.ID().IsEqual(service.ID()) {
			return ErrServiceAlreadyExists
		}
	}
	s.services = append(s.services, service)
	return nil
}

// RemoveService removes a service from the catalog by ID.
func (s *Store) RemoveService(serviceID kernel.UUID) error {
	for i, existing := range s.services {
		if existing.ID().IsEqual(serviceID) {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("serviceId", serviceID)
}

// ServiceByID returns the catalog service with the given ID.
func (s *Store) ServiceByID(serviceID kernel.UUID) (Service, error) {
	for _, existing := range s.services {
		if existing.ID().IsEqual(serviceID) {
			return existing, nil
		}
	}
	return Service{}, errs.NewObjectNotFoundError("serviceId", serviceID)
}

// PriceFor returns what the store charges per garment for the given service
// and clothing type.
func (s *Store) PriceFor(serviceID, clothingTypeID kernel.UUID) (float64, error) {
	service, err := s.ServiceByID(serviceID)
	if err != nil {
		return 0, err
	}
	price, ok := service.PriceFor(clothingTypeID)
	if !ok {
		return 0, errs.NewObjectNotFoundError("clothingTypeId", clothingTypeID)
	}
	return price, nil
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Store) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	s.email = email
	return nil
}

func (s *Store) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	s.phone = phone
	return nil
}

func (s *Store) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	s.passwordHash = hash
	return nil
}

func (s *Store) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("address", err)
	}
	s.address = address
	return nil
}
