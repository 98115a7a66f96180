package partner

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// Domain errors for delivery partner operations.
var (
	// ErrNameIsRequired is returned when attempting to create a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a partner without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrEmailIsRequired is returned when attempting to create a partner without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordHashIsRequired is returned when attempting to create a partner without credentials.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized DeliveryPartner.
	ErrPartnerIsNotConstructed = errors.New("DeliveryPartner must be created via NewDeliveryPartner constructor")
)

// DeliveryPartner represents a courier who picks laundry orders up from
// customers and returns them after processing. It is an aggregate root that
// manages the partner's identity, approval, availability, and accumulated
// earnings.
//
// Business rules:
//   - A freshly registered partner is not approved and not available
//   - Only an approved partner may toggle availability
//   - A partner can claim orders only while approved and available
//   - Earnings only accumulate, by non-negative amounts
type DeliveryPartner struct {
	// id uniquely identifies the partner
	id kernel.UUID
	// name is the partner's display name
	name string
	// phone is the partner's contact number
	phone string
	// email is the partner's login identity
	email string
	// passwordHash is the bcrypt hash of the partner's password
	passwordHash string
	// vehicleType describes how the partner moves orders (optional)
	vehicleType string
	// isApproved is set by operations after vetting the partner
	isApproved bool
	// isAvailable is toggled by the partner when ready to take orders
	isAvailable bool
	// totalEarnings is the accumulated delivery earnings
	totalEarnings float64
	// location is the partner's last reported position (nil if never reported)
	location *kernel.GeoPoint
	// guard ensures the partner was properly constructed
	guard guard.ConstructorGuard
}

// NewDeliveryPartner registers a new delivery partner. The partner starts
// unapproved and unavailable; operations must approve the account before it
// can take orders.
func NewDeliveryPartner(id kernel.UUID, name, phone, email, passwordHash, vehicleType string) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		vehicleType: vehicleType,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
		p.setEmail(email),
		p.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryPartner reconstructs a DeliveryPartner aggregate from
// persistent storage, including approval, availability, earnings, and the
// last reported location.
func RestoreDeliveryPartner(
	id kernel.UUID,
	name, phone, email, passwordHash, vehicleType string,
	isApproved, isAvailable bool,
	totalEarnings float64,
	location *kernel.GeoPoint,
) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		vehicleType: vehicleType,
		isApproved:  isApproved,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
		p.setEmail(email),
		p.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	if totalEarnings < 0 {
		return nil, errs.NewValueIsInvalidError("totalEarnings")
	}
	p.totalEarnings = totalEarnings

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		loc := *location
		p.location = &loc
	}

	return p, nil
}

// Validate checks if the DeliveryPartner was properly constructed.
func (p *DeliveryPartner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by their unique identifiers.
func (p *DeliveryPartner) IsEqual(other *DeliveryPartner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *DeliveryPartner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *DeliveryPartner) Name() string {
	return p.name
}

// Phone returns the partner's contact number.
func (p *DeliveryPartner) Phone() string {
	return p.phone
}

// Email returns the partner's login identity.
func (p *DeliveryPartner) Email() string {
	return p.email
}

// PasswordHash returns the bcrypt hash of the partner's password.
func (p *DeliveryPartner) PasswordHash() string {
	return p.passwordHash
}

// VehicleType returns how the partner moves orders; may be empty.
func (p *DeliveryPartner) VehicleType() string {
	return p.vehicleType
}

// IsApproved reports whether operations has vetted this partner.
func (p *DeliveryPartner) IsApproved() bool {
	return p.isApproved
}

// IsAvailable reports whether the partner is ready to take orders.
func (p *DeliveryPartner) IsAvailable() bool {
	return p.isAvailable
}

// TotalEarnings returns the accumulated delivery earnings.
func (p *DeliveryPartner) TotalEarnings() float64 {
	return p.totalEarnings
}

// Location returns the partner's last reported position, or nil.
func (p *DeliveryPartner) Location() *kernel.GeoPoint {
	return p.location
}

// CanAccept reports whether the partner is eligible to claim orders:
// the account is approved and the partner marked themselves available.
func (p *DeliveryPartner) CanAccept() bool {
	return p.isApproved && p.isAvailable
}

// Approve marks the partner account as vetted by operations. Idempotent.
func (p *DeliveryPartner) Approve() {
	p.isApproved = true
}

// SetAvailability toggles whether the partner is ready to take orders.
// Only approved partners can become available.
func (p *DeliveryPartner) SetAvailability(available bool) error {
	if available && !p.isApproved {
		return errs.NewInvalidStateError("partner", "unapproved")
	}
	p.isAvailable = available
	return nil
}

// ReportLocation records the partner's current position.
func (p *DeliveryPartner) ReportLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = &location
	return nil
}

// AddEarnings credits a completed delivery's fee to the partner.
func (p *DeliveryPartner) AddEarnings(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	p.totalEarnings += amount
	return nil
}

func (p *DeliveryPartner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryPartner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *DeliveryPartner) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	p.phone = phone
	return nil
}

func (p *DeliveryPartner) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	p.email = email
	return nil
}

func (p *DeliveryPartner) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	p.passwordHash = hash
	return nil
}
