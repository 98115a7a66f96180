package promotion

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// Domain errors for promotion operations.
var (
	// ErrCodeIsRequired is returned when attempting to create a promotion without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrPromotionIsNotConstructed is returned when using an improperly initialized Promotion.
	ErrPromotionIsNotConstructed = errors.New("Promotion must be created via NewPromotion constructor")
	// ErrPromotionExhausted is the cause attached to the invalid-state error returned
	// when redeeming a promotion whose usage limit was reached.
	ErrPromotionExhausted = errors.New("promotion usage limit reached")
	// ErrPromotionInactive is the cause attached to the invalid-state error returned
	// when redeeming a promotion outside its validity window or after deactivation.
	ErrPromotionInactive = errors.New("promotion is not active")
)

// DiscountType is how the promotion's discount value is interpreted.
type DiscountType int

const (
	// DiscountTypeUnknown represents an invalid or undefined discount type.
	DiscountTypeUnknown DiscountType = iota

	// DiscountTypeFlat is an absolute amount off the order total.
	DiscountTypeFlat

	// DiscountTypePercentage is a percentage off the order total,
	// optionally capped by maxDiscount.
	DiscountTypePercentage
)

func getDiscountTypeStrings() map[DiscountType]string {
	return map[DiscountType]string{
		DiscountTypeUnknown:    "unknown",
		DiscountTypeFlat:       "flat",
		DiscountTypePercentage: "percentage",
	}
}

// DiscountTypeFromString parses a DiscountType from its wire representation.
func DiscountTypeFromString(s string) (DiscountType, error) {
	for dt, str := range getDiscountTypeStrings() {
		if dt != DiscountTypeUnknown && str == s {
			return dt, nil
		}
	}
	return DiscountTypeUnknown, errs.NewValueIsInvalidErrorWithCause("discountType",
		fmt.Errorf("%q is not a valid discount type", s))
}

// Validate checks that the discount type is one of the defined values.
func (dt DiscountType) Validate() error {
	if dt <= DiscountTypeUnknown || dt > DiscountTypePercentage {
		return errs.NewValueIsInvalidErrorWithCause("discountType",
			fmt.Errorf("%d is not a valid discount type", dt))
	}
	return nil
}

// String returns the wire representation of the discount type.
func (dt DiscountType) String() string {
	if s, ok := getDiscountTypeStrings()[dt]; ok {
		return s
	}
	return getDiscountTypeStrings()[DiscountTypeUnknown]
}

// Promotion represents a discount campaign in the marketplace. It is an
// aggregate root that owns the redemption rules: validity window, minimum
// order amount, usage limit, and flat or percentage discount computation.
//
// Business rules:
//   - A promotion is redeemable only while active, inside [validFrom, validTill],
//     and below its usage limit
//   - A percentage discount is capped by maxDiscount when one is set
//   - The computed discount never exceeds the order amount
//   - usedCount only grows, through Redeem
type Promotion struct {
	// id uniquely identifies the promotion
	id kernel.UUID
	// code is the customer-facing coupon code
	code string
	// description is optional free text about the campaign
	description string
	// discountType is how discountValue is interpreted
	discountType DiscountType
	// discountValue is the flat amount or the percentage (0..100]
	discountValue float64
	// maxDiscount caps percentage discounts; 0 means no cap
	maxDiscount float64
	// minOrderAmount is the smallest order total the promotion applies to
	minOrderAmount float64
	// validFrom is the start of the validity window
	validFrom time.Time
	// validTill is the end of the validity window
	validTill time.Time
	// usageLimit is the total number of redemptions allowed; 0 means unlimited
	usageLimit int
	// usedCount is how many times the promotion has been redeemed
	usedCount int
	// isActive is cleared by operations or by the expiry job
	isActive bool
	// guard ensures the promotion was properly constructed
	guard guard.ConstructorGuard
}

// NewPromotionParams carries the inputs for NewPromotion. Description,
// MaxDiscount, MinOrderAmount, and UsageLimit are optional.
type NewPromotionParams struct {
	ID             kernel.UUID
	Code           string
	Description    string
	DiscountType   DiscountType
	DiscountValue  float64
	MaxDiscount    float64
	MinOrderAmount float64
	ValidFrom      time.Time
	ValidTill      time.Time
	UsageLimit     int
}

// NewPromotion creates an active Promotion with validation.
func NewPromotion(params NewPromotionParams) (*Promotion, error) {
	p := &Promotion{
		description: params.Description,
		isActive:    true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(params.ID),
		p.setCode(params.Code),
		p.setDiscount(params.DiscountType, params.DiscountValue, params.MaxDiscount),
		p.setMinOrderAmount(params.MinOrderAmount),
		p.setValidity(params.ValidFrom, params.ValidTill),
		p.setUsageLimit(params.UsageLimit),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePromotion reconstructs a Promotion aggregate from persistent storage.
func RestorePromotion(params NewPromotionParams, usedCount int, isActive bool) (*Promotion, error) {
	p, err := NewPromotion(params)
	if err != nil {
		return nil, err
	}

	if usedCount < 0 {
		return nil, errs.NewValueIsInvalidError("usedCount")
	}
	p.usedCount = usedCount
	p.isActive = isActive
	return p, nil
}

// Validate checks if the Promotion was properly constructed.
func (p *Promotion) Validate() error {
	if p == nil {
		return ErrPromotionIsNotConstructed
	}
	return p.guard.Validate(ErrPromotionIsNotConstructed)
}

// IsEqual compares two promotions by their unique identifiers.
func (p *Promotion) IsEqual(other *Promotion) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the promotion's unique identifier.
func (p *Promotion) ID() kernel.UUID {
	return p.id
}

// Code returns the customer-facing coupon code.
func (p *Promotion) Code() string {
	return p.code
}

// Description returns the optional campaign description.
func (p *Promotion) Description() string {
	return p.description
}

// DiscountType returns how the discount value is interpreted.
func (p *Promotion) DiscountType() DiscountType {
	return p.discountType
}

// DiscountValue returns the flat amount or percentage of the discount.
func (p *Promotion) DiscountValue() float64 {
	return p.discountValue
}

// MaxDiscount returns the cap for percentage discounts; 0 means no cap.
func (p *Promotion) MaxDiscount() float64 {
	return p.maxDiscount
}

// MinOrderAmount returns the smallest order total the promotion applies to.
func (p *Promotion) MinOrderAmount() float64 {
	return p.minOrderAmount
}

// ValidFrom returns the start of the validity window.
func (p *Promotion) ValidFrom() time.Time {
	return p.validFrom
}

// ValidTill returns the end of the validity window.
func (p *Promotion) ValidTill() time.Time {
	return p.validTill
}

// UsageLimit returns the total redemptions allowed; 0 means unlimited.
func (p *Promotion) UsageLimit() int {
	return p.usageLimit
}

// UsedCount returns how many times the promotion has been redeemed.
func (p *Promotion) UsedCount() int {
	return p.usedCount
}

// IsActive reports whether the promotion has been deactivated or expired.
func (p *Promotion) IsActive() bool {
	return p.isActive
}

// IsExpiredAt reports whether the validity window has passed at the given time.
func (p *Promotion) IsExpiredAt(now time.Time) bool {
	return now.After(p.validTill)
}

// IsRedeemableAt reports whether the promotion can be redeemed at the given
// time: active, inside the validity window, and below the usage limit.
func (p *Promotion) IsRedeemableAt(now time.Time) bool {
	if !p.isActive {
		return false
	}
	if now.Before(p.validFrom) || now.After(p.validTill) {
		return false
	}
	if p.usageLimit > 0 && p.usedCount >= p.usageLimit {
		return false
	}
	return true
}

// DiscountFor computes the discount the promotion grants on an order of the
// given amount. Returns 0 when the amount is below the minimum order amount.
// The result never exceeds the order amount.
func (p *Promotion) DiscountFor(orderAmount float64) float64 {
	if orderAmount < p.minOrderAmount {
		return 0
	}

	var discount float64
	switch p.discountType {
	case DiscountTypeFlat:
		discount = p.discountValue
	case DiscountTypePercentage:
		discount = orderAmount * p.discountValue / 100
		if p.maxDiscount > 0 && discount > p.maxDiscount {
			discount = p.maxDiscount
		}
	default:
		return 0
	}

	if discount > orderAmount {
		discount = orderAmount
	}
	return discount
}

// Redeem records one redemption of the promotion. It fails when the promotion
// is not redeemable at the given time.
func (p *Promotion) Redeem(now time.Time) error {
	if !p.isActive || now.Before(p.validFrom) || now.After(p.validTill) {
		return errs.NewInvalidStateErrorWithCause("promotion", p.code, ErrPromotionInactive)
	}
	if p.usageLimit > 0 && p.usedCount >= p.usageLimit {
		return errs.NewInvalidStateErrorWithCause("promotion", p.code, ErrPromotionExhausted)
	}
	p.usedCount++
	return nil
}

// Deactivate takes the promotion out of circulation. Idempotent. Used by
// operations and by the expiry job once validTill passes.
func (p *Promotion) Deactivate() {
	p.isActive = false
}

func (p *Promotion) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Promotion) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	p.code = code
	return nil
}

func (p *Promotion) setDiscount(discountType DiscountType, value, maxDiscount float64) error {
	if err := discountType.Validate(); err != nil {
		return err
	}
	switch discountType {
	case DiscountTypeFlat:
		if value <= 0 {
			return errs.NewValueIsInvalidError("discountValue")
		}
	case DiscountTypePercentage:
		if value <= 0 || value > 100 {
			return errs.NewValueIsOutOfRangeError("discountValue", value, 0, 100)
		}
	}
	if maxDiscount < 0 {
		return errs.NewValueIsInvalidError("maxDiscount")
	}
	p.discountType = discountType
	p.discountValue = value
	p.maxDiscount = maxDiscount
	return nil
}

func (p *Promotion) setMinOrderAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("minOrderAmount")
	}
	p.minOrderAmount = amount
	return nil
}

func (p *Promotion) setValidity(from, till time.Time) error {
	if from.IsZero() {
		return errs.NewValueIsRequiredError("validFrom")
	}
	if till.IsZero() {
		return errs.NewValueIsRequiredError("validTill")
	}
	if till.Before(from) {
		return errs.NewValueIsInvalidErrorWithCause("validTill",
			fmt.Errorf("validity window ends before it starts"))
	}
	p.validFrom = from
	p.validTill = till
	return nil
}

func (p *Promotion) setUsageLimit(limit int) error {
	if limit < 0 {
		return errs.NewValueIsInvalidError("usageLimit")
	}
	p.usageLimit = limit
	return nil
}
