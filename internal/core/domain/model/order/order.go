package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrItemsAreRequired is returned when attempting to create an order with no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrPickupDateIsRequired is returned when attempting to create an order without
	// a requested pickup date.
	ErrPickupDateIsRequired = errs.NewValueIsRequiredError("pickupDate")

	// ErrOrderAlreadyAssigned is the cause attached to the invalid-state error
	// returned when assigning an order that already has a delivery partner.
	ErrOrderAlreadyAssigned = errors.New("order is already assigned to a delivery partner")
)

// Order represents a laundry order in the marketplace. It is the aggregate root
// that manages the order lifecycle from placement through store fulfillment to
// delivery-partner pickup and completion.
//
// Order follows these invariants:
//   - totalAmount is always the recomputed sum of its items minus any applied
//     discount; it is never accepted verbatim from a client
//   - deliveryPartnerID is set at most once, only while the order is Pending
//   - status transitions are monotonic along the defined state machine
//   - every item has positive quantity and non-negative price
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID is the customer who placed the order
	userID kernel.UUID

	// storeID is the store fulfilling the order
	storeID kernel.UUID

	// deliveryPartnerID is the assigned delivery partner (nil if unclaimed)
	deliveryPartnerID *kernel.UUID

	// items are the order lines; never empty
	items []Item

	// promotionID is the promotion applied at placement, if any
	promotionID *kernel.UUID

	// discountAmount is the discount already applied to totalAmount
	discountAmount float64

	// totalAmount is the payable total: sum of item subtotals minus discount
	totalAmount float64

	// pickupAddress is where garments are collected from the customer
	pickupAddress kernel.Address

	// deliveryAddress is where the finished order is returned
	deliveryAddress kernel.Address

	// pickupDate is the requested collection date
	pickupDate time.Time

	// deliveryDate is set when the order is delivered
	deliveryDate *time.Time

	// notes carries optional free-text customer instructions
	notes string

	// status is the current state in the order lifecycle
	status Status

	// paymentStatus tracks the externally reported settlement state
	paymentStatus PaymentStatus

	// paymentMethod is how the customer chose to pay
	paymentMethod PaymentMethod

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to place
// a fresh order, ensuring all business invariants hold from the start.
//
// The order is created in Pending status with payment Pending and no delivery
// partner; totalAmount is computed as the sum of item subtotals, ignoring any
// total a client may have supplied.
//
// Example:
//
//	item, _ := order.NewItem(serviceID, "Wash & Fold", clothingTypeID, 3, 49.0)
//	o, err := order.NewOrder(order.NewOrderParams{
//	    ID:              kernel.NewUUID(),
//	    UserID:          userID,
//	    StoreID:         storeID,
//	    Items:           []order.Item{item},
//	    PickupAddress:   pickup,
//	    DeliveryAddress: delivery,
//	    PickupDate:      time.Now().AddDate(0, 0, 1),
//	    PaymentMethod:   order.PaymentMethodCash,
//	})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(params NewOrderParams) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		notes:         params.Notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setUserID(params.UserID),
		o.setStoreID(params.StoreID),
		o.setItems(params.Items),
		o.setPickupAddress(params.PickupAddress),
		o.setDeliveryAddress(params.DeliveryAddress),
		o.setPickupDate(params.PickupDate),
		o.setPaymentMethod(params.PaymentMethod),
	); err != nil {
		return nil, err
	}

	o.totalAmount = o.ItemsTotal()
	return o, nil
}

// NewOrderParams carries the inputs for NewOrder. Notes is optional;
// everything else is required.
type NewOrderParams struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	StoreID         kernel.UUID
	Items           []Item
	PickupAddress   kernel.Address
	DeliveryAddress kernel.Address
	PickupDate      time.Time
	PaymentMethod   PaymentMethod
	Notes           string
}

// RestoreOrderParams carries the full persisted state for RestoreOrder.
type RestoreOrderParams struct {
	ID                kernel.UUID
	UserID            kernel.UUID
	StoreID           kernel.UUID
	DeliveryPartnerID *kernel.UUID
	Items             []Item
	PromotionID       *kernel.UUID
	DiscountAmount    float64
	PickupAddress     kernel.Address
	DeliveryAddress   kernel.Address
	PickupDate        time.Time
	DeliveryDate      *time.Time
	Notes             string
	Status            Status
	PaymentStatus     PaymentStatus
	PaymentMethod     PaymentMethod
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts any valid lifecycle state, but still enforces
// cross-field consistency: the status must agree with the presence of a
// delivery partner, and the total is recomputed from items and discount
// rather than trusted from storage.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o := &Order{
		status:        params.Status,
		paymentStatus: params.PaymentStatus,
		notes:         params.Notes,
		deliveryDate:  params.DeliveryDate,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setUserID(params.UserID),
		o.setStoreID(params.StoreID),
		o.setItems(params.Items),
		o.setPickupAddress(params.PickupAddress),
		o.setDeliveryAddress(params.DeliveryAddress),
		o.setPickupDate(params.PickupDate),
		o.setPaymentMethod(params.PaymentMethod),
		params.Status.Validate(),
		params.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if err := params.Status.ValidateCanHavePartner(params.DeliveryPartnerID != nil); err != nil {
		return nil, err
	}

	if params.DeliveryPartnerID != nil {
		if err := params.DeliveryPartnerID.Validate(); err != nil {
			return nil, err
		}
		partnerID := *params.DeliveryPartnerID
		o.deliveryPartnerID = &partnerID
	}

	if err := o.applyDiscount(params.PromotionID, params.DiscountAmount); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct, and should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the customer who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// StoreID returns the identifier of the fulfilling store.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// DeliveryPartner returns the assigned delivery partner's ID.
// Returns nil if the order has not been claimed.
func (o *Order) DeliveryPartner() *kernel.UUID {
	return o.deliveryPartnerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Promotion returns the applied promotion's ID, or nil if none was applied.
func (o *Order) Promotion() *kernel.UUID {
	return o.promotionID
}

// DiscountAmount returns the discount applied to the order total.
func (o *Order) DiscountAmount() float64 {
	return o.discountAmount
}

// TotalAmount returns the payable total: item subtotals minus discount.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// ItemsTotal returns the sum of quantity times price over all items,
// before any discount.
func (o *Order) ItemsTotal() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// PickupAddress returns where garments are collected from the customer.
func (o *Order) PickupAddress() kernel.Address {
	return o.pickupAddress
}

// DeliveryAddress returns where the finished order is returned.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

// PickupDate returns the requested collection date.
func (o *Order) PickupDate() time.Time {
	return o.pickupDate
}

// DeliveryDate returns when the order was delivered, or nil if it wasn't yet.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// Notes returns the optional customer instructions.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentMethod returns the payment method chosen at placement.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// IsOwnedByStore reports whether the given store fulfills this order.
func (o *Order) IsOwnedByStore(storeID kernel.UUID) bool {
	return o.storeID.IsEqual(storeID)
}

// IsPlacedByUser reports whether the given customer placed this order.
func (o *Order) IsPlacedByUser(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// IsAssignedTo reports whether the given delivery partner holds this order.
func (o *Order) IsAssignedTo(partnerID kernel.UUID) bool {
	return o.deliveryPartnerID != nil && o.deliveryPartnerID.IsEqual(partnerID)
}

// ApplyPromotion applies a promotion's computed discount to the order.
// Allowed only while the order is Pending and only once. The discount must be
// non-negative and may not exceed the item subtotal sum; the payable total
// becomes items total minus discount.
func (o *Order) ApplyPromotion(promotionID kernel.UUID, discount float64) error {
	if err := promotionID.Validate(); err != nil {
		return err
	}
	if o.status != Pending {
		return errs.NewInvalidStateErrorWithCause("order", o.status.String(),
			fmt.Errorf("promotions can only be applied to pending orders"))
	}
	if o.promotionID != nil {
		return errs.NewInvalidStateErrorWithCause("order", o.status.String(),
			fmt.Errorf("a promotion is already applied"))
	}

	return o.applyDiscount(&promotionID, discount)
}

// Assign claims the order for a delivery partner and advances the status to
// Accepted. This enforces the single-assignment invariant in memory:
//
//   - the partner ID must be valid
//   - the order must be Pending
//   - the order must not already have a delivery partner
//
// The in-memory guard is necessary but not sufficient under concurrent
// claims; the persistence layer must apply the assignment as a conditional
// write on the same two conditions (see ports.OrderRepository.ClaimForPartner).
//
// Example:
//
//	if err := o.Assign(partnerID); err != nil {
//	    // Order was not claimable
//	}
func (o *Order) Assign(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if o.deliveryPartnerID != nil {
		return errs.NewInvalidStateErrorWithCause("order", o.status.String(), ErrOrderAlreadyAssigned)
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPartnerID = &partnerID
	return nil
}

// MarkPickedUp records that the assigned partner collected the garments.
// The order must be Accepted.
func (o *Order) MarkPickedUp() error {
	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartProcessing records that the store began washing. The order must be PickedUp.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkReady records that the store finished processing. The order must be InProcess.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete marks the order as delivered back to the customer and stamps the
// delivery date. The order must be Ready. Delivered is terminal.
func (o *Order) Complete(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryDate = &deliveredAt
	return nil
}

// Cancel aborts the order. Allowed from any non-terminal status.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkPaymentCompleted records an externally reported successful settlement.
func (o *Order) MarkPaymentCompleted() error {
	if o.paymentStatus != PaymentPending {
		return errs.NewInvalidStateErrorWithCause("payment", o.paymentStatus.String(),
			fmt.Errorf("only pending payments can complete"))
	}
	o.paymentStatus = PaymentCompleted
	return nil
}

// MarkPaymentFailed records an externally reported failed settlement.
func (o *Order) MarkPaymentFailed() error {
	if o.paymentStatus != PaymentPending {
		return errs.NewInvalidStateErrorWithCause("payment", o.paymentStatus.String(),
			fmt.Errorf("only pending payments can fail"))
	}
	o.paymentStatus = PaymentFailed
	return nil
}

// applyDiscount validates and applies a promotion reference plus discount,
// recomputing the payable total. A nil promotionID with a zero discount
// leaves the order undiscounted.
func (o *Order) applyDiscount(promotionID *kernel.UUID, discount float64) error {
	itemsTotal := o.ItemsTotal()

	if promotionID == nil {
		if discount != 0 {
			return errs.NewValueIsInvalidErrorWithCause("discountAmount",
				fmt.Errorf("discount without a promotion"))
		}
		o.totalAmount = itemsTotal
		return nil
	}

	if err := promotionID.Validate(); err != nil {
		return err
	}
	if discount < 0 || discount > itemsTotal {
		return errs.NewValueIsOutOfRangeError("discountAmount", discount, 0, itemsTotal)
	}

	id := *promotionID
	o.promotionID = &id
	o.discountAmount = discount
	o.totalAmount = itemsTotal - discount
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = id
	return nil
}

func (o *Order) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("storeId", err)
	}
	o.storeID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPickupAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickupAddress", err)
	}
	o.pickupAddress = address
	return nil
}

func (o *Order) setDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryAddress", err)
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setPickupDate(pickupDate time.Time) error {
	if pickupDate.IsZero() {
		return ErrPickupDateIsRequired
	}
	o.pickupDate = pickupDate
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
