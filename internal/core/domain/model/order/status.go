package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of a laundry order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Pending ──> Accepted ──> PickedUp ──> InProcess ──> Ready ──> Delivered
//	   │           │            │            │             │           │
//	   └───────────┴────────────┴────────────┴─────────────┴───────────┴──> Cancelled
//
// Pending -> Accepted is the claim transition performed by a delivery partner
// and is guarded by the single-assignment invariant (see Order.Assign).
// Accepted -> PickedUp and Ready -> Delivered are partner transitions;
// PickedUp -> InProcess -> Ready are store transitions. Delivered and
// Cancelled are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is a pre-placement draft. Orders restored from legacy data may
	// carry it; the placement flow persists orders directly in Pending.
	Created

	// Pending means the order is placed and waiting for a delivery partner
	// to claim it. Only Pending, unassigned orders are claimable.
	Pending

	// Accepted means a delivery partner has claimed the order and is on the
	// way to collect it from the customer.
	Accepted

	// PickedUp means the partner has collected the garments and handed them
	// to the store.
	PickedUp

	// InProcess means the store is washing/cleaning the garments.
	InProcess

	// Ready means the store has finished processing and the order awaits
	// delivery back to the customer.
	Ready

	// Delivered means the order has been returned to the customer.
	// This is a terminal state.
	Delivered

	// Cancelled means the order was aborted before completion.
	// Reachable from any non-terminal state; terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Created:   "created",
		Pending:   "pending",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InProcess: "in_process",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "created",
		Pending:   "pending",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InProcess: "in_process",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a Status from its wire representation.
// Returns an error for unknown values, including the legacy
// new/in-progress/completed vocabulary which is deliberately not accepted.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
// Returns "unknown" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsDeletable reports whether an order in this status may be physically
// removed. Only orders that were never claimed (Created or Pending) may be
// deleted; everything past that point is part of the audit trail.
func (s Status) IsDeletable() bool {
	return s == Created || s == Pending
}

// ValidateAccept checks if the status allows a delivery partner claim without
// performing the transition. Only Pending orders are claimable.
//
// Returns an InvalidStateError carrying the current status so callers can
// report what state the order was actually in.
func (s Status) ValidateAccept() error {
	if s != Pending {
		return errs.NewInvalidStateErrorWithCause("order", s.String(),
			fmt.Errorf("only pending orders can be accepted"))
	}
	return nil
}

// ValidateCanHavePartner validates the consistency between order status and
// delivery partner assignment.
//
// Business rules:
//   - Created and Pending orders must not have a partner assigned
//   - Accepted through Delivered orders must have a partner assigned
//   - Cancelled orders may or may not have one, depending on when they were cancelled
func (s Status) ValidateCanHavePartner(partner bool) error {
	if s == Cancelled {
		return nil
	}

	if partner && (s == Created || s == Pending) {
		return errs.NewInvalidStateErrorWithCause("order", s.String(),
			fmt.Errorf("%s is not a valid status to have a delivery partner", s.String()))
	}

	if !partner && s != Created && s != Pending {
		return errs.NewInvalidStateErrorWithCause("order", s.String(),
			fmt.Errorf("%s is not a valid status to have no delivery partner", s.String()))
	}

	return nil
}

// Place transitions the status from Created to Pending.
func (s Status) Place() (Status, error) {
	if s != Created {
		return Unknown, errs.NewInvalidStateErrorWithCause("order", s.String(),
			fmt.Errorf("only created orders can be placed"))
	}
	return Pending, nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted (delivery partner claim)
//
// Unlike generic assignment workflows there is no re-acceptance: an order is
// claimed exactly once, so Accepted -> Accepted is not a legal transition.
func (s Status) Accept() (Status, error) {
	if err := s.ValidateAccept(); err != nil {
		return Unknown, err
	}
	return Accepted, nil
}

// PickUp transitions the status from Accepted to PickedUp.
// Performed by the assigned delivery partner when collecting the garments.
func (s Status) PickUp() (Status, error) {
	if s != Accepted {
		return Unknown, errs.NewInvalidStateErrorWithCause("order", s.String(),
			fmt.Errorf("only accepted orders can be picked up"))
	}
	return PickedUp, nil
}

// StartProcessing transitions the status from PickedUp to InProcess.
// Performed by the fulfilling store when washing begins.
func (s Status) StartProcessing() (Status, error) {
	if s != PickedUp {
		return Unknown, errs.NewInvalidStateErrorWithCause("order", s.String(),
			fmt.Errorf("only picked up orders can start processing"))
	}
	return InProcess, nil
}

// MarkReady transitions the status from InProcess to Ready.
// Performed by the fulfilling store when processing completes.
func (s Status) MarkReady() (Status, error) {
	if s != InProcess {
		return Unknown, errs.NewInvalidStateErrorWithCause("order", s.String(),
			fmt.Errorf("only in process orders can be marked ready"))
	}
	return Ready, nil
}

// Complete transitions the status from Ready to Delivered.
// Performed by the assigned delivery partner on hand-off to the customer.
// Delivered is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != Ready {
		return Unknown, errs.NewInvalidStateErrorWithCause("order", s.String(),
			fmt.Errorf("only ready orders can be delivered"))
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Valid from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidStateErrorWithCause("order", s.String(),
			fmt.Errorf("%s orders cannot be cancelled", s.String()))
	}
	return Cancelled, nil
}
