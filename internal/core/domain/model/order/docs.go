// Package order contains the Order aggregate root and its supporting value
// objects for the laundry marketplace.
//
// The package implements the order lifecycle:
//
//   - Order: the aggregate root, created in Pending status and advanced through
//     the state machine by the store and the assigned delivery partner
//   - Status: the lifecycle state machine (created, pending, accepted,
//     picked_up, in_process, ready, delivered, cancelled)
//   - Item: an order line referencing a store service and clothing type
//   - PaymentStatus, PaymentMethod: settlement state and method enums
//
// The central invariant is single assignment: an order is claimable by a
// delivery partner only while it is Pending and has no partner, and a partner
// is set at most once. The aggregate enforces this in memory; the persistence
// layer must additionally enforce it with a conditional write so that
// concurrent claims resolve to exactly one winner.
package order
