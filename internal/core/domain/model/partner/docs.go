// Package partner contains the DeliveryPartner aggregate root.
//
// A delivery partner registers, gets approved by operations, toggles
// availability, and claims pending orders. Eligibility to claim is the
// conjunction of approval and availability (CanAccept); the aggregate keeps
// both flags consistent with the registration flow.
package partner
