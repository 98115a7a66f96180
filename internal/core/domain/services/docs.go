// Package services contains stateless domain services that coordinate
// multiple aggregates:
//
//   - OrderPricer resolves a customer's requested lines against a store's
//     catalog into priced order items
//   - DiscountCalculator redeems a promotion against a fresh order
//
// Both services operate purely on domain objects; persistence and transport
// stay in the application and adapter layers.
package services
