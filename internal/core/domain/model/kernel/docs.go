// Package kernel provides shared value objects used across all domain models
// in the laundry marketplace: UUID identifiers, validated WGS84 geo points,
// and addresses pairing free text with a location.
//
// All types in this package are immutable value objects constructed through
// factory functions that enforce their invariants. Zero values are invalid
// and fail validation, which protects aggregates reconstructed from
// persistence against silently corrupted data.
package kernel
