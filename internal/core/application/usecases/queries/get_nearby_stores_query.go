package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	// MaxSearchRadiusKm bounds the nearby-store search so a single query
	// cannot scan the whole store table.
	MaxSearchRadiusKm = 50.0
)

var (
	ErrGetNearbyStoresQueryIsNotConstructed = errors.New(
		"GetNearbyStoresQuery must be created via NewGetNearbyStoresQuery constructor",
	)
)

// GetNearbyStoresQuery retrieves stores accepting orders within a radius of a
// customer location, closest first.
//
// Example:
//
//	query, err := NewGetNearbyStoresQuery(point, 5)
//	if err != nil {
//	    return err
//	}
//	stores, err := NewGetNearbyStoresQueryHandler(db).Handle(ctx, query)
type GetNearbyStoresQuery struct {
	location kernel.GeoPoint
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewGetNearbyStoresQuery creates a query for stores around a location.
// radiusKm must be positive and at most MaxSearchRadiusKm.
func NewGetNearbyStoresQuery(location kernel.GeoPoint, radiusKm float64) (GetNearbyStoresQuery, error) {
	if err := location.Validate(); err != nil {
		return GetNearbyStoresQuery{}, errs.NewValueIsInvalidErrorWithCause("location", err)
	}
	if radiusKm <= 0 || radiusKm > MaxSearchRadiusKm {
		return GetNearbyStoresQuery{}, errs.NewValueIsOutOfRangeError("radiusKm", radiusKm, 0, MaxSearchRadiusKm)
	}

	return GetNearbyStoresQuery{
		location: location,
		radiusKm: radiusKm,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearbyStoresQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyStoresQueryIsNotConstructed)
}

// Location returns the search center.
func (q GetNearbyStoresQuery) Location() kernel.GeoPoint {
	return q.location
}

// RadiusKm returns the search radius in kilometers.
func (q GetNearbyStoresQuery) RadiusKm() float64 {
	return q.radiusKm
}

// GetNearbyStoresQueryResponse represents one store in the nearby result,
// with the great-circle distance from the search center.
type GetNearbyStoresQueryResponse struct {
	ID          kernel.UUID
	Name        string
	AddressText string
	Location    kernel.GeoPoint
	DistanceKm  float64
}
