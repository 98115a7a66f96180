package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNearbyStoresQueryHandler finds stores around a customer location using a
// haversine distance computed in SQL. Offline and suspended stores are
// excluded because they cannot take orders anyway.
type GetNearbyStoresQueryHandler struct {
	db *gorm.DB
}

// NewGetNearbyStoresQueryHandler creates a handler for nearby store queries.
func NewGetNearbyStoresQueryHandler(db *gorm.DB) GetNearbyStoresQueryHandler {
	return GetNearbyStoresQueryHandler{db: db}
}

// Handle executes the query. Returns stores accepting orders within the
// radius, closest first.
func (h GetNearbyStoresQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyStoresQuery,
) ([]GetNearbyStoresQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lat := query.Location().Lat()
	lng := query.Location().Lng()

	// 6371 is the Earth radius in kilometers.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address_text,
			lat,
			lng,
			distance_km
		FROM (
			SELECT
				id,
				name,
				address_text,
				lat,
				lng,
				6371 * acos(
					least(1.0,
						cos(radians(?)) * cos(radians(lat)) * cos(radians(lng) - radians(?))
						+ sin(radians(?)) * sin(radians(lat))
					)
				) AS distance_km
			FROM stores
			WHERE is_online = TRUE AND is_suspended = FALSE
		) nearby
		WHERE distance_km <= ?
		ORDER BY distance_km
	`, lat, lng, lat, query.RadiusKm()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]GetNearbyStoresQueryResponse, 0)
	for rows.Next() {
		var resp GetNearbyStoresQueryResponse
		var id uuid.UUID
		var storeLat, storeLng float64

		err = rows.Scan(&id, &resp.Name, &resp.AddressText, &storeLat, &storeLng, &resp.DistanceKm)
		if err != nil {
			return nil, err
		}

		storeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = storeID

		location, locErr := kernel.NewGeoPoint(storeLat, storeLng)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location

		stores = append(stores, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}
