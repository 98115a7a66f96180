// Package partnerrepo provides data transfer objects and mapping functions for
// delivery partner persistence.
package partnerrepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting delivery
// partner aggregates. Email carries a unique index because it is the login
// identifier.
type PartnerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Phone         string
	Email         string `gorm:"uniqueIndex"`
	PasswordHash  string
	VehicleType   string
	IsApproved    bool
	IsAvailable   bool
	TotalEarnings float64
	Lat           *float64
	Lng           *float64
}

// TableName specifies the database table name for delivery partner entities.
func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

// fromDomain converts a delivery partner domain aggregate to its database
// representation.
func fromDomain(aggregate *partner.DeliveryPartner) PartnerDTO {
	var lat, lng *float64
	if location := aggregate.Location(); location != nil {
		rawLat, rawLng := location.Lat(), location.Lng()
		lat, lng = &rawLat, &rawLng
	}

	return PartnerDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Phone:         aggregate.Phone(),
		Email:         aggregate.Email(),
		PasswordHash:  aggregate.PasswordHash(),
		VehicleType:   aggregate.VehicleType(),
		IsApproved:    aggregate.IsApproved(),
		IsAvailable:   aggregate.IsAvailable(),
		TotalEarnings: aggregate.TotalEarnings(),
		Lat:           lat,
		Lng:           lng,
	}
}

// toDomain converts a database DTO to a delivery partner domain aggregate.
func toDomain(dto PartnerDTO) (*partner.DeliveryPartner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if geoErr != nil {
			return nil, geoErr
		}
		location = &point
	}

	return partner.RestoreDeliveryPartner(
		id,
		dto.Name, dto.Phone, dto.Email, dto.PasswordHash, dto.VehicleType,
		dto.IsApproved, dto.IsAvailable,
		dto.TotalEarnings,
		location,
	)
}
