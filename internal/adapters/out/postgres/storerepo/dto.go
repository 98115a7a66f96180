// Package storerepo provides data transfer objects and mapping functions for
// store persistence, including the per-store service catalog.
package storerepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for persisting store aggregates.
// Latitude and longitude are stored as flat columns so the nearby-store query
// can compute distances in SQL.
type StoreDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	PasswordHash string
	AddressText  string
	Lat          float64
	Lng          float64
	IsOnline     bool
	IsSuspended  bool
	Services     []ServiceDTO `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for store entities.
func (StoreDTO) TableName() string {
	return "stores"
}

// ServiceDTO represents one catalog service offered by a store.
type ServiceDTO struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID          `gorm:"type:uuid;index"`
	Name        string
	Description string
	Prices      []ClothingPriceDTO `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for store service entities.
func (ServiceDTO) TableName() string {
	return "store_services"
}

// ClothingPriceDTO represents the price of one garment type under a service.
type ClothingPriceDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	ServiceID      uuid.UUID `gorm:"type:uuid;index"`
	ClothingTypeID uuid.UUID `gorm:"type:uuid"`
	Price          float64
}

// TableName specifies the database table name for clothing price entities.
func (ClothingPriceDTO) TableName() string {
	return "store_clothing_prices"
}

// fromDomain converts a store domain aggregate to its database representation.
func fromDomain(aggregate *store.Store) StoreDTO {
	services := make([]ServiceDTO, 0, len(aggregate.Services()))
	for _, service := range aggregate.Services() {
		prices := make([]ClothingPriceDTO, 0, len(service.Prices()))
		for _, price := range service.Prices() {
			prices = append(prices, ClothingPriceDTO{
				ServiceID:      service.ID().Bytes(),
				ClothingTypeID: price.ClothingTypeID.Bytes(),
				Price:          price.Price,
			})
		}
		services = append(services, ServiceDTO{
			ID:          service.ID().Bytes(),
			StoreID:     aggregate.ID().Bytes(),
			Name:        service.Name(),
			Description: service.Description(),
			Prices:      prices,
		})
	}

	location := aggregate.Address().Location()
	return StoreDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		PasswordHash: aggregate.PasswordHash(),
		AddressText:  aggregate.Address().Text(),
		Lat:          location.Lat(),
		Lng:          location.Lng(),
		IsOnline:     aggregate.IsOnline(),
		IsSuspended:  aggregate.IsSuspended(),
		Services:     services,
	}
}

// toDomain converts a database DTO to a store domain aggregate, catalog
// included.
func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.AddressText, location)
	if err != nil {
		return nil, err
	}

	services := make([]store.Service, 0, len(dto.Services))
	for _, serviceDTO := range dto.Services {
		service, serviceErr := serviceToDomain(serviceDTO)
		if serviceErr != nil {
			return nil, serviceErr
		}
		services = append(services, service)
	}

	return store.RestoreStore(
		id,
		dto.Name, dto.Email, dto.Phone, dto.PasswordHash,
		address,
		services,
		dto.IsOnline, dto.IsSuspended,
	)
}

func serviceToDomain(dto ServiceDTO) (store.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return store.Service{}, err
	}

	prices := make([]store.ClothingPrice, 0, len(dto.Prices))
	for _, priceDTO := range dto.Prices {
		clothingTypeID, priceErr := kernel.UUIDFromBytes(priceDTO.ClothingTypeID[:])
		if priceErr != nil {
			return store.Service{}, priceErr
		}
		prices = append(prices, store.ClothingPrice{
			ClothingTypeID: clothingTypeID,
			Price:          priceDTO.Price,
		})
	}

	return store.NewService(id, dto.Name, dto.Description, prices)
}
