// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and delivery partner so the claimable-order feed and the
// conditional claim update stay cheap.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"type:uuid;index"`
	StoreID           uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryPartnerID *uuid.UUID `gorm:"type:uuid;index"`
	Items             []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PromotionID       *uuid.UUID `gorm:"type:uuid"`
	DiscountAmount    float64
	TotalAmount       float64
	PickupAddress     AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	DeliveryAddress   AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	PickupDate        time.Time
	DeliveryDate      *time.Time
	Notes             string
	Status            string `gorm:"type:varchar(16);index"`
	PaymentStatus     string `gorm:"type:varchar(16)"`
	PaymentMethod     string `gorm:"type:varchar(16)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one priced order line in the order_items table.
// Service name and unit price are denormalized at placement time, so later
// catalog edits never change an already placed order.
type ItemDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ServiceID      uuid.UUID `gorm:"type:uuid"`
	ServiceName    string
	ClothingTypeID uuid.UUID `gorm:"type:uuid"`
	Quantity       int
	Price          float64
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents an embedded address (pickup or delivery) within the
// order table.
type AddressDTO struct {
	Text string
	Lat  float64
	Lng  float64
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.DeliveryPartner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	var promotionID *uuid.UUID
	if id := aggregate.Promotion(); id != nil {
		raw := id.Bytes()
		promotionID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:        aggregate.ID().Bytes(),
			ServiceID:      item.ServiceID().Bytes(),
			ServiceName:    item.ServiceName(),
			ClothingTypeID: item.ClothingTypeID().Bytes(),
			Quantity:       item.Quantity(),
			Price:          item.Price(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		UserID:            aggregate.UserID().Bytes(),
		StoreID:           aggregate.StoreID().Bytes(),
		DeliveryPartnerID: partnerID,
		Items:             items,
		PromotionID:       promotionID,
		DiscountAmount:    aggregate.DiscountAmount(),
		TotalAmount:       aggregate.TotalAmount(),
		PickupAddress:     addressFromDomain(aggregate.PickupAddress()),
		DeliveryAddress:   addressFromDomain(aggregate.DeliveryAddress()),
		PickupDate:        aggregate.PickupDate(),
		DeliveryDate:      aggregate.DeliveryDate(),
		Notes:             aggregate.Notes(),
		Status:            aggregate.Status().String(),
		PaymentStatus:     aggregate.PaymentStatus().String(),
		PaymentMethod:     aggregate.PaymentMethod().String(),
	}
}

func addressFromDomain(address kernel.Address) AddressDTO {
	return AddressDTO{
		Text: address.Text(),
		Lat:  address.Location().Lat(),
		Lng:  address.Location().Lng(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and partner assignment
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.DeliveryPartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.DeliveryPartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	var promotionID *kernel.UUID
	if dto.PromotionID != nil {
		prID, promoErr := kernel.UUIDFromBytes((*dto.PromotionID)[:])
		if promoErr != nil {
			return nil, promoErr
		}
		promotionID = &prID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	pickupAddress, err := addressToDomain(dto.PickupAddress)
	if err != nil {
		return nil, err
	}

	deliveryAddress, err := addressToDomain(dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                id,
		UserID:            userID,
		StoreID:           storeID,
		DeliveryPartnerID: partnerID,
		Items:             items,
		PromotionID:       promotionID,
		DiscountAmount:    dto.DiscountAmount,
		PickupAddress:     pickupAddress,
		DeliveryAddress:   deliveryAddress,
		PickupDate:        dto.PickupDate,
		DeliveryDate:      dto.DeliveryDate,
		Notes:             dto.Notes,
		Status:            status,
		PaymentStatus:     paymentStatus,
		PaymentMethod:     paymentMethod,
	})
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return order.Item{}, err
	}

	clothingTypeID, err := kernel.UUIDFromBytes(dto.ClothingTypeID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(serviceID, dto.ServiceName, clothingTypeID, dto.Quantity, dto.Price)
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(dto.Text, location)
}
