package http

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// addressRequest is the wire form of a pickup or delivery address.
type addressRequest struct {
	Text string  `json:"text"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

func (r addressRequest) toDomain() (kernel.Address, error) {
	location, err := kernel.NewGeoPoint(r.Lat, r.Lng)
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(r.Text, location)
}

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type clothingPriceRequest struct {
	ClothingTypeID string  `json:"clothingTypeId"`
	Price          float64 `json:"price"`
}

type serviceRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Prices      []clothingPriceRequest `json:"prices"`
}

type registerStoreRequest struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Password string           `json:"password"`
	Address  addressRequest   `json:"address"`
	Services []serviceRequest `json:"services"`
}

type registerPartnerRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	VehicleType string `json:"vehicleType"`
}

type orderLineRequest struct {
	ServiceID      string `json:"serviceId"`
	ClothingTypeID string `json:"clothingTypeId"`
	Quantity       int    `json:"quantity"`
}

type createOrderRequest struct {
	StoreID         string             `json:"storeId"`
	Lines           []orderLineRequest `json:"lines"`
	PickupAddress   addressRequest     `json:"pickupAddress"`
	DeliveryAddress addressRequest     `json:"deliveryAddress"`
	PickupDate      time.Time          `json:"pickupDate"`
	PaymentMethod   string             `json:"paymentMethod"`
	Notes           string             `json:"notes"`
	PromoCode       string             `json:"promoCode"`
}

type advanceOrderRequest struct {
	Action string `json:"action"`
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

type createPromotionRequest struct {
	Code           string    `json:"code"`
	Description    string    `json:"description"`
	DiscountType   string    `json:"discountType"`
	DiscountValue  float64   `json:"discountValue"`
	MaxDiscount    float64   `json:"maxDiscount"`
	MinOrderAmount float64   `json:"minOrderAmount"`
	ValidFrom      time.Time `json:"validFrom"`
	ValidTill      time.Time `json:"validTill"`
	UsageLimit     int       `json:"usageLimit"`
}
