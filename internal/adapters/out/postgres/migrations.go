package postgres

import (
	"gorm.io/gorm"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/partnerrepo"
	"laundry/internal/adapters/out/postgres/promotionrepo"
	"laundry/internal/adapters/out/postgres/storerepo"
	"laundry/internal/adapters/out/postgres/userrepo"
)

// Migrate creates or updates the schema for every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&storerepo.StoreDTO{},
		&storerepo.ServiceDTO{},
		&storerepo.ClothingPriceDTO{},
		&partnerrepo.PartnerDTO{},
		&promotionrepo.PromotionDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	)
}
