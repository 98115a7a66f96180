// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartnerRepoFactory provides access to the partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// StoreRepoFactory provides access to the store repository within a transaction.
	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// PromotionRepoFactory provides access to the promotion repository within a transaction.
	PromotionRepoFactory interface {
		PromotionRepository() ports.PromotionRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order placement, which reads
	// the store catalog and user account and may redeem a promotion.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		StoreRepoFactory
		UserRepoFactory
		PromotionRepoFactory
	}

	// CreateOrderUoWFactory creates new order placement unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// AcceptOrderUoW manages transactions for order claims, which read the
	// partner's eligibility and conditionally write the assignment.
	AcceptOrderUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
	}

	// AcceptOrderUoWFactory creates new order claim unit of work instances.
	AcceptOrderUoWFactory interface {
		Create() AcceptOrderUoW
	}

	// PartnerUoW manages transactions for partner-only operations.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// StoreUoW manages transactions for store-only operations.
	StoreUoW interface {
		TxManager
		StoreRepoFactory
	}

	// StoreUoWFactory creates new store unit of work instances.
	StoreUoWFactory interface {
		Create() StoreUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// PromotionUoW manages transactions for promotion-only operations.
	PromotionUoW interface {
		TxManager
		PromotionRepoFactory
	}

	// PromotionUoWFactory creates new promotion unit of work instances.
	PromotionUoWFactory interface {
		Create() PromotionUoW
	}
)
