package commands

import (
	"context"

	"laundry/internal/core/domain/model/store"
	"laundry/internal/pkg/auth"
)

// CreateStoreCommandHandler handles store registration: hashes credentials,
// builds the aggregate with its initial catalog, and persists it.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewCreateStoreCommandHandler creates a handler for store registration.
func NewCreateStoreCommandHandler(uowFactory StoreUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store registration command.
func (h CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := auth.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	newStore, err := store.NewStore(cmd.StoreID(), cmd.Name(), cmd.Email(), cmd.Phone(), passwordHash, cmd.Address())
	if err != nil {
		return err
	}

	for _, service := range cmd.Services() {
		if err = newStore.AddService(service); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StoreRepository().Add(ctx, newStore); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
