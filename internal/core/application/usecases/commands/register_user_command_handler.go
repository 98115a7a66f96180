package commands

import (
	"context"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/auth"
)

// RegisterUserCommandHandler handles customer account registration.
// Hashes the password with bcrypt before the account is persisted.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for customer registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := auth.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	account, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Phone(), passwordHash, user.RoleCustomer)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
