package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/auth"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginQueryHandler authenticates callers against the credential table their
// role lives in. Missing accounts and wrong passwords produce the same
// NotAuthorizedError, so login responses do not reveal which emails exist.
type LoginQueryHandler struct {
	db     *gorm.DB
	issuer auth.TokenIssuer
}

// NewLoginQueryHandler creates a handler for login queries.
func NewLoginQueryHandler(db *gorm.DB, issuer auth.TokenIssuer) LoginQueryHandler {
	return LoginQueryHandler{db: db, issuer: issuer}
}

// Handle executes the login.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	id, passwordHash, err := h.lookupCredentials(ctx, query)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	if err = auth.CheckPassword(passwordHash, query.Password()); err != nil {
		return LoginQueryResponse{}, errs.NewNotAuthorizedError("credentials")
	}

	token, err := h.issuer.Issue(id.String(), query.Role().String())
	if err != nil {
		return LoginQueryResponse{}, err
	}

	return LoginQueryResponse{
		Token:     token,
		SubjectID: id.String(),
		Role:      query.Role().String(),
	}, nil
}

func (h LoginQueryHandler) lookupCredentials(
	ctx context.Context,
	query LoginQuery,
) (kernel.UUID, string, error) {
	var row *sql.Row

	switch query.Role() {
	case user.RoleStore:
		row = h.db.WithContext(ctx).Raw(
			"SELECT id, password_hash FROM stores WHERE email = ?", query.Email()).Row()
	case user.RoleDeliveryPartner:
		row = h.db.WithContext(ctx).Raw(
			"SELECT id, password_hash FROM delivery_partners WHERE email = ?", query.Email()).Row()
	default:
		row = h.db.WithContext(ctx).Raw(
			"SELECT id, password_hash FROM users WHERE email = ? AND role = ?",
			query.Email(), query.Role().String()).Row()
	}

	var rawID uuid.UUID
	var passwordHash string
	err := row.Scan(&rawID, &passwordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return kernel.UUID{}, "", errs.NewNotAuthorizedError("credentials")
	}
	if err != nil {
		return kernel.UUID{}, "", err
	}

	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return kernel.UUID{}, "", err
	}

	return id, passwordHash, nil
}
