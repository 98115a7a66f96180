package queries

import (
	"errors"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)
)

// LoginQuery authenticates a caller by email and password for a given role
// and returns a signed access token. Customers and admins live in the users
// table; stores and delivery partners have their own tables, so the role
// picks the credential source.
type LoginQuery struct {
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login query. The role is the wire role string the
// caller claims ("customer", "store", "delivery_partner", "admin").
func NewLoginQuery(email, password, role string) (LoginQuery, error) {
	if email == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("password")
	}

	parsedRole, err := user.RoleFromString(role)
	if err != nil {
		return LoginQuery{}, errs.NewValueIsInvalidErrorWithCause("role", err)
	}

	return LoginQuery{
		email:    email,
		password: password,
		role:     parsedRole,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the login email.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the plaintext password candidate.
func (q LoginQuery) Password() string {
	return q.password
}

// Role returns the claimed caller role.
func (q LoginQuery) Role() user.Role {
	return q.role
}

// LoginQueryResponse carries the issued access token and the authenticated
// subject.
type LoginQueryResponse struct {
	Token     string
	SubjectID string
	Role      string
}
