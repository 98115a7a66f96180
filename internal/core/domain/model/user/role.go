package user

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Role is the marketplace actor kind carried in access tokens and used for
// authorization decisions.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer places orders and browses nearby stores.
	RoleCustomer

	// RoleStore fulfills orders and manages its catalog.
	RoleStore

	// RoleDeliveryPartner claims and delivers orders.
	RoleDeliveryPartner

	// RoleAdmin performs operations actions: approvals, suspensions, promotions.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "unknown",
		RoleCustomer:        "customer",
		RoleStore:           "store",
		RoleDeliveryPartner: "delivery_partner",
		RoleAdmin:           "admin",
	}
}

// RoleFromString parses a Role from its wire representation.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return getRoleStrings()[RoleUnknown]
}
