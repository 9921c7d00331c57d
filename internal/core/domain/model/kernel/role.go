package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Role identifies the kind of caller interacting with the coordinator.
// It is a closed enumeration decided once at the boundary (login or
// subscription handshake) and passed around as a value afterwards —
// downstream code never re-parses role strings.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// RoleCustomer places orders and confirms handoffs.
	RoleCustomer

	// RolePartner claims pending orders and performs deliveries.
	RolePartner

	// RoleAdmin inspects orders and the ledger.
	RoleAdmin
)

// getRoleStrings returns the wire names for every role, including invalid
// ones, to support string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:  "unknown",
		RoleCustomer: "customer",
		RolePartner:  "partner",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a wire role name into a Role. It also accepts the
// legacy alias "deliveryPartner" for RolePartner, normalizing it here so the
// alias never travels past the boundary.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "customer":
		return RoleCustomer, nil
	case "partner", "deliveryPartner":
		return RolePartner, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the Role is one of the closed set of valid values.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RolePartner && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role. It implements fmt.Stringer and
// is safe to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
