package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Capability names a class of callers allowed on an entry point.
type Capability int

const (
	// CapOwner admits only the owner.
	CapOwner Capability = iota
	// CapAdmin admits only the configured admin.
	CapAdmin
	// CapManage admits the owner or the admin.
	CapManage
	// CapRegister admits the owner, the admin or the payment manager.
	CapRegister
	// CapPayment admits only the payment manager.
	CapPayment
)

func (c Capability) String() string {
	switch c {
	case CapOwner:
		return "owner"
	case CapAdmin:
		return "admin"
	case CapManage:
		return "owner or admin"
	case CapRegister:
		return "owner, admin or payment manager"
	case CapPayment:
		return "payment manager"
	default:
		return "unknown"
	}
}

// AccessControl is the capability check evaluated on every mutating entry point.
// Empty roles never match a caller.
type AccessControl struct {
	Owner          string
	Admin          string
	PaymentManager string
}

// Allows reports whether caller holds capability c.
func (ac AccessControl) Allows(caller string, c Capability) bool {
	if caller == "" {
		return false
	}
	isOwner := caller == ac.Owner
	isAdmin := ac.Admin != "" && caller == ac.Admin
	isPM := ac.PaymentManager != "" && caller == ac.PaymentManager

	switch c {
	case CapOwner:
		return isOwner
	case CapAdmin:
		return isAdmin
	case CapManage:
		return isOwner || isAdmin
	case CapRegister:
		return isOwner || isAdmin || isPM
	case CapPayment:
		return isPM
	default:
		return false
	}
}

// Require returns ErrAccessDenied naming the caller when it lacks capability c.
func (ac AccessControl) Require(caller string, c Capability) error {
	if ac.Allows(caller, c) {
		return nil
	}
	return errorsmod.Wrapf(ErrAccessDenied, "%s is not the %s", caller, c)
}
