package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "payment"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	GovModuleName = "gov"
)

var (
	ParamsKey = collections.NewPrefix("p_payment")
	ConfigKey = collections.NewPrefix("c_payment")
	// AllowancesKeyPrefix maps a funding account to the amount it lets the
	// module pay out on its behalf.
	AllowancesKeyPrefix = collections.NewPrefix("a_payment")
)
