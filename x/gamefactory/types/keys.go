package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "gamefactory"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the module
	RouterKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_gamefactory"

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	GovModuleName = "gov"
)

var (
	ParamsKey          = collections.NewPrefix("p_gamefactory")
	ConfigKey          = collections.NewPrefix("c_gamefactory")
	GameSeqKey         = collections.NewPrefix("gs_gamefactory")
	GamesKeyPrefix     = collections.NewPrefix("g_gamefactory")
	GameNamesKeyPrefix = collections.NewPrefix("gn_gamefactory")
	PlayersKeyPrefix   = collections.NewPrefix("pl_gamefactory")
	RosterKeyPrefix    = collections.NewPrefix("r_gamefactory")
	LoginsKeyPrefix    = collections.NewPrefix("l_gamefactory")
)
