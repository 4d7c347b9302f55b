package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	addressutil "github.com/cosmos/cosmos-sdk/types/address"

	"rewardchain/internal/jsonvalue"
	"rewardchain/internal/ledger"
	"rewardchain/x/gamefactory/types"
)

// Keeper owns every game, its roster and the player ledgers.
type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec
	addrs        ledger.Addresses
	// Address capable of executing a MsgUpdateParams message and the
	// factory owner until ownership is transferred.
	authority []byte

	bankKeeper types.BankKeeper

	Schema    collections.Schema
	Params    collections.Item[types.Params]
	Config    collections.Item[types.FactoryConfig]
	GameSeq   collections.Sequence
	Games     collections.Map[uint64, types.Game]
	GameNames collections.Map[string, uint64]
	Players   collections.Map[collections.Pair[uint64, string], types.PlayerStats]
	// Roster maps (game, 1-based index) to the player address, giving the
	// insertion-ordered player list.
	Roster collections.Map[collections.Pair[uint64, uint64], string]
	Logins collections.Map[string, bool]
}

// NewKeeper creates a new gamefactory module Keeper instance.
func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}
	if bankKeeper == nil {
		panic("gamefactory: bank keeper cannot be nil")
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		addrs:        ledger.NewAddresses(addressCodec, types.ErrZeroAddress, types.ErrInvalidRequest),
		authority:    authority,
		bankKeeper:   bankKeeper,

		Params:    collections.NewItem(sb, types.ParamsKey, "params", jsonvalue.New[types.Params]("gamefactory/Params")),
		Config:    collections.NewItem(sb, types.ConfigKey, "config", jsonvalue.New[types.FactoryConfig]("gamefactory/FactoryConfig")),
		GameSeq:   collections.NewSequence(sb, types.GameSeqKey, "game_seq"),
		Games:     collections.NewMap(sb, types.GamesKeyPrefix, "games", collections.Uint64Key, jsonvalue.New[types.Game]("gamefactory/Game")),
		GameNames: collections.NewMap(sb, types.GameNamesKeyPrefix, "game_names", collections.StringKey, collections.Uint64Value),
		Players: collections.NewMap(
			sb,
			types.PlayersKeyPrefix,
			"players",
			collections.PairKeyCodec(collections.Uint64Key, collections.StringKey),
			jsonvalue.New[types.PlayerStats]("gamefactory/PlayerStats"),
		),
		Roster: collections.NewMap(
			sb,
			types.RosterKeyPrefix,
			"roster",
			collections.PairKeyCodec(collections.Uint64Key, collections.Uint64Key),
			collections.StringValue,
		),
		Logins: collections.NewMap(sb, types.LoginsKeyPrefix, "logins", collections.StringKey, collections.BoolValue),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetParams returns current params or defaults when unset.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	p, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return p, nil
}

// SetParams stores module params.
func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, p)
}

// GetConfig returns the factory configuration. Until one is stored the
// module authority is the owner and every other role is unset.
func (k Keeper) GetConfig(ctx context.Context) (types.FactoryConfig, error) {
	cfg, err := k.Config.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			owner, err := k.addressCodec.BytesToString(k.authority)
			if err != nil {
				return types.FactoryConfig{}, err
			}
			return types.FactoryConfig{Owner: owner}, nil
		}
		return types.FactoryConfig{}, err
	}
	return cfg, nil
}

// gameAddress derives the reserve account of a game.
func (k Keeper) gameAddress(gameID uint64) (string, error) {
	addr := addressutil.Module(types.ModuleName, []byte("game"), sdk.Uint64ToBigEndian(gameID))
	return k.addressCodec.BytesToString(addr)
}
