package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"rewardchain/internal/jsonvalue"
	"rewardchain/internal/ledger"
	"rewardchain/x/payment/types"
)

// Keeper gates withdrawals of claimable rewards. It holds a non-owning handle
// on the game factory for aggregated stats and claimable draws.
type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec
	addrs        ledger.Addresses
	// Address capable of executing a MsgUpdateParams message.
	authority []byte

	bankKeeper  types.BankKeeper
	gameFactory types.GameFactoryKeeper

	Schema collections.Schema
	Params collections.Item[types.Params]
	Config collections.Item[types.PaymentConfig]
	// Allowances is keyed by funding account; payouts spend it down.
	Allowances collections.Map[string, math.Int]
}

// NewKeeper creates a new payment module Keeper instance.
func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
	gameFactory types.GameFactoryKeeper,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}
	if bankKeeper == nil || gameFactory == nil {
		panic("payment: bank keeper and game factory are required")
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		addrs:        ledger.NewAddresses(addressCodec, types.ErrZeroAddress, types.ErrInvalidRequest),
		authority:    authority,
		bankKeeper:   bankKeeper,
		gameFactory:  gameFactory,

		Params: collections.NewItem(sb, types.ParamsKey, "params", jsonvalue.New[types.Params]("payment/Params")),
		Config: collections.NewItem(sb, types.ConfigKey, "config", jsonvalue.New[types.PaymentConfig]("payment/PaymentConfig")),
		Allowances: collections.NewMap(
			sb,
			types.AllowancesKeyPrefix,
			"allowances",
			collections.StringKey,
			sdk.IntValue,
		),
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

// ModuleAddress is the account the payment module acts as when drawing
// claimable balances from the game factory.
func (k Keeper) ModuleAddress() string {
	addr, err := k.addressCodec.BytesToString(authtypes.NewModuleAddress(types.ModuleName))
	if err != nil {
		panic(err)
	}
	return addr
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

// GetConfig returns the payment configuration; withdrawals need one.
func (k Keeper) GetConfig(ctx context.Context) (types.PaymentConfig, error) {
	cfg, err := k.Config.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.PaymentConfig{}, errorsmod.Wrap(types.ErrPreconditionNotMet, "payment manager is not initialized")
		}
		return types.PaymentConfig{}, err
	}
	return cfg, nil
}

// InitConfig binds the owner, token and funding account. Every field must be set.
func (k Keeper) InitConfig(ctx context.Context, cfg types.PaymentConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	owner, _, err := k.addrs.Canonical(cfg.Owner, "owner")
	if err != nil {
		return err
	}
	payment, _, err := k.addrs.Canonical(cfg.PaymentAddress, "payment address")
	if err != nil {
		return err
	}
	if err := sdk.ValidateDenom(cfg.Denom); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidRequest, "invalid denom %q: %s", cfg.Denom, err)
	}
	return k.Config.Set(ctx, types.PaymentConfig{Owner: owner, Denom: cfg.Denom, PaymentAddress: payment})
}
