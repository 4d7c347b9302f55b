package testutil

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// BankStoreKey is the store key backing BankKeeper.
const BankStoreKey = "testbank"

// BankKeeper is a minimal token ledger kept in a KV store, so balance
// changes roll back together with the module state around them.
type BankKeeper struct {
	Balances collections.Map[collections.Pair[sdk.AccAddress, string], math.Int]
}

// NewBankKeeper creates a BankKeeper over storeService.
func NewBankKeeper(storeService corestore.KVStoreService) *BankKeeper {
	sb := collections.NewSchemaBuilder(storeService)
	bk := &BankKeeper{
		Balances: collections.NewMap(
			sb,
			collections.NewPrefix(0),
			"balances",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey),
			sdk.IntValue,
		),
	}
	if _, err := sb.Build(); err != nil {
		panic(err)
	}
	return bk
}

// NewBankKeeperWithKey returns a BankKeeper and the store key that has to be
// mounted for it.
func NewBankKeeperWithKey() (*BankKeeper, *storetypes.KVStoreKey) {
	key := storetypes.NewKVStoreKey(BankStoreKey)
	return NewBankKeeper(runtime.NewKVStoreService(key)), key
}

// Mint credits coins to addr out of thin air.
func (bk *BankKeeper) Mint(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) error {
	for _, c := range coins {
		bal := bk.GetBalance(ctx, addr, c.Denom)
		if err := bk.Balances.Set(ctx, collections.Join(addr, c.Denom), bal.Amount.Add(c.Amount)); err != nil {
			return err
		}
	}
	return nil
}

func (bk *BankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amt, err := bk.Balances.Get(ctx, collections.Join(addr, denom))
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			panic(err)
		}
		amt = math.ZeroInt()
	}
	return sdk.NewCoin(denom, amt)
}

func (bk *BankKeeper) SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	coins := sdk.NewCoins()
	err := bk.Balances.Walk(ctx, collections.NewPrefixedPairRange[sdk.AccAddress, string](addr), func(key collections.Pair[sdk.AccAddress, string], amt math.Int) (bool, error) {
		coins = coins.Add(sdk.NewCoin(key.K2(), amt))
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return coins
}

func (bk *BankKeeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	for _, c := range amt {
		from := bk.GetBalance(ctx, fromAddr, c.Denom)
		if from.Amount.LT(c.Amount) {
			return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", from, c)
		}
		if err := bk.Balances.Set(ctx, collections.Join(fromAddr, c.Denom), from.Amount.Sub(c.Amount)); err != nil {
			return err
		}
		to := bk.GetBalance(ctx, toAddr, c.Denom)
		if err := bk.Balances.Set(ctx, collections.Join(toAddr, c.Denom), to.Amount.Add(c.Amount)); err != nil {
			return err
		}
	}
	return nil
}
