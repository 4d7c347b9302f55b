package ledger_test

import (
	"context"
	"errors"
	"testing"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"rewardchain/internal/ledger"
	"rewardchain/testutil"
)

var (
	errZero    = errorsmod.Register("ledgertest", 2, "zero address")
	errInvalid = errorsmod.Register("ledgertest", 3, "invalid request")
)

func TestAtomicallyCommitsOnlyOnSuccess(t *testing.T) {
	key := storetypes.NewKVStoreKey("ledgertest")
	ctx := testutil.NewContext(t, key)
	svc := runtime.NewKVStoreService(key)

	err := ledger.Atomically(ctx, func(ctx context.Context) error {
		require.NoError(t, svc.OpenKVStore(ctx).Set([]byte("a"), []byte("1")))
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent("kept"))
		return nil
	})
	require.NoError(t, err)

	failure := errors.New("boom")
	err = ledger.Atomically(ctx, func(ctx context.Context) error {
		require.NoError(t, svc.OpenKVStore(ctx).Set([]byte("b"), []byte("2")))
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent("dropped"))
		return failure
	})
	require.ErrorIs(t, err, failure)

	store := svc.OpenKVStore(ctx)
	has, err := store.Has([]byte("a"))
	require.NoError(t, err)
	require.True(t, has)
	has, err = store.Has([]byte("b"))
	require.NoError(t, err)
	require.False(t, has)

	var types []string
	for _, ev := range ctx.EventManager().Events() {
		types = append(types, ev.Type)
	}
	require.Contains(t, types, "kept")
	require.NotContains(t, types, "dropped")
}

func TestCanonical(t *testing.T) {
	addrs := ledger.NewAddresses(testutil.AddressCodec(), errZero, errInvalid)

	s, bz, err := addrs.Canonical(testutil.Addr("alice"), "player")
	require.NoError(t, err)
	require.Equal(t, testutil.Addr("alice"), s)
	require.Equal(t, testutil.AccAddress("alice"), bz)

	_, _, err = addrs.Canonical("", "player")
	require.ErrorIs(t, err, errZero)

	zero, err := testutil.AddressCodec().BytesToString(make([]byte, 20))
	require.NoError(t, err)
	_, _, err = addrs.Canonical(zero, "player")
	require.ErrorIs(t, err, errZero)

	_, _, err = addrs.Canonical("not-bech32", "player")
	require.ErrorIs(t, err, errInvalid)
}
