package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"rewardchain/testutil"
	"rewardchain/x/payment/types"
)

func TestSetNewPaymentAddress(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)
	vault := testutil.Addr("vault")

	err := f.keeper.SetNewPaymentAddress(f.ctx, testutil.Addr("stranger"), vault)
	require.ErrorIs(t, err, types.ErrAccessDenied)

	err = f.keeper.SetNewPaymentAddress(f.ctx, f.owner, "")
	require.ErrorIs(t, err, types.ErrZeroAddress)

	require.NoError(t, f.keeper.SetNewPaymentAddress(f.ctx, f.owner, vault))
	cfg, err := f.keeper.GetConfig(f.ctx)
	require.NoError(t, err)
	require.Equal(t, vault, cfg.PaymentAddress)

	// Payouts now come out of the new account, within what it approved.
	f.fund(t, vault, 100)
	require.NoError(t, f.keeper.Approve(f.ctx, vault, math.NewInt(100)))
	g := f.createGame(t, "chess")
	alice := f.addPlayer(t, g, "alice", 150, 100)
	_, err = f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice}, ints(25))
	require.NoError(t, err)
	require.EqualValues(t, 75, f.balance(t, vault))
}

func TestSetMinimumAmount(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)

	err := f.keeper.SetMinimumAmount(f.ctx, f.owner, math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	err = f.keeper.SetMinimumAmount(f.ctx, f.admin, math.NewInt(5))
	require.ErrorIs(t, err, types.ErrAccessDenied)

	require.NoError(t, f.keeper.SetMinimumAmount(f.ctx, f.owner, math.NewInt(5)))
	p, err := f.keeper.GetParams(f.ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, p.MinimumAmount.Int64())
}

func TestSetMinimumLevel(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)
	f.fund(t, f.treasury, 1000)

	g := f.createGame(t, "chess")
	alice := f.addPlayer(t, g, "alice", 1258, 100)

	err := f.keeper.SetMinimumLevel(f.ctx, f.owner, types.DefaultMaxLevel+1)
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	require.NoError(t, f.keeper.SetMinimumLevel(f.ctx, f.owner, 5))
	_, err = f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice}, ints(10))
	require.ErrorIs(t, err, types.ErrInsufficientLevel)

	require.NoError(t, f.keeper.SetMinimumLevel(f.ctx, f.owner, 4))
	_, err = f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice}, ints(10))
	require.NoError(t, err)

	require.NoError(t, f.keeper.SetMinimumLevel(f.ctx, f.owner, 0))
	p, err := f.keeper.GetParams(f.ctx)
	require.NoError(t, err)
	require.Zero(t, p.MinimumLevel)
}

func TestTransferOwnership(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)
	next := testutil.Addr("nextowner")

	err := f.keeper.TransferOwnership(f.ctx, next, next)
	require.ErrorIs(t, err, types.ErrAccessDenied)

	err = f.keeper.TransferOwnership(f.ctx, f.owner, "")
	require.ErrorIs(t, err, types.ErrZeroAddress)

	require.NoError(t, f.keeper.TransferOwnership(f.ctx, f.owner, next))

	err = f.keeper.SetMinimumLevel(f.ctx, f.owner, 2)
	require.ErrorIs(t, err, types.ErrAccessDenied)
	require.NoError(t, f.keeper.SetMinimumLevel(f.ctx, next, 2))
}

func TestSettersRequireConfig(t *testing.T) {
	f := initFixture(t)

	err := f.keeper.SetMinimumLevel(f.ctx, f.owner, 2)
	require.ErrorIs(t, err, types.ErrPreconditionNotMet)
	err = f.keeper.TransferOwnership(f.ctx, f.owner, f.admin)
	require.ErrorIs(t, err, types.ErrPreconditionNotMet)
}
