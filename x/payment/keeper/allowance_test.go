package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"rewardchain/testutil"
	"rewardchain/x/payment/types"
)

func TestPayoutNeedsGranterApproval(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)

	g := f.createGame(t, "chess")
	alice := f.addPlayer(t, g, "alice", 150, 1000)

	victim := testutil.Addr("victim")
	f.fund(t, victim, 1000)
	require.NoError(t, f.keeper.SetNewPaymentAddress(f.ctx, f.owner, victim))

	_, err := f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice}, ints(1000))
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)
	require.EqualValues(t, 1000, f.balance(t, victim))
	require.Zero(t, f.balance(t, alice))
	require.EqualValues(t, 1000, f.claimable(t, g, alice))

	require.NoError(t, f.keeper.Approve(f.ctx, victim, math.NewInt(400)))
	_, err = f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice}, ints(400))
	require.NoError(t, err)
	require.EqualValues(t, 600, f.balance(t, victim))
	require.Zero(t, f.allowance(t, victim))
}

func TestAllowanceSpentAcrossBatch(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)
	f.fund(t, f.treasury, 1000)
	require.NoError(t, f.keeper.Approve(f.ctx, f.treasury, math.NewInt(100)))

	g := f.createGame(t, "chess")
	alice := f.addPlayer(t, g, "alice", 150, 100)
	bob := f.addPlayer(t, g, "bob", 150, 100)

	// The second entry overdraws the allowance, so the first is undone too.
	_, err := f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice, bob}, ints(60, 60))
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)
	require.EqualValues(t, 100, f.allowance(t, f.treasury))
	require.EqualValues(t, 100, f.claimable(t, g, alice))
	require.EqualValues(t, 1000, f.balance(t, f.treasury))

	_, err = f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice, bob}, ints(60, 40))
	require.NoError(t, err)
	require.Zero(t, f.allowance(t, f.treasury))
	require.EqualValues(t, 900, f.balance(t, f.treasury))
}

func TestApprove(t *testing.T) {
	f := initFixture(t)

	err := f.keeper.Approve(f.ctx, f.treasury, math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	err = f.keeper.Approve(f.ctx, "", math.NewInt(5))
	require.ErrorIs(t, err, types.ErrZeroAddress)

	require.NoError(t, f.keeper.Approve(f.ctx, f.treasury, math.NewInt(50)))
	require.EqualValues(t, 50, f.allowance(t, f.treasury))

	// A later approval replaces the earlier one.
	require.NoError(t, f.keeper.Approve(f.ctx, f.treasury, math.NewInt(20)))
	require.EqualValues(t, 20, f.allowance(t, f.treasury))

	require.NoError(t, f.keeper.Approve(f.ctx, f.treasury, math.ZeroInt()))
	require.Zero(t, f.allowance(t, f.treasury))
	has, err := f.keeper.Allowances.Has(f.ctx, f.treasury)
	require.NoError(t, err)
	require.False(t, has)

	var found bool
	for _, ev := range f.ctx.EventManager().Events() {
		if ev.Type == types.EventAllowanceSet {
			found = true
		}
	}
	require.True(t, found)
}
