package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"rewardchain/testutil"
	"rewardchain/x/payment/types"
)

func TestWithdrawBatch(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)
	f.fund(t, f.treasury, 1000)

	g1 := f.createGame(t, "chess")
	g2 := f.createGame(t, "go")
	alice := f.addPlayer(t, g1, "alice", 150, 100)
	bob := f.addPlayer(t, g1, "bob", 250, 50)
	f.addPlayer(t, g2, "bob", 200, 30)

	total, err := f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice, bob}, ints(60, 70))
	require.NoError(t, err)
	require.EqualValues(t, 130, total.Int64())

	require.EqualValues(t, 40, f.claimable(t, g1, alice))
	require.Zero(t, f.claimable(t, g1, bob))
	require.EqualValues(t, 10, f.claimable(t, g2, bob))

	require.EqualValues(t, 60, f.balance(t, alice))
	require.EqualValues(t, 70, f.balance(t, bob))
	require.EqualValues(t, 870, f.balance(t, f.treasury))
	require.EqualValues(t, treasuryAllowance-130, f.allowance(t, f.treasury))

	var found bool
	for _, ev := range f.ctx.EventManager().Events() {
		if ev.Type != types.EventWithdrawnBatch {
			continue
		}
		found = true
		attrs := map[string]string{}
		for _, a := range ev.Attributes {
			attrs[a.Key] = a.Value
		}
		require.Equal(t, alice+","+bob, attrs[types.AttrPlayers])
		require.Equal(t, "60,70", attrs[types.AttrAmounts])
		require.Equal(t, "130", attrs[types.AttrTotal])
		require.Equal(t, testDenom, attrs[types.AttrDenom])
	}
	require.True(t, found)
}

func TestWithdrawBatchAllOrNothing(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)
	f.fund(t, f.treasury, 1000)

	g := f.createGame(t, "chess")
	alice := f.addPlayer(t, g, "alice", 150, 100)
	carol := f.addPlayer(t, g, "carol", 50, 100)

	_, err := f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice, carol}, ints(10, 10))
	require.ErrorIs(t, err, types.ErrInsufficientLevel)

	require.EqualValues(t, 100, f.claimable(t, g, alice))
	require.EqualValues(t, 100, f.claimable(t, g, carol))
	require.Zero(t, f.balance(t, alice))
	require.EqualValues(t, 1000, f.balance(t, f.treasury))
}

func TestWithdrawBatchRepeatedPlayer(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)
	f.fund(t, f.treasury, 1000)

	g := f.createGame(t, "chess")
	alice := f.addPlayer(t, g, "alice", 150, 100)

	_, err := f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice, alice}, ints(60, 50))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
	require.EqualValues(t, 100, f.claimable(t, g, alice))

	total, err := f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice, alice}, ints(60, 40))
	require.NoError(t, err)
	require.EqualValues(t, 100, total.Int64())
	require.Zero(t, f.claimable(t, g, alice))
	require.EqualValues(t, 100, f.balance(t, alice))
}

func TestWithdrawBatchRejects(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)
	f.fund(t, f.treasury, 1000)

	g := f.createGame(t, "chess")
	alice := f.addPlayer(t, g, "alice", 150, 100)
	stranger := testutil.Addr("stranger")

	tests := []struct {
		name    string
		sender  string
		players []string
		amounts []math.Int
		err     error
	}{
		{name: "arity", sender: f.owner, players: []string{alice}, amounts: ints(1, 2), err: types.ErrArityMismatch},
		{name: "not owner", sender: stranger, players: []string{alice}, amounts: ints(10), err: types.ErrAccessDenied},
		{name: "empty sender", sender: "", players: []string{alice}, amounts: ints(10), err: types.ErrAccessDenied},
		{name: "empty batch", sender: f.owner, players: nil, amounts: nil, err: types.ErrInvalidRequest},
		{name: "zero amount", sender: f.owner, players: []string{alice}, amounts: ints(0), err: types.ErrInvalidAmount},
		{name: "negative amount", sender: f.owner, players: []string{alice}, amounts: ints(-5), err: types.ErrInvalidAmount},
		{name: "above claimable", sender: f.owner, players: []string{alice}, amounts: ints(101), err: types.ErrInsufficientBalance},
		{name: "unknown player", sender: f.owner, players: []string{stranger}, amounts: ints(1), err: types.ErrInsufficientBalance},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.keeper.WithdrawBatch(f.ctx, tc.sender, tc.players, tc.amounts)
			require.ErrorIs(t, err, tc.err)
			require.EqualValues(t, 100, f.claimable(t, g, alice))
			require.EqualValues(t, 1000, f.balance(t, f.treasury))
			require.EqualValues(t, treasuryAllowance, f.allowance(t, f.treasury))
		})
	}
}

func TestWithdrawBatchMinimumAmount(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)
	f.fund(t, f.treasury, 1000)

	g := f.createGame(t, "chess")
	alice := f.addPlayer(t, g, "alice", 150, 100)

	require.NoError(t, f.keeper.SetMinimumAmount(f.ctx, f.owner, math.NewInt(20)))

	_, err := f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice}, ints(10))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice}, ints(20))
	require.NoError(t, err)
	require.EqualValues(t, 80, f.claimable(t, g, alice))
}

func TestWithdrawBatchWithoutConfig(t *testing.T) {
	f := initFixture(t)
	g := f.createGame(t, "chess")
	alice := f.addPlayer(t, g, "alice", 150, 100)

	_, err := f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice}, ints(10))
	require.ErrorIs(t, err, types.ErrPreconditionNotMet)
}

func TestWithdrawBatchUnderfundedTreasury(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)
	f.fund(t, f.treasury, 50)

	g := f.createGame(t, "chess")
	alice := f.addPlayer(t, g, "alice", 150, 100)
	bob := f.addPlayer(t, g, "bob", 150, 100)

	_, err := f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice, bob}, ints(40, 40))
	require.ErrorIs(t, err, sdkerrors.ErrInsufficientFunds)

	require.EqualValues(t, 100, f.claimable(t, g, alice))
	require.EqualValues(t, 100, f.claimable(t, g, bob))
	require.Zero(t, f.balance(t, alice))
	require.EqualValues(t, 50, f.balance(t, f.treasury))
}

func TestWithdrawDrawsOldestGameFirst(t *testing.T) {
	f := initFixture(t)
	f.initConfig(t)
	f.fund(t, f.treasury, 1000)

	g1 := f.createGame(t, "first")
	g2 := f.createGame(t, "second")
	g3 := f.createGame(t, "third")
	alice := f.addPlayer(t, g1, "alice", 50, 30)
	f.addPlayer(t, g2, "alice", 50, 0)
	f.addPlayer(t, g3, "alice", 50, 30)

	_, err := f.keeper.WithdrawBatch(f.ctx, f.owner, []string{alice}, ints(45))
	require.NoError(t, err)
	require.Zero(t, f.claimable(t, g1, alice))
	require.Zero(t, f.claimable(t, g2, alice))
	require.EqualValues(t, 15, f.claimable(t, g3, alice))
}

func TestEligibility(t *testing.T) {
	f := initFixture(t)
	g := f.createGame(t, "chess")
	alice := f.addPlayer(t, g, "alice", 1258, 40)
	carol := f.addPlayer(t, g, "carol", 23, 40)

	e, err := f.keeper.Eligibility(f.ctx, alice)
	require.NoError(t, err)
	require.EqualValues(t, 4, e.Level)
	require.EqualValues(t, 1500, e.NextLevelXp)
	require.EqualValues(t, 1258, e.TotalXp)
	require.EqualValues(t, 40, e.Claimable.Int64())
	require.True(t, e.Eligible)

	e, err = f.keeper.Eligibility(f.ctx, carol)
	require.NoError(t, err)
	require.Zero(t, e.Level)
	require.EqualValues(t, 100, e.NextLevelXp)
	require.False(t, e.Eligible)

	e, err = f.keeper.Eligibility(f.ctx, testutil.Addr("nobody"))
	require.NoError(t, err)
	require.True(t, e.Claimable.IsZero())
	require.False(t, e.Eligible)
}
