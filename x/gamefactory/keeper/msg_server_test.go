package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"rewardchain/testutil"
	"rewardchain/x/gamefactory/keeper"
	"rewardchain/x/gamefactory/types"
)

func TestMsgServerFlow(t *testing.T) {
	f := initFixture(t)
	ms := keeper.NewMsgServerImpl(f.keeper)

	_, err := ms.SetAdmin(f.ctx, &types.MsgSetAdmin{Sender: f.owner, Admin: f.admin})
	require.NoError(t, err)
	_, err = ms.SetToken(f.ctx, &types.MsgSetToken{Sender: f.owner, Denom: testDenom})
	require.NoError(t, err)
	_, err = ms.SetPaymentManager(f.ctx, &types.MsgSetPaymentManager{Sender: f.owner, PaymentManager: f.pm})
	require.NoError(t, err)

	created, err := ms.CreateNewGame(f.ctx, &types.MsgCreateNewGame{Sender: f.admin, Name: "arena"})
	require.NoError(t, err)
	require.Zero(t, created.GameId)
	require.NotEmpty(t, created.GameAddress)

	players := []string{testutil.Addr("a"), testutil.Addr("b"), testutil.Addr("c")}
	for i, p := range players {
		res, err := ms.AddNewPlayer(f.ctx, &types.MsgAddNewPlayer{
			Sender:       f.admin,
			GameId:       created.GameId,
			Player:       p,
			RankingScore: uint64(30 - 10*i),
		})
		require.NoError(t, err)
		require.Equal(t, uint64(i+1), res.Index)
	}

	_, err = ms.UpdateAllPlayersStats(f.ctx, &types.MsgUpdateAllPlayersStats{
		Sender:  f.admin,
		GameId:  created.GameId,
		Players: players[:1],
		Deltas:  []math.Int{math.NewInt(1), math.NewInt(2), math.NewInt(3), math.NewInt(-4)},
	})
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	f.fund(t, f.admin, 10)
	dist, err := ms.DistributeRewards(f.ctx, &types.MsgDistributeRewards{
		Sender:      f.admin,
		GameId:      created.GameId,
		TotalAmount: math.NewInt(10),
		TopN:        3,
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), dist.Distribution.Credited.Int64())

	reset, err := ms.ResetAllRankingScores(f.ctx, &types.MsgResetAllRankingScores{Sender: f.admin, GameId: created.GameId})
	require.NoError(t, err)
	require.Equal(t, uint64(3), reset.PlayersReset)

	_, err = ms.UpdateAllPlayersLogin(f.ctx, &types.MsgUpdateAllPlayersLogin{Sender: f.admin, Players: players, Flags: []bool{true}})
	require.ErrorIs(t, err, types.ErrArityMismatch)

	_, err = ms.TransferOwnership(f.ctx, &types.MsgTransferOwnership{Sender: f.owner, NewOwner: f.admin})
	require.NoError(t, err)

	_, err = ms.CreateNewGame(f.ctx, nil)
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestMsgUpdateParams(t *testing.T) {
	f := initFixture(t)
	ms := keeper.NewMsgServerImpl(f.keeper)

	params := types.DefaultParams()
	params.RewardSchedules = append(params.RewardSchedules, types.RewardSchedule{TierSize: 2, Percentages: []uint32{70, 30}})

	tests := []struct {
		name   string
		input  *types.MsgUpdateParams
		expErr error
	}{
		{name: "invalid authority", input: &types.MsgUpdateParams{Authority: "invalid", Params: params}, expErr: types.ErrAccessDenied},
		{name: "not the authority", input: &types.MsgUpdateParams{Authority: f.admin, Params: params}, expErr: types.ErrAccessDenied},
		{name: "invalid params", input: &types.MsgUpdateParams{Authority: f.owner, Params: types.Params{}}, expErr: types.ErrInvalidRequest},
		{name: "all good", input: &types.MsgUpdateParams{Authority: f.owner, Params: params}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ms.UpdateParams(f.ctx, tc.input)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
		})
	}

	got, err := f.keeper.GetParams(f.ctx)
	require.NoError(t, err)
	sched, err := got.RewardSchedules.Schedule(2)
	require.NoError(t, err)
	require.Equal(t, []uint32{70, 30}, sched)
}
