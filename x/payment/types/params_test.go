package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"rewardchain/x/payment/types"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Params)
		err    error
	}{
		{name: "default", mutate: func(*types.Params) {}},
		{name: "negative minimum", mutate: func(p *types.Params) { p.MinimumAmount = math.NewInt(-1) }, err: types.ErrInvalidAmount},
		{name: "nil minimum", mutate: func(p *types.Params) { p.MinimumAmount = math.Int{} }, err: types.ErrInvalidAmount},
		{name: "level past table", mutate: func(p *types.Params) { p.MinimumLevel = types.DefaultMaxLevel + 1 }, err: types.ErrInvalidRequest},
		{name: "top level", mutate: func(p *types.Params) { p.MinimumLevel = types.DefaultMaxLevel }},
		{
			name: "unordered table",
			mutate: func(p *types.Params) {
				p.LevelTable = types.LevelTable{5, 3}
				p.MinimumLevel = 0
			},
			err: types.ErrInvalidRequest,
		},
		{name: "zero batch", mutate: func(p *types.Params) { p.MaxBatchSize = 0 }, err: types.ErrInvalidRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := types.DefaultParams()
			tc.mutate(&p)
			err := p.Validate()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())

	gs := types.DefaultGenesis()
	gs.Config = &types.PaymentConfig{Owner: "owner", Denom: "uplay"}
	require.ErrorIs(t, gs.Validate(), types.ErrZeroAddress)

	gs.Config.PaymentAddress = "treasury"
	require.NoError(t, gs.Validate())

	gs.Allowances = []types.Allowance{{Granter: "treasury", Amount: math.NewInt(10)}}
	require.NoError(t, gs.Validate())

	gs.Allowances = append(gs.Allowances, types.Allowance{Granter: "treasury", Amount: math.NewInt(5)})
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidRequest)

	gs.Allowances = []types.Allowance{{Granter: "treasury", Amount: math.ZeroInt()}}
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidAmount)

	gs.Allowances = []types.Allowance{{Amount: math.NewInt(1)}}
	require.ErrorIs(t, gs.Validate(), types.ErrZeroAddress)
}

func TestMsgWithdrawBatchValidateBasic(t *testing.T) {
	msg := types.MsgWithdrawBatch{Players: []string{"a", "b"}, Amounts: []math.Int{math.OneInt()}}
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrArityMismatch)

	msg.Amounts = append(msg.Amounts, math.OneInt())
	require.NoError(t, msg.ValidateBasic())
}
