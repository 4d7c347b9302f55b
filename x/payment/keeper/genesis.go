package keeper

import (
	"context"

	"cosmossdk.io/math"

	"rewardchain/x/payment/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	if genState.Config != nil {
		if err := k.InitConfig(ctx, *genState.Config); err != nil {
			return err
		}
	}
	for _, a := range genState.Allowances {
		if err := k.Approve(ctx, a.Granter, a.Amount); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns the module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Params = params

	has, err := k.Config.Has(ctx)
	if err != nil {
		return nil, err
	}
	if has {
		cfg, err := k.Config.Get(ctx)
		if err != nil {
			return nil, err
		}
		genesis.Config = &cfg
	}

	err = k.Allowances.Walk(ctx, nil, func(granter string, amt math.Int) (bool, error) {
		genesis.Allowances = append(genesis.Allowances, types.Allowance{Granter: granter, Amount: amt})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return genesis, nil
}
