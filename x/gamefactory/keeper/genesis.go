package keeper

import (
	"context"

	"cosmossdk.io/collections"

	"rewardchain/x/gamefactory/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	if genState.Config != nil {
		if err := k.Config.Set(ctx, *genState.Config); err != nil {
			return err
		}
	}

	for _, g := range genState.Games {
		for _, p := range g.Players {
			p.Normalize()
			if err := k.Players.Set(ctx, collections.Join(g.Game.ID, p.Address), p); err != nil {
				return err
			}
			if err := k.Roster.Set(ctx, collections.Join(g.Game.ID, p.Index), p.Address); err != nil {
				return err
			}
		}
		if err := k.Games.Set(ctx, g.Game.ID, g.Game); err != nil {
			return err
		}
		taken, err := k.GameNames.Has(ctx, g.Game.Name)
		if err != nil {
			return err
		}
		if !taken {
			if err := k.GameNames.Set(ctx, g.Game.Name, g.Game.ID); err != nil {
				return err
			}
		}
	}
	if err := k.GameSeq.Set(ctx, uint64(len(genState.Games))); err != nil {
		return err
	}

	for _, l := range genState.Logins {
		if err := k.Logins.Set(ctx, l.Player, l.LoggedIn); err != nil {
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

	err = k.Games.Walk(ctx, nil, func(id uint64, g types.Game) (bool, error) {
		gg := types.GenesisGame{Game: g, Players: []types.PlayerStats{}}
		roster, err := k.roster(ctx, id)
		if err != nil {
			return true, err
		}
		for _, addr := range roster {
			p, err := k.Players.Get(ctx, collections.Join(id, addr))
			if err != nil {
				return true, err
			}
			gg.Players = append(gg.Players, p)
		}
		genesis.Games = append(genesis.Games, gg)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Logins.Walk(ctx, nil, func(player string, in bool) (bool, error) {
		genesis.Logins = append(genesis.Logins, types.LoginStatus{Player: player, LoggedIn: in})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return genesis, nil
}
