package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rewardchain/x/gamefactory/types"
)

// RegisterInvariants registers all gamefactory invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "best-score", BestScoreInvariant(k))
	ir.RegisterRoute(types.ModuleName, "session-totals", SessionTotalsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "roster", RosterInvariant(k))
}

// AllInvariants runs every gamefactory invariant.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{BestScoreInvariant(k), SessionTotalsInvariant(k), RosterInvariant(k)} {
			if msg, broken := inv(ctx); broken {
				return msg, broken
			}
		}
		return "", false
	}
}

// BestScoreInvariant checks bestScore >= rankingScore and won >= claimable for every player.
func BestScoreInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken int
		)
		err := k.Players.Walk(ctx, nil, func(key collections.Pair[uint64, string], p types.PlayerStats) (bool, error) {
			if err := p.Validate(); err != nil {
				broken++
				msg += fmt.Sprintf("\tgame %d: %s\n", key.K1(), err)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "best-score", err.Error()), true
		}
		return sdk.FormatInvariant(types.ModuleName, "best-score",
			fmt.Sprintf("%d player records broken\n%s", broken, msg)), broken > 0
	}
}

// SessionTotalsInvariant checks each game's session total equals the sum over its players.
func SessionTotalsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sums := make(map[uint64]uint64)
		err := k.Players.Walk(ctx, nil, func(key collections.Pair[uint64, string], p types.PlayerStats) (bool, error) {
			sums[key.K1()] += p.SessionsPlayed
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "session-totals", err.Error()), true
		}
		var msg string
		err = k.Games.Walk(ctx, nil, func(id uint64, g types.Game) (bool, error) {
			if sums[id] != g.TotalSessionsPlayed {
				msg += fmt.Sprintf("\tgame %d: total %d, players sum %d\n", id, g.TotalSessionsPlayed, sums[id])
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "session-totals", err.Error()), true
		}
		return sdk.FormatInvariant(types.ModuleName, "session-totals", msg), msg != ""
	}
}

// RosterInvariant checks the roster length and indexes match NumPlayers.
func RosterInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		err := k.Games.Walk(ctx, nil, func(id uint64, g types.Game) (bool, error) {
			roster, err := k.roster(ctx, id)
			if err != nil {
				return true, err
			}
			if uint64(len(roster)) != g.NumPlayers {
				msg += fmt.Sprintf("\tgame %d: %d players declared, roster has %d\n", id, g.NumPlayers, len(roster))
				return false, nil
			}
			for i, addr := range roster {
				p, err := k.Players.Get(ctx, collections.Join(id, addr))
				if err != nil {
					msg += fmt.Sprintf("\tgame %d: roster entry %s has no record\n", id, addr)
					continue
				}
				if p.Index != uint64(i+1) {
					msg += fmt.Sprintf("\tgame %d: %s has index %d at position %d\n", id, addr, p.Index, i+1)
				}
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "roster", err.Error()), true
		}
		return sdk.FormatInvariant(types.ModuleName, "roster", msg), msg != ""
	}
}
