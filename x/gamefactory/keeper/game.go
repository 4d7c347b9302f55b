package keeper

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rewardchain/internal/ledger"
	"rewardchain/x/gamefactory/types"
)

// GetGame returns the game with the given ID.
func (k Keeper) GetGame(ctx context.Context, gameID uint64) (types.Game, error) {
	g, err := k.Games.Get(ctx, gameID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Game{}, errorsmod.Wrapf(types.ErrOutOfBounds, "game %d does not exist", gameID)
		}
		return types.Game{}, err
	}
	return g, nil
}

// AddNewPlayer registers a player in a game and appends it to the roster.
// It returns the player's 1-based roster index.
func (k Keeper) AddNewPlayer(ctx context.Context, gameID uint64, sender string, stats types.PlayerStats) (uint64, error) {
	var index uint64
	err := ledger.Atomically(ctx, func(ctx context.Context) error {
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			return err
		}
		if err := cfg.Access().Require(sender, types.CapRegister); err != nil {
			return err
		}
		game, err := k.GetGame(ctx, gameID)
		if err != nil {
			return err
		}
		player, _, err := k.addrs.Canonical(stats.Address, "player")
		if err != nil {
			return err
		}
		key := collections.Join(gameID, player)
		exists, err := k.Players.Has(ctx, key)
		if err != nil {
			return err
		}
		if exists {
			return errorsmod.Wrapf(types.ErrDuplicateEntity, "player %s already registered in game %d", player, gameID)
		}
		if !stats.Claimable.IsNil() && stats.Claimable.IsNegative() {
			return errorsmod.Wrapf(types.ErrInvalidAmount, "player %s: claimable must be non-negative", player)
		}

		stats.Address = player
		stats.Normalize()
		stats.Won = stats.Claimable
		stats.Index = game.NumPlayers + 1

		total, ok := addUint64(game.TotalSessionsPlayed, stats.SessionsPlayed)
		if !ok {
			return errorsmod.Wrapf(types.ErrInvalidAmount, "game %d: sessions overflow", gameID)
		}
		game.TotalSessionsPlayed = total
		game.NumPlayers = stats.Index

		if err := k.Players.Set(ctx, key, stats); err != nil {
			return err
		}
		if err := k.Roster.Set(ctx, collections.Join(gameID, stats.Index), player); err != nil {
			return err
		}
		if err := k.Games.Set(ctx, gameID, game); err != nil {
			return err
		}

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventPlayerAdded,
				sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(gameID, 10)),
				sdk.NewAttribute(types.AttrPlayer, player),
				sdk.NewAttribute(types.AttrIndex, strconv.FormatUint(stats.Index, 10)),
			),
		)
		index = stats.Index
		return nil
	})
	return index, err
}

// UpdateAllPlayersStats merges a batch of stat deltas into registered players.
// Counters add, ranking and best score only rise. Any unknown player aborts the batch.
func (k Keeper) UpdateAllPlayersStats(ctx context.Context, gameID uint64, sender string, players []string, deltas []math.Int) error {
	parsed, err := types.ParseStatDeltas(players, deltas)
	if err != nil {
		return err
	}
	return ledger.Atomically(ctx, func(ctx context.Context) error {
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			return err
		}
		if err := cfg.Access().Require(sender, types.CapRegister); err != nil {
			return err
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		if uint64(len(parsed)) > uint64(params.MaxBatchSize) {
			return errorsmod.Wrapf(types.ErrInvalidRequest, "batch of %d players exceeds limit %d", len(parsed), params.MaxBatchSize)
		}
		game, err := k.GetGame(ctx, gameID)
		if err != nil {
			return err
		}

		for _, d := range parsed {
			player, _, err := k.addrs.Canonical(d.Player, "player")
			if err != nil {
				return err
			}
			key := collections.Join(gameID, player)
			stats, err := k.Players.Get(ctx, key)
			if err != nil {
				if errors.Is(err, collections.ErrNotFound) {
					return errorsmod.Wrapf(types.ErrNotFound, "player %s is not registered in game %d", player, gameID)
				}
				return err
			}
			if err := stats.ApplyDelta(d); err != nil {
				return err
			}
			total, ok := addUint64(game.TotalSessionsPlayed, d.Sessions)
			if !ok {
				return errorsmod.Wrapf(types.ErrInvalidAmount, "game %d: sessions overflow", gameID)
			}
			game.TotalSessionsPlayed = total
			if err := k.Players.Set(ctx, key, stats); err != nil {
				return err
			}
		}
		if err := k.Games.Set(ctx, gameID, game); err != nil {
			return err
		}

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventStatsUpdated,
				sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(gameID, 10)),
				sdk.NewAttribute(types.AttrCount, strconv.Itoa(len(parsed))),
			),
		)
		return nil
	})
}

// DistributeRewards moves totalAmount from the sender into the game reserve and
// credits the top players according to the schedule for topN. Truncation dust
// stays in the reserve and is reported as the remainder.
func (k Keeper) DistributeRewards(ctx context.Context, gameID uint64, sender string, totalAmount math.Int, topN uint32) (types.Distribution, error) {
	var dist types.Distribution
	err := ledger.Atomically(ctx, func(ctx context.Context) error {
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			return err
		}
		if err := cfg.Access().Require(sender, types.CapManage); err != nil {
			return err
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		schedule, err := params.RewardSchedules.Schedule(topN)
		if err != nil {
			return err
		}
		if totalAmount.IsNil() || !totalAmount.IsPositive() {
			return errorsmod.Wrapf(types.ErrInvalidAmount, "total amount %s must be positive", totalAmount)
		}
		game, err := k.GetGame(ctx, gameID)
		if err != nil {
			return err
		}
		if game.NumPlayers < uint64(topN) {
			return errorsmod.Wrapf(types.ErrPreconditionNotMet, "game %d has %d players, tier needs %d", gameID, game.NumPlayers, topN)
		}

		senderAddr, err := k.addressCodec.StringToBytes(sender)
		if err != nil {
			return errorsmod.Wrap(err, "invalid sender address")
		}
		reserveAddr, err := k.addressCodec.StringToBytes(game.Address)
		if err != nil {
			return errorsmod.Wrap(err, "invalid game address")
		}
		coins := sdk.NewCoins(sdk.NewCoin(game.Denom, totalAmount))
		spendable := k.bankKeeper.SpendableCoins(ctx, senderAddr)
		if !spendable.IsAllGTE(coins) {
			return errorsmod.Wrapf(types.ErrInsufficientBalance, "sender %s cannot fund %s", sender, coins)
		}
		if err := k.bankKeeper.SendCoins(ctx, senderAddr, reserveAddr, coins); err != nil {
			return errorsmod.Wrap(err, "failed to fund game reserve")
		}

		ranked, err := k.rankPlayers(ctx, gameID)
		if err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		credited := math.ZeroInt()
		payouts := make([]types.RewardPayout, 0, topN)
		for i, pct := range schedule {
			stats := ranked[i]
			amount := totalAmount.MulRaw(int64(pct)).QuoRaw(types.PercentDenominator)
			stats.Credit(amount)
			if err := k.Players.Set(ctx, collections.Join(gameID, stats.Address), stats); err != nil {
				return err
			}
			credited = credited.Add(amount)
			rank := uint32(i + 1)
			payouts = append(payouts, types.RewardPayout{Rank: rank, Player: stats.Address, Percent: pct, Amount: amount})
			sdkCtx.EventManager().EmitEvent(
				sdk.NewEvent(
					types.EventRewardCredited,
					sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(gameID, 10)),
					sdk.NewAttribute(types.AttrRank, strconv.FormatUint(uint64(rank), 10)),
					sdk.NewAttribute(types.AttrPlayer, stats.Address),
					sdk.NewAttribute(types.AttrAmount, amount.String()),
				),
			)
		}

		dist = types.Distribution{
			GameID:    gameID,
			Total:     totalAmount,
			Credited:  credited,
			Remainder: totalAmount.Sub(credited),
			Payouts:   payouts,
		}
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventRewardsDistributed,
				sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(gameID, 10)),
				sdk.NewAttribute(types.AttrTierSize, strconv.FormatUint(uint64(topN), 10)),
				sdk.NewAttribute(types.AttrTotalAmount, totalAmount.String()),
				sdk.NewAttribute(types.AttrCredited, credited.String()),
				sdk.NewAttribute(types.AttrRemainder, dist.Remainder.String()),
			),
		)
		return nil
	})
	if err != nil {
		return types.Distribution{}, err
	}
	k.Logger(ctx).Info("rewards distributed", "game_id", gameID, "total", dist.Total, "remainder", dist.Remainder)
	return dist, nil
}

// ResetAllRankingScores zeroes the ranking score of every registered player,
// starting a new competitive period. It returns the number of players reset.
func (k Keeper) ResetAllRankingScores(ctx context.Context, gameID uint64, sender string) (uint64, error) {
	var n uint64
	err := ledger.Atomically(ctx, func(ctx context.Context) error {
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			return err
		}
		if err := cfg.Access().Require(sender, types.CapManage); err != nil {
			return err
		}
		if _, err := k.GetGame(ctx, gameID); err != nil {
			return err
		}
		roster, err := k.roster(ctx, gameID)
		if err != nil {
			return err
		}
		for _, player := range roster {
			key := collections.Join(gameID, player)
			stats, err := k.Players.Get(ctx, key)
			if err != nil {
				return err
			}
			stats.RankingScore = 0
			if err := k.Players.Set(ctx, key, stats); err != nil {
				return err
			}
		}
		n = uint64(len(roster))

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventRankingScoresReset,
				sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(gameID, 10)),
				sdk.NewAttribute(types.AttrCount, strconv.FormatUint(n, 10)),
			),
		)
		return nil
	})
	return n, err
}

// roster returns the game's players in registration order.
func (k Keeper) roster(ctx context.Context, gameID uint64) ([]string, error) {
	var out []string
	err := k.Roster.Walk(ctx, collections.NewPrefixedPairRange[uint64, uint64](gameID), func(_ collections.Pair[uint64, uint64], player string) (bool, error) {
		out = append(out, player)
		return false, nil
	})
	return out, err
}

// rankPlayers orders the roster by descending ranking score. Equal scores keep
// registration order, so the earliest registered player ranks first.
func (k Keeper) rankPlayers(ctx context.Context, gameID uint64) ([]types.PlayerStats, error) {
	roster, err := k.roster(ctx, gameID)
	if err != nil {
		return nil, err
	}
	ranked := make([]types.PlayerStats, 0, len(roster))
	for _, player := range roster {
		stats, err := k.Players.Get(ctx, collections.Join(gameID, player))
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, stats)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RankingScore > ranked[j].RankingScore
	})
	return ranked, nil
}

// Leaderboard returns up to limit players in ranking order; zero means all.
func (k Keeper) Leaderboard(ctx context.Context, gameID uint64, limit uint32) ([]types.PlayerStats, error) {
	if _, err := k.GetGame(ctx, gameID); err != nil {
		return nil, err
	}
	ranked, err := k.rankPlayers(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && int(limit) < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// GetPlayerStats returns a player's record in a game.
func (k Keeper) GetPlayerStats(ctx context.Context, gameID uint64, player string) (types.PlayerStats, error) {
	if _, err := k.GetGame(ctx, gameID); err != nil {
		return types.PlayerStats{}, err
	}
	addr, _, err := k.addrs.Canonical(player, "player")
	if err != nil {
		return types.PlayerStats{}, err
	}
	stats, err := k.Players.Get(ctx, collections.Join(gameID, addr))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.PlayerStats{}, errorsmod.Wrapf(types.ErrNotFound, "player %s is not registered in game %d", addr, gameID)
		}
		return types.PlayerStats{}, err
	}
	return stats, nil
}

func (k Keeper) NumberOfPlayers(ctx context.Context, gameID uint64) (uint64, error) {
	g, err := k.GetGame(ctx, gameID)
	if err != nil {
		return 0, err
	}
	return g.NumPlayers, nil
}

func (k Keeper) GetTotalSessionsPlayed(ctx context.Context, gameID uint64) (uint64, error) {
	g, err := k.GetGame(ctx, gameID)
	if err != nil {
		return 0, err
	}
	return g.TotalSessionsPlayed, nil
}

// IsPlayerInGame reports whether player is registered in the game.
func (k Keeper) IsPlayerInGame(ctx context.Context, gameID uint64, player string) (bool, error) {
	idx, err := k.PlayerIndex(ctx, gameID, player)
	if err != nil {
		return false, err
	}
	return idx > 0, nil
}

// PlayerIndex returns the 1-based roster position of player, or 0 when absent.
func (k Keeper) PlayerIndex(ctx context.Context, gameID uint64, player string) (uint64, error) {
	stats, err := k.GetPlayerStats(ctx, gameID, player)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return stats.Index, nil
}

func (k Keeper) GameName(ctx context.Context, gameID uint64) (string, error) {
	g, err := k.GetGame(ctx, gameID)
	if err != nil {
		return "", err
	}
	return g.Name, nil
}

// GameID resolves a game reserve address back to its ID.
func (k Keeper) GameID(ctx context.Context, gameAddress string) (uint64, error) {
	var (
		id    uint64
		found bool
	)
	err := k.Games.Walk(ctx, nil, func(gid uint64, g types.Game) (bool, error) {
		if g.Address == gameAddress {
			id, found = gid, true
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errorsmod.Wrapf(types.ErrNotFound, "no game at address %s", gameAddress)
	}
	return id, nil
}

func addUint64(a, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum >= a
}
