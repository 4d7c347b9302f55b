package keeper

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rewardchain/internal/ledger"
	"rewardchain/x/gamefactory/types"
)

// CreateNewGame allocates the next game ID, binds the game to the configured
// token and records its name. Duplicate names are allowed; the name index keeps
// the first game registered under a name.
func (k Keeper) CreateNewGame(ctx context.Context, sender, name string) (types.Game, error) {
	var game types.Game
	err := ledger.Atomically(ctx, func(ctx context.Context) error {
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			return err
		}
		switch {
		case cfg.Admin == "":
			return errorsmod.Wrap(types.ErrPreconditionNotMet, "admin is not configured")
		case cfg.Denom == "":
			return errorsmod.Wrap(types.ErrPreconditionNotMet, "token is not configured")
		case cfg.PaymentManager == "":
			return errorsmod.Wrap(types.ErrPreconditionNotMet, "payment manager is not configured")
		}
		if err := cfg.Access().Require(sender, types.CapAdmin); err != nil {
			return err
		}
		if strings.TrimSpace(name) == "" {
			return errorsmod.Wrap(types.ErrInvalidRequest, "game name is required")
		}

		id, err := k.GameSeq.Next(ctx)
		if err != nil {
			return err
		}
		addr, err := k.gameAddress(id)
		if err != nil {
			return err
		}
		game = types.Game{
			ID:      id,
			Name:    name,
			Denom:   cfg.Denom,
			Creator: sender,
			Address: addr,
		}
		if err := k.Games.Set(ctx, id, game); err != nil {
			return err
		}
		taken, err := k.GameNames.Has(ctx, name)
		if err != nil {
			return err
		}
		if !taken {
			if err := k.GameNames.Set(ctx, name, id); err != nil {
				return err
			}
		}

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventGameCreated,
				sdk.NewAttribute(types.AttrCreator, sender),
				sdk.NewAttribute(types.AttrGameAddress, addr),
				sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(id, 10)),
				sdk.NewAttribute(types.AttrName, name),
			),
		)
		return nil
	})
	if err != nil {
		return types.Game{}, err
	}
	k.Logger(ctx).Info("game created", "game_id", game.ID, "name", game.Name, "address", game.Address)
	return game, nil
}

// updateConfig applies mutate to the stored config after checking sender owns the factory.
func (k Keeper) updateConfig(ctx context.Context, sender string, mutate func(context.Context, *types.FactoryConfig) error) error {
	return ledger.Atomically(ctx, func(ctx context.Context) error {
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			return err
		}
		if err := cfg.Access().Require(sender, types.CapOwner); err != nil {
			return err
		}
		if err := mutate(ctx, &cfg); err != nil {
			return err
		}
		return k.Config.Set(ctx, cfg)
	})
}

func (k Keeper) SetAdmin(ctx context.Context, sender, admin string) error {
	return k.updateConfig(ctx, sender, func(ctx context.Context, cfg *types.FactoryConfig) error {
		addr, _, err := k.addrs.Canonical(admin, "admin")
		if err != nil {
			return err
		}
		cfg.Admin = addr
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(types.EventAdminSet, sdk.NewAttribute(types.AttrAdmin, addr)),
		)
		return nil
	})
}

// SetToken binds future games to denom. Existing games keep their denom.
func (k Keeper) SetToken(ctx context.Context, sender, denom string) error {
	return k.updateConfig(ctx, sender, func(ctx context.Context, cfg *types.FactoryConfig) error {
		if denom == "" {
			return errorsmod.Wrap(types.ErrZeroAddress, "token denom is empty")
		}
		if err := sdk.ValidateDenom(denom); err != nil {
			return errorsmod.Wrapf(types.ErrInvalidRequest, "invalid denom %q: %s", denom, err)
		}
		cfg.Denom = denom
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(types.EventTokenSet, sdk.NewAttribute(types.AttrDenom, denom)),
		)
		return nil
	})
}

func (k Keeper) SetPaymentManager(ctx context.Context, sender, paymentManager string) error {
	return k.updateConfig(ctx, sender, func(ctx context.Context, cfg *types.FactoryConfig) error {
		addr, _, err := k.addrs.Canonical(paymentManager, "payment manager")
		if err != nil {
			return err
		}
		cfg.PaymentManager = addr
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(types.EventPaymentManagerSet, sdk.NewAttribute(types.AttrPaymentManager, addr)),
		)
		return nil
	})
}

func (k Keeper) TransferOwnership(ctx context.Context, sender, newOwner string) error {
	return k.updateConfig(ctx, sender, func(ctx context.Context, cfg *types.FactoryConfig) error {
		addr, _, err := k.addrs.Canonical(newOwner, "new owner")
		if err != nil {
			return err
		}
		prev := cfg.Owner
		cfg.Owner = addr
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventOwnershipTransferred,
				sdk.NewAttribute(types.AttrPreviousOwner, prev),
				sdk.NewAttribute(types.AttrNewOwner, addr),
			),
		)
		return nil
	})
}

// GetNumberOfGames returns how many games were ever created.
func (k Keeper) GetNumberOfGames(ctx context.Context) (uint64, error) {
	return k.GameSeq.Peek(ctx)
}

// GetGamePerIndex returns the i-th created game.
func (k Keeper) GetGamePerIndex(ctx context.Context, i uint64) (types.Game, error) {
	n, err := k.GetNumberOfGames(ctx)
	if err != nil {
		return types.Game{}, err
	}
	if i >= n {
		return types.Game{}, errorsmod.Wrapf(types.ErrOutOfBounds, "index %d, %d games", i, n)
	}
	return k.GetGame(ctx, i)
}

// GetGameAddress returns the reserve address of the i-th game.
func (k Keeper) GetGameAddress(ctx context.Context, i uint64) (string, error) {
	g, err := k.GetGamePerIndex(ctx, i)
	if err != nil {
		return "", err
	}
	return g.Address, nil
}

// GetGameID returns the first game registered under name.
func (k Keeper) GetGameID(ctx context.Context, name string) (uint64, error) {
	id, err := k.GameNames.Get(ctx, name)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, errorsmod.Wrapf(types.ErrNotFound, "no game named %q", name)
		}
		return 0, err
	}
	return id, nil
}

// UpdateAllPlayersLogin sets the login flag of every listed player.
func (k Keeper) UpdateAllPlayersLogin(ctx context.Context, sender string, players []string, flags []bool) error {
	if len(players) != len(flags) {
		return errorsmod.Wrapf(types.ErrArityMismatch, "%d players, %d flags", len(players), len(flags))
	}
	return ledger.Atomically(ctx, func(ctx context.Context) error {
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
		if uint64(len(players)) > uint64(params.MaxBatchSize) {
			return errorsmod.Wrapf(types.ErrInvalidRequest, "batch of %d players exceeds limit %d", len(players), params.MaxBatchSize)
		}
		for i, p := range players {
			addr, _, err := k.addrs.Canonical(p, "player")
			if err != nil {
				return err
			}
			if err := k.Logins.Set(ctx, addr, flags[i]); err != nil {
				return err
			}
		}
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(types.EventLoginsUpdated, sdk.NewAttribute(types.AttrCount, strconv.Itoa(len(players)))),
		)
		return nil
	})
}

// GetLoginStatus returns 1 when player is logged in and 0 otherwise.
func (k Keeper) GetLoginStatus(ctx context.Context, player string) (uint32, error) {
	addr, _, err := k.addrs.Canonical(player, "player")
	if err != nil {
		return 0, err
	}
	in, err := k.Logins.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if in {
		return 1, nil
	}
	return 0, nil
}

// GetGlobalPlayerStats sums a player's records over every game. Games the
// player never joined contribute zero.
func (k Keeper) GetGlobalPlayerStats(ctx context.Context, player string) (types.GlobalPlayerStats, error) {
	addr, _, err := k.addrs.Canonical(player, "player")
	if err != nil {
		return types.GlobalPlayerStats{}, err
	}
	out := types.GlobalPlayerStats{
		Player:         addr,
		TotalClaimable: math.ZeroInt(),
		GlobalWon:      math.ZeroInt(),
	}
	err = k.Games.Walk(ctx, nil, func(gameID uint64, _ types.Game) (bool, error) {
		stats, err := k.Players.Get(ctx, collections.Join(gameID, addr))
		if err != nil {
			if errors.Is(err, collections.ErrNotFound) {
				return false, nil
			}
			return true, err
		}
		stats.Normalize()
		var ok bool
		if out.TotalXp, ok = addUint64(out.TotalXp, stats.Xp); !ok {
			return true, errorsmod.Wrapf(types.ErrInvalidAmount, "total xp of %s overflows", addr)
		}
		if out.TotalSessionsPlayed, ok = addUint64(out.TotalSessionsPlayed, stats.SessionsPlayed); !ok {
			return true, errorsmod.Wrapf(types.ErrInvalidAmount, "total sessions of %s overflow", addr)
		}
		out.TotalClaimable = out.TotalClaimable.Add(stats.Claimable)
		out.GlobalWon = out.GlobalWon.Add(stats.Won)
		out.GamesPlayed++
		return false, nil
	})
	if err != nil {
		return types.GlobalPlayerStats{}, err
	}
	return out, nil
}

// GetGlobalSessionsPlayed sums the session totals of every game.
func (k Keeper) GetGlobalSessionsPlayed(ctx context.Context) (uint64, error) {
	var total uint64
	err := k.Games.Walk(ctx, nil, func(gameID uint64, g types.Game) (bool, error) {
		var ok bool
		if total, ok = addUint64(total, g.TotalSessionsPlayed); !ok {
			return true, errorsmod.Wrapf(types.ErrInvalidAmount, "global sessions overflow at game %d", gameID)
		}
		return false, nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// DrawClaimable debits amount from the player's claimable balances, oldest
// game first. Only the configured payment manager may draw. The returned
// draws list every game that was debited.
func (k Keeper) DrawClaimable(ctx context.Context, caller, player string, amount math.Int) ([]types.ClaimDraw, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return nil, errorsmod.Wrapf(types.ErrInvalidAmount, "draw amount %s must be positive", amount)
	}
	var draws []types.ClaimDraw
	err := ledger.Atomically(ctx, func(ctx context.Context) error {
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			return err
		}
		if err := cfg.Access().Require(caller, types.CapPayment); err != nil {
			return err
		}
		addr, _, err := k.addrs.Canonical(player, "player")
		if err != nil {
			return err
		}

		ids, err := k.gameIDs(ctx)
		if err != nil {
			return err
		}
		remaining := amount
		for _, gameID := range ids {
			if remaining.IsZero() {
				break
			}
			key := collections.Join(gameID, addr)
			stats, err := k.Players.Get(ctx, key)
			if err != nil {
				if errors.Is(err, collections.ErrNotFound) {
					continue
				}
				return err
			}
			stats.Normalize()
			if !stats.Claimable.IsPositive() {
				continue
			}
			take := math.MinInt(stats.Claimable, remaining)
			stats.Claimable = stats.Claimable.Sub(take)
			if err := k.Players.Set(ctx, key, stats); err != nil {
				return err
			}
			draws = append(draws, types.ClaimDraw{GameID: gameID, Amount: take})
			remaining = remaining.Sub(take)
		}
		if remaining.IsPositive() {
			return errorsmod.Wrapf(types.ErrInsufficientBalance, "player %s is short %s of %s", addr, remaining, amount)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		for _, d := range draws {
			sdkCtx.EventManager().EmitEvent(
				sdk.NewEvent(
					types.EventClaimableDrawn,
					sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(d.GameID, 10)),
					sdk.NewAttribute(types.AttrPlayer, addr),
					sdk.NewAttribute(types.AttrAmount, d.Amount.String()),
				),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return draws, nil
}

// gameIDs lists every game ID in ascending order.
func (k Keeper) gameIDs(ctx context.Context) ([]uint64, error) {
	iter, err := k.Games.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	return iter.Keys()
}
