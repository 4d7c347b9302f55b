package keeper

import (
	"context"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rewardchain/internal/ledger"
	"rewardchain/x/payment/types"
)

// WithdrawBatch pays every entry out of the player's claimable balance. Entries
// are checked in order against balances already reduced by earlier entries of
// the same batch. Each payout spends the payment address's allowance. One
// failing entry aborts the batch: no claimable balance or allowance changes
// and no tokens move.
func (k Keeper) WithdrawBatch(ctx context.Context, sender string, players []string, amounts []math.Int) (math.Int, error) {
	if len(players) != len(amounts) {
		return math.Int{}, errorsmod.Wrapf(types.ErrArityMismatch, "%d players, %d amounts", len(players), len(amounts))
	}

	total := math.ZeroInt()
	err := ledger.Atomically(ctx, func(ctx context.Context) error {
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			return err
		}
		if sender == "" || sender != cfg.Owner {
			return errorsmod.Wrapf(types.ErrAccessDenied, "%s is not the owner", sender)
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		if len(players) == 0 {
			return errorsmod.Wrap(types.ErrInvalidRequest, "empty withdrawal batch")
		}
		if uint64(len(players)) > uint64(params.MaxBatchSize) {
			return errorsmod.Wrapf(types.ErrInvalidRequest, "batch of %d entries exceeds limit %d", len(players), params.MaxBatchSize)
		}
		_, paymentAddr, err := k.addrs.Canonical(cfg.PaymentAddress, "payment address")
		if err != nil {
			return err
		}

		for i, player := range players {
			if err := k.withdraw(ctx, cfg, params, paymentAddr, player, amounts[i]); err != nil {
				return errorsmod.Wrapf(err, "entry %d", i)
			}
			total = total.Add(amounts[i])
		}

		amountStrs := make([]string, len(amounts))
		for i, a := range amounts {
			amountStrs[i] = a.String()
		}
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventWithdrawnBatch,
				sdk.NewAttribute(types.AttrPlayers, strings.Join(players, ",")),
				sdk.NewAttribute(types.AttrAmounts, strings.Join(amountStrs, ",")),
				sdk.NewAttribute(types.AttrTotal, total.String()),
				sdk.NewAttribute(types.AttrDenom, cfg.Denom),
			),
		)
		return nil
	})
	if err != nil {
		k.Logger(ctx).Debug("withdrawal batch aborted", "entries", len(players), "err", err)
		return math.Int{}, err
	}
	k.Logger(ctx).Info("withdrawal batch paid", "entries", len(players), "total", total)
	return total, nil
}

// withdraw checks and pays a single entry.
func (k Keeper) withdraw(ctx context.Context, cfg types.PaymentConfig, params types.Params, from sdk.AccAddress, player string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return errorsmod.Wrapf(types.ErrInvalidAmount, "amount for %s must be positive", player)
	}
	if amount.LT(params.MinimumAmount) {
		return errorsmod.Wrapf(types.ErrInvalidAmount, "amount %s for %s is below the minimum %s", amount, player, params.MinimumAmount)
	}

	global, err := k.gameFactory.GetGlobalPlayerStats(ctx, player)
	if err != nil {
		return err
	}
	if amount.GT(global.TotalClaimable) {
		return errorsmod.Wrapf(types.ErrInsufficientBalance, "%s can claim %s, requested %s", player, global.TotalClaimable, amount)
	}
	if level := params.LevelTable.Level(global.TotalXp); level < params.MinimumLevel {
		return errorsmod.Wrapf(types.ErrInsufficientLevel, "%s is level %d, needs %d", player, level, params.MinimumLevel)
	}

	if err := k.spendAllowance(ctx, cfg.PaymentAddress, amount); err != nil {
		return err
	}
	if _, err := k.gameFactory.DrawClaimable(ctx, k.ModuleAddress(), player, amount); err != nil {
		return err
	}
	_, to, err := k.addrs.Canonical(player, "player")
	if err != nil {
		return err
	}
	if err := k.bankKeeper.SendCoins(ctx, from, to, sdk.NewCoins(sdk.NewCoin(cfg.Denom, amount))); err != nil {
		return errorsmod.Wrapf(err, "failed to pay %s", player)
	}
	return nil
}

// Eligibility reports a player's level and claimable balance against the
// current withdrawal thresholds.
func (k Keeper) Eligibility(ctx context.Context, player string) (types.Eligibility, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Eligibility{}, err
	}
	global, err := k.gameFactory.GetGlobalPlayerStats(ctx, player)
	if err != nil {
		return types.Eligibility{}, err
	}
	level := params.LevelTable.Level(global.TotalXp)
	next, _ := params.LevelTable.Threshold(level + 1)
	claimable := global.TotalClaimable
	if claimable.IsNil() {
		claimable = math.ZeroInt()
	}
	return types.Eligibility{
		Player:       global.Player,
		TotalXp:      global.TotalXp,
		Level:        level,
		MinimumLevel: params.MinimumLevel,
		NextLevelXp:  next,
		Claimable:    claimable,
		Eligible:     level >= params.MinimumLevel && claimable.IsPositive() && claimable.GTE(params.MinimumAmount),
	}, nil
}
