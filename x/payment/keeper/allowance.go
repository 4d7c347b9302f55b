package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rewardchain/internal/ledger"
	"rewardchain/x/payment/types"
)

// Approve sets how much the module may pay out of granter's balance. It
// replaces any earlier allowance; zero revokes it. Only the granter signs.
func (k Keeper) Approve(ctx context.Context, granter string, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return errorsmod.Wrapf(types.ErrInvalidAmount, "allowance %s must be non-negative", amount)
	}
	return ledger.Atomically(ctx, func(ctx context.Context) error {
		addr, _, err := k.addrs.Canonical(granter, "granter")
		if err != nil {
			return err
		}
		if amount.IsZero() {
			err = k.Allowances.Remove(ctx, addr)
		} else {
			err = k.Allowances.Set(ctx, addr, amount)
		}
		if err != nil {
			return err
		}
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventAllowanceSet,
				sdk.NewAttribute(types.AttrGranter, addr),
				sdk.NewAttribute(types.AttrAllowance, amount.String()),
			),
		)
		return nil
	})
}

// GetAllowance returns what the module may still pay out of granter's balance.
func (k Keeper) GetAllowance(ctx context.Context, granter string) (math.Int, error) {
	addr, _, err := k.addrs.Canonical(granter, "granter")
	if err != nil {
		return math.Int{}, err
	}
	amt, err := k.Allowances.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return amt, nil
}

func (k Keeper) spendAllowance(ctx context.Context, granter string, amount math.Int) error {
	allowed, err := k.GetAllowance(ctx, granter)
	if err != nil {
		return err
	}
	if allowed.LT(amount) {
		return errorsmod.Wrapf(types.ErrInsufficientAllowance, "%s allows %s, payout needs %s", granter, allowed, amount)
	}
	left := allowed.Sub(amount)
	if left.IsZero() {
		return k.Allowances.Remove(ctx, granter)
	}
	return k.Allowances.Set(ctx, granter, left)
}
