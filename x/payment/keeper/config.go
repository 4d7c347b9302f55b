package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rewardchain/internal/ledger"
	"rewardchain/x/payment/types"
)

// requireOwner loads the config and checks sender owns the payment manager.
func (k Keeper) requireOwner(ctx context.Context, sender string) (types.PaymentConfig, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.PaymentConfig{}, err
	}
	if sender == "" || sender != cfg.Owner {
		return types.PaymentConfig{}, errorsmod.Wrapf(types.ErrAccessDenied, "%s is not the owner", sender)
	}
	return cfg, nil
}

// SetNewPaymentAddress changes the account that funds payouts.
func (k Keeper) SetNewPaymentAddress(ctx context.Context, sender, paymentAddress string) error {
	return ledger.Atomically(ctx, func(ctx context.Context) error {
		cfg, err := k.requireOwner(ctx, sender)
		if err != nil {
			return err
		}
		addr, _, err := k.addrs.Canonical(paymentAddress, "payment address")
		if err != nil {
			return err
		}
		cfg.PaymentAddress = addr
		if err := k.Config.Set(ctx, cfg); err != nil {
			return err
		}
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(types.EventPaymentAddressSet, sdk.NewAttribute(types.AttrPaymentAddress, addr)),
		)
		return nil
	})
}

func (k Keeper) SetMinimumAmount(ctx context.Context, sender string, amount math.Int) error {
	return ledger.Atomically(ctx, func(ctx context.Context) error {
		if _, err := k.requireOwner(ctx, sender); err != nil {
			return err
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		params.MinimumAmount = amount
		if err := k.SetParams(ctx, params); err != nil {
			return err
		}
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(types.EventMinimumAmountSet, sdk.NewAttribute(types.AttrMinimumAmount, amount.String())),
		)
		return nil
	})
}

// SetMinimumLevel fails when level is above the top of the level table.
func (k Keeper) SetMinimumLevel(ctx context.Context, sender string, level uint64) error {
	return ledger.Atomically(ctx, func(ctx context.Context) error {
		if _, err := k.requireOwner(ctx, sender); err != nil {
			return err
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		params.MinimumLevel = level
		if err := k.SetParams(ctx, params); err != nil {
			return err
		}
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(types.EventMinimumLevelSet, sdk.NewAttribute(types.AttrMinimumLevel, strconv.FormatUint(level, 10))),
		)
		return nil
	})
}

func (k Keeper) TransferOwnership(ctx context.Context, sender, newOwner string) error {
	return ledger.Atomically(ctx, func(ctx context.Context) error {
		cfg, err := k.requireOwner(ctx, sender)
		if err != nil {
			return err
		}
		addr, _, err := k.addrs.Canonical(newOwner, "new owner")
		if err != nil {
			return err
		}
		prev := cfg.Owner
		cfg.Owner = addr
		if err := k.Config.Set(ctx, cfg); err != nil {
			return err
		}
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
