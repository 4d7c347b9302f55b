package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gftypes "rewardchain/x/gamefactory/types"
)

//go:generate go tool mockgen -source=expected_keepers.go -package testutil -destination ../testutil/expected_keepers_mocks.go

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// GameFactoryKeeper is the read and draw surface the payment module needs
// from the game factory.
type GameFactoryKeeper interface {
	GetGlobalPlayerStats(ctx context.Context, player string) (gftypes.GlobalPlayerStats, error)
	DrawClaimable(ctx context.Context, caller, player string, amount math.Int) ([]gftypes.ClaimDraw, error)
}
