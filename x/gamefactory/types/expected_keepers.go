package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

//go:generate go tool mockgen -source=expected_keepers.go -package testutil -destination ../testutil/expected_keepers_mocks.go

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}
