// Package ledger holds the transaction and address helpers shared by the
// module keepers.
package ledger

import (
	"context"

	"cosmossdk.io/core/address"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Atomically runs fn against a branched store and commits only when fn
// succeeds. Events emitted on the branch reach the parent context on commit.
func Atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

// Addresses canonicalizes bech32 account addresses, reporting failures with
// the owning module's registered errors.
type Addresses struct {
	codec      address.Codec
	errZero    *errorsmod.Error
	errInvalid *errorsmod.Error
}

func NewAddresses(codec address.Codec, errZero, errInvalid *errorsmod.Error) Addresses {
	return Addresses{codec: codec, errZero: errZero, errInvalid: errInvalid}
}

// Canonical decodes addr and re-encodes it so every stored key uses the same
// spelling. Empty and all-zero addresses fail with the zero-address error.
func (a Addresses) Canonical(addr, field string) (string, sdk.AccAddress, error) {
	if addr == "" {
		return "", nil, errorsmod.Wrapf(a.errZero, "%s is empty", field)
	}
	bz, err := a.codec.StringToBytes(addr)
	if err != nil {
		return "", nil, errorsmod.Wrapf(a.errInvalid, "invalid %s address %q: %s", field, addr, err)
	}
	if isZero(bz) {
		return "", nil, errorsmod.Wrapf(a.errZero, "%s is the zero address", field)
	}
	s, err := a.codec.BytesToString(bz)
	if err != nil {
		return "", nil, err
	}
	return s, sdk.AccAddress(bz), nil
}

func isZero(bz []byte) bool {
	for _, b := range bz {
		if b != 0 {
			return false
		}
	}
	return true
}
