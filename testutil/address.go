package testutil

import (
	"cosmossdk.io/core/address"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AddressCodec returns the bech32 codec used by the test keepers.
func AddressCodec() address.Codec {
	return addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
}

// AccAddress derives a stable 20-byte address from a readable name.
func AccAddress(name string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz)
}

// Addr returns the bech32 form of AccAddress(name).
func Addr(name string) string {
	s, err := AddressCodec().BytesToString(AccAddress(name))
	if err != nil {
		panic(err)
	}
	return s
}
