package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// Params holds configurable parameters for the payment module.
type Params struct {
	// MinimumAmount is the smallest amount a single withdrawal entry may request.
	MinimumAmount math.Int `json:"minimum_amount"`
	// MinimumLevel is the level a player needs before withdrawing.
	MinimumLevel uint64     `json:"minimum_level"`
	LevelTable   LevelTable `json:"level_table"`
	// MaxBatchSize bounds the number of entries in one withdrawal batch.
	MaxBatchSize uint32 `json:"max_batch_size"`
}

const (
	DefaultMinimumLevel uint64 = 1
	DefaultMaxBatchSize uint32 = 500
)

func DefaultParams() Params {
	return Params{
		MinimumAmount: math.ZeroInt(),
		MinimumLevel:  DefaultMinimumLevel,
		LevelTable:    DefaultLevelTable(),
		MaxBatchSize:  DefaultMaxBatchSize,
	}
}

// Validate performs basic validation of module parameters.
func (p Params) Validate() error {
	if p.MinimumAmount.IsNil() || p.MinimumAmount.IsNegative() {
		return ErrInvalidAmount.Wrap("minimum_amount must be non-negative")
	}
	if err := p.LevelTable.Validate(); err != nil {
		return errorsmod.Wrap(ErrInvalidRequest, err.Error())
	}
	if p.MinimumLevel > uint64(len(p.LevelTable)) {
		return errorsmod.Wrapf(ErrInvalidRequest, "minimum_level %d is above the top level %d", p.MinimumLevel, len(p.LevelTable))
	}
	if p.MaxBatchSize == 0 {
		return ErrInvalidRequest.Wrap("max_batch_size must be positive")
	}
	return nil
}
