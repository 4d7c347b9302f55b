package types

import errorsmod "cosmossdk.io/errors"

// Params holds configurable parameters for the gamefactory module.
type Params struct {
	RewardSchedules RewardSchedules `json:"reward_schedules"`
	// MaxBatchSize bounds the number of players touched by one batch message.
	MaxBatchSize uint32 `json:"max_batch_size"`
}

const DefaultMaxBatchSize uint32 = 500

func DefaultParams() Params {
	return Params{
		RewardSchedules: DefaultRewardSchedules(),
		MaxBatchSize:    DefaultMaxBatchSize,
	}
}

// Validate performs basic validation of module parameters.
func (p Params) Validate() error {
	if err := p.RewardSchedules.Validate(); err != nil {
		return errorsmod.Wrap(ErrInvalidRequest, err.Error())
	}
	if p.MaxBatchSize == 0 {
		return ErrInvalidRequest.Wrap("max_batch_size must be positive")
	}
	return nil
}
