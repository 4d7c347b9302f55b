package types

import "cosmossdk.io/math"

// PaymentConfig binds the payment manager to its owner, token and funding account.
type PaymentConfig struct {
	Owner string `json:"owner"`
	Denom string `json:"denom"`
	// PaymentAddress funds every payout.
	PaymentAddress string `json:"payment_address"`
}

// Validate requires every field to be set.
func (c PaymentConfig) Validate() error {
	switch {
	case c.Owner == "":
		return ErrZeroAddress.Wrap("owner is empty")
	case c.Denom == "":
		return ErrZeroAddress.Wrap("token denom is empty")
	case c.PaymentAddress == "":
		return ErrZeroAddress.Wrap("payment address is empty")
	}
	return nil
}

// Eligibility summarizes whether a player may withdraw right now. NextLevelXp
// is the experience needed for the next level, zero at the top of the table.
type Eligibility struct {
	Player       string   `json:"player"`
	TotalXp      uint64   `json:"total_xp"`
	Level        uint64   `json:"level"`
	MinimumLevel uint64   `json:"minimum_level"`
	NextLevelXp  uint64   `json:"next_level_xp"`
	Claimable    math.Int `json:"claimable"`
	Eligible     bool     `json:"eligible"`
}
