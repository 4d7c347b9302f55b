package types

import (
	"cosmossdk.io/math"
)

// Allowance is the amount Granter lets the module pay out of its balance.
type Allowance struct {
	Granter string   `json:"granter"`
	Amount  math.Int `json:"amount"`
}

// GenesisState defines the payment module's genesis state.
type GenesisState struct {
	Params Params `json:"params"`
	// Config is optional; withdrawals stay disabled until one is provided.
	Config     *PaymentConfig `json:"config,omitempty"`
	Allowances []Allowance    `json:"allowances,omitempty"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.Config != nil {
		if err := gs.Config.Validate(); err != nil {
			return err
		}
	}
	seen := make(map[string]struct{}, len(gs.Allowances))
	for _, a := range gs.Allowances {
		if a.Granter == "" {
			return ErrZeroAddress.Wrap("allowance granter is empty")
		}
		if _, dup := seen[a.Granter]; dup {
			return ErrInvalidRequest.Wrapf("duplicate allowance for %s", a.Granter)
		}
		seen[a.Granter] = struct{}{}
		if a.Amount.IsNil() || !a.Amount.IsPositive() {
			return ErrInvalidAmount.Wrapf("allowance for %s must be positive", a.Granter)
		}
	}
	return nil
}
