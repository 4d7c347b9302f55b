package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// MsgWithdrawBatch pays Amounts[i] to Players[i] out of their claimable balances.
type MsgWithdrawBatch struct {
	Sender  string     `json:"sender"`
	Players []string   `json:"players"`
	Amounts []math.Int `json:"amounts"`
}

type MsgWithdrawBatchResponse struct {
	Total math.Int `json:"total"`
}

func (m MsgWithdrawBatch) ValidateBasic() error {
	if len(m.Players) != len(m.Amounts) {
		return errorsmod.Wrapf(ErrArityMismatch, "%d players, %d amounts", len(m.Players), len(m.Amounts))
	}
	return nil
}

type MsgSetNewPaymentAddress struct {
	Sender         string `json:"sender"`
	PaymentAddress string `json:"payment_address"`
}

type MsgSetNewPaymentAddressResponse struct{}

type MsgSetMinimumAmount struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

type MsgSetMinimumAmountResponse struct{}

type MsgSetMinimumLevel struct {
	Sender string `json:"sender"`
	Level  uint64 `json:"level"`
}

type MsgSetMinimumLevelResponse struct{}

type MsgTransferOwnership struct {
	Sender   string `json:"sender"`
	NewOwner string `json:"new_owner"`
}

type MsgTransferOwnershipResponse struct{}

// MsgApprove is signed by a funding account and sets how much the module may
// pay out of it. A zero amount revokes the allowance.
type MsgApprove struct {
	Granter string   `json:"granter"`
	Amount  math.Int `json:"amount"`
}

type MsgApproveResponse struct{}

// MsgUpdateParams is gated by the module authority.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}
