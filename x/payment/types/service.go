package types

import "context"

// MsgServer is the payment transaction service.
type MsgServer interface {
	WithdrawBatch(context.Context, *MsgWithdrawBatch) (*MsgWithdrawBatchResponse, error)
	SetNewPaymentAddress(context.Context, *MsgSetNewPaymentAddress) (*MsgSetNewPaymentAddressResponse, error)
	SetMinimumAmount(context.Context, *MsgSetMinimumAmount) (*MsgSetMinimumAmountResponse, error)
	SetMinimumLevel(context.Context, *MsgSetMinimumLevel) (*MsgSetMinimumLevelResponse, error)
	TransferOwnership(context.Context, *MsgTransferOwnership) (*MsgTransferOwnershipResponse, error)
	Approve(context.Context, *MsgApprove) (*MsgApproveResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// QueryServer is the payment read service.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	Eligibility(context.Context, *QueryEligibilityRequest) (*QueryEligibilityResponse, error)
	Level(context.Context, *QueryLevelRequest) (*QueryLevelResponse, error)
	Allowance(context.Context, *QueryAllowanceRequest) (*QueryAllowanceResponse, error)
}
