package keeper

import (
	"bytes"
	"context"

	errorsmod "cosmossdk.io/errors"

	"rewardchain/x/payment/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (s msgServer) WithdrawBatch(ctx context.Context, msg *types.MsgWithdrawBatch) (*types.MsgWithdrawBatchResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	total, err := s.Keeper.WithdrawBatch(ctx, msg.Sender, msg.Players, msg.Amounts)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawBatchResponse{Total: total}, nil
}

func (s msgServer) SetNewPaymentAddress(ctx context.Context, msg *types.MsgSetNewPaymentAddress) (*types.MsgSetNewPaymentAddressResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := s.Keeper.SetNewPaymentAddress(ctx, msg.Sender, msg.PaymentAddress); err != nil {
		return nil, err
	}
	return &types.MsgSetNewPaymentAddressResponse{}, nil
}

func (s msgServer) SetMinimumAmount(ctx context.Context, msg *types.MsgSetMinimumAmount) (*types.MsgSetMinimumAmountResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := s.Keeper.SetMinimumAmount(ctx, msg.Sender, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgSetMinimumAmountResponse{}, nil
}

func (s msgServer) SetMinimumLevel(ctx context.Context, msg *types.MsgSetMinimumLevel) (*types.MsgSetMinimumLevelResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := s.Keeper.SetMinimumLevel(ctx, msg.Sender, msg.Level); err != nil {
		return nil, err
	}
	return &types.MsgSetMinimumLevelResponse{}, nil
}

func (s msgServer) TransferOwnership(ctx context.Context, msg *types.MsgTransferOwnership) (*types.MsgTransferOwnershipResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := s.Keeper.TransferOwnership(ctx, msg.Sender, msg.NewOwner); err != nil {
		return nil, err
	}
	return &types.MsgTransferOwnershipResponse{}, nil
}

// Approve is signed by the granter itself.
func (s msgServer) Approve(ctx context.Context, msg *types.MsgApprove) (*types.MsgApproveResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := s.Keeper.Approve(ctx, msg.Granter, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgApproveResponse{}, nil
}

func (s msgServer) UpdateParams(ctx context.Context, req *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}

	signer, err := s.addressCodec.StringToBytes(req.Authority)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrAccessDenied, "invalid authority address")
	}

	if !bytes.Equal(signer, s.GetAuthority()) {
		return nil, errorsmod.Wrapf(types.ErrAccessDenied, "%s is not the module authority", req.Authority)
	}

	if err := s.SetParams(ctx, req.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
