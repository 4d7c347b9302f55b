package keeper

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rewardchain/x/payment/types"
)

type queryServer struct {
	Keeper
}

var _ types.QueryServer = queryServer{}

// NewQueryServerImpl returns an implementation of the QueryServer interface
// for the provided Keeper.
func NewQueryServerImpl(k Keeper) types.QueryServer {
	return &queryServer{Keeper: k}
}

func grpcError(err error) error {
	switch {
	case errors.Is(err, types.ErrPreconditionNotMet):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, types.ErrZeroAddress), errors.Is(err, types.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func (q queryServer) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	p, err := q.GetParams(ctx)
	if err != nil {
		return nil, grpcError(err)
	}
	return &types.QueryParamsResponse{Params: p}, nil
}

func (q queryServer) Config(ctx context.Context, _ *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	cfg, err := q.GetConfig(ctx)
	if err != nil {
		return nil, grpcError(err)
	}
	return &types.QueryConfigResponse{Config: cfg}, nil
}

func (q queryServer) Eligibility(ctx context.Context, req *types.QueryEligibilityRequest) (*types.QueryEligibilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	e, err := q.Keeper.Eligibility(ctx, req.Player)
	if err != nil {
		return nil, grpcError(err)
	}
	return &types.QueryEligibilityResponse{Eligibility: e}, nil
}

func (q queryServer) Level(ctx context.Context, req *types.QueryLevelRequest) (*types.QueryLevelResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	p, err := q.GetParams(ctx)
	if err != nil {
		return nil, grpcError(err)
	}
	level := p.LevelTable.Level(req.TotalXp)
	next, _ := p.LevelTable.Threshold(level + 1)
	return &types.QueryLevelResponse{Level: level, NextLevelXp: next}, nil
}

func (q queryServer) Allowance(ctx context.Context, req *types.QueryAllowanceRequest) (*types.QueryAllowanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	amt, err := q.GetAllowance(ctx, req.Granter)
	if err != nil {
		return nil, grpcError(err)
	}
	return &types.QueryAllowanceResponse{Amount: amt}, nil
}
