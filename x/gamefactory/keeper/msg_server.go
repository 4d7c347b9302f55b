package keeper

import (
	"bytes"
	"context"

	errorsmod "cosmossdk.io/errors"

	"rewardchain/x/gamefactory/types"
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

func (s msgServer) CreateNewGame(ctx context.Context, msg *types.MsgCreateNewGame) (*types.MsgCreateNewGameResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	game, err := s.Keeper.CreateNewGame(ctx, msg.Sender, msg.Name)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateNewGameResponse{GameId: game.ID, GameAddress: game.Address}, nil
}

func (s msgServer) SetAdmin(ctx context.Context, msg *types.MsgSetAdmin) (*types.MsgSetAdminResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := s.Keeper.SetAdmin(ctx, msg.Sender, msg.Admin); err != nil {
		return nil, err
	}
	return &types.MsgSetAdminResponse{}, nil
}

func (s msgServer) SetToken(ctx context.Context, msg *types.MsgSetToken) (*types.MsgSetTokenResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := s.Keeper.SetToken(ctx, msg.Sender, msg.Denom); err != nil {
		return nil, err
	}
	return &types.MsgSetTokenResponse{}, nil
}

func (s msgServer) SetPaymentManager(ctx context.Context, msg *types.MsgSetPaymentManager) (*types.MsgSetPaymentManagerResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := s.Keeper.SetPaymentManager(ctx, msg.Sender, msg.PaymentManager); err != nil {
		return nil, err
	}
	return &types.MsgSetPaymentManagerResponse{}, nil
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

func (s msgServer) UpdateAllPlayersLogin(ctx context.Context, msg *types.MsgUpdateAllPlayersLogin) (*types.MsgUpdateAllPlayersLoginResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := s.Keeper.UpdateAllPlayersLogin(ctx, msg.Sender, msg.Players, msg.Flags); err != nil {
		return nil, err
	}
	return &types.MsgUpdateAllPlayersLoginResponse{}, nil
}

func (s msgServer) AddNewPlayer(ctx context.Context, msg *types.MsgAddNewPlayer) (*types.MsgAddNewPlayerResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	idx, err := s.Keeper.AddNewPlayer(ctx, msg.GameId, msg.Sender, msg.Stats())
	if err != nil {
		return nil, err
	}
	return &types.MsgAddNewPlayerResponse{Index: idx}, nil
}

func (s msgServer) UpdateAllPlayersStats(ctx context.Context, msg *types.MsgUpdateAllPlayersStats) (*types.MsgUpdateAllPlayersStatsResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := s.Keeper.UpdateAllPlayersStats(ctx, msg.GameId, msg.Sender, msg.Players, msg.Deltas); err != nil {
		return nil, err
	}
	return &types.MsgUpdateAllPlayersStatsResponse{}, nil
}

func (s msgServer) DistributeRewards(ctx context.Context, msg *types.MsgDistributeRewards) (*types.MsgDistributeRewardsResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	dist, err := s.Keeper.DistributeRewards(ctx, msg.GameId, msg.Sender, msg.TotalAmount, msg.TopN)
	if err != nil {
		return nil, err
	}
	return &types.MsgDistributeRewardsResponse{Distribution: dist}, nil
}

func (s msgServer) ResetAllRankingScores(ctx context.Context, msg *types.MsgResetAllRankingScores) (*types.MsgResetAllRankingScoresResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	n, err := s.Keeper.ResetAllRankingScores(ctx, msg.GameId, msg.Sender)
	if err != nil {
		return nil, err
	}
	return &types.MsgResetAllRankingScoresResponse{PlayersReset: n}, nil
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
