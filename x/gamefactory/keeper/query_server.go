package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rewardchain/x/gamefactory/types"
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

// grpcError maps module errors onto gRPC status codes.
func grpcError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrOutOfBounds):
		return status.Error(codes.NotFound, err.Error())
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

func (q queryServer) NumberOfGames(ctx context.Context, _ *types.QueryNumberOfGamesRequest) (*types.QueryNumberOfGamesResponse, error) {
	n, err := q.GetNumberOfGames(ctx)
	if err != nil {
		return nil, grpcError(err)
	}
	return &types.QueryNumberOfGamesResponse{Count: n}, nil
}

func (q queryServer) Game(ctx context.Context, req *types.QueryGameRequest) (*types.QueryGameResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	g, err := q.GetGamePerIndex(ctx, req.GameId)
	if err != nil {
		return nil, grpcError(err)
	}
	return &types.QueryGameResponse{Game: g}, nil
}

func (q queryServer) GameByName(ctx context.Context, req *types.QueryGameByNameRequest) (*types.QueryGameByNameResponse, error) {
	if req == nil || req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	id, err := q.GetGameID(ctx, req.Name)
	if err != nil {
		return nil, grpcError(err)
	}
	g, err := q.GetGame(ctx, id)
	if err != nil {
		return nil, grpcError(err)
	}
	return &types.QueryGameByNameResponse{Game: g}, nil
}

func (q queryServer) PlayerStats(ctx context.Context, req *types.QueryPlayerStatsRequest) (*types.QueryPlayerStatsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	stats, err := q.GetPlayerStats(ctx, req.GameId, req.Player)
	if err != nil {
		return nil, grpcError(err)
	}
	return &types.QueryPlayerStatsResponse{Stats: stats}, nil
}

// Players lists a game's roster in registration order.
func (q queryServer) Players(ctx context.Context, req *types.QueryPlayersRequest) (*types.QueryPlayersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if _, err := q.GetGame(ctx, req.GameId); err != nil {
		return nil, grpcError(err)
	}
	players, pageRes, err := query.CollectionPaginate(
		ctx,
		q.Roster,
		req.Pagination,
		func(_ collections.Pair[uint64, uint64], player string) (types.PlayerStats, error) {
			return q.Keeper.Players.Get(ctx, collections.Join(req.GameId, player))
		},
		query.WithCollectionPaginationPairPrefix[uint64, uint64](req.GameId),
	)
	if err != nil {
		return nil, status.Error(codes.Internal, errorsmod.Wrap(err, "paginate roster").Error())
	}
	return &types.QueryPlayersResponse{Players: players, Pagination: pageRes}, nil
}

func (q queryServer) Leaderboard(ctx context.Context, req *types.QueryLeaderboardRequest) (*types.QueryLeaderboardResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	entries, err := q.Keeper.Leaderboard(ctx, req.GameId, req.Limit)
	if err != nil {
		return nil, grpcError(err)
	}
	return &types.QueryLeaderboardResponse{Entries: entries}, nil
}

func (q queryServer) GlobalPlayerStats(ctx context.Context, req *types.QueryGlobalPlayerStatsRequest) (*types.QueryGlobalPlayerStatsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	stats, err := q.GetGlobalPlayerStats(ctx, req.Player)
	if err != nil {
		return nil, grpcError(err)
	}
	return &types.QueryGlobalPlayerStatsResponse{Stats: stats}, nil
}

func (q queryServer) GlobalSessionsPlayed(ctx context.Context, _ *types.QueryGlobalSessionsPlayedRequest) (*types.QueryGlobalSessionsPlayedResponse, error) {
	total, err := q.GetGlobalSessionsPlayed(ctx)
	if err != nil {
		return nil, grpcError(err)
	}
	return &types.QueryGlobalSessionsPlayedResponse{Total: total}, nil
}

func (q queryServer) LoginStatus(ctx context.Context, req *types.QueryLoginStatusRequest) (*types.QueryLoginStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	s, err := q.GetLoginStatus(ctx, req.Player)
	if err != nil {
		return nil, grpcError(err)
	}
	return &types.QueryLoginStatusResponse{Status: s}, nil
}
