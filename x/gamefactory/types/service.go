package types

import "context"

// MsgServer is the gamefactory transaction service.
type MsgServer interface {
	CreateNewGame(context.Context, *MsgCreateNewGame) (*MsgCreateNewGameResponse, error)
	SetAdmin(context.Context, *MsgSetAdmin) (*MsgSetAdminResponse, error)
	SetToken(context.Context, *MsgSetToken) (*MsgSetTokenResponse, error)
	SetPaymentManager(context.Context, *MsgSetPaymentManager) (*MsgSetPaymentManagerResponse, error)
	TransferOwnership(context.Context, *MsgTransferOwnership) (*MsgTransferOwnershipResponse, error)
	UpdateAllPlayersLogin(context.Context, *MsgUpdateAllPlayersLogin) (*MsgUpdateAllPlayersLoginResponse, error)
	AddNewPlayer(context.Context, *MsgAddNewPlayer) (*MsgAddNewPlayerResponse, error)
	UpdateAllPlayersStats(context.Context, *MsgUpdateAllPlayersStats) (*MsgUpdateAllPlayersStatsResponse, error)
	DistributeRewards(context.Context, *MsgDistributeRewards) (*MsgDistributeRewardsResponse, error)
	ResetAllRankingScores(context.Context, *MsgResetAllRankingScores) (*MsgResetAllRankingScoresResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// QueryServer is the gamefactory read service.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	NumberOfGames(context.Context, *QueryNumberOfGamesRequest) (*QueryNumberOfGamesResponse, error)
	Game(context.Context, *QueryGameRequest) (*QueryGameResponse, error)
	GameByName(context.Context, *QueryGameByNameRequest) (*QueryGameByNameResponse, error)
	PlayerStats(context.Context, *QueryPlayerStatsRequest) (*QueryPlayerStatsResponse, error)
	Players(context.Context, *QueryPlayersRequest) (*QueryPlayersResponse, error)
	Leaderboard(context.Context, *QueryLeaderboardRequest) (*QueryLeaderboardResponse, error)
	GlobalPlayerStats(context.Context, *QueryGlobalPlayerStatsRequest) (*QueryGlobalPlayerStatsResponse, error)
	GlobalSessionsPlayed(context.Context, *QueryGlobalSessionsPlayedRequest) (*QueryGlobalSessionsPlayedResponse, error)
	LoginStatus(context.Context, *QueryLoginStatusRequest) (*QueryLoginStatusResponse, error)
}
