package types

import (
	query "github.com/cosmos/cosmos-sdk/types/query"
)

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config FactoryConfig `json:"config"`
}

type QueryNumberOfGamesRequest struct{}

type QueryNumberOfGamesResponse struct {
	Count uint64 `json:"count"`
}

type QueryGameRequest struct {
	GameId uint64 `json:"game_id"`
}

type QueryGameResponse struct {
	Game Game `json:"game"`
}

type QueryGameByNameRequest struct {
	Name string `json:"name"`
}

type QueryGameByNameResponse struct {
	Game Game `json:"game"`
}

type QueryPlayerStatsRequest struct {
	GameId uint64 `json:"game_id"`
	Player string `json:"player"`
}

type QueryPlayerStatsResponse struct {
	Stats PlayerStats `json:"stats"`
}

type QueryPlayersRequest struct {
	GameId     uint64             `json:"game_id"`
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryPlayersResponse struct {
	Players    []PlayerStats       `json:"players"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

type QueryLeaderboardRequest struct {
	GameId uint64 `json:"game_id"`
	Limit  uint32 `json:"limit"`
}

type QueryLeaderboardResponse struct {
	Entries []PlayerStats `json:"entries"`
}

type QueryGlobalPlayerStatsRequest struct {
	Player string `json:"player"`
}

type QueryGlobalPlayerStatsResponse struct {
	Stats GlobalPlayerStats `json:"stats"`
}

type QueryGlobalSessionsPlayedRequest struct{}

type QueryGlobalSessionsPlayedResponse struct {
	Total uint64 `json:"total"`
}

type QueryLoginStatusRequest struct {
	Player string `json:"player"`
}

type QueryLoginStatusResponse struct {
	// Status is 1 when logged in, 0 otherwise.
	Status uint32 `json:"status"`
}
