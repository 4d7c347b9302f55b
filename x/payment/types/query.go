package types

import "cosmossdk.io/math"

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config PaymentConfig `json:"config"`
}

type QueryEligibilityRequest struct {
	Player string `json:"player"`
}

type QueryEligibilityResponse struct {
	Eligibility Eligibility `json:"eligibility"`
}

type QueryLevelRequest struct {
	TotalXp uint64 `json:"total_xp"`
}

type QueryLevelResponse struct {
	Level uint64 `json:"level"`
	// NextLevelXp is the experience needed for Level+1, zero at the top level.
	NextLevelXp uint64 `json:"next_level_xp"`
}

type QueryAllowanceRequest struct {
	Granter string `json:"granter"`
}

type QueryAllowanceResponse struct {
	Amount math.Int `json:"amount"`
}
