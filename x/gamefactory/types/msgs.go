package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

type MsgCreateNewGame struct {
	Sender string `json:"sender"`
	Name   string `json:"name"`
}

type MsgCreateNewGameResponse struct {
	GameId      uint64 `json:"game_id"`
	GameAddress string `json:"game_address"`
}

func (m MsgCreateNewGame) ValidateBasic() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrInvalidRequest.Wrap("game name is required")
	}
	return nil
}

type MsgSetAdmin struct {
	Sender string `json:"sender"`
	Admin  string `json:"admin"`
}

type MsgSetAdminResponse struct{}

type MsgSetToken struct {
	Sender string `json:"sender"`
	Denom  string `json:"denom"`
}

type MsgSetTokenResponse struct{}

type MsgSetPaymentManager struct {
	Sender         string `json:"sender"`
	PaymentManager string `json:"payment_manager"`
}

type MsgSetPaymentManagerResponse struct{}

type MsgTransferOwnership struct {
	Sender   string `json:"sender"`
	NewOwner string `json:"new_owner"`
}

type MsgTransferOwnershipResponse struct{}

type MsgUpdateAllPlayersLogin struct {
	Sender  string   `json:"sender"`
	Players []string `json:"players"`
	Flags   []bool   `json:"flags"`
}

type MsgUpdateAllPlayersLoginResponse struct{}

func (m MsgUpdateAllPlayersLogin) ValidateBasic() error {
	if len(m.Players) != len(m.Flags) {
		return errorsmod.Wrapf(ErrArityMismatch, "%d players, %d flags", len(m.Players), len(m.Flags))
	}
	return nil
}

type MsgAddNewPlayer struct {
	Sender         string   `json:"sender"`
	GameId         uint64   `json:"game_id"`
	Player         string   `json:"player"`
	Xp             uint64   `json:"xp"`
	SessionsPlayed uint64   `json:"sessions_played"`
	Claimable      math.Int `json:"claimable"`
	RankingScore   uint64   `json:"ranking_score"`
	BestScore      uint64   `json:"best_score"`
}

type MsgAddNewPlayerResponse struct {
	Index uint64 `json:"index"`
}

func (m MsgAddNewPlayer) ValidateBasic() error {
	if strings.TrimSpace(m.Player) == "" {
		return ErrZeroAddress.Wrap("player")
	}
	if !m.Claimable.IsNil() && m.Claimable.IsNegative() {
		return ErrInvalidAmount.Wrap("claimable must be non-negative")
	}
	return nil
}

// Stats converts the message into the initial player record.
func (m MsgAddNewPlayer) Stats() PlayerStats {
	return PlayerStats{
		Address:        m.Player,
		Xp:             m.Xp,
		SessionsPlayed: m.SessionsPlayed,
		Claimable:      m.Claimable,
		RankingScore:   m.RankingScore,
		BestScore:      m.BestScore,
	}
}

// MsgUpdateAllPlayersStats carries StatDeltaWidth deltas per player, in player order.
type MsgUpdateAllPlayersStats struct {
	Sender  string     `json:"sender"`
	GameId  uint64     `json:"game_id"`
	Players []string   `json:"players"`
	Deltas  []math.Int `json:"deltas"`
}

type MsgUpdateAllPlayersStatsResponse struct{}

func (m MsgUpdateAllPlayersStats) ValidateBasic() error {
	_, err := ParseStatDeltas(m.Players, m.Deltas)
	return err
}

type MsgDistributeRewards struct {
	Sender      string   `json:"sender"`
	GameId      uint64   `json:"game_id"`
	TotalAmount math.Int `json:"total_amount"`
	TopN        uint32   `json:"top_n"`
}

type MsgDistributeRewardsResponse struct {
	Distribution Distribution `json:"distribution"`
}

func (m MsgDistributeRewards) ValidateBasic() error {
	if m.TotalAmount.IsNil() || !m.TotalAmount.IsPositive() {
		return ErrInvalidAmount.Wrap("total amount must be positive")
	}
	if m.TopN == 0 {
		return ErrInvalidTierSize.Wrap("tier size must be positive")
	}
	return nil
}

type MsgResetAllRankingScores struct {
	Sender string `json:"sender"`
	GameId uint64 `json:"game_id"`
}

type MsgResetAllRankingScoresResponse struct {
	PlayersReset uint64 `json:"players_reset"`
}

// MsgUpdateParams is gated by the module authority.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}
