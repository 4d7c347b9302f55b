package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// FactoryConfig holds the factory roles and the token games are bound to.
type FactoryConfig struct {
	Owner          string `json:"owner"`
	Admin          string `json:"admin,omitempty"`
	Denom          string `json:"denom,omitempty"`
	PaymentManager string `json:"payment_manager,omitempty"`
}

// Access returns the capability check for the factory and all of its games.
func (c FactoryConfig) Access() AccessControl {
	return AccessControl{Owner: c.Owner, Admin: c.Admin, PaymentManager: c.PaymentManager}
}

// Game is one competition. ID and Name never change after creation.
type Game struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Denom   string `json:"denom"`
	Creator string `json:"creator"`
	// Address is the game's reserve account; distributed rewards are held here.
	Address             string `json:"address"`
	TotalSessionsPlayed uint64 `json:"total_sessions_played"`
	NumPlayers          uint64 `json:"num_players"`
}

// PlayerStats is a player's record inside one game.
type PlayerStats struct {
	Address string `json:"address"`
	// Index is the 1-based registration position in the game roster.
	Index          uint64   `json:"index"`
	Xp             uint64   `json:"xp"`
	SessionsPlayed uint64   `json:"sessions_played"`
	RankingScore   uint64   `json:"ranking_score"`
	BestScore      uint64   `json:"best_score"`
	Claimable      math.Int `json:"claimable"`
	// Won is every amount ever credited; withdrawals never lower it.
	Won math.Int `json:"won"`
}

// Normalize fills nil amounts and lifts BestScore to RankingScore.
func (s *PlayerStats) Normalize() {
	if s.Claimable.IsNil() {
		s.Claimable = math.ZeroInt()
	}
	if s.Won.IsNil() {
		s.Won = math.ZeroInt()
	}
	if s.BestScore < s.RankingScore {
		s.BestScore = s.RankingScore
	}
}

// Validate checks the record invariants.
func (s PlayerStats) Validate() error {
	if s.Address == "" {
		return ErrZeroAddress.Wrap("player address is empty")
	}
	if s.Claimable.IsNil() || s.Claimable.IsNegative() {
		return errorsmod.Wrapf(ErrInvalidAmount, "player %s: claimable must be non-negative", s.Address)
	}
	if s.Won.IsNil() || s.Won.LT(s.Claimable) {
		return errorsmod.Wrapf(ErrInvalidAmount, "player %s: won must cover claimable", s.Address)
	}
	if s.BestScore < s.RankingScore {
		return errorsmod.Wrapf(ErrInvalidRequest, "player %s: best score %d below ranking score %d", s.Address, s.BestScore, s.RankingScore)
	}
	return nil
}

// ApplyDelta merges a batch update: counters add, scores only rise.
func (s *PlayerStats) ApplyDelta(d StatDelta) error {
	xp, ok := addUint64(s.Xp, d.Xp)
	if !ok {
		return errorsmod.Wrapf(ErrInvalidAmount, "player %s: xp overflow", s.Address)
	}
	sessions, ok := addUint64(s.SessionsPlayed, d.Sessions)
	if !ok {
		return errorsmod.Wrapf(ErrInvalidAmount, "player %s: sessions overflow", s.Address)
	}
	s.Xp = xp
	s.SessionsPlayed = sessions
	s.Credit(d.Claimable)
	if d.CandidateScore > s.RankingScore {
		s.RankingScore = d.CandidateScore
	}
	if d.CandidateScore > s.BestScore {
		s.BestScore = d.CandidateScore
	}
	return nil
}

// Credit raises both the claimable balance and the lifetime total.
func (s *PlayerStats) Credit(amount math.Int) {
	s.Normalize()
	if amount.IsNil() || amount.IsZero() {
		return
	}
	s.Claimable = s.Claimable.Add(amount)
	s.Won = s.Won.Add(amount)
}

// StatDeltaWidth is the number of values each player takes in a flat delta list.
const StatDeltaWidth = 4

// StatDelta is one player's slice of a batch update, in wire order
// (sessions, xp, claimable, candidate score).
type StatDelta struct {
	Player         string
	Sessions       uint64
	Xp             uint64
	Claimable      math.Int
	CandidateScore uint64
}

// ParseStatDeltas splits a flat delta list into per-player deltas.
func ParseStatDeltas(players []string, deltas []math.Int) ([]StatDelta, error) {
	if len(deltas) != len(players)*StatDeltaWidth {
		return nil, errorsmod.Wrapf(ErrArityMismatch, "%d players need %d deltas, got %d", len(players), len(players)*StatDeltaWidth, len(deltas))
	}
	out := make([]StatDelta, len(players))
	for i, p := range players {
		row := deltas[i*StatDeltaWidth : (i+1)*StatDeltaWidth]
		sessions, err := deltaUint64(row[0], p, "sessions")
		if err != nil {
			return nil, err
		}
		xp, err := deltaUint64(row[1], p, "xp")
		if err != nil {
			return nil, err
		}
		if row[2].IsNil() || row[2].IsNegative() {
			return nil, errorsmod.Wrapf(ErrInvalidAmount, "player %s: claimable delta must be non-negative", p)
		}
		score, err := deltaUint64(row[3], p, "score")
		if err != nil {
			return nil, err
		}
		out[i] = StatDelta{Player: p, Sessions: sessions, Xp: xp, Claimable: row[2], CandidateScore: score}
	}
	return out, nil
}

func deltaUint64(v math.Int, player, field string) (uint64, error) {
	if v.IsNil() || v.IsNegative() || !v.IsUint64() {
		return 0, errorsmod.Wrapf(ErrInvalidAmount, "player %s: %s delta %s out of range", player, field, v)
	}
	return v.Uint64(), nil
}

func addUint64(a, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum >= a
}

// GlobalPlayerStats aggregates a player's records over every game.
type GlobalPlayerStats struct {
	Player              string   `json:"player"`
	TotalXp             uint64   `json:"total_xp"`
	TotalSessionsPlayed uint64   `json:"total_sessions_played"`
	TotalClaimable      math.Int `json:"total_claimable"`
	GlobalWon           math.Int `json:"global_won"`
	GamesPlayed         uint64   `json:"games_played"`
}

// ClaimDraw records how much of a withdrawal came out of one game.
type ClaimDraw struct {
	GameID uint64   `json:"game_id"`
	Amount math.Int `json:"amount"`
}

// RewardPayout is one ranked credit of a distribution.
type RewardPayout struct {
	Rank    uint32   `json:"rank"`
	Player  string   `json:"player"`
	Percent uint32   `json:"percent"`
	Amount  math.Int `json:"amount"`
}

// Distribution summarizes a reward distribution. Remainder is the truncation
// dust that stays in the game reserve uncredited.
type Distribution struct {
	GameID    uint64         `json:"game_id"`
	Total     math.Int       `json:"total"`
	Credited  math.Int       `json:"credited"`
	Remainder math.Int       `json:"remainder"`
	Payouts   []RewardPayout `json:"payouts"`
}

// LoginStatus is a player's login flag.
type LoginStatus struct {
	Player   string `json:"player"`
	LoggedIn bool   `json:"logged_in"`
}
