package types

import (
	"fmt"
)

// GenesisGame is a game together with its roster in registration order.
type GenesisGame struct {
	Game    Game          `json:"game"`
	Players []PlayerStats `json:"players"`
}

// GenesisState defines the gamefactory module's genesis state.
type GenesisState struct {
	Params Params `json:"params"`
	// Config is optional; the module authority owns the factory when unset.
	Config *FactoryConfig `json:"config,omitempty"`
	Games  []GenesisGame  `json:"games"`
	Logins []LoginStatus  `json:"logins"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Games:  []GenesisGame{},
		Logins: []LoginStatus{},
	}
}

// Validate checks params, sequential game IDs, roster order and per-player invariants.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.Config != nil && gs.Config.Owner == "" {
		return fmt.Errorf("config: owner required")
	}

	for i, g := range gs.Games {
		if g.Game.ID != uint64(i) {
			return fmt.Errorf("games: game at position %d has id %d", i, g.Game.ID)
		}
		if g.Game.Name == "" {
			return fmt.Errorf("games: game %d has no name", g.Game.ID)
		}
		if g.Game.NumPlayers != uint64(len(g.Players)) {
			return fmt.Errorf("games: game %d declares %d players, roster has %d", g.Game.ID, g.Game.NumPlayers, len(g.Players))
		}
		var sessions uint64
		seen := make(map[string]struct{}, len(g.Players))
		for j, p := range g.Players {
			if p.Index != uint64(j+1) {
				return fmt.Errorf("games: game %d player %s has index %d, want %d", g.Game.ID, p.Address, p.Index, j+1)
			}
			if _, ok := seen[p.Address]; ok {
				return fmt.Errorf("games: game %d lists player %s twice", g.Game.ID, p.Address)
			}
			seen[p.Address] = struct{}{}
			if err := p.Validate(); err != nil {
				return fmt.Errorf("games: game %d: %w", g.Game.ID, err)
			}
			sessions += p.SessionsPlayed
		}
		if sessions != g.Game.TotalSessionsPlayed {
			return fmt.Errorf("games: game %d total sessions %d, player sum %d", g.Game.ID, g.Game.TotalSessionsPlayed, sessions)
		}
	}

	seenLogins := make(map[string]struct{}, len(gs.Logins))
	for _, l := range gs.Logins {
		if l.Player == "" {
			return fmt.Errorf("logins: player required")
		}
		if _, ok := seenLogins[l.Player]; ok {
			return fmt.Errorf("logins: duplicate player %q", l.Player)
		}
		seenLogins[l.Player] = struct{}{}
	}
	return nil
}
