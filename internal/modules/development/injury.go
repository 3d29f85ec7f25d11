package development

import (
	"github.com/ballparklabs/dynasty/internal/domain"
	"github.com/ballparklabs/dynasty/internal/rng"
)

const (
	injuryChance  = 0.20
	injuryMinLost = 30
	injuryMaxLost = 60
)

// InjuryResult reports the outcome of one season's injury roll.
type InjuryResult struct {
	IsInjured bool `json:"is_injured"`
	GamesLost int  `json:"games_lost"`
}

// SimulateInjury rolls a season injury. Only injury-prone players are at
// risk: 20% per season, losing a uniform 30-60 games when it hits.
func (m *Model) SimulateInjury(src rng.Source, player domain.Player) InjuryResult {
	if !player.Traits.InjuryProne {
		return InjuryResult{}
	}
	if src.Float64() >= injuryChance {
		return InjuryResult{}
	}
	lost := rng.IntBetween(src, injuryMinLost, injuryMaxLost)
	m.log.Debug().Str("player_id", player.ID).Int("games_lost", lost).Msg("injury rolled")
	return InjuryResult{IsInjured: true, GamesLost: lost}
}
