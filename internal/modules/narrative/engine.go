package narrative

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/ballparklabs/dynasty/internal/domain"
	"github.com/ballparklabs/dynasty/internal/rng"
)

// MaxEventsPerYear caps how many events can fire in a single season. The cap
// keeps the first qualifiers in catalog order, so earlier-declared groups win
// ties when more than three would otherwise fire.
const MaxEventsPerYear = 3

// trigger pairs a catalog key with its independent gate and firing
// probability. Gates overlap freely; each qualifying event rolls on its own.
type trigger struct {
	key         string
	condition   func(domain.GameState) bool
	probability func(domain.GameState) float64
}

func fixed(p float64) func(domain.GameState) float64 {
	return func(domain.GameState) float64 { return p }
}

// triggers mirrors catalog order exactly.
var triggers = []trigger{
	{
		key:         "boomtown_expansion",
		condition:   func(gs domain.GameState) bool { return gs.CityUnemployment < 4.0 },
		probability: fixed(0.15),
	},
	{
		key:       "plant_closure",
		condition: func(gs domain.GameState) bool { return gs.CityUnemployment > 8.0 },
		probability: func(gs domain.GameState) float64 {
			// Grows with how far unemployment exceeds the threshold.
			return math.Min(0.15+(gs.CityUnemployment-8.0)*0.05, 0.50)
		},
	},
	{
		key:         "regional_recession",
		condition:   func(gs domain.GameState) bool { return gs.CityUnemployment > 10.0 },
		probability: fixed(0.25),
	},
	{
		key:         "breakout_star",
		condition:   func(gs domain.GameState) bool { return gs.WinPct > 0.55 },
		probability: fixed(0.20),
	},
	{
		key:         "clubhouse_feud",
		condition:   func(gs domain.GameState) bool { return gs.WinPct < 0.40 },
		probability: fixed(0.15),
	},
	{
		key:       "winning_tradition",
		condition: func(gs domain.GameState) bool { return gs.ConsecutiveWinningSeasons >= 3 },
		probability: func(gs domain.GameState) float64 {
			return math.Min(0.10*float64(gs.ConsecutiveWinningSeasons), 0.50)
		},
	},
	{
		key:         "downtown_festival",
		condition:   func(gs domain.GameState) bool { return gs.TeamPride > 60 },
		probability: fixed(0.30),
	},
	{
		key: "stadium_bond_passes",
		condition: func(gs domain.GameState) bool {
			return gs.StadiumQuality < 40 && gs.CashReserves > 100000
		},
		probability: fixed(0.25),
	},
	{
		key:       "infrastructure_decay",
		condition: func(gs domain.GameState) bool { return gs.StadiumQuality < 25 },
		probability: func(gs domain.GameState) float64 {
			return math.Min(0.20+(25-gs.StadiumQuality)*0.01, 0.50)
		},
	},
	{
		key:         "documentary_crew",
		condition:   func(gs domain.GameState) bool { return gs.TeamPride > 75 },
		probability: fixed(0.05),
	},
	{
		key:         "hometown_hero",
		condition:   func(gs domain.GameState) bool { return gs.WinPct > 0.60 && gs.TeamPride > 50 },
		probability: fixed(0.10),
	},
	{
		key:         "tabloid_expose",
		condition:   func(gs domain.GameState) bool { return gs.TeamPride < 30 },
		probability: fixed(0.20),
	},
}

// Engine evaluates the event catalog against a season snapshot.
type Engine struct {
	log zerolog.Logger
}

// NewEngine creates a narrative event engine.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log.With().Str("engine", "narrative").Logger()}
}

// CheckForEvents evaluates every catalog event against the game state. Each
// gate that passes rolls its own probability; unrelated events can fire in
// the same year. At most MaxEventsPerYear fire, in catalog order.
func (e *Engine) CheckForEvents(src rng.Source, state domain.GameState) []Event {
	var fired []Event
	for _, tr := range triggers {
		if len(fired) == MaxEventsPerYear {
			break
		}
		if !tr.condition(state) {
			continue
		}
		if src.Float64() >= tr.probability(state) {
			continue
		}
		ev, ok := eventByKey(tr.key)
		if !ok {
			continue
		}
		e.log.Debug().Str("event", ev.Key).Str("type", string(ev.Type)).Msg("narrative event fired")
		fired = append(fired, ev)
	}
	return fired
}

// TierEventMultiplier is a fixed per-tier scalar: higher competitive levels
// draw more media attention, so more of what happens becomes a story.
func TierEventMultiplier(tier domain.Tier) float64 {
	switch tier {
	case domain.TierLowA:
		return 0.7
	case domain.TierHighA:
		return 0.9
	case domain.TierDoubleA:
		return 1.0
	case domain.TierTripleA:
		return 1.2
	case domain.TierMLB:
		return 1.5
	default:
		return 1.0
	}
}

// CheckForEventsWithTier runs CheckForEvents and then re-rolls each selected
// event against the tier multiplier as an independent keep/drop probability.
// This is a second-stage filter, not a reweighting of the original trigger:
// an event that already fired can still be suppressed here at low tiers.
func (e *Engine) CheckForEventsWithTier(src rng.Source, state domain.GameState, tier domain.Tier) []Event {
	fired := e.CheckForEvents(src, state)
	mult := TierEventMultiplier(tier)

	kept := fired[:0]
	for _, ev := range fired {
		if src.Float64() < mult {
			kept = append(kept, ev)
		} else {
			e.log.Debug().Str("event", ev.Key).Str("tier", tier.String()).Msg("event suppressed by tier filter")
		}
	}
	return kept
}
