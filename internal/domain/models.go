// Package domain contains the pure domain types shared by the simulation
// engines. Nothing in this package performs I/O or holds mutable state beyond
// the structs themselves; engines receive these values and return results.
package domain

import "fmt"

// Tier is one of the five ordered competitive levels a franchise and its
// players occupy. The ordering matters: promotion moves a player up exactly
// one tier at a time.
type Tier int

const (
	TierLowA Tier = iota
	TierHighA
	TierDoubleA
	TierTripleA
	TierMLB
)

// String returns the canonical tier key used in configuration and storage.
func (t Tier) String() string {
	switch t {
	case TierLowA:
		return "LOW_A"
	case TierHighA:
		return "HIGH_A"
	case TierDoubleA:
		return "DOUBLE_A"
	case TierTripleA:
		return "TRIPLE_A"
	case TierMLB:
		return "MLB"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(t))
	}
}

// ParseTier converts a canonical tier key back into a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "LOW_A":
		return TierLowA, nil
	case "HIGH_A":
		return TierHighA, nil
	case "DOUBLE_A":
		return TierDoubleA, nil
	case "TRIPLE_A":
		return TierTripleA, nil
	case "MLB":
		return TierMLB, nil
	default:
		return 0, fmt.Errorf("unknown tier %q", s)
	}
}

// Next returns the tier one level up, and false when already at the top.
func (t Tier) Next() (Tier, bool) {
	if t >= TierMLB {
		return t, false
	}
	return t + 1, true
}

// PlayerType distinguishes which coaching skill applies to a player.
type PlayerType string

const (
	Hitter  PlayerType = "HITTER"
	Pitcher PlayerType = "PITCHER"
)

// WorkEthic is a hidden trait that shifts annual growth.
type WorkEthic string

const (
	WorkEthicPoor      WorkEthic = "poor"
	WorkEthicAverage   WorkEthic = "average"
	WorkEthicExcellent WorkEthic = "excellent"
)

// HiddenTraits are scouting attributes invisible to the franchise UI but
// consumed by the development model.
type HiddenTraits struct {
	WorkEthic   WorkEthic `msgpack:"work_ethic"`
	InjuryProne bool      `msgpack:"injury_prone"`
}

// Player is a roster member. CurrentRating and Potential are on the 20-80
// scouting scale and stay inside that range at all times; the development
// model clamps rather than erroring when a formula would exceed it.
type Player struct {
	ID            string       `msgpack:"id"`
	Name          string       `msgpack:"name"`
	Age           int          `msgpack:"age"`
	CurrentRating int          `msgpack:"current_rating"`
	Potential     int          `msgpack:"potential"`
	Tier          Tier         `msgpack:"tier"`
	Type          PlayerType   `msgpack:"type"`
	Traits        HiddenTraits `msgpack:"traits"`
	Morale        int          `msgpack:"morale"`
	IsInjured     bool         `msgpack:"is_injured"`
	GamesPlayed   int          `msgpack:"games_played"`
	YearsAtTier   int          `msgpack:"years_at_tier"`
}

// TierConfig is the appropriate skill band for one competitive level.
type TierConfig struct {
	MinRating int
	MaxRating int
}

// Midpoint returns the center of the tier's rating band.
func (c TierConfig) Midpoint() float64 {
	return float64(c.MinRating+c.MaxRating) / 2
}

// TierConfigs maps each tier to its rating band. Read-only to the engines.
type TierConfigs map[Tier]TierConfig

// DefaultTierConfigs returns the standard band table used when the caller
// does not supply its own.
func DefaultTierConfigs() TierConfigs {
	return TierConfigs{
		TierLowA:    {MinRating: 20, MaxRating: 40},
		TierHighA:   {MinRating: 30, MaxRating: 50},
		TierDoubleA: {MinRating: 45, MaxRating: 65},
		TierTripleA: {MinRating: 55, MaxRating: 75},
		TierMLB:     {MinRating: 60, MaxRating: 80},
	}
}

// CoachingStaff holds the three staff skill scores, each on the 20-80 scale.
type CoachingStaff struct {
	Hitting     int
	Pitching    int
	Development int
}

// AITeam defines a synthetic opponent used when generating standings.
type AITeam struct {
	ID                 string
	Name               string
	BaseStrength       float64 // 0-100
	VarianceMultiplier float64 // 0 = fully deterministic record
}

// GameState is the season snapshot the narrative engine evaluates. The
// orchestrator owns these fields; the engine only reads them and reports
// aggregated effects back.
type GameState struct {
	WinPct                    float64
	TeamPride                 float64 // 0-100
	CityUnemployment          float64 // percentage points
	CityPopulation            float64
	StadiumQuality            float64 // 10-100
	CashReserves              float64
	ConsecutiveWinningSeasons int
}
