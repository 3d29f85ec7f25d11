package narrative

import (
	"github.com/ballparklabs/dynasty/internal/domain"
	"github.com/ballparklabs/dynasty/internal/utils"
)

// Effect clamping bounds.
const (
	prideMin           = 0
	prideMax           = 100
	populationFloor    = 1000
	stadiumQualityMin  = 10
	stadiumQualityMax  = 100
)

// CombineModifiers folds the multiplicative modifier values for key across
// the event list. Events without the key contribute the neutral 1.0, so the
// fold is total, associative, and order-independent.
func CombineModifiers(events []Event, key EffectKey) float64 {
	product := 1.0
	for _, ev := range events {
		if v, ok := ev.Modifiers[key]; ok {
			product *= v
		}
	}
	return product
}

// SumChanges folds the additive delta values for key across the event list,
// with neutral 0 for events that do not touch the key.
func SumChanges(events []Event, key EffectKey) float64 {
	sum := 0.0
	for _, ev := range events {
		if v, ok := ev.Deltas[key]; ok {
			sum += v
		}
	}
	return sum
}

// EffectSummary is the aggregated outcome of a year's fired events. Pride,
// population, and stadium quality come back pre-clamped; maintenance cost and
// morale change are raw for the caller to apply against its own bounds.
type EffectSummary struct {
	AttendanceModifier  float64 `json:"attendance_modifier"`
	RevenueModifier     float64 `json:"revenue_modifier"`
	MerchandiseModifier float64 `json:"merchandise_modifier"`

	PrideDelta      float64 `json:"pride_delta"`
	PopulationDelta float64 `json:"population_delta"`
	StadiumDelta    float64 `json:"stadium_delta"`

	NewPride          float64 `json:"new_pride"`
	NewPopulation     float64 `json:"new_population"`
	NewStadiumQuality float64 `json:"new_stadium_quality"`

	MaintenanceCost float64 `json:"maintenance_cost"`
	MoraleChange    float64 `json:"morale_change"`
}

// ApplyEventEffects aggregates all event modifiers and deltas against the
// supplied state. With no events it is the identity: all modifiers 1.0, all
// deltas 0, and the clamped fields equal to their (clamped) inputs.
func ApplyEventEffects(state domain.GameState, events []Event) EffectSummary {
	summary := EffectSummary{
		AttendanceModifier:  CombineModifiers(events, EffectAttendance),
		RevenueModifier:     CombineModifiers(events, EffectRevenue),
		MerchandiseModifier: CombineModifiers(events, EffectMerchandise),
		PrideDelta:          SumChanges(events, EffectPride),
		PopulationDelta:     SumChanges(events, EffectPopulation),
		StadiumDelta:        SumChanges(events, EffectStadiumQuality),
		MaintenanceCost:     SumChanges(events, EffectMaintenanceCost),
		MoraleChange:        SumChanges(events, EffectMorale),
	}

	summary.NewPride = utils.Clamp(state.TeamPride+summary.PrideDelta, prideMin, prideMax)
	summary.NewStadiumQuality = utils.Clamp(state.StadiumQuality+summary.StadiumDelta, stadiumQualityMin, stadiumQualityMax)

	summary.NewPopulation = state.CityPopulation + summary.PopulationDelta
	if summary.NewPopulation < populationFloor {
		summary.NewPopulation = populationFloor
	}

	return summary
}
