package development

import (
	"gonum.org/v1/gonum/stat"

	"github.com/ballparklabs/dynasty/internal/domain"
)

// RosterSummary aggregates roster-wide statistics for reporting.
type RosterSummary struct {
	Players       int     `json:"players"`
	MeanRating    float64 `json:"mean_rating"`
	StdDevRating  float64 `json:"std_dev_rating"`
	MeanAge       float64 `json:"mean_age"`
	MeanPotential float64 `json:"mean_potential"`
}

// SummarizeRoster computes mean/spread statistics over a roster. An empty
// roster yields the zero summary.
func SummarizeRoster(roster []domain.Player) RosterSummary {
	if len(roster) == 0 {
		return RosterSummary{}
	}

	ratings := make([]float64, len(roster))
	ages := make([]float64, len(roster))
	potentials := make([]float64, len(roster))
	for i, p := range roster {
		ratings[i] = float64(p.CurrentRating)
		ages[i] = float64(p.Age)
		potentials[i] = float64(p.Potential)
	}

	summary := RosterSummary{
		Players:       len(roster),
		MeanRating:    stat.Mean(ratings, nil),
		MeanAge:       stat.Mean(ages, nil),
		MeanPotential: stat.Mean(potentials, nil),
	}
	if len(roster) > 1 {
		summary.StdDevRating = stat.StdDev(ratings, nil)
	}
	return summary
}
