package development

import (
	"github.com/ballparklabs/dynasty/internal/domain"
	"github.com/ballparklabs/dynasty/internal/rng"
	"github.com/ballparklabs/dynasty/internal/utils"
)

const (
	retirementAgeFloor   = 35
	retirementRiskPerAge = 0.15
	declineAgeFloor      = 32
	declinePerAge        = 0.5
)

// AgingResult reports one off-season's aging outcome. Retirement is reported,
// never applied: the roster owner decides how to handle it.
type AgingResult struct {
	NewAge          int     `json:"new_age"`
	IsRetiring      bool    `json:"is_retiring"`
	DeclineModifier float64 `json:"decline_modifier"`
}

// AgePlayer advances a player one year. Retirement risk only applies above
// age 35, growing 15 points per year and clamped to certainty. The decline
// modifier is zero through age 32 and is meant for physical attributes
// maintained outside this model.
func (m *Model) AgePlayer(src rng.Source, player domain.Player) AgingResult {
	newAge := player.Age + 1

	retiring := false
	if newAge > retirementAgeFloor {
		p := utils.Clamp(float64(newAge-retirementAgeFloor)*retirementRiskPerAge, 0, 1)
		retiring = src.Float64() < p
	}

	decline := 0.0
	if newAge > declineAgeFloor {
		decline = -float64(newAge-declineAgeFloor) * declinePerAge
	}

	return AgingResult{NewAge: newAge, IsRetiring: retiring, DeclineModifier: decline}
}
