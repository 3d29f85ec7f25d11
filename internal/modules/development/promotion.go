package development

import (
	"fmt"

	"github.com/ballparklabs/dynasty/internal/domain"
)

// Readiness thresholds for promotion to the next tier.
const (
	promotionRatingMargin = 10
	promotionMinYears     = 1
	promotionMinMorale    = 40
	promotionVeteranAge   = 23
)

// ReadinessReport is the advisory result of a promotion check. It never
// mutates the player; the orchestrator decides whether to act on it.
type ReadinessReport struct {
	IsReady bool     `json:"is_ready"`
	Reasons []string `json:"reasons"`
	Risks   []string `json:"risks"`
}

// CheckPromotionReadiness evaluates whether a player is ready for the next
// tier. All four checks must hold; each contributes a human-readable reason
// when satisfied or a risk when not. previousYearRating may be nil when no
// prior season exists, in which case the improvement check falls back to the
// age criterion alone.
func (m *Model) CheckPromotionReadiness(player domain.Player, nextTier domain.Tier, tiers domain.TierConfigs, previousYearRating *int) (ReadinessReport, error) {
	cfg, ok := tiers[nextTier]
	if !ok {
		return ReadinessReport{}, fmt.Errorf("next tier %s: %w", nextTier, ErrUnknownTier)
	}

	report := ReadinessReport{IsReady: true}
	pass := func(reason string) { report.Reasons = append(report.Reasons, reason) }
	fail := func(risk string) {
		report.IsReady = false
		report.Risks = append(report.Risks, risk)
	}

	required := cfg.MinRating + promotionRatingMargin
	if player.CurrentRating >= required {
		pass(fmt.Sprintf("rating %d clears the %s floor of %d with room to spare", player.CurrentRating, nextTier, required))
	} else {
		fail(fmt.Sprintf("rating %d is below the %d needed to hold their own at %s", player.CurrentRating, required, nextTier))
	}

	if player.YearsAtTier >= promotionMinYears {
		pass(fmt.Sprintf("has %d full season(s) at the current level", player.YearsAtTier))
	} else {
		fail("has not finished a full season at the current level")
	}

	if player.Morale > promotionMinMorale {
		pass(fmt.Sprintf("morale %d is healthy", player.Morale))
	} else {
		fail(fmt.Sprintf("morale %d is too low to absorb a tougher level", player.Morale))
	}

	improved := previousYearRating != nil && player.CurrentRating > *previousYearRating
	switch {
	case improved:
		pass(fmt.Sprintf("rating improved from %d last season", *previousYearRating))
	case player.Age > promotionVeteranAge:
		pass(fmt.Sprintf("at age %d there is nothing left to prove at this level", player.Age))
	default:
		fail("still young and has not shown year-over-year improvement")
	}

	return report, nil
}

// TimingEffect is the fixed confidence/morale/potential delta applied when a
// promotion lands early, late, or on time.
type TimingEffect struct {
	Confidence int `json:"confidence"`
	Morale     int `json:"morale"`
	Potential  int `json:"potential"`
}

// EarlyPromotionEffect models rushing a player: confidence and morale take a
// hit, and the potential loss is permanent ceiling damage.
func EarlyPromotionEffect() TimingEffect {
	return TimingEffect{Confidence: -10, Morale: -15, Potential: -5}
}

// LatePromotionEffect models leaving a player to stagnate below their level.
func LatePromotionEffect() TimingEffect {
	return TimingEffect{Confidence: -5, Morale: -10, Potential: 0}
}

// IdealPromotionEffect models a promotion at exactly the right moment.
func IdealPromotionEffect() TimingEffect {
	return TimingEffect{Confidence: 10, Morale: 15, Potential: 0}
}
