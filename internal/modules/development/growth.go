package development

import (
	"fmt"
	"math"

	"github.com/ballparklabs/dynasty/internal/domain"
	"github.com/ballparklabs/dynasty/internal/rng"
	"github.com/ballparklabs/dynasty/internal/utils"
)

// Growth formula constants. Each modifier is independently bounded so the
// component breakdown stays auditable.
const (
	baseGrowthRate = 0.15

	youngAgeCutoff     = 24
	oldAgeCutoff       = 28
	youngAgeMultiplier = 1.2
	oldAgeMultiplier   = 0.7

	coachingSkillNeutral = 50.0
	coachingPointsPer    = 0.1 // skill 20 -> -3, 50 -> 0, 80 -> +3
	maxCoachingModifier  = 3.0

	maxPlayingTimeModifier = 1.5

	tierFitNearMidpoint   = 10.0
	tierFitInBandNear     = 2.0
	tierFitInBandFar      = 1.0
	tierFitBelowPenalty   = -2.0
	tierFitAbovePenalty   = -1.0 // held back is half as damaging as demotion-worthy
	tierFitPenaltyGapSpan = 10.0

	workEthicSwing = 2.0
	injuryPenalty  = -3.0

	varianceSpan = 0.2 // +/-20% applied to the absolute pre-variance total

	maxAnnualDelta = 5.0
	minRating      = 20
	maxRating      = 80
)

// GrowthComponents is the named breakdown of one annual growth calculation.
type GrowthComponents struct {
	BaseGrowth       float64 `json:"base_growth"`
	AgeMultiplier    float64 `json:"age_multiplier"`
	Coaching         float64 `json:"coaching"`
	PlayingTime      float64 `json:"playing_time"`
	TierFit          float64 `json:"tier_fit"`
	WorkEthic        float64 `json:"work_ethic"`
	Injury           float64 `json:"injury"`
	PreVarianceTotal float64 `json:"pre_variance_total"`
	Variance         float64 `json:"variance"` // multiplier applied to the absolute total
	FinalDelta       float64 `json:"final_delta"`
}

// GrowthResult reports one player's annual rating change.
type GrowthResult struct {
	PlayerID       string           `json:"player_id"`
	PreviousRating int              `json:"previous_rating"`
	NewRating      int              `json:"new_rating"`
	RatingChange   int              `json:"rating_change"`
	Components     GrowthComponents `json:"components"`
}

// CalculateGrowth computes one season's rating delta for a player. The
// composition is strictly ordered: base growth scaled by age, then the five
// additive modifiers, then bounded random variance on the absolute total.
// Variance never flips the direction of growth; the final delta is clamped to
// [-5, +5] and the new rating to [20, 80].
func (m *Model) CalculateGrowth(src rng.Source, player domain.Player, staff domain.CoachingStaff, gamesPlayed int, tiers domain.TierConfigs) (GrowthResult, error) {
	cfg, ok := tiers[player.Tier]
	if !ok {
		return GrowthResult{}, fmt.Errorf("player %s tier %s: %w", player.ID, player.Tier, ErrUnknownTier)
	}

	base := float64(player.Potential-player.CurrentRating) * baseGrowthRate
	ageMult := ageMultiplier(player.Age)
	coaching := coachingModifier(player.Type, staff)
	playingTime := playingTimeModifier(gamesPlayed, m.expectedGames)
	tierFit := tierFitModifier(player.CurrentRating, cfg)
	ethic := workEthicModifier(player.Traits.WorkEthic)
	injury := 0.0
	if player.IsInjured {
		injury = injuryPenalty
	}

	total := base*ageMult + coaching + playingTime + tierFit + ethic + injury

	variance := 1 + (src.Float64()*2-1)*varianceSpan
	final := math.Copysign(math.Abs(total)*variance, total)
	final = utils.Clamp(final, -maxAnnualDelta, maxAnnualDelta)

	newRating := utils.ClampInt(utils.RoundToInt(float64(player.CurrentRating)+final), minRating, maxRating)

	return GrowthResult{
		PlayerID:       player.ID,
		PreviousRating: player.CurrentRating,
		NewRating:      newRating,
		RatingChange:   newRating - player.CurrentRating,
		Components: GrowthComponents{
			BaseGrowth:       base,
			AgeMultiplier:    ageMult,
			Coaching:         coaching,
			PlayingTime:      playingTime,
			TierFit:          tierFit,
			WorkEthic:        ethic,
			Injury:           injury,
			PreVarianceTotal: total,
			Variance:         variance,
			FinalDelta:       final,
		},
	}, nil
}

// CalculateRosterGrowth applies CalculateGrowth independently to every roster
// player, using each player's own games-played count. There is no
// cross-player interaction; results are keyed by player id.
func (m *Model) CalculateRosterGrowth(src rng.Source, roster []domain.Player, staff domain.CoachingStaff, tiers domain.TierConfigs) (map[string]GrowthResult, error) {
	results := make(map[string]GrowthResult, len(roster))
	for _, p := range roster {
		res, err := m.CalculateGrowth(src, p, staff, p.GamesPlayed, tiers)
		if err != nil {
			return nil, err
		}
		results[p.ID] = res
	}
	m.log.Debug().Int("players", len(roster)).Msg("roster growth calculated")
	return results, nil
}

func ageMultiplier(age int) float64 {
	switch {
	case age < youngAgeCutoff:
		return youngAgeMultiplier
	case age > oldAgeCutoff:
		return oldAgeMultiplier
	default:
		return 1.0
	}
}

// coachingModifier averages the position-relevant coach with the development
// coordinator (each weighted 0.5) and maps the 20-80 skill scale linearly to
// [-3, +3].
func coachingModifier(pt domain.PlayerType, staff domain.CoachingStaff) float64 {
	relevant := float64(staff.Hitting)
	if pt == domain.Pitcher {
		relevant = float64(staff.Pitching)
	}
	avg := relevant*0.5 + float64(staff.Development)*0.5
	mod := (avg - coachingSkillNeutral) * coachingPointsPer
	return utils.Clamp(mod, -maxCoachingModifier, maxCoachingModifier)
}

// playingTimeModifier rewards regular playing time and penalizes bench time,
// scaled to [-1.5, +1.5]. A zero expected-games count disables the modifier.
func playingTimeModifier(gamesPlayed, expectedGames int) float64 {
	if expectedGames == 0 {
		return 0
	}
	share := float64(gamesPlayed) / float64(expectedGames)
	mod := (share - 0.5) * 2 * maxPlayingTimeModifier
	return utils.Clamp(mod, -maxPlayingTimeModifier, maxPlayingTimeModifier)
}

// tierFitModifier scores how appropriate the player's current level is. In
// band and near the midpoint is ideal; below the band means the player is
// demotion-worthy, above it means they are being held back at half severity.
// Penalties scale with the gap and max out once it reaches 10 points.
func tierFitModifier(rating int, cfg domain.TierConfig) float64 {
	r := float64(rating)
	switch {
	case rating >= cfg.MinRating && rating <= cfg.MaxRating:
		if math.Abs(r-cfg.Midpoint()) <= tierFitNearMidpoint {
			return tierFitInBandNear
		}
		return tierFitInBandFar
	case rating < cfg.MinRating:
		gap := math.Min(float64(cfg.MinRating)-r, tierFitPenaltyGapSpan)
		return tierFitBelowPenalty * gap / tierFitPenaltyGapSpan
	default:
		gap := math.Min(r-float64(cfg.MaxRating), tierFitPenaltyGapSpan)
		return tierFitAbovePenalty * gap / tierFitPenaltyGapSpan
	}
}

func workEthicModifier(we domain.WorkEthic) float64 {
	switch we {
	case domain.WorkEthicPoor:
		return -workEthicSwing
	case domain.WorkEthicExcellent:
		return workEthicSwing
	default:
		return 0
	}
}
