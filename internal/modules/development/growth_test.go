package development

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ballparklabs/dynasty/internal/domain"
	"github.com/ballparklabs/dynasty/internal/rng"
)

// stubSource replays a fixed sequence of Float64 values and a constant Intn.
type stubSource struct {
	floats []float64
	i      int
	intn   int
}

func (s *stubSource) Float64() float64 {
	if s.i < len(s.floats) {
		v := s.floats[s.i]
		s.i++
		return v
	}
	return 0.5
}

func (s *stubSource) Intn(n int) int {
	if s.intn >= n {
		return n - 1
	}
	return s.intn
}

func testModel() *Model {
	return NewModel(zerolog.Nop())
}

func TestCalculateGrowth_ReferenceScenario(t *testing.T) {
	// rating 50, potential 70, age 22: base (70-50)*0.15 = 3.0, x1.2 = 3.6;
	// coaching 0, playing time +1.5, tier fit +2 (within 10 of midpoint 55),
	// pre-variance 7.1. Even the worst variance draw (0.8x) stays above the
	// +5 cap, so the outcome is variance-independent.
	player := domain.Player{
		ID:            "p1",
		Age:           22,
		CurrentRating: 50,
		Potential:     70,
		Tier:          domain.TierDoubleA,
		Type:          domain.Hitter,
		Traits:        domain.HiddenTraits{WorkEthic: domain.WorkEthicAverage},
	}
	staff := domain.CoachingStaff{Hitting: 50, Pitching: 50, Development: 50}
	tiers := domain.TierConfigs{domain.TierDoubleA: {MinRating: 45, MaxRating: 65}}

	for _, draw := range []float64{0.0, 0.5, 0.999} {
		res, err := testModel().CalculateGrowth(&stubSource{floats: []float64{draw}}, player, staff, 140, tiers)
		require.NoError(t, err)

		assert.InDelta(t, 3.0, res.Components.BaseGrowth, 1e-9)
		assert.Equal(t, 1.2, res.Components.AgeMultiplier)
		assert.Zero(t, res.Components.Coaching)
		assert.InDelta(t, 1.5, res.Components.PlayingTime, 1e-9)
		assert.Equal(t, 2.0, res.Components.TierFit)
		assert.Zero(t, res.Components.WorkEthic)
		assert.Zero(t, res.Components.Injury)
		assert.InDelta(t, 7.1, res.Components.PreVarianceTotal, 1e-9)
		assert.Equal(t, 55, res.NewRating, "draw %v", draw)
		assert.Equal(t, 5, res.RatingChange, "draw %v", draw)
	}
}

func TestCalculateGrowth_Bounds(t *testing.T) {
	src := rng.New(42)
	model := testModel()
	tiers := domain.DefaultTierConfigs()
	staff := domain.CoachingStaff{Hitting: 80, Pitching: 20, Development: 50}

	for i := 0; i < 2000; i++ {
		player := domain.Player{
			ID:            "p",
			Age:           18 + src.Intn(25),
			CurrentRating: 20 + src.Intn(61),
			Potential:     20 + src.Intn(61),
			Tier:          domain.Tier(src.Intn(5)),
			Type:          domain.PlayerType([]domain.PlayerType{domain.Hitter, domain.Pitcher}[src.Intn(2)]),
			Traits: domain.HiddenTraits{
				WorkEthic: []domain.WorkEthic{domain.WorkEthicPoor, domain.WorkEthicAverage, domain.WorkEthicExcellent}[src.Intn(3)],
			},
			IsInjured: src.Intn(2) == 0,
		}
		games := src.Intn(160)

		res, err := model.CalculateGrowth(src, player, staff, games, tiers)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.NewRating, 20)
		assert.LessOrEqual(t, res.NewRating, 80)
		assert.GreaterOrEqual(t, res.RatingChange, -5)
		assert.LessOrEqual(t, res.RatingChange, 5)
	}
}

func TestCalculateGrowth_VarianceNeverFlipsSign(t *testing.T) {
	// A declining veteran: rating above potential, so the pre-variance total
	// is negative and must stay negative after variance.
	player := domain.Player{
		ID:            "vet",
		Age:           33,
		CurrentRating: 70,
		Potential:     55,
		Tier:          domain.TierMLB,
		Type:          domain.Pitcher,
		Traits:        domain.HiddenTraits{WorkEthic: domain.WorkEthicAverage},
	}
	staff := domain.CoachingStaff{Hitting: 50, Pitching: 50, Development: 50}
	tiers := domain.DefaultTierConfigs()

	for _, draw := range []float64{0.0, 0.25, 0.75, 0.999} {
		res, err := testModel().CalculateGrowth(&stubSource{floats: []float64{draw}}, player, staff, 70, tiers)
		require.NoError(t, err)
		assert.Negative(t, res.Components.PreVarianceTotal)
		assert.Negative(t, res.Components.FinalDelta, "draw %v", draw)
	}
}

func TestCalculateGrowth_UnknownTier(t *testing.T) {
	player := domain.Player{ID: "p", Tier: domain.TierMLB}
	_, err := testModel().CalculateGrowth(&stubSource{}, player, domain.CoachingStaff{}, 100, domain.TierConfigs{})
	require.ErrorIs(t, err, ErrUnknownTier)
}

func TestCoachingModifier(t *testing.T) {
	tests := []struct {
		name  string
		pt    domain.PlayerType
		staff domain.CoachingStaff
		want  float64
	}{
		{"all neutral", domain.Hitter, domain.CoachingStaff{Hitting: 50, Pitching: 50, Development: 50}, 0},
		{"elite hitting staff", domain.Hitter, domain.CoachingStaff{Hitting: 80, Pitching: 20, Development: 80}, 3},
		{"poor pitching staff", domain.Pitcher, domain.CoachingStaff{Hitting: 80, Pitching: 20, Development: 20}, -3},
		{"pitcher ignores hitting coach", domain.Pitcher, domain.CoachingStaff{Hitting: 80, Pitching: 50, Development: 50}, 0},
		{"split staff", domain.Hitter, domain.CoachingStaff{Hitting: 80, Pitching: 20, Development: 20}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, coachingModifier(tt.pt, tt.staff), 1e-9)
		})
	}
}

func TestPlayingTimeModifier(t *testing.T) {
	tests := []struct {
		name     string
		games    int
		expected int
		want     float64
	}{
		{"full season", 140, 140, 1.5},
		{"half season is neutral", 70, 140, 0},
		{"benched all year", 0, 140, -1.5},
		{"zero expected games disables modifier", 100, 0, 0},
		{"overage clamps at max", 160, 140, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, playingTimeModifier(tt.games, tt.expected), 1e-9)
		})
	}
}

func TestTierFitModifier(t *testing.T) {
	narrow := domain.TierConfig{MinRating: 45, MaxRating: 65} // midpoint 55
	wide := domain.TierConfig{MinRating: 40, MaxRating: 80}   // midpoint 60

	tests := []struct {
		name   string
		rating int
		cfg    domain.TierConfig
		want   float64
	}{
		{"at midpoint", 55, narrow, 2},
		{"in band near midpoint", 50, narrow, 2},
		{"edge of band is still near in a narrow band", 45, narrow, 2},
		{"in band far from midpoint", 42, wide, 1},
		{"just below band", 44, narrow, -0.2},
		{"well below band caps at full penalty", 30, narrow, -2},
		{"just above band held back at half severity", 66, narrow, -0.1},
		{"well above band caps at half penalty", 80, narrow, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tierFitModifier(tt.rating, tt.cfg), 1e-9)
		})
	}
}

func TestCalculateRosterGrowth_Independent(t *testing.T) {
	tiers := domain.DefaultTierConfigs()
	staff := domain.CoachingStaff{Hitting: 60, Pitching: 60, Development: 60}
	roster := []domain.Player{
		{ID: "a", Age: 21, CurrentRating: 40, Potential: 60, Tier: domain.TierHighA, Type: domain.Hitter, GamesPlayed: 120},
		{ID: "b", Age: 27, CurrentRating: 55, Potential: 65, Tier: domain.TierDoubleA, Type: domain.Pitcher, GamesPlayed: 130},
		{ID: "c", Age: 31, CurrentRating: 68, Potential: 70, Tier: domain.TierMLB, Type: domain.Hitter, GamesPlayed: 140},
	}

	results, err := testModel().CalculateRosterGrowth(rng.New(7), roster, staff, tiers)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, p := range roster {
		res, ok := results[p.ID]
		require.True(t, ok, "missing result for %s", p.ID)
		assert.Equal(t, p.CurrentRating, res.PreviousRating)
	}
}

func TestCalculateRosterGrowth_UnknownTierFailsFast(t *testing.T) {
	roster := []domain.Player{{ID: "a", Tier: domain.TierMLB}}
	_, err := testModel().CalculateRosterGrowth(rng.New(1), roster, domain.CoachingStaff{}, domain.TierConfigs{})
	require.ErrorIs(t, err, ErrUnknownTier)
}
