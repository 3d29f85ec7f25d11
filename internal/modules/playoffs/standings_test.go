package playoffs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ballparklabs/dynasty/internal/domain"
	"github.com/ballparklabs/dynasty/internal/rng"
)

func rivalTeams() []domain.AITeam {
	return []domain.AITeam{
		{ID: "a1", Name: "Captains", BaseStrength: 80, VarianceMultiplier: 1},
		{ID: "a2", Name: "Miners", BaseStrength: 50, VarianceMultiplier: 1},
		{ID: "a3", Name: "Grays", BaseStrength: 20, VarianceMultiplier: 1},
	}
}

func playerRecord() Standing {
	return Standing{TeamID: "player", Name: "Pilots", Wins: 80, Losses: 60, WinPct: 80.0 / 140}
}

func TestGenerateStandings_Shape(t *testing.T) {
	sim := testSim()

	for seed := int64(1); seed <= 50; seed++ {
		standings, err := sim.GenerateStandings(rng.New(seed), playerRecord(), rivalTeams(), 140)
		require.NoError(t, err)
		require.Len(t, standings, 4)

		playerFound := false
		for i, st := range standings {
			assert.Equal(t, i+1, st.Seed)
			assert.Equal(t, 140, st.Wins+st.Losses)
			if i > 0 {
				assert.GreaterOrEqual(t, standings[i-1].WinPct, st.WinPct, "not sorted at %d", i)
			}
			if st.IsPlayer {
				playerFound = true
				assert.Equal(t, "player", st.TeamID)
			} else {
				assert.GreaterOrEqual(t, st.WinPct, 0.25)
				assert.LessOrEqual(t, st.WinPct, 0.75)
			}
		}
		assert.True(t, playerFound, "player standing missing (seed %d)", seed)
	}
}

func TestGenerateStandings_PicksStrongestRivals(t *testing.T) {
	sim := testSim()
	teams := append(rivalTeams(),
		domain.AITeam{ID: "a4", Name: "Owls", BaseStrength: 90, VarianceMultiplier: 0},
		domain.AITeam{ID: "a5", Name: "Cubs", BaseStrength: 10, VarianceMultiplier: 0},
	)

	standings, err := sim.GenerateStandings(rng.New(9), playerRecord(), teams, 140)
	require.NoError(t, err)

	ids := make(map[string]bool, 4)
	for _, st := range standings {
		ids[st.TeamID] = true
	}
	assert.True(t, ids["a4"], "strongest rival should be in the field")
	assert.False(t, ids["a5"], "weakest rival should not displace stronger teams")
}

func TestGenerateStandings_InputValidation(t *testing.T) {
	sim := testSim()

	_, err := sim.GenerateStandings(rng.New(1), playerRecord(), rivalTeams(), 0)
	require.ErrorIs(t, err, ErrNoGames)

	_, err = sim.GenerateStandings(rng.New(1), playerRecord(), nil, 140)
	require.ErrorIs(t, err, ErrTooFewTeams)

	_, err = sim.GenerateStandings(rng.New(1), playerRecord(), rivalTeams()[:2], 140)
	require.ErrorIs(t, err, ErrTooFewTeams)
}

func TestGenerateStandings_ZeroVarianceIsDeterministic(t *testing.T) {
	sim := testSim()
	teams := []domain.AITeam{
		{ID: "a1", Name: "Captains", BaseStrength: 100, VarianceMultiplier: 0},
		{ID: "a2", Name: "Miners", BaseStrength: 50, VarianceMultiplier: 0},
		{ID: "a3", Name: "Grays", BaseStrength: 0, VarianceMultiplier: 0},
	}

	standings, err := sim.GenerateStandings(rng.New(42), playerRecord(), teams, 100)
	require.NoError(t, err)

	byID := make(map[string]Standing, 4)
	for _, st := range standings {
		byID[st.TeamID] = st
	}
	assert.InDelta(t, 0.70, byID["a1"].WinPct, 1e-9) // 0.35 + 0.35
	assert.InDelta(t, 0.525, byID["a2"].WinPct, 1e-9)
	assert.InDelta(t, 0.35, byID["a3"].WinPct, 1e-9)
}
