package playoffs

import (
	"sort"

	"github.com/ballparklabs/dynasty/internal/domain"
	"github.com/ballparklabs/dynasty/internal/rng"
	"github.com/ballparklabs/dynasty/internal/utils"
)

// AI record generation constants. A team with zero base strength plays .350
// ball; a maxed-out team plays .700 before variance, and every record is
// clamped to a plausible [.250, .750] band.
const (
	aiWinPctFloor     = 0.35
	aiWinPctStrength  = 0.35
	aiWinPctMin       = 0.25
	aiWinPctMax       = 0.75
	aiVarianceBreadth = 0.2
)

// GenerateStandings builds the four-team end-of-season ranking: the player's
// record plus synthetic records for the three strongest AI teams, sorted by
// descending win percentage and seeded 1-4. The player's standing is always
// present. totalGames must match the player's season length so every record
// is over the same schedule.
func (s *Simulator) GenerateStandings(src rng.Source, player Standing, aiTeams []domain.AITeam, totalGames int) ([]Standing, error) {
	if totalGames <= 0 {
		return nil, ErrNoGames
	}
	if len(aiTeams) < 3 {
		return nil, ErrTooFewTeams
	}

	// Strongest three AI teams fill out the four-team field.
	rivals := make([]domain.AITeam, len(aiTeams))
	copy(rivals, aiTeams)
	sort.SliceStable(rivals, func(i, j int) bool {
		return rivals[i].BaseStrength > rivals[j].BaseStrength
	})
	rivals = rivals[:3]

	player.IsPlayer = true
	standings := []Standing{player}
	for _, team := range rivals {
		winPct := aiWinPctFloor + team.BaseStrength/100*aiWinPctStrength
		winPct += (src.Float64() - 0.5) * team.VarianceMultiplier * aiVarianceBreadth
		winPct = utils.Clamp(winPct, aiWinPctMin, aiWinPctMax)

		wins := utils.RoundToInt(winPct * float64(totalGames))
		standings = append(standings, Standing{
			TeamID: team.ID,
			Name:   team.Name,
			Wins:   wins,
			Losses: totalGames - wins,
			WinPct: winPct,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].WinPct > standings[j].WinPct
	})
	for i := range standings {
		standings[i].Seed = i + 1
	}

	s.log.Debug().Int("teams", len(standings)).Msg("playoff standings generated")
	return standings, nil
}
