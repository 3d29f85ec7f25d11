// Package main is the career fast-forward simulator. It plays the role the
// surrounding game assigns to the orchestrator: once per simulated year it
// feeds current state to the development model, the playoff simulator, and
// the narrative event engine, then folds their outputs into the next season's
// starting state and records the season in the history database.
package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ballparklabs/dynasty/internal/config"
	"github.com/ballparklabs/dynasty/internal/domain"
	"github.com/ballparklabs/dynasty/internal/history"
	"github.com/ballparklabs/dynasty/internal/modules/development"
	"github.com/ballparklabs/dynasty/internal/modules/narrative"
	"github.com/ballparklabs/dynasty/internal/modules/playoffs"
	"github.com/ballparklabs/dynasty/internal/rng"
	"github.com/ballparklabs/dynasty/internal/utils"
	"github.com/ballparklabs/dynasty/pkg/logger"
)

const playerTeamName = "Riverport Pilots"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: true})
	log.Info().Int("seasons", cfg.Seasons).Msg("starting career fast-forward")

	var src *rng.Rand
	if cfg.Seed != 0 {
		src = rng.New(cfg.Seed)
		log.Info().Int64("seed", cfg.Seed).Msg("using fixed seed")
	} else {
		src, err = rng.NewRandomized()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed random source")
		}
	}

	store, err := history.Open(filepath.Join(cfg.DataDir, "history.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open history store")
	}
	defer store.Close()

	if err := run(log, cfg, src, store); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
}

func run(log zerolog.Logger, cfg *config.Config, src *rng.Rand, store *history.Store) error {
	ctx := context.Background()
	tiers := domain.DefaultTierConfigs()

	model := development.NewModel(log, development.WithExpectedGames(cfg.TotalGames))
	sim := playoffs.NewSimulator(log)
	events := narrative.NewEngine(log)

	playerTeamID := uuid.NewString()
	roster := seedRoster(src, cfg.RosterSize)
	staff := domain.CoachingStaff{Hitting: 55, Pitching: 50, Development: 60}
	rivals := seedRivals(src)

	state := domain.GameState{
		TeamPride:        50,
		CityUnemployment: 6.0,
		CityPopulation:   250000,
		StadiumQuality:   60,
		CashReserves:     500000,
	}

	championships := 0
	for year := 1; year <= cfg.Seasons; year++ {
		// Injuries decide playing time before growth is computed.
		for i := range roster {
			res := model.SimulateInjury(src, roster[i])
			roster[i].IsInjured = res.IsInjured
			roster[i].GamesPlayed = cfg.TotalGames - res.GamesLost
		}

		growth, err := model.CalculateRosterGrowth(src, roster, staff, tiers)
		if err != nil {
			return fmt.Errorf("roster growth year %d: %w", year, err)
		}
		prevRatings := make(map[string]int, len(roster))
		for i := range roster {
			if res, ok := growth[roster[i].ID]; ok {
				prevRatings[roster[i].ID] = res.PreviousRating
				roster[i].CurrentRating = res.NewRating
			}
		}

		wins, losses := seasonRecord(src, roster, cfg.TotalGames)
		state.WinPct = float64(wins) / float64(cfg.TotalGames)

		playerStanding := playoffs.Standing{
			TeamID: playerTeamID,
			Name:   playerTeamName,
			Wins:   wins,
			Losses: losses,
			WinPct: state.WinPct,
		}
		standings, err := sim.GenerateStandings(src, playerStanding, rivals, cfg.TotalGames)
		if err != nil {
			return fmt.Errorf("standings year %d: %w", year, err)
		}

		bracket, err := sim.GenerateBracket(standings)
		if err != nil {
			return fmt.Errorf("bracket year %d: %w", year, err)
		}
		if err := sim.SimulateBracket(src, bracket, cfg.StadiumCapacity); err != nil {
			return fmt.Errorf("playoffs year %d: %w", year, err)
		}
		won := bracket.WonChampionship(playerTeamID)
		if won {
			championships++
			state.TeamPride = utils.Clamp(state.TeamPride+10, 0, 100)
		}

		if state.WinPct > 0.5 {
			state.ConsecutiveWinningSeasons++
		} else {
			state.ConsecutiveWinningSeasons = 0
		}

		fired := events.CheckForEventsWithTier(src, state, domain.TierMLB)
		summary := narrative.ApplyEventEffects(state, fired)
		state.TeamPride = summary.NewPride
		state.CityPopulation = summary.NewPopulation
		state.StadiumQuality = summary.NewStadiumQuality
		state.CashReserves -= summary.MaintenanceCost

		roster = advanceRoster(log, model, src, roster, tiers, prevRatings, year)

		rec := history.SeasonRecord{
			Year:            year,
			Wins:            wins,
			Losses:          losses,
			MadePlayoffs:    playoffs.MadePlayoffs(standings, playerTeamID),
			WonChampionship: won,
			ChampionName:    bracket.ChampionName,
			Pride:           state.TeamPride,
			Population:      state.CityPopulation,
			StadiumQuality:  state.StadiumQuality,
			EventsFired:     len(fired),
			Roster:          roster,
		}
		if err := store.RecordSeason(ctx, rec); err != nil {
			return fmt.Errorf("record season %d: %w", year, err)
		}

		log.Info().
			Int("year", year).
			Int("wins", wins).
			Int("losses", losses).
			Str("champion", bracket.ChampionName).
			Int("events", len(fired)).
			Msg("season complete")
	}

	report := development.SummarizeRoster(roster)
	log.Info().
		Int("championships", championships).
		Int("roster", report.Players).
		Float64("mean_rating", report.MeanRating).
		Float64("std_dev_rating", report.StdDevRating).
		Float64("mean_age", report.MeanAge).
		Msg("career complete")
	return nil
}

// advanceRoster runs the off-season: aging, retirements, and promotions.
// Retired players leave the active roster; everything else is in-place.
func advanceRoster(log zerolog.Logger, model *development.Model, src *rng.Rand, roster []domain.Player, tiers domain.TierConfigs, prevRatings map[string]int, year int) []domain.Player {
	kept := roster[:0]
	for _, p := range roster {
		aging := model.AgePlayer(src, p)
		p.Age = aging.NewAge
		if aging.IsRetiring {
			log.Info().Int("year", year).Str("player", p.Name).Int("age", p.Age).Msg("player retires")
			continue
		}

		var prevRating *int
		if prev, ok := prevRatings[p.ID]; ok {
			prevRating = &prev
		}
		if next, ok := p.Tier.Next(); ok {
			report, err := model.CheckPromotionReadiness(p, next, tiers, prevRating)
			if err == nil && report.IsReady {
				effect := development.IdealPromotionEffect()
				p.Tier = next
				p.YearsAtTier = 0
				p.Morale = utils.ClampInt(p.Morale+effect.Morale, 0, 100)
				p.Potential = utils.ClampInt(p.Potential+effect.Potential, 20, 80)
				log.Debug().Str("player", p.Name).Str("tier", next.String()).Msg("player promoted")
			} else {
				p.YearsAtTier++
			}
		} else {
			p.YearsAtTier++
		}
		kept = append(kept, p)
	}
	return kept
}

// seasonRecord derives the player team's regular-season record from roster
// strength with a little schedule randomness.
func seasonRecord(src rng.Source, roster []domain.Player, totalGames int) (int, int) {
	summary := development.SummarizeRoster(roster)
	winPct := 0.25 + (summary.MeanRating-30)/100 + (src.Float64()-0.5)*0.1
	winPct = utils.Clamp(winPct, 0.25, 0.75)
	wins := utils.RoundToInt(winPct * float64(totalGames))
	return wins, totalGames - wins
}

var firstNames = []string{"Avery", "Cole", "Dante", "Eli", "Felix", "Gus", "Hank", "Ivan", "Jonah", "Kai", "Luis", "Marco", "Nico", "Owen", "Pete", "Quinn"}
var lastNames = []string{"Abbott", "Brooks", "Castillo", "Duran", "Ebner", "Fuentes", "Grady", "Holt", "Iverson", "Jenks", "Kowalski", "Lutz", "Meyer", "Nolan", "Ortega", "Pruitt"}

func seedRoster(src rng.Source, size int) []domain.Player {
	ethics := []domain.WorkEthic{domain.WorkEthicPoor, domain.WorkEthicAverage, domain.WorkEthicAverage, domain.WorkEthicExcellent}
	roster := make([]domain.Player, 0, size)
	for i := 0; i < size; i++ {
		rating := 35 + src.Intn(25)
		potential := utils.ClampInt(rating+5+src.Intn(20), 20, 80)
		pt := domain.Hitter
		if i%2 == 1 {
			pt = domain.Pitcher
		}
		roster = append(roster, domain.Player{
			ID:            uuid.NewString(),
			Name:          firstNames[src.Intn(len(firstNames))] + " " + lastNames[src.Intn(len(lastNames))],
			Age:           18 + src.Intn(8),
			CurrentRating: rating,
			Potential:     potential,
			Tier:          tierForRating(rating),
			Type:          pt,
			Traits: domain.HiddenTraits{
				WorkEthic:   ethics[src.Intn(len(ethics))],
				InjuryProne: src.Float64() < 0.25,
			},
			Morale:      50 + src.Intn(30),
			GamesPlayed: 0,
			YearsAtTier: src.Intn(3),
		})
	}
	return roster
}

// tierForRating places a new player at the highest tier whose band contains
// their rating.
func tierForRating(rating int) domain.Tier {
	tier := domain.TierLowA
	for t, cfg := range domain.DefaultTierConfigs() {
		if rating >= cfg.MinRating && rating <= cfg.MaxRating && t > tier {
			tier = t
		}
	}
	return tier
}

func seedRivals(src rng.Source) []domain.AITeam {
	names := []string{"Harbor City Captains", "Summit Ridge Miners", "Lakeshore Grays", "Cedar Falls Owls"}
	rivals := make([]domain.AITeam, 0, len(names))
	for _, name := range names {
		rivals = append(rivals, domain.AITeam{
			ID:                 uuid.NewString(),
			Name:               name,
			BaseStrength:       30 + float64(src.Intn(50)),
			VarianceMultiplier: 0.5 + src.Float64(),
		})
	}
	return rivals
}
