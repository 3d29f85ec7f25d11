package playoffs

import "github.com/ballparklabs/dynasty/internal/rng"

// Best-of-5 constants.
const (
	seriesWinsNeeded = 3
	seriesMaxGames   = 5
)

// NewSeries creates a pending best-of-5 series. team1 must be the better
// seed; it holds home field for games 1, 2 and 5.
func NewSeries(round Round, team1, team2 Team) *Series {
	return &Series{
		Round:  round,
		Team1:  team1,
		Team2:  team2,
		Status: SeriesPending,
		Games:  make([]Game, 0, seriesMaxGames),
	}
}

// homeAway returns the home and away teams for a 1-based game number using
// the fixed 2-3 pattern: team1 hosts games 1, 2 and 5, team2 hosts 3 and 4.
func (sr *Series) homeAway(gameNumber int) (Team, Team) {
	if gameNumber == 3 || gameNumber == 4 {
		return sr.Team2, sr.Team1
	}
	return sr.Team1, sr.Team2
}

// SimulateNextGame simulates exactly one game of the series and reports
// whether the series just completed, enabling game-by-game playback by the
// caller. Returns ErrSeriesDone when the series already has a winner.
func (s *Simulator) SimulateNextGame(src rng.Source, sr *Series, stadiumCapacity int) (Game, bool, error) {
	if sr.Status == SeriesComplete {
		return Game{}, false, ErrSeriesDone
	}

	gameNumber := len(sr.Games) + 1
	home, away := sr.homeAway(gameNumber)

	game := s.SimulateGame(src, home, away, gameNumber, stadiumCapacity)
	sr.Games = append(sr.Games, game)
	sr.Status = SeriesInProgress

	if game.WinnerID == sr.Team1.ID {
		sr.Team1Wins++
	} else {
		sr.Team2Wins++
	}

	done := sr.Team1Wins == seriesWinsNeeded || sr.Team2Wins == seriesWinsNeeded
	if done {
		sr.Status = SeriesComplete
		if sr.Team1Wins > sr.Team2Wins {
			sr.WinnerID = sr.Team1.ID
		} else {
			sr.WinnerID = sr.Team2.ID
		}
		s.log.Debug().
			Str("round", string(sr.Round)).
			Str("winner_id", sr.WinnerID).
			Int("games", len(sr.Games)).
			Msg("series complete")
	}
	return game, done, nil
}

// SimulateSeries plays the series to completion. It always terminates within
// five games: one side reaches three wins first.
func (s *Simulator) SimulateSeries(src rng.Source, sr *Series, stadiumCapacity int) error {
	for sr.Status != SeriesComplete {
		if _, _, err := s.SimulateNextGame(src, sr, stadiumCapacity); err != nil {
			return err
		}
	}
	return nil
}

// winner returns the winning team of a completed series.
func (sr *Series) winner() Team {
	if sr.WinnerID == sr.Team1.ID {
		return sr.Team1
	}
	return sr.Team2
}
