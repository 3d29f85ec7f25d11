// Package playoffs implements the end-of-season playoff simulator: a 4-team
// bracket seeded from standings, best-of-5 series, and individual game
// simulation. The bracket is a one-directional state machine:
// pending -> semifinals -> finals -> complete.
package playoffs

import (
	"errors"

	"github.com/rs/zerolog"
)

// Input validation errors. These indicate malformed caller input; everything
// else in this package clamps rather than erroring.
var (
	ErrNoGames      = errors.New("total games must be positive")
	ErrTooFewTeams  = errors.New("at least three AI teams are required to fill a four-team bracket")
	ErrBracketState = errors.New("invalid bracket state for this operation")
	ErrSeriesDone   = errors.New("series is already complete")
)

// Round identifies which stage of the bracket a series belongs to.
type Round string

const (
	RoundSemifinals Round = "semifinals"
	RoundFinals     Round = "finals"
)

// SeriesStatus tracks the lifecycle of a single series.
type SeriesStatus string

const (
	SeriesPending    SeriesStatus = "pending"
	SeriesInProgress SeriesStatus = "in_progress"
	SeriesComplete   SeriesStatus = "complete"
)

// BracketStatus tracks the lifecycle of the whole bracket.
type BracketStatus string

const (
	BracketPending    BracketStatus = "pending"
	BracketSemifinals BracketStatus = "semifinals"
	BracketFinals     BracketStatus = "finals"
	BracketComplete   BracketStatus = "complete"
)

// Team is one playoff participant. WinPct carries the regular-season record
// into game strength calculations.
type Team struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Seed   int     `json:"seed"` // 1-4, lower is better
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	WinPct float64 `json:"win_pct"`
}

// Standing is one entry in the end-of-season ranking used to seed the
// bracket.
type Standing struct {
	TeamID   string  `json:"team_id"`
	Name     string  `json:"name"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	WinPct   float64 `json:"win_pct"`
	Seed     int     `json:"seed"`
	IsPlayer bool    `json:"is_player"`
}

// Game is one completed playoff game. Innings always holds nine entries; a
// game never ends in a tie.
type Game struct {
	Number     int           `json:"number"` // 1-based within the series
	HomeID     string        `json:"home_id"`
	AwayID     string        `json:"away_id"`
	HomeRuns   int           `json:"home_runs"`
	AwayRuns   int           `json:"away_runs"`
	WinnerID   string        `json:"winner_id"`
	Attendance int           `json:"attendance"`
	Innings    []InningScore `json:"innings"`
}

// InningScore is the runs each side put up in one inning.
type InningScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Series is a best-of-5 matchup, first to three wins. Team1 is always the
// better seed and holds home field for games 1, 2 and 5.
type Series struct {
	Round     Round        `json:"round"`
	Team1     Team         `json:"team1"`
	Team2     Team         `json:"team2"`
	Team1Wins int          `json:"team1_wins"`
	Team2Wins int          `json:"team2_wins"`
	Status    SeriesStatus `json:"status"`
	Games     []Game       `json:"games"`
	WinnerID  string       `json:"winner_id"`
}

// Bracket is the full 4-team postseason. Finals is nil until both semifinals
// complete.
type Bracket struct {
	Semifinal1   *Series       `json:"semifinal1"`
	Semifinal2   *Series       `json:"semifinal2"`
	Finals       *Series       `json:"finals,omitempty"`
	Status       BracketStatus `json:"status"`
	ChampionID   string        `json:"champion_id,omitempty"`
	ChampionName string        `json:"champion_name,omitempty"`
}

// Simulator runs playoff games and series.
type Simulator struct {
	log zerolog.Logger
}

// NewSimulator creates a playoff simulator.
func NewSimulator(log zerolog.Logger) *Simulator {
	return &Simulator{log: log.With().Str("engine", "playoffs").Logger()}
}
