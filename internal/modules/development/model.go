// Package development implements the player development model: annual rating
// growth, promotion readiness, injury simulation and aging. All formulas are
// deterministic given a random source; the model itself holds no state.
package development

import (
	"errors"

	"github.com/rs/zerolog"
)

// DefaultExpectedGames is the full-season game count a healthy player is
// expected to appear in.
const DefaultExpectedGames = 140

// ErrUnknownTier is returned when a player's tier has no entry in the
// supplied tier configuration table.
var ErrUnknownTier = errors.New("no tier config for player tier")

// Model computes per-player development outcomes.
type Model struct {
	log           zerolog.Logger
	expectedGames int
}

// Option configures a Model.
type Option func(*Model)

// WithExpectedGames overrides the full-season game count used by the
// playing-time modifier. A zero value disables the modifier entirely.
func WithExpectedGames(n int) Option {
	return func(m *Model) { m.expectedGames = n }
}

// NewModel creates a development model.
func NewModel(log zerolog.Logger, opts ...Option) *Model {
	m := &Model{
		log:           log.With().Str("engine", "development").Logger(),
		expectedGames: DefaultExpectedGames,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
