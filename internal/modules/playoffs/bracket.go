package playoffs

import (
	"fmt"

	"github.com/ballparklabs/dynasty/internal/rng"
)

// GenerateBracket seeds the four-team bracket from standings: 1-vs-4 and
// 2-vs-3 semifinals. No finals series exists until both semifinals resolve.
func (s *Simulator) GenerateBracket(standings []Standing) (*Bracket, error) {
	if len(standings) != 4 {
		return nil, fmt.Errorf("need exactly 4 standings, got %d: %w", len(standings), ErrBracketState)
	}

	teams := make([]Team, 4)
	for i, st := range standings {
		teams[i] = Team{
			ID:     st.TeamID,
			Name:   st.Name,
			Seed:   st.Seed,
			Wins:   st.Wins,
			Losses: st.Losses,
			WinPct: st.WinPct,
		}
	}

	return &Bracket{
		Semifinal1: NewSeries(RoundSemifinals, teams[0], teams[3]),
		Semifinal2: NewSeries(RoundSemifinals, teams[1], teams[2]),
		Status:     BracketSemifinals,
	}, nil
}

// GenerateFinals creates the finals series once both semifinals are
// complete. The better-seeded winner is team1 and keeps home-field priority.
func (s *Simulator) GenerateFinals(b *Bracket) (*Series, error) {
	if b.Finals != nil {
		return nil, fmt.Errorf("finals already exist: %w", ErrBracketState)
	}
	if b.Semifinal1 == nil || b.Semifinal2 == nil ||
		b.Semifinal1.Status != SeriesComplete || b.Semifinal2.Status != SeriesComplete {
		return nil, fmt.Errorf("both semifinals must be complete: %w", ErrBracketState)
	}

	w1 := b.Semifinal1.winner()
	w2 := b.Semifinal2.winner()
	if w2.Seed < w1.Seed {
		w1, w2 = w2, w1
	}

	b.Finals = NewSeries(RoundFinals, w1, w2)
	b.Status = BracketFinals
	return b.Finals, nil
}

// Resolve marks the bracket complete once the finals have a winner.
func (b *Bracket) Resolve() error {
	if b.Finals == nil || b.Finals.Status != SeriesComplete {
		return fmt.Errorf("finals not complete: %w", ErrBracketState)
	}
	champ := b.Finals.winner()
	b.ChampionID = champ.ID
	b.ChampionName = champ.Name
	b.Status = BracketComplete
	return nil
}

// SimulateBracket plays the whole postseason to a champion.
func (s *Simulator) SimulateBracket(src rng.Source, b *Bracket, stadiumCapacity int) error {
	if err := s.SimulateSeries(src, b.Semifinal1, stadiumCapacity); err != nil {
		return err
	}
	if err := s.SimulateSeries(src, b.Semifinal2, stadiumCapacity); err != nil {
		return err
	}
	if _, err := s.GenerateFinals(b); err != nil {
		return err
	}
	if err := s.SimulateSeries(src, b.Finals, stadiumCapacity); err != nil {
		return err
	}
	return b.Resolve()
}
