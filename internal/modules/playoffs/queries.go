package playoffs

// MadePlayoffs reports whether the given team qualified.
func MadePlayoffs(standings []Standing, teamID string) bool {
	_, ok := TeamSeed(standings, teamID)
	return ok
}

// TeamSeed returns the team's bracket seed, and false if it did not qualify.
func TeamSeed(standings []Standing, teamID string) (int, bool) {
	for _, st := range standings {
		if st.TeamID == teamID {
			return st.Seed, true
		}
	}
	return 0, false
}

// IsComplete reports whether the bracket is terminal.
func (b *Bracket) IsComplete() bool {
	return b.Status == BracketComplete
}

// WonChampionship reports whether the given team won it all.
func (b *Bracket) WonChampionship(teamID string) bool {
	return b.IsComplete() && b.ChampionID == teamID
}
