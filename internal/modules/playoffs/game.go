package playoffs

import (
	"math"

	"github.com/ballparklabs/dynasty/internal/rng"
	"github.com/ballparklabs/dynasty/internal/utils"
)

// Game simulation constants.
const (
	homeFieldBonus = 5.0  // strength points added to the home side
	winProbFloor   = 0.30 // even a heavy underdog wins 3 in 10
	winProbCeil    = 0.70

	baseRuns        = 3
	runsPerStrength = 25 // one extra base run per 25 strength points
	runSpreadMax    = 4  // winner adds a uniform 0-3 on top of base

	attendanceFloor    = 0.85
	attendanceSpread   = 0.15
	playoffAttendBoost = 1.15

	innings          = 9
	lateInningBias   = 0.5 // chance a run is pushed into innings 6-9
	firstLateInning  = 5   // zero-based index of inning 6
	lateInningsCount = 4
)

// SimulateGame simulates one playoff game between home and away. The winner
// is decided by a single probability roll on the strength gap; scores,
// attendance, and a nine-inning line score are then synthesized around that
// outcome. Games never end tied.
func (s *Simulator) SimulateGame(src rng.Source, home, away Team, gameNumber, stadiumCapacity int) Game {
	homeStrength := home.WinPct*100 + homeFieldBonus
	awayStrength := away.WinPct * 100

	pHome := utils.Clamp(0.5+(homeStrength-awayStrength)/100, winProbFloor, winProbCeil)
	homeWins := src.Float64() < pHome

	winnerStrength := awayStrength
	if homeWins {
		winnerStrength = homeStrength
	}

	winnerRuns := baseRuns + int(math.Floor(winnerStrength/runsPerStrength)) + src.Intn(runSpreadMax)
	loserRuns := winnerRuns - (1 + src.Intn(3))
	if loserRuns < 0 {
		loserRuns = 0
	}
	if loserRuns == winnerRuns {
		winnerRuns++
	}

	game := Game{
		Number: gameNumber,
		HomeID: home.ID,
		AwayID: away.ID,
	}
	if homeWins {
		game.HomeRuns, game.AwayRuns, game.WinnerID = winnerRuns, loserRuns, home.ID
	} else {
		game.HomeRuns, game.AwayRuns, game.WinnerID = loserRuns, winnerRuns, away.ID
	}

	attendance := int(math.Floor(float64(stadiumCapacity) * (attendanceFloor + src.Float64()*attendanceSpread)))
	attendance = int(math.Floor(float64(attendance) * playoffAttendBoost))
	if attendance > stadiumCapacity {
		attendance = stadiumCapacity
	}
	game.Attendance = attendance

	game.Innings = buildLineScore(src, game.HomeRuns, game.AwayRuns)
	return game
}

// buildLineScore distributes each side's total runs across nine innings,
// biasing runs toward innings six and later.
func buildLineScore(src rng.Source, homeRuns, awayRuns int) []InningScore {
	line := make([]InningScore, innings)
	for i := 0; i < homeRuns; i++ {
		line[pickInning(src)].Home++
	}
	for i := 0; i < awayRuns; i++ {
		line[pickInning(src)].Away++
	}
	return line
}

func pickInning(src rng.Source) int {
	if src.Float64() < lateInningBias {
		return firstLateInning + src.Intn(lateInningsCount)
	}
	return src.Intn(innings)
}
