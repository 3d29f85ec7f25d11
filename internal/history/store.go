// Package history persists season results for the career report. Persistence
// lives entirely on the orchestrator side: the simulation engines never touch
// this package.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/ballparklabs/dynasty/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS seasons (
	year                INTEGER PRIMARY KEY,
	wins                INTEGER NOT NULL,
	losses              INTEGER NOT NULL,
	made_playoffs       INTEGER NOT NULL,
	won_championship    INTEGER NOT NULL,
	champion_name       TEXT    NOT NULL DEFAULT '',
	pride               REAL    NOT NULL,
	population          REAL    NOT NULL,
	stadium_quality     REAL    NOT NULL,
	events_fired        INTEGER NOT NULL,
	roster_snapshot     BLOB
);`

// SeasonRecord is one persisted season.
type SeasonRecord struct {
	Year            int
	Wins            int
	Losses          int
	MadePlayoffs    bool
	WonChampionship bool
	ChampionName    string
	Pride           float64
	Population      float64
	StadiumQuality  float64
	EventsFired     int
	Roster          []domain.Player
}

// Store is a SQLite-backed season history store.
type Store struct {
	conn *sql.DB
	path string
}

// Open creates or opens the history database at path. The parent directory
// is created if needed; "file:" URIs pass through untouched so tests can use
// in-memory databases.
func Open(path string) (*Store, error) {
	connPath := path
	if len(path) < 5 || path[:5] != "file:" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve history db path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return nil, fmt.Errorf("create history db directory: %w", err)
		}
		connPath = abs
	}

	conn, err := sql.Open("sqlite", connPath+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping history db: %w", err)
	}
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &Store{conn: conn, path: connPath}, nil
}

// RecordSeason upserts one season's results, serializing the roster snapshot
// with msgpack.
func (s *Store) RecordSeason(ctx context.Context, rec SeasonRecord) error {
	snapshot, err := msgpack.Marshal(rec.Roster)
	if err != nil {
		return fmt.Errorf("encode roster snapshot: %w", err)
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO seasons (year, wins, losses, made_playoffs, won_championship,
			champion_name, pride, population, stadium_quality, events_fired, roster_snapshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(year) DO UPDATE SET
			wins = excluded.wins,
			losses = excluded.losses,
			made_playoffs = excluded.made_playoffs,
			won_championship = excluded.won_championship,
			champion_name = excluded.champion_name,
			pride = excluded.pride,
			population = excluded.population,
			stadium_quality = excluded.stadium_quality,
			events_fired = excluded.events_fired,
			roster_snapshot = excluded.roster_snapshot`,
		rec.Year, rec.Wins, rec.Losses, boolToInt(rec.MadePlayoffs), boolToInt(rec.WonChampionship),
		rec.ChampionName, rec.Pride, rec.Population, rec.StadiumQuality, rec.EventsFired, snapshot)
	if err != nil {
		return fmt.Errorf("record season %d: %w", rec.Year, err)
	}
	return nil
}

// Seasons returns every recorded season ordered by year.
func (s *Store) Seasons(ctx context.Context) ([]SeasonRecord, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT year, wins, losses, made_playoffs, won_championship, champion_name,
			pride, population, stadium_quality, events_fired, roster_snapshot
		FROM seasons ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("query seasons: %w", err)
	}
	defer rows.Close()

	var records []SeasonRecord
	for rows.Next() {
		var rec SeasonRecord
		var madePlayoffs, wonChampionship int
		var snapshot []byte
		if err := rows.Scan(&rec.Year, &rec.Wins, &rec.Losses, &madePlayoffs, &wonChampionship,
			&rec.ChampionName, &rec.Pride, &rec.Population, &rec.StadiumQuality, &rec.EventsFired, &snapshot); err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		rec.MadePlayoffs = madePlayoffs != 0
		rec.WonChampionship = wonChampionship != 0
		if len(snapshot) > 0 {
			if err := msgpack.Unmarshal(snapshot, &rec.Roster); err != nil {
				return nil, fmt.Errorf("decode roster snapshot for year %d: %w", rec.Year, err)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.conn.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
