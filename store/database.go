// Package store keeps the history of finished rounds in SQLite
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/space-snake/engine"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// RoundRow represents a finished round in the database
type RoundRow struct {
	ID         int64
	Difficulty engine.Difficulty
	Score      int
	Ticks      int
	RealTime   int
	EndedBy    string
	Stats      engine.RoundStats
	FinishedAt time.Time
}

// statsBlob is the msgpack layout of the stats column
type statsBlob struct {
	StarsCollected   int     `msgpack:"stars"`
	DebrisHits       int     `msgpack:"debris_hits"`
	BonusWaves       int     `msgpack:"bonus_waves"`
	ObstaclesSpawned int     `msgpack:"obstacles"`
	DebrisSpawned    int     `msgpack:"debris"`
	PeakSpeed        float64 `msgpack:"peak_speed"`
}

// Open opens (or creates) the SQLite database at path
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// Single writer; the game records one round at a time
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable wal: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates tables if they don't exist
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS rounds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		difficulty TEXT NOT NULL,
		score INTEGER NOT NULL,
		ticks INTEGER NOT NULL DEFAULT 0,
		real_time INTEGER NOT NULL DEFAULT 0,
		ended_by TEXT NOT NULL DEFAULT '',
		stats BLOB,
		finished_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_rounds_difficulty_score ON rounds(difficulty, score DESC);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RecordRound stores a finished round
func (db *DB) RecordRound(ctx context.Context, s engine.RoundSummary) error {
	blob, err := msgpack.Marshal(statsBlob{
		StarsCollected:   s.Stats.StarsCollected,
		DebrisHits:       s.Stats.DebrisHits,
		BonusWaves:       s.Stats.BonusWaves,
		ObstaclesSpawned: s.Stats.ObstaclesSpawned,
		DebrisSpawned:    s.Stats.DebrisSpawned,
		PeakSpeed:        s.Stats.PeakSpeed,
	})
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO rounds (difficulty, score, ticks, real_time, ended_by, stats, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(s.Difficulty), s.Score, s.Ticks, s.RealTime, s.EndedBy.String(), blob, s.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert round: %w", err)
	}
	return nil
}

// TopScores returns up to limit rounds, best score first; ties go to the earlier round
func (db *DB) TopScores(ctx context.Context, limit int) ([]RoundRow, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, difficulty, score, ticks, real_time, ended_by, stats, finished_at
		 FROM rounds ORDER BY score DESC, finished_at ASC, id ASC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	defer rows.Close()

	var out []RoundRow
	for rows.Next() {
		var (
			r          RoundRow
			difficulty string
			blob       []byte
			finished   int64
		)
		if err := rows.Scan(&r.ID, &difficulty, &r.Score, &r.Ticks, &r.RealTime, &r.EndedBy, &blob, &finished); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		r.Difficulty = engine.Difficulty(difficulty)
		r.FinishedAt = time.UnixMilli(finished).UTC()
		if len(blob) > 0 {
			var sb statsBlob
			if err := msgpack.Unmarshal(blob, &sb); err != nil {
				return nil, fmt.Errorf("decode stats of round %d: %w", r.ID, err)
			}
			r.Stats = engine.RoundStats(sb)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// BestScore returns the highest score for difficulty d, or across all difficulties when d is empty
// ok is false when no round matches
func (db *DB) BestScore(ctx context.Context, d engine.Difficulty) (best int, ok bool, err error) {
	var v sql.NullInt64
	if d == "" {
		err = db.conn.QueryRowContext(ctx, "SELECT MAX(score) FROM rounds").Scan(&v)
	} else {
		err = db.conn.QueryRowContext(ctx, "SELECT MAX(score) FROM rounds WHERE difficulty = ?", string(d)).Scan(&v)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query best score: %w", err)
	}
	return int(v.Int64), v.Valid, nil
}

// RoundCount returns the number of recorded rounds
func (db *DB) RoundCount(ctx context.Context) (int, error) {
	var n int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM rounds").Scan(&n); err != nil {
		return 0, fmt.Errorf("count rounds: %w", err)
	}
	return n, nil
}
