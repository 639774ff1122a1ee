package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adalundhe/boardroom/core/review"
	"github.com/adalundhe/boardroom/core/roles"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteConfig tunes the result database connection.
type SQLiteConfig struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
	BusyTimeout time.Duration
	EnableWAL   bool
}

// DefaultSQLiteConfig returns the default connection settings.
func DefaultSQLiteConfig() SQLiteConfig {
	return SQLiteConfig{
		MaxOpen:     10,
		MaxIdle:     5,
		MaxLifetime: time.Hour,
		BusyTimeout: 30 * time.Second,
		EnableWAL:   true,
	}
}

// SQLiteStore is a Gateway backed by a local SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS agent_results (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	subject_id      TEXT NOT NULL,
	role            TEXT NOT NULL,
	analysis        TEXT NOT NULL,
	recommendations TEXT NOT NULL DEFAULT '',
	risk_assessment TEXT NOT NULL DEFAULT '',
	score           INTEGER NOT NULL,
	model           TEXT NOT NULL DEFAULT '',
	error           INTEGER NOT NULL DEFAULT 0,
	failure_kind    TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMP NOT NULL,
	UNIQUE (subject_id, role)
);
CREATE INDEX IF NOT EXISTS idx_agent_results_subject ON agent_results (subject_id);
`

// OpenSQLiteStore opens (creating if needed) the result database at path.
func OpenSQLiteStore(path string, config SQLiteConfig) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=1", path, int(config.BusyTimeout.Milliseconds()))
	if config.EnableWAL {
		dsn += "&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpen)
	db.SetMaxIdleConns(config.MaxIdle)
	db.SetConnMaxLifetime(config.MaxLifetime)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Save upserts one result. A replaced row keeps its original position in
// LoadAll ordering.
func (s *SQLiteStore) Save(ctx context.Context, subjectID string, res review.AgentResult) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO agent_results
			(subject_id, role, analysis, recommendations, risk_assessment,
			 score, model, error, failure_kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (subject_id, role) DO UPDATE SET
			analysis = excluded.analysis,
			recommendations = excluded.recommendations,
			risk_assessment = excluded.risk_assessment,
			score = excluded.score,
			model = excluded.model,
			error = excluded.error,
			failure_kind = excluded.failure_kind,
			created_at = excluded.created_at`,
		subjectID, string(res.Role), res.Analysis, res.Recommendations,
		res.RiskAssessment, res.Score, res.Model, boolToInt(res.Error),
		res.FailureKind, res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save result %s/%s: %w", subjectID, res.Role, err)
	}
	return nil
}

// LoadAll returns a subject's results in insertion order.
func (s *SQLiteStore) LoadAll(ctx context.Context, subjectID string) ([]review.AgentResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT role, analysis, recommendations, risk_assessment,
		       score, model, error, failure_kind, created_at
		FROM agent_results
		WHERE subject_id = ?
		ORDER BY id`,
		subjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("load results %s: %w", subjectID, err)
	}
	defer rows.Close()

	var out []review.AgentResult
	for rows.Next() {
		var res review.AgentResult
		var role string
		var errFlag int
		if err := rows.Scan(&role, &res.Analysis, &res.Recommendations,
			&res.RiskAssessment, &res.Score, &res.Model, &errFlag,
			&res.FailureKind, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		res.Role = roles.Role(role)
		res.Error = errFlag != 0
		out = append(out, res)
	}
	return out, rows.Err()
}

// DeleteAll removes a subject's results.
func (s *SQLiteStore) DeleteAll(ctx context.Context, subjectID string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM agent_results WHERE subject_id = ?`, subjectID)
	if err != nil {
		return 0, fmt.Errorf("delete results %s: %w", subjectID, err)
	}
	return result.RowsAffected()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
