package runstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/estateplan/epgo/internal/domain"
)

const schemaRuns = `
CREATE TABLE IF NOT EXISTS scenario_runs (
    id TEXT PRIMARY KEY,
    scenario_id TEXT NOT NULL,
    run_timestamp TEXT NOT NULL,
    variables TEXT NOT NULL,
    outcomes TEXT NOT NULL,
    best_option TEXT NOT NULL,
    position INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenario_runs_position ON scenario_runs(position);
`

// SQLiteBackend persists runs to a local SQLite database. modernc.org/sqlite
// is pure Go, so no CGO is required. The table always mirrors the full
// bounded list: Persist replaces every row inside one transaction.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (creating if needed) the database at path.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open run store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping run store: %w", err)
	}
	if _, err := db.Exec(schemaRuns); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize run store schema: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Close releases the database handle.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) Load() ([]domain.ScenarioRun, error) {
	rows, err := b.db.Query(`SELECT id, scenario_id, run_timestamp, variables, outcomes, best_option
		FROM scenario_runs ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ScenarioRun
	for rows.Next() {
		var (
			run       domain.ScenarioRun
			timestamp string
			variables string
			outcomes  string
			best      string
		)
		if err := rows.Scan(&run.ID, &run.ScenarioID, &timestamp, &variables, &outcomes, &best); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Timestamp, err = time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			return nil, fmt.Errorf("run %s: invalid timestamp: %w", run.ID, err)
		}
		if err := json.Unmarshal([]byte(variables), &run.Variables); err != nil {
			return nil, fmt.Errorf("run %s: invalid variables: %w", run.ID, err)
		}
		if err := json.Unmarshal([]byte(outcomes), &run.Outcomes); err != nil {
			return nil, fmt.Errorf("run %s: invalid outcomes: %w", run.ID, err)
		}
		if err := json.Unmarshal([]byte(best), &run.BestOption); err != nil {
			return nil, fmt.Errorf("run %s: invalid best option: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (b *SQLiteBackend) Persist(runs []domain.ScenarioRun) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM scenario_runs`); err != nil {
		return fmt.Errorf("failed to clear runs: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO scenario_runs
		(id, scenario_id, run_timestamp, variables, outcomes, best_option, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, run := range runs {
		variables, err := json.Marshal(run.Variables)
		if err != nil {
			return fmt.Errorf("run %s: failed to encode variables: %w", run.ID, err)
		}
		outcomes, err := json.Marshal(run.Outcomes)
		if err != nil {
			return fmt.Errorf("run %s: failed to encode outcomes: %w", run.ID, err)
		}
		best, err := json.Marshal(run.BestOption)
		if err != nil {
			return fmt.Errorf("run %s: failed to encode best option: %w", run.ID, err)
		}

		_, err = stmt.Exec(run.ID, run.ScenarioID, run.Timestamp.Format(time.RFC3339Nano),
			string(variables), string(outcomes), string(best), i)
		if err != nil {
			return fmt.Errorf("run %s: failed to insert: %w", run.ID, err)
		}
	}

	return tx.Commit()
}
