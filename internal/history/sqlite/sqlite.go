package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"cpu-scheduler/internal/history"
)

// Store writes simulation runs to a SQLite database.
type Store struct {
	db *sql.DB
}

var _ history.Store = (*Store)(nil)

// New opens a SQLite history store.
// DSN format:
//   - "sqlite:///path/to/file.db"
//   - "sqlite://:memory:"
//   - "/path/to/file.db" (without prefix)
//   - ":memory:" (in-memory database)
func New(dsn string) (*Store, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, errors.New("empty SQLite DSN")
	}
	if strings.HasPrefix(strings.ToLower(dsn), "sqlite://") {
		dsn = dsn[len("sqlite://"):]
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection keeps ":memory:" databases shared between calls
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS simulation_runs(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			occurred_at_ms INTEGER NOT NULL,
			algorithm TEXT NOT NULL,
			time_quantum INTEGER NOT NULL DEFAULT 0,
			aging_interval INTEGER NOT NULL DEFAULT 0,
			process_count INTEGER NOT NULL,
			total_time INTEGER NOT NULL,
			idle_time INTEGER NOT NULL,
			avg_waiting REAL NOT NULL,
			avg_turnaround REAL NOT NULL,
			avg_response REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS simulation_processes(
			run_id INTEGER NOT NULL REFERENCES simulation_runs(id),
			pid TEXT NOT NULL,
			arrival INTEGER NOT NULL,
			burst INTEGER NOT NULL,
			priority INTEGER NOT NULL,
			start INTEGER NOT NULL,
			completion INTEGER NOT NULL,
			waiting INTEGER NOT NULL,
			turnaround INTEGER NOT NULL,
			response INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Send(ctx context.Context, e history.Event) error {
	resp := e.Response

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO simulation_runs(occurred_at_ms, algorithm, time_quantum, aging_interval, process_count,
			total_time, idle_time, avg_waiting, avg_turnaround, avg_response)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		e.OccurredAt.UnixMilli(), resp.Algorithm, resp.TimeQuantum, resp.AgingInterval, len(resp.Details),
		resp.TotalTime, resp.IdleTime, resp.AverageWaitingTime, resp.AverageTurnAroundTime, resp.AverageResponseTime)
	if err != nil {
		return err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, d := range resp.Details {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO simulation_processes(run_id, pid, arrival, burst, priority, start, completion,
				waiting, turnaround, response)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			runID, d.ProcessId, d.ArrivalTime, d.BurstTime, d.Priority, d.StartTime, d.CompletionTime,
			d.WaitingTime, d.TurnAroundTime, d.ResponseTime); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) Recent(ctx context.Context, limit int) ([]history.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, occurred_at_ms, algorithm, process_count, total_time, avg_waiting, avg_turnaround, avg_response
		FROM simulation_runs ORDER BY id DESC LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	runs := make([]history.Run, 0)
	for rows.Next() {
		var (
			r          history.Run
			occurredMs int64
		)
		if err := rows.Scan(&r.ID, &occurredMs, &r.Algorithm, &r.ProcessCount, &r.TotalTime,
			&r.AverageWaitingTime, &r.AverageTurnAroundTime, &r.AverageResponseTime); err != nil {
			return nil, err
		}
		r.OccurredAt = time.UnixMilli(occurredMs).UTC()
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
