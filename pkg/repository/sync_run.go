package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/playsort/pkg/domain"
)

// SyncRunRepository records playlist sync passes
type SyncRunRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type syncRunRow struct {
	ID         string       `db:"id"`
	StartedAt  time.Time    `db:"started_at"`
	FinishedAt sql.NullTime `db:"finished_at"`
	Playlists  int          `db:"playlists"`
	Failures   int          `db:"failures"`
	Status     string       `db:"status"`
	Error      string       `db:"error"`
}

// NewSyncRunRepository creates a new sync run repository
func NewSyncRunRepository(db *sqlx.DB) *SyncRunRepository {
	return &SyncRunRepository{db: db, now: time.Now}
}

// StartRun inserts a new run in running state
func (r *SyncRunRepository) StartRun(ctx context.Context) (domain.SyncRun, error) {
	run := domain.SyncRun{ID: uuid.NewString(), StartedAt: r.now().UTC(), Status: domain.SyncRunning}

	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "INSERT INTO sync_runs (id, started_at, status) VALUES (?, ?, ?)",
			run.ID, run.StartedAt, string(run.Status))
		if err != nil {
			return classify(err, "start sync run")
		}
		return nil
	})
	if err != nil {
		return domain.SyncRun{}, err
	}
	return run, nil
}

// FinishRun stores the outcome of a run, sets FinishedAt if it is missing
func (r *SyncRunRepository) FinishRun(ctx context.Context, run *domain.SyncRun) error {
	if run.ID == "" {
		return errors.New("finish sync run: empty id")
	}
	if run.FinishedAt == nil {
		finished := r.now().UTC()
		run.FinishedAt = &finished
	}

	return withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `
			UPDATE sync_runs
			SET finished_at = ?, playlists = ?, failures = ?, status = ?, error = ?
			WHERE id = ?`,
			run.FinishedAt.UTC(), run.Playlists, run.Failures, string(run.Status), run.Error, run.ID)
		if err != nil {
			return classify(err, "finish sync run")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
		}
		if n == 0 {
			return &criticalError{err: fmt.Errorf("finish sync run %s: %w", run.ID, ErrNotFound)}
		}
		return nil
	})
}

// LastRun returns the most recently started run, ErrNotFound if nothing ran yet
func (r *SyncRunRepository) LastRun(ctx context.Context) (domain.SyncRun, error) {
	var row syncRunRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, started_at, finished_at, playlists, failures, status, error
		FROM sync_runs ORDER BY started_at DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SyncRun{}, fmt.Errorf("last sync run: %w", ErrNotFound)
	}
	if err != nil {
		return domain.SyncRun{}, fmt.Errorf("last sync run: %w", err)
	}

	run := domain.SyncRun{
		ID:        row.ID,
		StartedAt: row.StartedAt.UTC(),
		Playlists: row.Playlists,
		Failures:  row.Failures,
		Status:    domain.SyncStatus(row.Status),
		Error:     row.Error,
	}
	if row.FinishedAt.Valid {
		finished := row.FinishedAt.Time.UTC()
		run.FinishedAt = &finished
	}
	return run, nil
}
