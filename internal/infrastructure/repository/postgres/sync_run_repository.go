package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/domain/syncrun"
	qb "github.com/riskibarqy/football-data/internal/platform/querybuilder"
)

const defaultSyncRunListLimit = 20

type SyncRunRepository struct {
	db *sqlx.DB
}

var syncRunSelectColumns = []string{
	"id",
	"operation",
	"triggered_by",
	"status",
	"success",
	"failed",
	"records",
	"error",
	"started_at",
	"finished_at",
}

func NewSyncRunRepository(db *sqlx.DB) *SyncRunRepository {
	return &SyncRunRepository{db: db}
}

func (r *SyncRunRepository) Create(ctx context.Context, run syncrun.Run) error {
	row := syncRunTableModel{
		ID:         run.ID,
		Operation:  run.Operation,
		Trigger:    string(run.Trigger),
		Status:     string(run.Status),
		Success:    run.Success,
		Failed:     run.Failed,
		Records:    run.Records,
		Error:      nullString(run.Error),
		StartedAt:  run.StartedAt.UTC(),
		FinishedAt: run.FinishedAt.UTC(),
	}
	query, args, err := qb.InsertModel("sync_runs", row, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert sync run query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert sync run id=%s: %w", run.ID, err)
	}
	return nil
}

func (r *SyncRunRepository) GetByID(ctx context.Context, runID string) (syncrun.Run, bool, error) {
	query, args, err := qb.Select(syncRunSelectColumns...).From("sync_runs").
		Where(qb.Eq("id", runID)).
		ToSQL()
	if err != nil {
		return syncrun.Run{}, false, fmt.Errorf("build get sync run query: %w", err)
	}

	var row syncRunTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return syncrun.Run{}, false, nil
		}
		return syncrun.Run{}, false, fmt.Errorf("get sync run: %w", err)
	}

	return syncRunFromRow(row), true, nil
}

func (r *SyncRunRepository) ListRecent(ctx context.Context, limit int) ([]syncrun.Run, error) {
	if limit <= 0 {
		limit = defaultSyncRunListLimit
	}
	query, args, err := qb.Select(syncRunSelectColumns...).From("sync_runs").
		OrderBy("started_at DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list sync runs query: %w", err)
	}

	var rows []syncRunTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sync runs: %w", err)
	}

	out := make([]syncrun.Run, 0, len(rows))
	for _, row := range rows {
		out = append(out, syncRunFromRow(row))
	}
	return out, nil
}

func syncRunFromRow(row syncRunTableModel) syncrun.Run {
	return syncrun.Run{
		ID:         row.ID,
		Operation:  row.Operation,
		Trigger:    syncrun.Trigger(row.Trigger),
		Status:     syncrun.Status(row.Status),
		Success:    row.Success,
		Failed:     row.Failed,
		Records:    row.Records,
		Error:      nullStringValue(row.Error),
		StartedAt:  row.StartedAt.UTC(),
		FinishedAt: row.FinishedAt.UTC(),
	}
}
