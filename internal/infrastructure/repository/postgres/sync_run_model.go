package postgres

import (
	"database/sql"
	"time"
)

type syncRunTableModel struct {
	ID         string         `db:"id"`
	Operation  string         `db:"operation"`
	Trigger    string         `db:"triggered_by"`
	Status     string         `db:"status"`
	Success    int            `db:"success"`
	Failed     int            `db:"failed"`
	Records    int            `db:"records"`
	Error      sql.NullString `db:"error"`
	StartedAt  time.Time      `db:"started_at"`
	FinishedAt time.Time      `db:"finished_at"`
}
