package postgres

import (
	"database/sql"
	"time"
)

type leagueTableModel struct {
	ID              int64          `db:"id"`
	Name            string         `db:"name"`
	Type            sql.NullString `db:"type"`
	Country         sql.NullString `db:"country"`
	CountryCode     sql.NullString `db:"country_code"`
	Logo            sql.NullString `db:"logo"`
	Flag            sql.NullString `db:"flag"`
	Season          int            `db:"season"`
	CurrentMatchday sql.NullInt32  `db:"current_matchday"`
	TotalMatchdays  sql.NullInt32  `db:"total_matchdays"`
	CreatedAt       time.Time      `db:"created_at,readonly"`
	UpdatedAt       time.Time      `db:"updated_at,readonly"`
}
