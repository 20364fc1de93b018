package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID            int64          `db:"id"`
	Name          string         `db:"name"`
	Code          sql.NullString `db:"code"`
	Country       sql.NullString `db:"country"`
	Founded       sql.NullInt32  `db:"founded"`
	Logo          sql.NullString `db:"logo"`
	LeagueID      sql.NullInt64  `db:"league_id"`
	Season        sql.NullInt32  `db:"season"`
	VenueName     sql.NullString `db:"venue_name"`
	VenueCity     sql.NullString `db:"venue_city"`
	VenueCapacity sql.NullInt32  `db:"venue_capacity"`
	CreatedAt     time.Time      `db:"created_at,readonly"`
	UpdatedAt     time.Time      `db:"updated_at,readonly"`
}
