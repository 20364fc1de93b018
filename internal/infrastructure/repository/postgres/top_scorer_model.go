package postgres

import (
	"database/sql"
	"time"
)

type topScorerTableModel struct {
	LeagueID    int64          `db:"league_id"`
	Season      int            `db:"season"`
	PlayerID    int64          `db:"player_id"`
	Rank        int            `db:"rank"`
	PlayerName  string         `db:"player_name"`
	PlayerPhoto sql.NullString `db:"player_photo"`
	Nationality sql.NullString `db:"nationality"`
	TeamID      sql.NullInt64  `db:"team_id"`
	TeamName    sql.NullString `db:"team_name"`
	TeamLogo    sql.NullString `db:"team_logo"`
	Goals       int            `db:"goals"`
	Assists     int            `db:"assists"`
	Appearances int            `db:"appearances"`
	UpdatedAt   time.Time      `db:"updated_at,readonly"`
}
