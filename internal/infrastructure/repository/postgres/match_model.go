package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID         int64          `db:"id"`
	LeagueID   int64          `db:"league_id"`
	Season     int            `db:"season"`
	Round      sql.NullString `db:"round"`
	Matchday   sql.NullInt32  `db:"matchday"`
	HomeTeamID int64          `db:"home_team_id"`
	AwayTeamID int64          `db:"away_team_id"`
	KickoffAt  time.Time      `db:"kickoff_at"`
	Status     string         `db:"status"`
	StatusCode sql.NullString `db:"status_code"`
	Elapsed    sql.NullInt32  `db:"elapsed"`
	HomeScore  sql.NullInt32  `db:"home_score"`
	AwayScore  sql.NullInt32  `db:"away_score"`
	Venue      sql.NullString `db:"venue"`
	VenueCity  sql.NullString `db:"venue_city"`
	Referee    sql.NullString `db:"referee"`
	CreatedAt  time.Time      `db:"created_at,readonly"`
	UpdatedAt  time.Time      `db:"updated_at,readonly"`
}

// matchRow is a match joined with both team names.
type matchRow struct {
	matchTableModel
	HomeTeamName sql.NullString `db:"home_team_name"`
	HomeTeamLogo sql.NullString `db:"home_team_logo"`
	AwayTeamName sql.NullString `db:"away_team_name"`
	AwayTeamLogo sql.NullString `db:"away_team_logo"`
}
