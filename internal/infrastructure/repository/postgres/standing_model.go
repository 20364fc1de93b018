package postgres

import (
	"database/sql"
	"time"
)

type standingTableModel struct {
	LeagueID       int64          `db:"league_id"`
	Season         int            `db:"season"`
	TeamID         int64          `db:"team_id"`
	GroupName      sql.NullString `db:"group_name"`
	Rank           int            `db:"rank"`
	TeamName       string         `db:"team_name"`
	TeamLogo       sql.NullString `db:"team_logo"`
	Played         int            `db:"played"`
	Won            int            `db:"won"`
	Drawn          int            `db:"drawn"`
	Lost           int            `db:"lost"`
	GoalsFor       int            `db:"goals_for"`
	GoalsAgainst   int            `db:"goals_against"`
	GoalDifference int            `db:"goal_difference"`
	Points         int            `db:"points"`
	Form           sql.NullString `db:"form"`
	Description    sql.NullString `db:"description"`
	UpdatedAt      time.Time      `db:"updated_at,readonly"`
}
