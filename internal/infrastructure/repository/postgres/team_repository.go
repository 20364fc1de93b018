package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/domain/team"
	qb "github.com/riskibarqy/football-data/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

var teamSelectColumns = []string{
	"id",
	"name",
	"code",
	"country",
	"founded",
	"logo",
	"league_id",
	"season",
	"venue_name",
	"venue_city",
	"venue_capacity",
	"created_at",
	"updated_at",
}

// Teams arrive both as full profiles and as bare match references, so an
// upsert only overwrites columns it actually has a value for. The first
// league a team was seen in is kept.
var teamUpsert = qb.Upsert{
	Table:           "teams",
	ConflictColumns: []string{"id"},
	Overrides: map[string]string{
		"name":           "COALESCE(NULLIF(EXCLUDED.name, ''), teams.name)",
		"code":           "COALESCE(EXCLUDED.code, teams.code)",
		"country":        "COALESCE(EXCLUDED.country, teams.country)",
		"founded":        "COALESCE(EXCLUDED.founded, teams.founded)",
		"logo":           "COALESCE(EXCLUDED.logo, teams.logo)",
		"league_id":      "COALESCE(teams.league_id, EXCLUDED.league_id)",
		"season":         "GREATEST(teams.season, EXCLUDED.season)",
		"venue_name":     "COALESCE(EXCLUDED.venue_name, teams.venue_name)",
		"venue_city":     "COALESCE(EXCLUDED.venue_city, teams.venue_city)",
		"venue_capacity": "COALESCE(EXCLUDED.venue_capacity, teams.venue_capacity)",
	},
	ExtraSets: []string{"updated_at = NOW()"},
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID int64) ([]team.Team, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by league query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by league: %w", err)
	}

	return teamsFromRows(rows), nil
}

func (r *TeamRepository) Search(ctx context.Context, q string, limit int) ([]team.Team, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(qb.ILike("name", containsPattern(q))).
		OrderBy("name", "id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search teams: %w", err)
	}

	return teamsFromRows(rows), nil
}

func (r *TeamRepository) Upsert(ctx context.Context, items []team.Team) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert teams: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, item := range items {
		query, args, err := buildTeamUpsert(item)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert team id=%d: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert teams tx: %w", err)
	}
	return nil
}

func buildTeamUpsert(item team.Team) (string, []any, error) {
	row := teamTableModel{
		ID:            item.ID,
		Name:          item.Name,
		Code:          nullString(item.Code),
		Country:       nullString(item.Country),
		Founded:       nullPositiveInt(item.Founded),
		Logo:          nullString(item.Logo),
		LeagueID:      nullPositiveInt64(item.LeagueID),
		Season:        nullPositiveInt(item.Season),
		VenueName:     nullString(item.VenueName),
		VenueCity:     nullString(item.VenueCity),
		VenueCapacity: nullPositiveInt(item.VenueCapacity),
	}
	query, args, err := qb.UpsertModel(teamUpsert, row)
	if err != nil {
		return "", nil, fmt.Errorf("build upsert team query: %w", err)
	}
	return query, args, nil
}

func teamsFromRows(rows []teamTableModel) []team.Team {
	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:            row.ID,
		Name:          row.Name,
		Code:          nullStringValue(row.Code),
		Country:       nullStringValue(row.Country),
		Founded:       nullIntValue(row.Founded),
		Logo:          nullStringValue(row.Logo),
		LeagueID:      nullInt64Value(row.LeagueID),
		Season:        nullIntValue(row.Season),
		VenueName:     nullStringValue(row.VenueName),
		VenueCity:     nullStringValue(row.VenueCity),
		VenueCapacity: nullIntValue(row.VenueCapacity),
	}
}
