package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/domain/league"
	qb "github.com/riskibarqy/football-data/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

var leagueSelectColumns = []string{
	"id",
	"name",
	"type",
	"country",
	"country_code",
	"logo",
	"flag",
	"season",
	"current_matchday",
	"total_matchdays",
	"created_at",
	"updated_at",
}

var leagueUpsert = qb.Upsert{
	Table:           "leagues",
	ConflictColumns: []string{"id"},
	Overrides: map[string]string{
		"current_matchday": "COALESCE(EXCLUDED.current_matchday, leagues.current_matchday)",
		"total_matchdays":  "COALESCE(EXCLUDED.total_matchdays, leagues.total_matchdays)",
	},
	ExtraSets: []string{"updated_at = NOW()"},
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select(leagueSelectColumns...).From("leagues").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	return leaguesFromRows(rows), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	query, args, err := qb.Select(leagueSelectColumns...).From("leagues").
		Where(qb.Eq("id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) ListByCountry(ctx context.Context, country string) ([]league.League, error) {
	country = strings.TrimSpace(country)
	query, args, err := qb.Select(leagueSelectColumns...).From("leagues").
		Where(qb.Or(
			qb.Expr("LOWER(country) = LOWER(?)", country),
			qb.Expr("LOWER(country_code) = LOWER(?)", country),
		)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues by country query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues by country: %w", err)
	}

	return leaguesFromRows(rows), nil
}

func (r *LeagueRepository) Upsert(ctx context.Context, item league.League) error {
	query, args, err := buildLeagueUpsert(item)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert league id=%d: %w", item.ID, err)
	}
	return nil
}

func buildLeagueUpsert(item league.League) (string, []any, error) {
	row := leagueTableModel{
		ID:              item.ID,
		Name:            item.Name,
		Type:            nullString(item.Type),
		Country:         nullString(item.Country),
		CountryCode:     nullString(item.CountryCode),
		Logo:            nullString(item.Logo),
		Flag:            nullString(item.Flag),
		Season:          item.Season,
		CurrentMatchday: nullPositiveInt(item.CurrentMatchday),
		TotalMatchdays:  nullPositiveInt(item.TotalMatchdays),
	}
	query, args, err := qb.UpsertModel(leagueUpsert, row)
	if err != nil {
		return "", nil, fmt.Errorf("build upsert league query: %w", err)
	}
	return query, args, nil
}

func leaguesFromRows(rows []leagueTableModel) []league.League {
	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}
	return out
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:              row.ID,
		Name:            row.Name,
		Type:            nullStringValue(row.Type),
		Country:         nullStringValue(row.Country),
		CountryCode:     nullStringValue(row.CountryCode),
		Logo:            nullStringValue(row.Logo),
		Flag:            nullStringValue(row.Flag),
		Season:          row.Season,
		CurrentMatchday: nullIntValue(row.CurrentMatchday),
		TotalMatchdays:  nullIntValue(row.TotalMatchdays),
	}
}
