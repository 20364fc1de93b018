package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/domain/topscorer"
	qb "github.com/riskibarqy/football-data/internal/platform/querybuilder"
)

type TopScorerRepository struct {
	db *sqlx.DB
}

var topScorerSelectColumns = []string{
	"league_id",
	"season",
	"player_id",
	"rank",
	"player_name",
	"player_photo",
	"nationality",
	"team_id",
	"team_name",
	"team_logo",
	"goals",
	"assists",
	"appearances",
	"updated_at",
}

func NewTopScorerRepository(db *sqlx.DB) *TopScorerRepository {
	return &TopScorerRepository{db: db}
}

func (r *TopScorerRepository) ListByLeague(ctx context.Context, leagueID int64, season int) ([]topscorer.TopScorer, error) {
	query, args, err := qb.Select(topScorerSelectColumns...).From("top_scorers").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season", season),
		).
		OrderBy("rank", "goals DESC", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select top scorers query: %w", err)
	}

	var rows []topScorerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top scorers: %w", err)
	}

	out := make([]topscorer.TopScorer, 0, len(rows))
	for _, row := range rows {
		out = append(out, topscorer.TopScorer{
			LeagueID:    row.LeagueID,
			Season:      row.Season,
			Rank:        row.Rank,
			PlayerID:    row.PlayerID,
			PlayerName:  row.PlayerName,
			PlayerPhoto: nullStringValue(row.PlayerPhoto),
			Nationality: nullStringValue(row.Nationality),
			TeamID:      nullInt64Value(row.TeamID),
			TeamName:    nullStringValue(row.TeamName),
			TeamLogo:    nullStringValue(row.TeamLogo),
			Goals:       row.Goals,
			Assists:     row.Assists,
			Appearances: row.Appearances,
		})
	}

	return out, nil
}

// Replace swaps the scorer chart of a league season in one transaction.
func (r *TopScorerRepository) Replace(ctx context.Context, leagueID int64, season int, items []topscorer.TopScorer) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace top scorers: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM top_scorers WHERE league_id = $1 AND season = $2", leagueID, season); err != nil {
		return fmt.Errorf("delete top scorers league_id=%d season=%d: %w", leagueID, season, err)
	}

	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.PlayerID]; dup {
			continue
		}
		seen[item.PlayerID] = struct{}{}

		row := topScorerTableModel{
			LeagueID:    leagueID,
			Season:      season,
			PlayerID:    item.PlayerID,
			Rank:        item.Rank,
			PlayerName:  item.PlayerName,
			PlayerPhoto: nullString(item.PlayerPhoto),
			Nationality: nullString(item.Nationality),
			TeamID:      nullPositiveInt64(item.TeamID),
			TeamName:    nullString(item.TeamName),
			TeamLogo:    nullString(item.TeamLogo),
			Goals:       item.Goals,
			Assists:     item.Assists,
			Appearances: item.Appearances,
		}
		query, args, err := qb.InsertModel("top_scorers", row, "")
		if err != nil {
			return fmt.Errorf("build insert top scorer query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert top scorer player_id=%d: %w", item.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace top scorers tx: %w", err)
	}
	return nil
}
