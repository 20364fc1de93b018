package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/domain/standing"
	qb "github.com/riskibarqy/football-data/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

var standingSelectColumns = []string{
	"league_id",
	"season",
	"team_id",
	"group_name",
	"rank",
	"team_name",
	"team_logo",
	"played",
	"won",
	"drawn",
	"lost",
	"goals_for",
	"goals_against",
	"goal_difference",
	"points",
	"form",
	"description",
	"updated_at",
}

var standingUpsert = qb.Upsert{
	Table:           "standings",
	ConflictColumns: []string{"league_id", "season", "team_id"},
	ExtraSets:       []string{"updated_at = NOW()"},
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListByLeague(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error) {
	query, args, err := qb.Select(standingSelectColumns...).From("standings").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season", season),
		).
		OrderBy("group_name NULLS FIRST", "rank", "team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Standing{
			LeagueID:       row.LeagueID,
			Season:         row.Season,
			Group:          nullStringValue(row.GroupName),
			Rank:           row.Rank,
			TeamID:         row.TeamID,
			TeamName:       row.TeamName,
			TeamLogo:       nullStringValue(row.TeamLogo),
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
			Form:           nullStringValue(row.Form),
			Description:    nullStringValue(row.Description),
		})
	}

	return out, nil
}

func (r *StandingRepository) Upsert(ctx context.Context, items []standing.Standing) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert standings: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, item := range items {
		query, args, err := buildStandingUpsert(item)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf(
				"upsert standing league_id=%d season=%d team_id=%d: %w",
				item.LeagueID, item.Season, item.TeamID, err,
			)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert standings tx: %w", err)
	}
	return nil
}

func buildStandingUpsert(item standing.Standing) (string, []any, error) {
	row := standingTableModel{
		LeagueID:       item.LeagueID,
		Season:         item.Season,
		TeamID:         item.TeamID,
		GroupName:      nullString(item.Group),
		Rank:           item.Rank,
		TeamName:       item.TeamName,
		TeamLogo:       nullString(item.TeamLogo),
		Played:         item.Played,
		Won:            item.Won,
		Drawn:          item.Drawn,
		Lost:           item.Lost,
		GoalsFor:       item.GoalsFor,
		GoalsAgainst:   item.GoalsAgainst,
		GoalDifference: item.GoalDifference,
		Points:         item.Points,
		Form:           nullString(item.Form),
		Description:    nullString(item.Description),
	}
	query, args, err := qb.UpsertModel(standingUpsert, row)
	if err != nil {
		return "", nil, fmt.Errorf("build upsert standing query: %w", err)
	}
	return query, args, nil
}
