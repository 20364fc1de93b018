package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/domain/match"
	qb "github.com/riskibarqy/football-data/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

const matchFromJoin = "matches m LEFT JOIN teams ht ON ht.id = m.home_team_id LEFT JOIN teams aw ON aw.id = m.away_team_id"

var matchSelectColumns = []string{
	"m.id",
	"m.league_id",
	"m.season",
	"m.round",
	"m.matchday",
	"m.home_team_id",
	"m.away_team_id",
	"m.kickoff_at",
	"m.status",
	"m.status_code",
	"m.elapsed",
	"m.home_score",
	"m.away_score",
	"m.venue",
	"m.venue_city",
	"m.referee",
	"m.created_at",
	"m.updated_at",
	"ht.name AS home_team_name",
	"ht.logo AS home_team_logo",
	"aw.name AS away_team_name",
	"aw.logo AS away_team_logo",
}

const (
	storedStatusRank   = "CASE matches.status WHEN 'finished' THEN 2 WHEN 'live' THEN 1 ELSE 0 END"
	incomingStatusRank = "CASE EXCLUDED.status WHEN 'finished' THEN 2 WHEN 'live' THEN 1 ELSE 0 END"
)

// unlessRegressed keeps the stored value of col when the incoming row would
// move the match status backwards.
func unlessRegressed(col string) string {
	return "CASE WHEN " + incomingStatusRank + " >= " + storedStatusRank +
		" THEN EXCLUDED." + col + " ELSE matches." + col + " END"
}

var matchUpsert = qb.Upsert{
	Table:           "matches",
	ConflictColumns: []string{"id"},
	Overrides: map[string]string{
		"status":      unlessRegressed("status"),
		"status_code": unlessRegressed("status_code"),
		"elapsed":     unlessRegressed("elapsed"),
		"home_score":  unlessRegressed("home_score"),
		"away_score":  unlessRegressed("away_score"),
		"round":       "COALESCE(EXCLUDED.round, matches.round)",
		"matchday":    "COALESCE(EXCLUDED.matchday, matches.matchday)",
		"venue":       "COALESCE(EXCLUDED.venue, matches.venue)",
		"venue_city":  "COALESCE(EXCLUDED.venue_city, matches.venue_city)",
		"referee":     "COALESCE(EXCLUDED.referee, matches.referee)",
	},
	ExtraSets: []string{"updated_at = NOW()"},
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From(matchFromJoin).
		Where(qb.Eq("m.id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) List(ctx context.Context, q match.Query) ([]match.Match, error) {
	query, args, err := buildMatchListQuery(q)
	if err != nil {
		return nil, err
	}

	var rows []matchRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	return matchesFromRows(rows), nil
}

func (r *MatchRepository) ListBetweenTeams(ctx context.Context, teamA, teamB int64, limit int) ([]match.Match, error) {
	query, args, err := buildHeadToHeadQuery(teamA, teamB, limit)
	if err != nil {
		return nil, err
	}

	var rows []matchRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select head-to-head matches: %w", err)
	}

	return matchesFromRows(rows), nil
}

func (r *MatchRepository) Upsert(ctx context.Context, items []match.Match) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert matches: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, item := range items {
		query, args, err := buildMatchUpsert(item)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			switch {
			case isForeignKeyViolation(err):
				return fmt.Errorf("upsert match id=%d: unknown team %d or %d: %w", item.ID, item.Home.ID, item.Away.ID, err)
			case isCheckViolation(err):
				return fmt.Errorf("upsert match id=%d: row rejected by table constraint: %w", item.ID, err)
			}
			return fmt.Errorf("upsert match id=%d: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert matches tx: %w", err)
	}
	return nil
}

func buildMatchListQuery(q match.Query) (string, []any, error) {
	var conditions []qb.Condition
	if q.LeagueID > 0 {
		conditions = append(conditions, qb.Eq("m.league_id", q.LeagueID))
	}
	if q.Season > 0 {
		conditions = append(conditions, qb.Eq("m.season", q.Season))
	}
	if q.TeamID > 0 {
		conditions = append(conditions, qb.Or(
			qb.Eq("m.home_team_id", q.TeamID),
			qb.Eq("m.away_team_id", q.TeamID),
		))
	}
	if len(q.Statuses) > 0 {
		statuses := make([]any, 0, len(q.Statuses))
		for _, status := range q.Statuses {
			statuses = append(statuses, string(status))
		}
		conditions = append(conditions, qb.In("m.status", statuses))
	}
	if !q.From.IsZero() {
		conditions = append(conditions, qb.Gte("m.kickoff_at", q.From.UTC()))
	}
	if !q.To.IsZero() {
		conditions = append(conditions, qb.Lt("m.kickoff_at", q.To.UTC()))
	}

	order := []string{"m.kickoff_at ASC", "m.id ASC"}
	if q.Descending {
		order = []string{"m.kickoff_at DESC", "m.id DESC"}
	}

	query, args, err := qb.Select(matchSelectColumns...).From(matchFromJoin).
		Where(conditions...).
		OrderBy(order...).
		Limit(q.Limit).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build select matches query: %w", err)
	}
	return query, args, nil
}

// buildHeadToHeadQuery selects the latest finished meetings of a pair in
// either home/away order.
func buildHeadToHeadQuery(teamA, teamB int64, limit int) (string, []any, error) {
	query, args, err := qb.Select(matchSelectColumns...).From(matchFromJoin).
		Where(
			qb.Or(
				qb.And(qb.Eq("m.home_team_id", teamA), qb.Eq("m.away_team_id", teamB)),
				qb.And(qb.Eq("m.home_team_id", teamB), qb.Eq("m.away_team_id", teamA)),
			),
			qb.Eq("m.status", string(match.StatusFinished)),
		).
		OrderBy("m.kickoff_at DESC", "m.id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build select head-to-head query: %w", err)
	}
	return query, args, nil
}

func buildMatchUpsert(item match.Match) (string, []any, error) {
	row := matchTableModel{
		ID:         item.ID,
		LeagueID:   item.LeagueID,
		Season:     item.Season,
		Round:      nullString(item.Round),
		Matchday:   nullPositiveInt(item.Matchday),
		HomeTeamID: item.Home.ID,
		AwayTeamID: item.Away.ID,
		KickoffAt:  item.KickoffAt.UTC(),
		Status:     string(item.Status),
		StatusCode: nullString(item.StatusCode),
		Elapsed:    nullPositiveInt(item.Elapsed),
		HomeScore:  nullIntPtr(item.HomeScore),
		AwayScore:  nullIntPtr(item.AwayScore),
		Venue:      nullString(item.Venue),
		VenueCity:  nullString(item.VenueCity),
		Referee:    nullString(item.Referee),
	}
	query, args, err := qb.UpsertModel(matchUpsert, row)
	if err != nil {
		return "", nil, fmt.Errorf("build upsert match query: %w", err)
	}
	return query, args, nil
}

func matchesFromRows(rows []matchRow) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out
}

func matchFromRow(row matchRow) match.Match {
	return match.Match{
		ID:       row.ID,
		LeagueID: row.LeagueID,
		Season:   row.Season,
		Round:    nullStringValue(row.Round),
		Matchday: nullIntValue(row.Matchday),
		Home: match.TeamRef{
			ID:   row.HomeTeamID,
			Name: nullStringValue(row.HomeTeamName),
			Logo: nullStringValue(row.HomeTeamLogo),
		},
		Away: match.TeamRef{
			ID:   row.AwayTeamID,
			Name: nullStringValue(row.AwayTeamName),
			Logo: nullStringValue(row.AwayTeamLogo),
		},
		KickoffAt:  row.KickoffAt.UTC(),
		Status:     match.Status(row.Status),
		StatusCode: nullStringValue(row.StatusCode),
		Elapsed:    nullIntValue(row.Elapsed),
		HomeScore:  nullIntToPtr(row.HomeScore),
		AwayScore:  nullIntToPtr(row.AwayScore),
		Venue:      nullStringValue(row.Venue),
		VenueCity:  nullStringValue(row.VenueCity),
		Referee:    nullStringValue(row.Referee),
	}
}
