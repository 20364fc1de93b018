package headtohead

import (
	"sort"

	"github.com/riskibarqy/football-data/internal/domain/match"
)

// HeadToHead aggregates finished meetings between two teams. TeamAID is
// always the lower id so the value does not depend on argument order.
type HeadToHead struct {
	TeamAID    int64
	TeamBID    int64
	Played     int
	TeamAWins  int
	TeamBWins  int
	Draws      int
	TeamAGoals int
	TeamBGoals int
	Matches    []match.Match
}

// NormalizePair orders a team pair so the lower id comes first.
func NormalizePair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}

// Aggregate builds the head-to-head record for a and b from matches. Only
// finished meetings with a recorded score between the two teams count;
// Matches keeps them newest first.
func Aggregate(a, b int64, matches []match.Match) HeadToHead {
	teamA, teamB := NormalizePair(a, b)
	out := HeadToHead{TeamAID: teamA, TeamBID: teamB}

	seen := make(map[int64]struct{}, len(matches))
	for _, m := range matches {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		if !m.Involves(teamA) || !m.Involves(teamB) {
			continue
		}
		if m.Status != match.StatusFinished || m.HomeScore == nil || m.AwayScore == nil {
			continue
		}
		seen[m.ID] = struct{}{}

		goalsA, goalsB := *m.HomeScore, *m.AwayScore
		if m.Home.ID != teamA {
			goalsA, goalsB = goalsB, goalsA
		}

		out.Played++
		out.TeamAGoals += goalsA
		out.TeamBGoals += goalsB
		switch {
		case goalsA > goalsB:
			out.TeamAWins++
		case goalsB > goalsA:
			out.TeamBWins++
		default:
			out.Draws++
		}
		out.Matches = append(out.Matches, m)
	}

	sort.SliceStable(out.Matches, func(i, j int) bool {
		if out.Matches[i].KickoffAt.Equal(out.Matches[j].KickoffAt) {
			return out.Matches[i].ID > out.Matches[j].ID
		}
		return out.Matches[i].KickoffAt.After(out.Matches[j].KickoffAt)
	})

	return out
}
