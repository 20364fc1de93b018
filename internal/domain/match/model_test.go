package match

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestMergeStatus_NeverMovesBackwards(t *testing.T) {
	t.Parallel()

	cases := []struct {
		current  Status
		incoming Status
		want     Status
	}{
		{StatusScheduled, StatusLive, StatusLive},
		{StatusLive, StatusFinished, StatusFinished},
		{StatusScheduled, StatusFinished, StatusFinished},
		{StatusLive, StatusScheduled, StatusLive},
		{StatusFinished, StatusLive, StatusFinished},
		{StatusFinished, StatusScheduled, StatusFinished},
		{StatusFinished, StatusFinished, StatusFinished},
		{"", StatusScheduled, StatusScheduled},
		{StatusLive, "bogus", StatusLive},
	}

	for _, tc := range cases {
		if got := MergeStatus(tc.current, tc.incoming); got != tc.want {
			t.Fatalf("MergeStatus(%q, %q) = %q, want %q", tc.current, tc.incoming, got, tc.want)
		}
	}
}

func TestMerge_KeepsFinishedScore(t *testing.T) {
	t.Parallel()

	existing := Match{ID: 1, Status: StatusFinished, StatusCode: "FT", Elapsed: 90, HomeScore: intPtr(2), AwayScore: intPtr(1)}
	incoming := Match{ID: 1, Status: StatusLive, StatusCode: "2H", Elapsed: 70, HomeScore: intPtr(1), AwayScore: intPtr(1), Referee: "M. Oliver"}

	got := Merge(existing, incoming)
	if got.Status != StatusFinished || got.StatusCode != "FT" || *got.HomeScore != 2 {
		t.Fatalf("expected finished state to be kept, got %+v", got)
	}
	if got.Referee != "M. Oliver" {
		t.Fatalf("expected non-status fields from incoming, got %q", got.Referee)
	}
}

func TestMerge_TakesForwardUpdate(t *testing.T) {
	t.Parallel()

	existing := Match{ID: 1, Status: StatusLive, HomeScore: intPtr(0), AwayScore: intPtr(0)}
	incoming := Match{ID: 1, Status: StatusFinished, HomeScore: intPtr(3), AwayScore: intPtr(0)}

	got := Merge(existing, incoming)
	if got.Status != StatusFinished || *got.HomeScore != 3 {
		t.Fatalf("expected incoming state, got %+v", got)
	}
}

func TestMatch_Validate(t *testing.T) {
	t.Parallel()

	valid := Match{
		ID:        10,
		LeagueID:  39,
		Home:      TeamRef{ID: 1},
		Away:      TeamRef{ID: 2},
		Status:    StatusScheduled,
		KickoffAt: time.Date(2026, 8, 15, 14, 0, 0, 0, time.UTC),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid match: %v", err)
	}

	sameTeam := valid
	sameTeam.Away.ID = 1
	if err := sameTeam.Validate(); err == nil {
		t.Fatalf("expected error when both sides are the same team")
	}

	noLeague := valid
	noLeague.LeagueID = 0
	if err := noLeague.Validate(); err == nil {
		t.Fatalf("expected error without league")
	}
}
