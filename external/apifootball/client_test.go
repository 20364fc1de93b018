package apifootball

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/match"
	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/riskibarqy/football-data/internal/platform/resilience"
	"github.com/riskibarqy/football-data/internal/usecase"
)

const testAPIKey = "secret-key"

const fixturePayload = `{
  "get": "fixtures",
  "errors": [],
  "results": 1,
  "paging": {"current": 1, "total": 1},
  "response": [{
    "fixture": {
      "id": 1035037,
      "referee": "M. Oliver",
      "date": "2025-08-16T16:30:00+01:00",
      "timestamp": 1755358200,
      "venue": {"name": "Anfield", "city": "Liverpool"},
      "status": {"long": "Second Half", "short": "2H", "elapsed": 63}
    },
    "league": {"id": 39, "season": 2025, "round": "Regular Season - 1"},
    "teams": {
      "home": {"id": 40, "name": "Liverpool", "logo": "https://media/40.png"},
      "away": {"id": 33, "name": "Manchester United", "logo": "https://media/33.png"}
    },
    "goals": {"home": 2, "away": null}
  }]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL: server.URL,
		APIKey:  testAPIKey,
		Timeout: 2 * time.Second,
		Logger:  logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})
}

func TestClient_FetchMatch_MapsFixture(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fixtures" || r.URL.Query().Get("id") != "1035037" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		if got := r.Header.Get(apiKeyHeader); got != testAPIKey {
			t.Errorf("expected api key header, got %q", got)
		}
		_, _ = w.Write([]byte(fixturePayload))
	})

	got, found, err := client.FetchMatch(context.Background(), 1035037)
	if err != nil {
		t.Fatalf("FetchMatch error: %v", err)
	}
	if !found {
		t.Fatalf("expected fixture to be found")
	}
	if got.Status != match.StatusLive || got.StatusCode != "2H" || got.Elapsed != 63 {
		t.Fatalf("unexpected status mapping: %+v", got)
	}
	if got.Matchday != 1 || got.LeagueID != 39 || got.Season != 2025 {
		t.Fatalf("unexpected league mapping: %+v", got)
	}
	if want := time.Date(2025, 8, 16, 15, 30, 0, 0, time.UTC); !got.KickoffAt.Equal(want) {
		t.Fatalf("expected kickoff %s, got %s", want, got.KickoffAt)
	}
	if got.HomeScore == nil || *got.HomeScore != 2 || got.AwayScore != nil {
		t.Fatalf("unexpected scores: home=%v away=%v", got.HomeScore, got.AwayScore)
	}
	if got.Home.Name != "Liverpool" || got.Away.ID != 33 || got.Venue != "Anfield" || got.Referee != "M. Oliver" {
		t.Fatalf("unexpected fixture details: %+v", got)
	}
}

func TestClient_FetchMatch_EmptyResponseIsNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"get":"fixtures","errors":[],"results":0,"response":[]}`))
	})

	_, found, err := client.FetchMatch(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchMatch error: %v", err)
	}
	if found {
		t.Fatalf("expected not found")
	}
}

func TestClient_StatusErrorIsUpstreamAndRedacted(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"forbidden"}`))
	})

	_, err := client.FetchLiveMatches(context.Background())
	if !errors.Is(err, usecase.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if strings.Contains(err.Error(), testAPIKey) {
		t.Fatalf("api key leaked into error: %v", err)
	}
	if isTransient(err) {
		t.Fatalf("403 must not count as transient")
	}
}

func TestClient_PayloadErrorsAreUpstream(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"get":"standings","errors":{"season":"The Season field must contain 4 characters."},"results":0,"response":[]}`))
	})

	_, err := client.FetchStandings(context.Background(), 39, 25)
	if !errors.Is(err, usecase.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if !strings.Contains(err.Error(), "season: The Season field") {
		t.Fatalf("expected provider message in error, got %v", err)
	}
}

func TestClient_CircuitOpensAfterTransientFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.FetchLiveMatches(ctx); !errors.Is(err, usecase.ErrUpstream) {
			t.Fatalf("call %d: expected ErrUpstream, got %v", i, err)
		}
	}

	_, err := client.FetchLiveMatches(ctx)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected open circuit to map to ErrDependencyUnavailable, got %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected 2 upstream hits, got %d", got)
	}
}

func TestClient_FetchLeagueRounds_DerivesCurrentRound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("dates") != "true" {
			t.Errorf("expected dates=true, got %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"errors":[],"response":[
			{"round":"Regular Season - 1","dates":["2025-08-15","2025-08-16"]},
			{"round":"Regular Season - 2","dates":["2025-08-22","2025-08-24"]},
			{"round":"Regular Season - 3","dates":["2025-08-30","2025-08-31"]}
		]}`))
	})
	client.now = func() time.Time { return time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC) }

	rounds, err := client.FetchLeagueRounds(context.Background(), 39, 2025)
	if err != nil {
		t.Fatalf("FetchLeagueRounds error: %v", err)
	}
	if rounds.Total != 3 || rounds.Current != 2 {
		t.Fatalf("unexpected rounds: %+v", rounds)
	}
}

func TestClient_RequestDeadlineIgnoresInjectedClock(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(fixturePayload))
	})
	client.now = func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) }

	if _, found, err := client.FetchMatch(context.Background(), 1035037); err != nil || !found {
		t.Fatalf("expected fixture with a past injected clock, found=%v err=%v", found, err)
	}
}

func TestClient_DistinctRequestsNeverOverlap(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
		_, _ = w.Write([]byte(fixturePayload))
	})

	const callers = 4
	var wg sync.WaitGroup
	errCh := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if _, _, err := client.FetchMatch(context.Background(), id); err != nil {
				errCh <- err
			}
		}(int64(1000 + i))
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("FetchMatch error: %v", err)
	}

	if got := peak.Load(); got != 1 {
		t.Fatalf("expected sequential upstream calls, peak concurrency=%d", got)
	}
}

func TestClient_FetchStandings_FlattensGroups(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[],"response":[{"league":{"id":2,"season":2025,"standings":[
			[{"rank":1,"team":{"id":50,"name":"Manchester City"},"points":9,"goalsDiff":7,"group":"Group A","form":"WWW","all":{"played":3,"win":3,"draw":0,"lose":0,"goals":{"for":9,"against":2}}}],
			[{"rank":1,"team":{"id":541,"name":"Real Madrid"},"points":7,"goalsDiff":4,"group":"Group B","form":null,"all":{"played":3,"win":2,"draw":1,"lose":0,"goals":{"for":6,"against":2}}}]
		]}}]}`))
	})

	rows, err := client.FetchStandings(context.Background(), 2, 2025)
	if err != nil {
		t.Fatalf("FetchStandings error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Group != "Group A" || rows[0].GoalsFor != 9 || rows[0].Form != "WWW" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].TeamID != 541 || rows[1].Drawn != 1 || rows[1].Form != "" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestClient_SearchTeams_ShortQuerySkipsProvider(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"errors":[],"response":[]}`))
	})

	teams, err := client.SearchTeams(context.Background(), "li")
	if err != nil {
		t.Fatalf("SearchTeams error: %v", err)
	}
	if len(teams) != 0 || hits.Load() != 0 {
		t.Fatalf("expected no provider call, got teams=%d hits=%d", len(teams), hits.Load())
	}
}

func TestClient_FetchTopScorers_PrefersRequestedLeagueStats(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[],"response":[{
			"player":{"id":1100,"name":"E. Haaland","nationality":"Norway","photo":"p.png"},
			"statistics":[
				{"team":{"id":50,"name":"Manchester City"},"league":{"id":2},"games":{"appearences":6},"goals":{"total":8,"assists":1}},
				{"team":{"id":50,"name":"Manchester City"},"league":{"id":39},"games":{"appearences":28},"goals":{"total":22,"assists":null}}
			]}]}`))
	})

	rows, err := client.FetchTopScorers(context.Background(), 39, 2025)
	if err != nil {
		t.Fatalf("FetchTopScorers error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one scorer, got %d", len(rows))
	}
	got := rows[0]
	if got.Rank != 1 || got.Goals != 22 || got.Assists != 0 || got.Appearances != 28 || got.Nationality != "Norway" {
		t.Fatalf("unexpected scorer: %+v", got)
	}
}

func TestMapStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		short string
		want  match.Status
	}{
		{short: "NS", want: match.StatusScheduled},
		{short: "TBD", want: match.StatusScheduled},
		{short: "PST", want: match.StatusScheduled},
		{short: "1H", want: match.StatusLive},
		{short: "ht", want: match.StatusLive},
		{short: "P", want: match.StatusLive},
		{short: "FT", want: match.StatusFinished},
		{short: "PEN", want: match.StatusFinished},
		{short: "AWD", want: match.StatusFinished},
	}

	for _, tc := range tests {
		t.Run(tc.short, func(t *testing.T) {
			t.Parallel()
			if got := mapStatus(tc.short); got != tc.want {
				t.Fatalf("mapStatus(%q)=%s, want %s", tc.short, got, tc.want)
			}
		})
	}
}

func TestRedactURL(t *testing.T) {
	t.Parallel()

	got := redactURL("https://example.test/fixtures?id=1&token=abc")
	if strings.Contains(got, "abc") {
		t.Fatalf("expected token to be redacted, got %s", got)
	}
}
