package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/football-data/internal/config"
	"github.com/riskibarqy/football-data/internal/platform/logging"
)

type capturedShipment struct {
	mu     sync.Mutex
	count  int
	auth   string
	bodies []string
}

func newIngestServer(t *testing.T) (*httptest.Server, *capturedShipment) {
	t.Helper()

	captured := &capturedShipment{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured.mu.Lock()
		captured.count++
		captured.auth = r.Header.Get("Authorization")
		captured.bodies = append(captured.bodies, string(body))
		captured.mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func TestInitLogShipper_ShipsErrorEntries(t *testing.T) {
	t.Parallel()

	server, captured := newIngestServer(t)
	cfg := config.Config{
		LogShipEnabled:  true,
		LogShipEndpoint: server.URL,
		LogShipToken:    "secret-token",
		LogShipTimeout:  2 * time.Second,
		LogShipMinLevel: logging.LevelError,
	}

	logger, shutdown, err := InitLogShipper(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init log shipper: %v", err)
	}

	logger.ErrorContext(context.Background(), "sync item failed", "key", "standings:39")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown shipper: %v", err)
	}

	captured.mu.Lock()
	defer captured.mu.Unlock()
	if captured.count != 1 {
		t.Fatalf("expected one shipped entry, got %d", captured.count)
	}
	if captured.auth != "Bearer secret-token" {
		t.Fatalf("unexpected authorization header: %q", captured.auth)
	}
	if !strings.Contains(captured.bodies[0], `"message":"sync item failed"`) {
		t.Fatalf("unexpected shipped body: %s", captured.bodies[0])
	}
}

func TestInitLogShipper_RespectsMinLevel(t *testing.T) {
	t.Parallel()

	server, captured := newIngestServer(t)
	cfg := config.Config{
		LogShipEnabled:  true,
		LogShipEndpoint: server.URL,
		LogShipTimeout:  2 * time.Second,
		LogShipMinLevel: logging.LevelError,
	}

	logger, shutdown, err := InitLogShipper(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init log shipper: %v", err)
	}

	logger.InfoContext(context.Background(), "info entry stays local")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown shipper: %v", err)
	}

	captured.mu.Lock()
	defer captured.mu.Unlock()
	if captured.count != 0 {
		t.Fatalf("expected no shipped entries, got %d", captured.count)
	}
}

func TestNormalizeLogShipEndpoint(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"logs.example.com":          "https://logs.example.com",
		"http://localhost:9000/in":  "http://localhost:9000/in",
		" https://logs.example.com": "https://logs.example.com",
	}
	for in, want := range cases {
		if got := normalizeLogShipEndpoint(in); got != want {
			t.Fatalf("normalizeLogShipEndpoint(%q) = %q, want %q", in, got, want)
		}
	}
}
