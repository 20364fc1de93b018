package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/football-data/internal/config"
	"github.com/riskibarqy/football-data/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		HTTPAddr:                ":0",
		ReadTimeout:             time.Second,
		WriteTimeout:            time.Second,
		StoreDriver:             config.StoreMemory,
		CacheEnabled:            true,
		CacheTTL:                time.Minute,
		FootballAPIRateInterval: time.Second,
		FootballAPIRateBurst:    1,
		SyncLeagueIDs:           []int64{39},
		SyncFinishedSchedule:    "0 0 1 1 *",
		SyncJobTimeout:          time.Minute,
	}
}

func TestNew_MemoryStoreServesReads(t *testing.T) {
	app, err := New(memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	t.Cleanup(func() { _ = app.Shutdown(context.Background()) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/football-data/leagues/39", nil)
	app.Server.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestNew_ProviderDisabledSyncRecordsFailedItem(t *testing.T) {
	app, err := New(memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	t.Cleanup(func() { _ = app.Shutdown(context.Background()) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/football-data/sync/match/1", nil)
	app.Server.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Failed int `json:"failed"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success || body.Data.Failed != 1 {
		t.Fatalf("expected one failed item, got %+v", body)
	}
}

func TestNew_AutostartAndShutdownStopsSchedule(t *testing.T) {
	cfg := memoryConfig()
	cfg.SyncAutostart = true

	app, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if !app.Scheduler.Running() {
		t.Fatalf("expected schedule running after autostart")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := app.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown error: %v", err)
	}
	if app.Scheduler.Running() {
		t.Fatalf("expected schedule stopped after shutdown")
	}
}

func TestNew_RejectsInvalidSchedule(t *testing.T) {
	cfg := memoryConfig()
	cfg.SyncLiveSchedule = "not a cron spec"

	if _, err := New(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected invalid schedule error")
	}
}
