package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/riskibarqy/football-data/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	football  *usecase.FootballService
	sync      *usecase.SyncService
	scheduler *usecase.SyncScheduler
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(
	football *usecase.FootballService,
	sync *usecase.SyncService,
	scheduler *usecase.SyncScheduler,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		football:  football,
		sync:      sync,
		scheduler: scheduler,
		logger:    logger.Named("httpapi"),
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"status":            "ok",
		"scheduler_running": h.scheduler != nil && h.scheduler.Running(),
	})
}

// NotFound answers every path no route claims.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeErrorMessage(r.Context(), w, http.StatusNotFound, fmt.Sprintf("route %s %s not found", r.Method, r.URL.Path))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeOptionalJSON decodes the request body into target. An empty body is
// not an error.
func decodeOptionalJSON(r *http.Request, target any) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}

	decoder := sonic.ConfigDefault.NewDecoder(strings.NewReader(string(raw)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}

// queryInt reads an optional integer query parameter; absent means zero.
func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return v, nil
}

func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return v, nil
}

type seasonQuery struct {
	Season int `validate:"gte=0,lte=2100"`
}

type matchListQuery struct {
	LeagueID int64 `validate:"gte=0"`
	Limit    int   `validate:"gte=0,lte=50"`
}

type matchDetailsRequest struct {
	MatchIDs []int64 `json:"match_ids" validate:"max=20,dive,gt=0"`
}

func (h *Handler) parseSeason(ctx context.Context, r *http.Request) (int, error) {
	season, err := queryInt(r, "season")
	if err != nil {
		return 0, err
	}
	if err := h.validateRequest(ctx, seasonQuery{Season: season}); err != nil {
		return 0, err
	}
	return season, nil
}

func (h *Handler) parseMatchListQuery(ctx context.Context, r *http.Request) (matchListQuery, error) {
	leagueID, err := queryID(r, "leagueId")
	if err != nil {
		return matchListQuery{}, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return matchListQuery{}, err
	}
	q := matchListQuery{LeagueID: leagueID, Limit: limit}
	if err := h.validateRequest(ctx, q); err != nil {
		return matchListQuery{}, err
	}
	return q, nil
}
