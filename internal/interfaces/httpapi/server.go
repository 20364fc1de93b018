package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-data/internal/platform/logging"
)

const apiPrefix = "/api/football-data"

type RouterConfig struct {
	CORSAllowedOrigins []string
	SyncToken          string
	SwaggerEnabled     bool
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.SwaggerEnabled)
	registerLeagueRoutes(mux, handler)
	registerMatchRoutes(mux, handler)
	registerTeamRoutes(mux, handler)
	registerStatisticsRoutes(mux, handler)
	registerSyncRoutes(mux, handler, cfg.SyncToken)
	mux.HandleFunc("/", handler.NotFound)

	return RequestTracing(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeErrorMessage(ctx, w, http.StatusInternalServerError, fmt.Sprint(rec))
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
