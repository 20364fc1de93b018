package app

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/config"
	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const (
	maxTracedQueryLength = 512
	dbPingTimeout        = 5 * time.Second
)

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// openDB opens the postgres pool through otelsqlx so every query becomes a
// span under the request that issued it.
func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary, cfg.ServiceName)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("close database failed", "error", err)
	}
}

// normalizeDBURL fills in connection parameters the caller left unset. DSNs
// in key=value form are returned untouched.
func normalizeDBURL(raw string, disablePreparedBinary bool, applicationName string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	changed := false
	if disablePreparedBinary && query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		changed = true
	}
	if name := strings.TrimSpace(applicationName); name != "" && query.Get("application_name") == "" {
		query.Set("application_name", name)
		changed = true
	}
	if !changed {
		return raw
	}

	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		name, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(strings.TrimSpace(name), `"'`); name != "" {
			return name
		}
	}

	return ""
}

func formatDBQueryForTrace(query string) string {
	normalized := queryWhitespaceRegex.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
