package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/football-data/internal/config"
	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.uber.org/zap/zapcore"
)

// InitUptrace configures global OpenTelemetry providers for Uptrace. When log
// export is on, the returned core should be teed into the process logger.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, zapcore.Core, error) {
	if logger == nil {
		logger = logging.Default()
	}
	noop := func(context.Context) error { return nil }

	if !cfg.UptraceEnabled {
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return noop, nil, nil
	}
	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return noop, nil, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)

	var core zapcore.Core
	if cfg.UptraceLogsEnabled {
		core = newOTelLogCore(cfg.ServiceVersion, cfg.LogLevel)
	}

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
		"logs_enabled", cfg.UptraceLogsEnabled,
	)

	return uptrace.Shutdown, core, nil
}
