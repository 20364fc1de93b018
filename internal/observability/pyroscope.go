package observability

import (
	"fmt"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/football-data/internal/config"
	"github.com/riskibarqy/football-data/internal/platform/logging"
)

var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
	pyroscope.ProfileMutexCount,
	pyroscope.ProfileMutexDuration,
	pyroscope.ProfileBlockCount,
	pyroscope.ProfileBlockDuration,
}

// InitPyroscope starts continuous profiling when enabled.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Logger:            pyroscopeLogger{logger: logger.Named("pyroscope")},
		Tags:              profileTags(cfg),
		ProfileTypes:      profileTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}

	logger.Info("pyroscope enabled",
		"server_address", cfg.PyroscopeServerAddress,
		"application", cfg.PyroscopeAppName,
	)

	return profiler.Stop, nil
}

func profileTags(cfg config.Config) map[string]string {
	tags := map[string]string{
		"env":     cfg.AppEnv,
		"service": cfg.ServiceName,
	}
	if cfg.ServiceVersion != "" {
		tags["version"] = cfg.ServiceVersion
	}
	return tags
}

// pyroscopeLogger routes profiler output through the service logger. Debug
// chatter is dropped.
type pyroscopeLogger struct {
	logger *logging.Logger
}

func (l pyroscopeLogger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l pyroscopeLogger) Debugf(string, ...any) {}

func (l pyroscopeLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}
