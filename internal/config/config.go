package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/football-data/internal/platform/logging"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv          string
	ServiceName     string
	ServiceVersion  string
	HTTPAddr        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        logging.Level

	StoreDriver             string
	DBURL                   string
	DBDisablePreparedBinary bool
	DBMaxOpenConns          int
	DBMaxIdleConns          int
	DBConnMaxLifetime       time.Duration
	DBBootstrapSeed         bool
	CacheEnabled            bool
	CacheTTL                time.Duration

	CORSAllowedOrigins []string
	SwaggerEnabled     bool

	FootballAPIEnabled             bool
	FootballAPIBaseURL             string
	FootballAPIKey                 string
	FootballAPITimeout             time.Duration
	FootballAPIRateInterval        time.Duration
	FootballAPIRateBurst           int
	FootballAPICircuitEnabled      bool
	FootballAPICircuitFailureCount int
	FootballAPICircuitOpenTimeout  time.Duration
	FootballAPICircuitHalfOpenMax  int
	ProviderFallback               bool

	SyncLeagueIDs          []int64
	SyncSeason             int
	SyncAPIToken           string
	SyncAutostart          bool
	SyncLiveSchedule       string
	SyncUpcomingSchedule   string
	SyncFinishedSchedule   string
	SyncStandingsSchedule  string
	SyncLeaguesSchedule    string
	SyncTopScorersSchedule string
	SyncJobTimeout         time.Duration
	SyncUpcomingLimit      int
	SyncFinishedLimit      int

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	LogShipEnabled  bool
	LogShipEndpoint string
	LogShipToken    string
	LogShipTimeout  time.Duration
	LogShipMinLevel logging.Level

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	PprofEnabled bool
	PprofAddr    string
}

// Load reads the environment, after merging a .env file when one exists.
// Variables already set in the process win over the file.
func Load() (Config, error) {
	if err := loadEnvFile(getEnv("ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "football-data-api"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:       strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":8080")),
		LogLevel:       logging.ParseLevel(getEnv("LOG_LEVEL", getEnv("APP_LOG_LEVEL", "info"))),
	}
	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}

	if err := loadServer(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadStore(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadProvider(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadSync(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadServer(cfg *Config) error {
	var err error
	if cfg.ReadTimeout, err = getEnvAsDuration("APP_READ_TIMEOUT", 10*time.Second); err != nil {
		return err
	}
	// Manual sync requests run inline, so the write timeout is generous.
	if cfg.WriteTimeout, err = getEnvAsDuration("APP_WRITE_TIMEOUT", 5*time.Minute); err != nil {
		return err
	}
	if cfg.ShutdownTimeout, err = getEnvAsDuration("APP_SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return err
	}

	swaggerDefault := cfg.AppEnv != EnvProd
	if cfg.SwaggerEnabled, err = getEnvAsBool("SWAGGER_ENABLED", swaggerDefault); err != nil {
		return err
	}

	cfg.CORSAllowedOrigins = splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	return nil
}

func loadStore(cfg *Config) error {
	var err error

	cfg.DBURL = strings.TrimSpace(getEnv("DB_URL", ""))
	defaultDriver := StoreMemory
	if cfg.DBURL != "" {
		defaultDriver = StorePostgres
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(getEnv("STORE_DRIVER", defaultDriver)))
	switch cfg.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if cfg.DBURL == "" {
			return fmt.Errorf("DB_URL is required when STORE_DRIVER=%s", StorePostgres)
		}
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q: valid values are %s, %s", cfg.StoreDriver, StoreMemory, StorePostgres)
	}

	if cfg.DBDisablePreparedBinary, err = getEnvAsBool("DB_DISABLE_PREPARED_BINARY_RESULT", true); err != nil {
		return err
	}
	if cfg.DBMaxOpenConns, err = getEnvAsInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return err
	}
	if cfg.DBMaxIdleConns, err = getEnvAsInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return err
	}
	if cfg.DBMaxOpenConns < 1 || cfg.DBMaxIdleConns < 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1 and DB_MAX_IDLE_CONNS >= 0")
	}
	if cfg.DBConnMaxLifetime, err = getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return err
	}
	if cfg.DBBootstrapSeed, err = getEnvAsBool("DB_BOOTSTRAP_SEED", false); err != nil {
		return err
	}

	if cfg.CacheEnabled, err = getEnvAsBool("CACHE_ENABLED", true); err != nil {
		return err
	}
	if cfg.CacheTTL, err = getEnvAsDuration("CACHE_TTL", 60*time.Second); err != nil {
		return err
	}
	return nil
}

func loadProvider(cfg *Config) error {
	var err error

	cfg.FootballAPIBaseURL = strings.TrimRight(strings.TrimSpace(getEnv("FOOTBALL_API_BASE_URL", "https://v3.football.api-sports.io")), "/")
	cfg.FootballAPIKey = strings.TrimSpace(getEnv("FOOTBALL_API_KEY", ""))
	if cfg.FootballAPIEnabled, err = getEnvAsBool("FOOTBALL_API_ENABLED", cfg.FootballAPIKey != ""); err != nil {
		return err
	}
	if cfg.FootballAPIEnabled && cfg.FootballAPIKey == "" {
		return fmt.Errorf("FOOTBALL_API_KEY is required when FOOTBALL_API_ENABLED=true")
	}
	if cfg.FootballAPITimeout, err = getEnvAsDuration("FOOTBALL_API_TIMEOUT", 20*time.Second); err != nil {
		return err
	}

	if cfg.FootballAPIRateInterval, err = getEnvAsDuration("FOOTBALL_API_RATE_INTERVAL", 6*time.Second); err != nil {
		return err
	}
	if cfg.FootballAPIRateBurst, err = getEnvAsInt("FOOTBALL_API_RATE_BURST", 1); err != nil {
		return err
	}
	if cfg.FootballAPIRateBurst < 1 {
		return fmt.Errorf("FOOTBALL_API_RATE_BURST must be >= 1")
	}

	if cfg.FootballAPICircuitEnabled, err = getEnvAsBool("FOOTBALL_API_CIRCUIT_ENABLED", true); err != nil {
		return err
	}
	if cfg.FootballAPICircuitFailureCount, err = getEnvAsInt("FOOTBALL_API_CIRCUIT_FAILURE_COUNT", 5); err != nil {
		return err
	}
	if cfg.FootballAPICircuitFailureCount < 1 {
		return fmt.Errorf("FOOTBALL_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if cfg.FootballAPICircuitOpenTimeout, err = getEnvAsDuration("FOOTBALL_API_CIRCUIT_OPEN_TIMEOUT", 30*time.Second); err != nil {
		return err
	}
	if cfg.FootballAPICircuitHalfOpenMax, err = getEnvAsInt("FOOTBALL_API_CIRCUIT_HALF_OPEN_MAX_REQ", 1); err != nil {
		return err
	}
	if cfg.FootballAPICircuitHalfOpenMax < 1 {
		return fmt.Errorf("FOOTBALL_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	if cfg.ProviderFallback, err = getEnvAsBool("PROVIDER_FALLBACK_ENABLED", cfg.FootballAPIEnabled); err != nil {
		return err
	}
	return nil
}

func loadSync(cfg *Config) error {
	var err error

	if cfg.SyncLeagueIDs, err = parseIDList(getEnv("SYNC_LEAGUE_IDS", "39,140,135,78,61")); err != nil {
		return fmt.Errorf("parse SYNC_LEAGUE_IDS: %w", err)
	}
	if cfg.SyncSeason, err = getEnvAsInt("SYNC_SEASON", 0); err != nil {
		return err
	}
	if cfg.SyncSeason < 0 || cfg.SyncSeason > 2100 {
		return fmt.Errorf("SYNC_SEASON must be between 0 and 2100")
	}

	cfg.SyncAPIToken = strings.TrimSpace(getEnv("SYNC_API_TOKEN", ""))
	if cfg.SyncAutostart, err = getEnvAsBool("SYNC_AUTOSTART", false); err != nil {
		return err
	}

	cfg.SyncLiveSchedule = getScheduleEnv("SYNC_LIVE_SCHEDULE", "*/2 * * * *")
	cfg.SyncUpcomingSchedule = getScheduleEnv("SYNC_UPCOMING_SCHEDULE", "0 */6 * * *")
	cfg.SyncFinishedSchedule = getScheduleEnv("SYNC_FINISHED_SCHEDULE", "*/30 * * * *")
	cfg.SyncStandingsSchedule = getScheduleEnv("SYNC_STANDINGS_SCHEDULE", "0 */3 * * *")
	cfg.SyncLeaguesSchedule = getScheduleEnv("SYNC_LEAGUES_SCHEDULE", "0 4 * * *")
	cfg.SyncTopScorersSchedule = getScheduleEnv("SYNC_TOP_SCORERS_SCHEDULE", "30 4 * * *")

	if cfg.SyncJobTimeout, err = getEnvAsDuration("SYNC_JOB_TIMEOUT", 10*time.Minute); err != nil {
		return err
	}
	if cfg.SyncUpcomingLimit, err = getEnvAsInt("SYNC_UPCOMING_LIMIT", 10); err != nil {
		return err
	}
	if cfg.SyncFinishedLimit, err = getEnvAsInt("SYNC_FINISHED_LIMIT", 10); err != nil {
		return err
	}
	if cfg.SyncUpcomingLimit < 1 || cfg.SyncFinishedLimit < 1 {
		return fmt.Errorf("SYNC_UPCOMING_LIMIT and SYNC_FINISHED_LIMIT must be >= 1")
	}
	return nil
}

func loadObservability(cfg *Config) error {
	var err error

	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return err
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.UptraceLogsEnabled, err = getEnvAsBool("UPTRACE_LOGS_ENABLED", true); err != nil {
		return err
	}

	if cfg.LogShipEnabled, err = getEnvAsBool("LOG_SHIP_ENABLED", false); err != nil {
		return err
	}
	cfg.LogShipEndpoint = strings.TrimSpace(getEnv("LOG_SHIP_ENDPOINT", ""))
	if cfg.LogShipEnabled && cfg.LogShipEndpoint == "" {
		return fmt.Errorf("LOG_SHIP_ENDPOINT is required when LOG_SHIP_ENABLED=true")
	}
	cfg.LogShipToken = strings.TrimSpace(getEnv("LOG_SHIP_TOKEN", ""))
	if cfg.LogShipTimeout, err = getEnvAsDuration("LOG_SHIP_TIMEOUT", 3*time.Second); err != nil {
		return err
	}
	cfg.LogShipMinLevel = logging.ParseLevel(getEnv("LOG_SHIP_MIN_LEVEL", "error"))

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return err
	}
	cfg.PprofAddr = strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return err
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	if cfg.PyroscopeUploadRate, err = getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second); err != nil {
		return err
	}
	return nil
}

func loadEnvFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

// getScheduleEnv keeps an explicitly empty value, which disables the job.
func getScheduleEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "off") {
		return ""
	}
	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	return out, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

// getEnvAsDuration parses a positive duration.
func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// parseIDList reads a comma separated list of positive ids, dropping
// duplicates while keeping the first-seen order.
func parseIDList(raw string) ([]int64, error) {
	items := splitCSV(raw)
	out := make([]int64, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", item, err)
		}
		if id <= 0 {
			return nil, fmt.Errorf("id must be > 0, got %d", id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
