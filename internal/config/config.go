package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	DBURL                   string
	DBDisablePreparedBinary bool

	CacheEnabled bool
	CacheTTL     time.Duration

	CORSAllowedOrigins []string

	StandingsWorkers int

	GatekeeperBaseURL             string
	GatekeeperIntrospectPath      string
	GatekeeperTimeout             time.Duration
	GatekeeperCircuitEnabled      bool
	GatekeeperCircuitFailureCount int
	GatekeeperCircuitOpenTimeout  time.Duration
	GatekeeperCircuitHalfOpenMax  int

	SMTPHost                string
	SMTPPort                int
	SMTPUsername            string
	SMTPPassword            string
	ContactMailFrom         string
	ContactMailTo           string
	SMTPTimeout             time.Duration
	SMTPCircuitEnabled      bool
	SMTPCircuitFailureCount int
	SMTPCircuitOpenTimeout  time.Duration
	SMTPCircuitHalfOpenMax  int

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	standingsWorkers, err := getEnvAsInt("STANDINGS_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse STANDINGS_WORKERS: %w", err)
	}
	if standingsWorkers < 1 {
		return Config{}, fmt.Errorf("STANDINGS_WORKERS must be >= 1")
	}

	gatekeeperTimeout, err := time.ParseDuration(getEnv("GATEKEEPER_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEKEEPER_TIMEOUT: %w", err)
	}
	gatekeeperCircuitEnabled, err := strconv.ParseBool(getEnv("GATEKEEPER_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEKEEPER_CIRCUIT_ENABLED: %w", err)
	}
	gatekeeperCircuitFailureCount, err := getEnvAsInt("GATEKEEPER_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEKEEPER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if gatekeeperCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("GATEKEEPER_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	gatekeeperCircuitOpenTimeout, err := time.ParseDuration(getEnv("GATEKEEPER_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEKEEPER_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if gatekeeperCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("GATEKEEPER_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	gatekeeperCircuitHalfOpenMax, err := getEnvAsInt("GATEKEEPER_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEKEEPER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if gatekeeperCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("GATEKEEPER_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	smtpPort, err := getEnvAsInt("SMTP_PORT", 587)
	if err != nil {
		return Config{}, fmt.Errorf("parse SMTP_PORT: %w", err)
	}
	if smtpPort < 1 || smtpPort > 65535 {
		return Config{}, fmt.Errorf("SMTP_PORT must be between 1 and 65535")
	}
	smtpTimeout, err := time.ParseDuration(getEnv("SMTP_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SMTP_TIMEOUT: %w", err)
	}
	smtpCircuitEnabled, err := strconv.ParseBool(getEnv("SMTP_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SMTP_CIRCUIT_ENABLED: %w", err)
	}
	smtpCircuitFailureCount, err := getEnvAsInt("SMTP_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SMTP_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if smtpCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SMTP_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	smtpCircuitOpenTimeout, err := time.ParseDuration(getEnv("SMTP_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SMTP_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if smtpCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SMTP_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	smtpCircuitHalfOpenMax, err := getEnvAsInt("SMTP_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SMTP_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if smtpCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("SMTP_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "goalzone-api"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		DBURL:                   getEnv("DB_URL", ""),
		DBDisablePreparedBinary: dbDisablePreparedBinary,

		CacheEnabled: cacheEnabled,
		CacheTTL:     cacheTTL,

		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		StandingsWorkers: standingsWorkers,

		GatekeeperBaseURL:             getEnv("GATEKEEPER_BASE_URL", "http://localhost:8081"),
		GatekeeperIntrospectPath:      getEnv("GATEKEEPER_INTROSPECT_PATH", "/v1/tokens/introspect"),
		GatekeeperTimeout:             gatekeeperTimeout,
		GatekeeperCircuitEnabled:      gatekeeperCircuitEnabled,
		GatekeeperCircuitFailureCount: gatekeeperCircuitFailureCount,
		GatekeeperCircuitOpenTimeout:  gatekeeperCircuitOpenTimeout,
		GatekeeperCircuitHalfOpenMax:  gatekeeperCircuitHalfOpenMax,

		SMTPHost:                strings.TrimSpace(getEnv("SMTP_HOST", "")),
		SMTPPort:                smtpPort,
		SMTPUsername:            strings.TrimSpace(getEnv("SMTP_USERNAME", "")),
		SMTPPassword:            getEnv("SMTP_PASSWORD", ""),
		ContactMailFrom:         strings.TrimSpace(getEnv("CONTACT_MAIL_FROM", "")),
		ContactMailTo:           strings.TrimSpace(getEnv("CONTACT_MAIL_TO", "")),
		SMTPTimeout:             smtpTimeout,
		SMTPCircuitEnabled:      smtpCircuitEnabled,
		SMTPCircuitFailureCount: smtpCircuitFailureCount,
		SMTPCircuitOpenTimeout:  smtpCircuitOpenTimeout,
		SMTPCircuitHalfOpenMax:  smtpCircuitHalfOpenMax,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		UptraceLogsEnabled: uptraceLogsEnabled,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

// MailConfigured reports whether the contact form relay has enough
// configuration to send.
func (c Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.ContactMailFrom != "" && c.ContactMailTo != ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
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
		return 0, err
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
