package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is empty because every field carries its full variable name.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TTEOKBANG_APP_ENV" default:"dev"`
	Port         string `envconfig:"TTEOKBANG_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"TTEOKBANG_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TTEOKBANG_LOG_WARN_STACK" default:"false"`
	// Timezone the shop operates in; pickup days are bucketed in this zone.
	Timezone string `envconfig:"TTEOKBANG_TIMEZONE" default:"Asia/Seoul"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"TTEOKBANG_DB_DSN"`

	Host     string `envconfig:"TTEOKBANG_DB_HOST" default:"localhost"`
	Port     int    `envconfig:"TTEOKBANG_DB_PORT" default:"5432"`
	User     string `envconfig:"TTEOKBANG_DB_USER"`
	Password string `envconfig:"TTEOKBANG_DB_PASSWORD"`
	Name     string `envconfig:"TTEOKBANG_DB_NAME"`
	SSLMode  string `envconfig:"TTEOKBANG_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TTEOKBANG_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"TTEOKBANG_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"TTEOKBANG_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TTEOKBANG_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN assembles a DSN from discrete fields when one was not provided.
func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.User == "" || d.Name == "" {
		return fmt.Errorf("either TTEOKBANG_DB_DSN or TTEOKBANG_DB_USER and TTEOKBANG_DB_NAME are required")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	d.DSN = u.String()
	return nil
}

type RedisConfig struct {
	// URL is optional: when unset, Redis-backed features (order intake
	// idempotency) are disabled rather than failing startup.
	URL          string        `envconfig:"TTEOKBANG_REDIS_URL"`
	Address      string        `envconfig:"TTEOKBANG_REDIS_ADDR"`
	Password     string        `envconfig:"TTEOKBANG_REDIS_PASSWORD"`
	DB           int           `envconfig:"TTEOKBANG_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TTEOKBANG_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TTEOKBANG_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TTEOKBANG_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TTEOKBANG_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TTEOKBANG_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"TTEOKBANG_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"TTEOKBANG_AUTO_MIGRATE" default:"false"`
}
