package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "SPEDIQUOTE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Quotes       QuotesConfig
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
	Env          string `envconfig:"SPEDIQUOTE_APP_ENV" default:"dev"`
	Port         string `envconfig:"SPEDIQUOTE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SPEDIQUOTE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SPEDIQUOTE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SPEDIQUOTE_DB_DSN"`
	Driver string `envconfig:"SPEDIQUOTE_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"SPEDIQUOTE_DB_HOST"`
	Port     int    `envconfig:"SPEDIQUOTE_DB_PORT" default:"5432"`
	User     string `envconfig:"SPEDIQUOTE_DB_USER"`
	Password string `envconfig:"SPEDIQUOTE_DB_PASSWORD"`
	Name     string `envconfig:"SPEDIQUOTE_DB_NAME"`
	SSLMode  string `envconfig:"SPEDIQUOTE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SPEDIQUOTE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SPEDIQUOTE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SPEDIQUOTE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SPEDIQUOTE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("either SPEDIQUOTE_DB_DSN or host/user/name must be set")
	}
	d.DSN = fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
	return nil
}

// QuotesConfig tunes the quoting surface itself.
type QuotesConfig struct {
	// RequestTimeout bounds a whole quote request, configuration fetch
	// included. The engine itself performs no I/O. Zero disables the bound.
	RequestTimeout time.Duration `envconfig:"SPEDIQUOTE_QUOTES_REQUEST_TIMEOUT" default:"10s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SPEDIQUOTE_AUTO_MIGRATE" default:"true"`
}
