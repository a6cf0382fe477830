package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Documents    DocumentsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PRINTSHOP_APP_ENV" default:"dev"`
	Port         string `envconfig:"PRINTSHOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PRINTSHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PRINTSHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

type DBConfig struct {
	// Driver selects the storage engine: a local file-backed sqlite database
	// (default) or a hosted postgres instance addressed by DSN.
	Driver string `envconfig:"PRINTSHOP_DB_DRIVER" default:"sqlite"`
	Path   string `envconfig:"PRINTSHOP_DB_PATH" default:"data/orders.db"`
	DSN    string `envconfig:"PRINTSHOP_DB_DSN"`

	MaxOpenConns    int           `envconfig:"PRINTSHOP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PRINTSHOP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PRINTSHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PRINTSHOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate() error {
	switch db.Driver {
	case DBDriverSQLite:
		if db.Path == "" {
			return fmt.Errorf("PRINTSHOP_DB_PATH is required for the sqlite driver")
		}
	case DBDriverPostgres:
		if db.DSN == "" {
			return fmt.Errorf("PRINTSHOP_DB_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported db driver %q", db.Driver)
	}
	return nil
}

type DocumentsConfig struct {
	OutputDir   string `envconfig:"PRINTSHOP_DOCUMENTS_OUTPUT_DIR" default:"generated-pdfs"`
	CompanyName string `envconfig:"PRINTSHOP_DOCUMENTS_COMPANY_NAME" default:"PRINT SOLUTIONS"`
	Tagline     string `envconfig:"PRINTSHOP_DOCUMENTS_TAGLINE" default:"Professional Printing Services"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PRINTSHOP_AUTO_MIGRATE" default:"true"`
}
