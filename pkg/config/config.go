package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Upstream     UpstreamConfig
	Catalog      CatalogConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	// The fixture-backed deployment runs without a database, so an absent
	// DSN is only fatal once the mock catalog is switched off.
	if err := cfg.DB.ensureDSN(); err != nil && !cfg.FeatureFlags.MockCatalog {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DREVMART_APP_ENV" required:"true"`
	Port         string `envconfig:"DREVMART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DREVMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DREVMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"DREVMART_DB_DSN"`
	Driver string `envconfig:"DREVMART_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"DREVMART_DB_HOST"`
	Port     int    `envconfig:"DREVMART_DB_PORT" default:"5432"`
	User     string `envconfig:"DREVMART_DB_USER"`
	Password string `envconfig:"DREVMART_DB_PASSWORD"`
	Name     string `envconfig:"DREVMART_DB_NAME"`
	SSLMode  string `envconfig:"DREVMART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DREVMART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DREVMART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DREVMART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DREVMART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"DREVMART_REDIS_URL"`
	Address      string        `envconfig:"DREVMART_REDIS_ADDR"`
	Password     string        `envconfig:"DREVMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"DREVMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"DREVMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"DREVMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DREVMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"DREVMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"DREVMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"DREVMART_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"DREVMART_JWT_ISSUER" default:"drevmart"`
	ExpirationMinutes int    `envconfig:"DREVMART_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// AccessTokenTTL returns the access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"DREVMART_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"DREVMART_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"DREVMART_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"DREVMART_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"DREVMART_ARGON_KEY_LEN" default:"32"`
}

// UpstreamConfig points at the CMS the storefront proxies to once the mock
// catalog is retired.
type UpstreamConfig struct {
	BaseURL    string        `envconfig:"DREVMART_UPSTREAM_BASE_URL" default:"https://cms.centertkani.ru/api"`
	Timeout    time.Duration `envconfig:"DREVMART_UPSTREAM_TIMEOUT" default:"15s"`
	CookieName string        `envconfig:"DREVMART_UPSTREAM_COOKIE_NAME" default:"authToken"`
}

type CatalogConfig struct {
	DefaultPageSize int           `envconfig:"DREVMART_CATALOG_PAGE_SIZE" default:"12"`
	MockLatency     time.Duration `envconfig:"DREVMART_CATALOG_MOCK_LATENCY" default:"300ms"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"DREVMART_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"DREVMART_AUTO_MIGRATE" default:"false"`
	// MockCatalog keeps the fixture store wired in place of the database.
	MockCatalog bool `envconfig:"DREVMART_MOCK_CATALOG" default:"true"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
