package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Search   SearchConfig   `yaml:"search"`
	Cache    CacheConfig    `yaml:"cache"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Import   ImportConfig   `yaml:"import"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"5m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// SearchConfig holds full-text backend (Meilisearch) settings.
// When Enabled is false every search is served by the database fallback.
type SearchConfig struct {
	Enabled   bool          `yaml:"enabled"    env:"SEARCH_ENABLED"    env-default:"true"`
	Host      string        `yaml:"host"       env:"SEARCH_HOST"       env-default:"http://localhost:7700"`
	APIKey    string        `yaml:"api_key"    env:"SEARCH_API_KEY"`
	Index     string        `yaml:"index"      env:"SEARCH_INDEX"      env-default:"hadiths"`
	Timeout   time.Duration `yaml:"timeout"    env:"SEARCH_TIMEOUT"    env-default:"2s"`
	BatchSize int           `yaml:"batch_size" env:"SEARCH_BATCH_SIZE" env-default:"1000"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	Size    int           `yaml:"size"     env:"CACHE_SIZE"     env-default:"500"`
	ListTTL time.Duration `yaml:"list_ttl" env:"CACHE_LIST_TTL" env-default:"60s"`
}

// CatalogConfig holds batch sizes for reconciliation and propagation.
type CatalogConfig struct {
	ScanBatchSize        int `yaml:"scan_batch_size"        env:"CATALOG_SCAN_BATCH_SIZE"        env-default:"1000"`
	PropagationBatchSize int `yaml:"propagation_batch_size" env:"CATALOG_PROPAGATION_BATCH_SIZE" env-default:"500"`
}

// ImportConfig holds bulk import settings.
type ImportConfig struct {
	BatchSize     int    `yaml:"batch_size"     env:"IMPORT_BATCH_SIZE"     env-default:"500"`
	MaxSuffix     int    `yaml:"max_suffix"     env:"IMPORT_MAX_SUFFIX"     env-default:"999"`
	DefaultStatus string `yaml:"default_status" env:"IMPORT_DEFAULT_STATUS" env-default:"pending"`
}

// AuthConfig holds admin token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"hadith-backend"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
