// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port              string
	BasePath          string
	Production        bool
	AllowedOrigins    string
	BcryptCost        int
	PoolStatsInterval time.Duration

	Database DatabaseConfig
	Storage  StorageConfig
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Verbose         bool
}

// StorageConfig points at an S3-compatible bucket (Cloudflare R2 in production).
type StorageConfig struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	Endpoint        string
	PublicBaseURL   string
}

// Enabled reports whether enough is set to talk to the bucket.
func (s StorageConfig) Enabled() bool {
	return s.Bucket != "" && s.AccessKeyID != "" && s.AccessKeySecret != "" &&
		(s.Endpoint != "" || s.AccountID != "")
}

// EndpointURL is the S3 API endpoint, derived from the account id when not set explicitly.
func (s StorageConfig) EndpointURL() string {
	if s.Endpoint != "" {
		return strings.TrimRight(s.Endpoint, "/")
	}
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", s.AccountID)
}

// PublicURL is the prefix for object links handed back to clients.
func (s StorageConfig) PublicURL() string {
	if s.PublicBaseURL != "" {
		return strings.TrimRight(s.PublicBaseURL, "/")
	}
	return s.EndpointURL() + "/" + s.Bucket
}

var ErrMissingDatabase = errors.New("database is not configured: set DATABASE_URL or DB_HOST/DB_USER/DB_NAME")

// Load reads an optional .env file and then the process environment.
// Variables already present in the environment win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	production := strings.EqualFold(getenv("ENV", "development"), "production")

	cfg := &Config{
		Port:           getenv("PORT", "5200"),
		BasePath:       strings.TrimRight(getenv("BASE_PATH", ""), "/"),
		Production:     production,
		AllowedOrigins: getenv("ALLOWED_ORIGINS", "*"),
	}

	var err error
	if cfg.BcryptCost, err = intEnv("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
		return nil, err
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.PoolStatsInterval, err = durationEnv("POOL_STATS_INTERVAL", time.Minute); err != nil {
		return nil, err
	}

	if cfg.Database, err = databaseFromEnv(production); err != nil {
		return nil, err
	}

	cfg.Storage = StorageConfig{
		AccountID:       getenv("CLOUDFLARE_ACCOUNT_ID", ""),
		AccessKeyID:     getenv("R2_ACCESS_KEY_ID", ""),
		AccessKeySecret: getenv("R2_ACCESS_KEY_SECRET", ""),
		Bucket:          getenv("R2_BUCKET_NAME", ""),
		Endpoint:        getenv("R2_ENDPOINT", ""),
		PublicBaseURL:   getenv("CDN_BASE_URL", ""),
	}

	return cfg, nil
}

func databaseFromEnv(production bool) (DatabaseConfig, error) {
	db := DatabaseConfig{
		Driver:  strings.ToLower(getenv("DB_DRIVER", DriverPostgres)),
		DSN:     getenv("DATABASE_URL", ""),
		Verbose: !production,
	}
	if db.Driver != DriverPostgres && db.Driver != DriverSQLite {
		return db, fmt.Errorf("unsupported DB_DRIVER %q", db.Driver)
	}

	if db.DSN == "" && db.Driver == DriverPostgres {
		host, user, name := getenv("DB_HOST", ""), getenv("DB_USER", ""), getenv("DB_NAME", "")
		if host == "" || user == "" || name == "" {
			return db, ErrMissingDatabase
		}
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, getenv("DB_PASSWORD", "")),
			Host:   host + ":" + getenv("DB_PORT", "5432"),
			Path:   "/" + name,
		}
		q := u.Query()
		q.Set("sslmode", getenv("DB_SSLMODE", "disable"))
		u.RawQuery = q.Encode()
		db.DSN = u.String()
	}
	if db.DSN == "" {
		return db, ErrMissingDatabase
	}

	var err error
	// The pool limit matches the connection limit the API has always run with.
	if db.MaxOpenConns, err = intEnv("DB_MAX_OPEN_CONNS", 10); err != nil {
		return db, err
	}
	if db.MaxIdleConns, err = intEnv("DB_MAX_IDLE_CONNS", db.MaxOpenConns); err != nil {
		return db, err
	}
	// Recycling a sqlite connection drops an in-memory database with it.
	lifetime := time.Hour
	if db.Driver == DriverSQLite {
		lifetime = 0
	}
	if db.ConnMaxLifetime, err = durationEnv("DB_CONN_MAX_LIFETIME", lifetime); err != nil {
		return db, err
	}
	return db, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	raw := getenv(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := getenv(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
