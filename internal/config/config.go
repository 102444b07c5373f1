package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from .env, environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	JWTSecret           string
	TokenTTL            time.Duration
	SweepInterval       time.Duration
	ShutdownTimeout     time.Duration
	BcryptCost          int
	FactoryURL          string
	FactoryAPIKey       string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	AdminName           string
	AdminEmail          string
	AdminPassword       string
	StrictPayloadStatus bool
	LogLevel            string
	Version             string
}

const (
	defaultRunAddress      = ":3000"
	defaultJWTSecret       = "change-me-in-production"
	defaultSweepInterval   = time.Minute
	defaultShutdownTimeout = 10 * time.Second
	defaultAdminName       = "常用名字"
	defaultAdminEmail      = "a@jwt.com"
	defaultAdminPassword   = "admin"
	defaultLogLevel        = "info"
	defaultVersion         = "dev"
	defaultEnvFile         = ".env"
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	path := defaultEnvFile
	if v, ok := os.LookupEnv("ENV_FILE"); ok && v != "" {
		path = v
	}
	if err := loadDotEnv(path); err != nil {
		return nil, err
	}
	return load(os.Args[1:], os.LookupEnv)
}

// loadDotEnv populates the process environment from path without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		JWTSecret:           getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:            getDuration(lookup, "TOKEN_TTL", 0),
		SweepInterval:       getDuration(lookup, "SWEEP_INTERVAL", defaultSweepInterval),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		BcryptCost:          getInt(lookup, "BCRYPT_COST", 0),
		FactoryURL:          getString(lookup, "FACTORY_URL", ""),
		FactoryAPIKey:       getString(lookup, "FACTORY_API_KEY", ""),
		RedisAddr:           getString(lookup, "REDIS_ADDR", ""),
		RedisPassword:       getString(lookup, "REDIS_PASSWORD", ""),
		RedisDB:             getInt(lookup, "REDIS_DB", 0),
		AdminName:           getString(lookup, "ADMIN_NAME", defaultAdminName),
		AdminEmail:          getString(lookup, "ADMIN_EMAIL", defaultAdminEmail),
		AdminPassword:       getString(lookup, "ADMIN_PASSWORD", defaultAdminPassword),
		StrictPayloadStatus: getBool(lookup, "STRICT_PAYLOAD_STATUS", false),
		LogLevel:            getString(lookup, "LOG_LEVEL", defaultLogLevel),
		Version:             getString(lookup, "VERSION", defaultVersion),
	}

	flags := flag.NewFlagSet("pizza-service", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		sweepIntervalStr   = cfg.SweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	flags.StringVar(&cfg.FactoryURL, "f", cfg.FactoryURL, "Pizza factory base URL")
	flags.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	flags.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime, 0 disables expiry")
	flags.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between expired session sweeps")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for the session store")
	flags.BoolVar(&cfg.StrictPayloadStatus, "strict-payload-status", cfg.StrictPayloadStatus, "Report invalid payloads as 400 instead of 500")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.SweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.TokenTTL < 0 {
		cfg.TokenTTL = 0
	}

	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.BcryptCost < 0 {
		cfg.BcryptCost = 0
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
