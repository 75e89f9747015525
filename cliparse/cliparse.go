package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 int
	DatabaseURL          string
	DatabaseType         string
	CacheMaxAge          int
	StaleWhileRevalidate int
	Providers            string
	Report               bool
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fset := flag.NewFlagSet("tool-index", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fset.IntVar(&cfg.Port, "p", 0, "Server port")
	fset.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fset.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Response caching
	fset.IntVar(&cfg.CacheMaxAge, "cache-max-age", -1, "Shared cache max age in seconds")
	fset.IntVar(&cfg.StaleWhileRevalidate, "stale-while-revalidate", -1, "Seconds a stale response may be served while revalidating")

	// Report mode
	fset.BoolVar(&cfg.Report, "report", false, "Print the leaderboard and exit")
	fset.StringVar(&cfg.Providers, "providers", "", "Comma-separated provider filter for the report")

	fset.StringVar(&envFile, "env-file", "", "Path to a .env file (default .env)")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	// Load .env without overriding the real environment
	if envFile == "" {
		envFile = os.Getenv("ENV_FILE")
	}
	if envFile == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := intFromEnv("PORT", 3318)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.CacheMaxAge < 0 {
		v, err := intFromEnv("CACHE_MAX_AGE", 300)
		if err != nil {
			return Config{}, err
		}
		cfg.CacheMaxAge = v
	}
	if cfg.StaleWhileRevalidate < 0 {
		v, err := intFromEnv("STALE_WHILE_REVALIDATE", 600)
		if err != nil {
			return Config{}, err
		}
		cfg.StaleWhileRevalidate = v
	}

	if cfg.Providers == "" {
		cfg.Providers = os.Getenv("PROVIDERS")
	}

	return cfg, nil
}

func intFromEnv(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return v, nil
}
