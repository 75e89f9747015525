// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - CacheMaxAge: s-maxage for read responses (default: 300)
  - StaleWhileRevalidate: stale-while-revalidate seconds (default: 600)
  - Providers: provider filter used by the report
  - Report: print the leaderboard and exit instead of serving

# CLI Flags

	-p                      Server port
	-d                      Database URL
	-t                      Database type
	-cache-max-age          Shared cache max age
	-stale-while-revalidate Stale window
	-providers              Report provider filter (e.g. claude,gemini)
	-report                 Report mode
	-env-file               .env file to load

# Environment Variables

Flags fall back to environment variables:

	PORT                   → -p
	DATABASE_URL           → -d
	DATABASE_TYPE          → -t
	CACHE_MAX_AGE          → -cache-max-age
	STALE_WHILE_REVALIDATE → -stale-while-revalidate
	PROVIDERS              → -providers
	ENV_FILE               → -env-file

Before the fallback, variables from a .env file are loaded with godotenv.
Variables already present in the environment are never overridden. A
missing default .env is ignored; a missing explicit file is an error.

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - DATABASE_TYPE is not sqlite or postgres
  - a numeric variable is not a non-negative integer
*/
package cliparse
