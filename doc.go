// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the tool-index leaderboard server.

tool-index scores developer tools by how well AI models answer survey
questions about them. Graded survey runs are read from the database and
aggregated per category, per model and per criterion, optionally filtered
to a set of model providers (chatgpt, claude, gemini, other).

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:index.db go run main.go

Or with flags:

	go run main.go -p 3318 -t postgres -d "postgres://..."

# Report Mode

Print the ranked leaderboard instead of serving:

	go run main.go -d file:index.db -report -providers claude,gemini

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PORT (-p): Server port (default: 3318)
  - CACHE_MAX_AGE, STALE_WHILE_REVALIDATE: response cache windows
  - PROVIDERS (-providers): report provider filter

# Architecture

  - scoring: Provider classification, criterion names, aggregation
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, caching, gzip, CORS, JSON helpers
  - models: Survey data and leaderboard types
  - db: Schema, driver selection and project loading
  - report: Terminal leaderboard
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
