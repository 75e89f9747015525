// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the survey database and reads projects from it.

# Connections

Open picks the driver from the configured database type:

	conn, err := db.Open(db.TypePostgres, cfg.DatabaseURL) // github.com/lib/pq
	conn, err := db.Open(db.TypeSQLite, "file:index.db")   // modernc.org/sqlite

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
JSON columns are JSONB on PostgreSQL and TEXT on SQLite.

# Tables

  - projects: name, description, project_metadata
  - surveys: pipeline_metadata (feature_name, criterias)
  - survey_batches: groups runs of one survey
  - survey_runs: result (criteria_evaluations), metadata (querier)

# Relationships

	projects 1──* surveys
	surveys 1──* survey_batches
	survey_batches 1──* survey_runs

# Reading

Store loads the full project tree in four queries and assembles it in
memory:

	store := db.NewStore(conn)
	projects, err := store.LoadProjects(ctx)

Only projects whose project_metadata has included_in_index set are
returned. Each JSON column is decoded exactly once; a column holding a JSON
string is unwrapped before decoding. Malformed JSON is logged and left
empty rather than failing the request.
*/
package db
