// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Database types accepted by Open and CreateSchema
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema, err := schemaFor(dbType)
	if err != nil {
		return err
	}

	_, err = db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func schemaFor(dbType string) (string, error) {
	switch dbType {
	case TypePostgres:
		return fmt.Sprintf(schemaTemplate, "JSONB"), nil
	case TypeSQLite:
		return fmt.Sprintf(schemaTemplate, "TEXT"), nil
	default:
		return "", fmt.Errorf("unsupported database type %q", dbType)
	}
}

// schemaTemplate takes the JSON column type as its only verb. Every JSON
// column may also hold a JSON string wrapping the encoded document.
const schemaTemplate = `
-- Projects
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    project_metadata %[1]s,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Surveys
CREATE TABLE IF NOT EXISTS surveys (
    id TEXT PRIMARY KEY,
    project_id TEXT REFERENCES projects(id) ON DELETE CASCADE,
    name TEXT,
    description TEXT,
    pipeline_metadata %[1]s,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_surveys_project_id ON surveys(project_id);

-- Survey Batches
CREATE TABLE IF NOT EXISTS survey_batches (
    id TEXT PRIMARY KEY,
    survey_id TEXT NOT NULL REFERENCES surveys(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_survey_batches_survey_id ON survey_batches(survey_id);

-- Survey Runs
CREATE TABLE IF NOT EXISTS survey_runs (
    id TEXT PRIMARY KEY,
    batch_id TEXT NOT NULL REFERENCES survey_batches(id) ON DELETE CASCADE,
    result %[1]s,
    metadata %[1]s,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_survey_runs_batch_id ON survey_runs(batch_id);
`
