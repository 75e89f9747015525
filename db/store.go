// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/tool-index/models"
)

// ErrProjectNotFound is returned by LoadProject for unknown or hidden ids
var ErrProjectNotFound = errors.New("project not found")

// Store reads survey data for the leaderboard
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadProjects returns every project included in the index with its
// surveys, batches and runs attached. JSON columns are decoded here so
// callers only ever see typed values.
func (s *Store) LoadProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.loadProjectRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	surveys, err := s.loadSurveyRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load surveys: %w", err)
	}

	batches, err := s.loadBatchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load survey batches: %w", err)
	}

	runs, err := s.loadRunRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load survey runs: %w", err)
	}

	// Attach bottom-up: runs to batches, batches to surveys, surveys to projects
	runsByBatch := make(map[string][]models.SurveyRun)
	for _, r := range runs {
		runsByBatch[r.BatchID] = append(runsByBatch[r.BatchID], r)
	}

	batchesBySurvey := make(map[string][]models.SurveyBatch)
	for _, b := range batches {
		b.Runs = nonNil(runsByBatch[b.ID])
		batchesBySurvey[b.SurveyID] = append(batchesBySurvey[b.SurveyID], b)
	}

	surveysByProject := make(map[string][]models.Survey)
	for _, sv := range surveys {
		sv.SurveyBatches = nonNil(batchesBySurvey[sv.ID])
		surveysByProject[sv.ProjectID] = append(surveysByProject[sv.ProjectID], sv)
	}

	included := []models.Project{}
	for _, p := range projects {
		if !p.ProjectMetadata.IncludedInIndex {
			continue
		}
		p.Surveys = nonNil(surveysByProject[p.ID])
		included = append(included, p)
	}

	return included, nil
}

// LoadProject returns a single indexed project by id
func (s *Store) LoadProject(ctx context.Context, id string) (models.Project, error) {
	projects, err := s.LoadProjects(ctx)
	if err != nil {
		return models.Project{}, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, ErrProjectNotFound
}

func (s *Store) loadProjectRows(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, project_metadata
		FROM projects
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		var description sql.NullString
		var metadata []byte
		if err := rows.Scan(&p.ID, &p.Name, &description, &metadata); err != nil {
			return nil, err
		}
		p.Description = description.String
		decodeColumn("projects.project_metadata", p.ID, metadata, &p.ProjectMetadata)
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (s *Store) loadSurveyRows(ctx context.Context) ([]models.Survey, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, name, description, pipeline_metadata
		FROM surveys
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var surveys []models.Survey
	for rows.Next() {
		var sv models.Survey
		var projectID, name, description sql.NullString
		var metadata []byte
		if err := rows.Scan(&sv.ID, &projectID, &name, &description, &metadata); err != nil {
			return nil, err
		}
		sv.ProjectID = projectID.String
		sv.Name = name.String
		sv.Description = description.String
		decodeColumn("surveys.pipeline_metadata", sv.ID, metadata, &sv.PipelineMetadata)
		surveys = append(surveys, sv)
	}

	return surveys, rows.Err()
}

func (s *Store) loadBatchRows(ctx context.Context) ([]models.SurveyBatch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, survey_id
		FROM survey_batches
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []models.SurveyBatch
	for rows.Next() {
		var b models.SurveyBatch
		if err := rows.Scan(&b.ID, &b.SurveyID); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, rows.Err()
}

func (s *Store) loadRunRows(ctx context.Context) ([]models.SurveyRun, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, batch_id, result, metadata
		FROM survey_runs
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.SurveyRun
	for rows.Next() {
		var r models.SurveyRun
		var result, metadata []byte
		if err := rows.Scan(&r.ID, &r.BatchID, &result, &metadata); err != nil {
			return nil, err
		}
		decodeColumn("survey_runs.result", r.ID, result, &r.Result)
		decodeColumn("survey_runs.metadata", r.ID, metadata, &r.Metadata)
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// decodeColumn decodes a JSON column into v, logging and leaving v
// untouched when the content is malformed.
func decodeColumn[T any](column, rowID string, raw []byte, v *T) {
	decoded, err := DecodeJSONField[T](raw)
	if err != nil {
		slog.Warn("ignoring malformed JSON column",
			"column", column,
			"id", rowID,
			"error", err,
		)
		return
	}
	*v = decoded
}

// DecodeJSONField decodes raw into a T. raw may be NULL, a JSON document,
// or a JSON string whose content is itself an encoded document. NULL
// yields the zero value.
func DecodeJSONField[T any](raw []byte) (T, error) {
	var v T
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return v, nil
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return v, fmt.Errorf("failed to decode JSON string: %w", err)
		}
		return DecodeJSONField[T]([]byte(inner))
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return v, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
