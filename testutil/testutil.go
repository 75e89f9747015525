// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/tool-index/cliparse"
	"github.com/danielhkuo/tool-index/db"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                 3318,
		DatabaseURL:          TestDBURL,
		DatabaseType:         db.TypeSQLite,
		CacheMaxAge:          300,
		StaleWhileRevalidate: 600,
	}
}

// seq orders fixture rows by created_at in insertion order
var seq int

func nextTimestamp() time.Time {
	seq++
	return time.Date(2025, 1, 1, 0, 0, seq, 0, time.UTC)
}

// mustJSON encodes v, or returns a string value unchanged so tests can
// store raw or malformed column content.
func mustJSON(t *testing.T, v interface{}) interface{} {
	t.Helper()
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to encode fixture JSON: %v", err)
	}
	return string(b)
}

// CreateTestProject inserts a project. included sets
// project_metadata.included_in_index.
func CreateTestProject(t *testing.T, conn *sql.DB, id, name, indexCategory string, included bool) {
	t.Helper()

	metadata := map[string]interface{}{
		"industry":          "Software",
		"index_category":    indexCategory,
		"included_in_index": included,
	}
	InsertTestProject(t, conn, id, name, metadata)
}

// InsertTestProject inserts a project with arbitrary metadata. A string
// metadata value is stored verbatim.
func InsertTestProject(t *testing.T, conn *sql.DB, id, name string, metadata interface{}) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO projects (id, name, description, project_metadata, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, name, fmt.Sprintf("%s description", name), mustJSON(t, metadata), nextTimestamp())
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
}

// CreateTestSurvey inserts a survey for a category with the given criteria
func CreateTestSurvey(t *testing.T, conn *sql.DB, id, projectID, featureName string, criterias []string) {
	t.Helper()

	metadata := map[string]interface{}{
		"feature_name":        featureName,
		"criterias":           criterias,
		"example_questions":   []string{},
		"feature_description": featureName + " checks",
	}
	InsertTestSurvey(t, conn, id, projectID, metadata)
}

// InsertTestSurvey inserts a survey with arbitrary pipeline metadata
func InsertTestSurvey(t *testing.T, conn *sql.DB, id, projectID string, metadata interface{}) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO surveys (id, project_id, name, description, pipeline_metadata, created_at)
		VALUES (?, ?, ?, NULL, ?, ?)
	`, id, projectID, "Survey "+id, mustJSON(t, metadata), nextTimestamp())
	if err != nil {
		t.Fatalf("Failed to create test survey: %v", err)
	}
}

// CreateTestBatch inserts an empty survey batch
func CreateTestBatch(t *testing.T, conn *sql.DB, id, surveyID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO survey_batches (id, survey_id, created_at)
		VALUES (?, ?, ?)
	`, id, surveyID, nextTimestamp())
	if err != nil {
		t.Fatalf("Failed to create test batch: %v", err)
	}
}

// Evaluation is a criteria evaluation fixture
type Evaluation struct {
	Criteria string
	Grade    float64
}

// CreateTestRun inserts a run for model with the given evaluations
func CreateTestRun(t *testing.T, conn *sql.DB, id, batchID, model string, evals ...Evaluation) {
	t.Helper()

	list := make([]map[string]interface{}, 0, len(evals))
	for _, e := range evals {
		list = append(list, map[string]interface{}{
			"grade":    e.Grade,
			"criteria": e.Criteria,
			"review":   "ok",
		})
	}
	result := map[string]interface{}{"criteria_evaluations": list}
	metadata := map[string]interface{}{
		"model_prompt_id": "prompt-1",
		"response_delay":  1.5,
		"querier": map[string]interface{}{
			"language":   "en",
			"model_used": map[string]interface{}{"name": model},
		},
	}
	InsertTestRun(t, conn, id, batchID, result, metadata)
}

// InsertTestRun inserts a run with arbitrary result and metadata columns
func InsertTestRun(t *testing.T, conn *sql.DB, id, batchID string, result, metadata interface{}) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO survey_runs (id, batch_id, result, metadata, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, batchID, mustJSON(t, result), mustJSON(t, metadata), nextTimestamp())
	if err != nil {
		t.Fatalf("Failed to create test run: %v", err)
	}
}

// SeedLeaderboard inserts one indexed project with a compilation survey
// (gpt-4o grades 8 and 6, claude grade 9) and one hidden project.
func SeedLeaderboard(t *testing.T, conn *sql.DB) {
	t.Helper()

	CreateTestProject(t, conn, "proj-1", "Acme CLI", "DevOps", true)
	CreateTestSurvey(t, conn, "survey-1", "proj-1", "Code Compilation",
		[]string{"1. Validity: compiles cleanly", "2. Speed: builds fast"})
	CreateTestBatch(t, conn, "batch-1", "survey-1")
	CreateTestRun(t, conn, "run-1", "batch-1", "gpt-4o", Evaluation{"1. Validity", 8})
	CreateTestRun(t, conn, "run-2", "batch-1", "gpt-4o", Evaluation{"1. Validity", 6})
	CreateTestRun(t, conn, "run-3", "batch-1", "claude-3-5-sonnet", Evaluation{"2. Speed", 9})

	CreateTestProject(t, conn, "proj-hidden", "Hidden Tool", "DevOps", false)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
