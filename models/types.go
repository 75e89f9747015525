// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Provider constants
const (
	ProviderChatGPT = "chatgpt"
	ProviderClaude  = "claude"
	ProviderGemini  = "gemini"
	ProviderOther   = "other"
)

// Category constants
const (
	CategoryCodeQuality     = "Code Quality Support"
	CategoryCodeCompilation = "Code Compilation"
	CategoryProblemSolving  = "Problem Solving Helpfulness"
	CategorySecurity        = "Security Awareness"
)

// Categories lists every scored category in display order
var Categories = []string{
	CategoryCodeQuality,
	CategoryCodeCompilation,
	CategoryProblemSolving,
	CategorySecurity,
}

// IsCategory reports whether name is one of the scored categories
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Raw survey data, as decoded from the database

type ProjectMetadata struct {
	Industry        string `json:"industry"`
	IndexCategory   string `json:"index_category"`
	IncludedInIndex bool   `json:"included_in_index"`
}

type Project struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ProjectMetadata ProjectMetadata `json:"project_metadata"`
	Surveys         []Survey        `json:"surveys"`
}

type PipelineMetadata struct {
	Criterias          []string `json:"criterias"`
	FeatureName        string   `json:"feature_name"`
	ExampleQuestions   []string `json:"example_questions"`
	FeatureDescription string   `json:"feature_description"`
}

type Survey struct {
	ID               string           `json:"id"`
	ProjectID        string           `json:"project_id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	PipelineMetadata PipelineMetadata `json:"pipeline_metadata"`
	SurveyBatches    []SurveyBatch    `json:"survey_batches"`
}

type SurveyBatch struct {
	ID       string      `json:"id"`
	SurveyID string      `json:"survey_id"`
	Runs     []SurveyRun `json:"runs"`
}

// Grade is nil when the stored evaluation carries no numeric grade
type CriteriaEvaluation struct {
	Grade    *float64 `json:"grade"`
	Review   string   `json:"review"`
	Criteria string   `json:"criteria"`
	Mistakes []string `json:"mistakes,omitempty"`
}

type RunResult struct {
	CriteriaEvaluations []CriteriaEvaluation `json:"criteria_evaluations"`
}

type ModelInfo struct {
	Name     string   `json:"name"`
	Features []string `json:"features,omitempty"`
}

type Querier struct {
	Language  string    `json:"language"`
	ModelUsed ModelInfo `json:"model_used"`
}

type RunMetadata struct {
	ModelPromptID string  `json:"model_prompt_id"`
	ResponseDelay float64 `json:"response_delay"`
	Querier       Querier `json:"querier"`
}

type SurveyRun struct {
	ID       string      `json:"id"`
	BatchID  string      `json:"batch_id"`
	Result   RunResult   `json:"result"`
	Metadata RunMetadata `json:"metadata"`
}

// Leaderboard types

type ModelScore struct {
	Provider string  `json:"provider"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
}

type CriteriaDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryScore struct {
	Score          float64              `json:"score"`
	ModelScores    []ModelScore         `json:"modelScores"`
	CriteriaScores map[string]float64   `json:"criteriaScores"`
	Criteria       []CriteriaDefinition `json:"criteria"`
}

type ProjectScores struct {
	Overall    float64                  `json:"overall"`
	Categories map[string]CategoryScore `json:"categories"`
	TopModels  []ModelScore             `json:"topModels"`
}

type TransformedProject struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Description         string               `json:"description"`
	Category            string               `json:"category"`
	CriteriaDefinitions []CriteriaDefinition `json:"criteriaDefinitions"`
	Scores              ProjectScores        `json:"scores"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
