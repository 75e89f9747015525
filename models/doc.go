// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the survey data and leaderboard types for the API.

# Survey Types

Nested records as decoded from the database:

  - Project: name, description, project_metadata, surveys
  - Survey: pipeline_metadata (feature_name, criterias), survey_batches
  - SurveyBatch: runs
  - SurveyRun: result (criteria_evaluations), metadata (querier.model_used)

JSON columns arrive already decoded; the db package handles stringified
values before anything else sees them.

# Leaderboard Types

Output of the scoring package:

  - TransformedProject: project with scores attached
  - ProjectScores: overall, categories, topModels
  - CategoryScore: score, modelScores, criteriaScores, criteria
  - ModelScore: provider, name, score
  - CriteriaDefinition: name, description
  - ErrorResponse: error, message

# Constants

Providers:

	ProviderChatGPT = "chatgpt"
	ProviderClaude  = "claude"
	ProviderGemini  = "gemini"
	ProviderOther   = "other"

Categories, in display order:

	"Code Quality Support"
	"Code Compilation"
	"Problem Solving Helpfulness"
	"Security Awareness"

Surveys whose feature_name is not one of these are ignored when scoring.
*/
package models
