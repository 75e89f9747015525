// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring turns raw survey data into leaderboard scores.

# Pipeline

TransformProject runs the whole pipeline for one project:

	lb := scoring.TransformProject(project, []string{"claude"})

Internally it flattens runs, aggregates grades, then reduces:

	refs := scoring.FlattenRuns(project.Surveys)
	results := scoring.Aggregate(refs, providers)
	overall := scoring.OverallScore(results)
	top := scoring.TopModels(results)

All functions are pure. Missing batches, runs, evaluations, or model names
contribute nothing; they never produce an error.

# Scores

  - Category score: mean of every grade in the category
  - Model score: mean of a model's grades within a category
  - Criteria score: mean of grades per normalized criterion name
  - Overall: mean of all model scores across categories
  - Top models: best three by mean model score across categories

# Providers

ClassifyProvider assigns a provider by substring, checked in order:

	"gpt"    → chatgpt
	"claude" → claude
	"gemini" → gemini
	else     → other

A provider filter keeps a run when its provider is selected or its model
name contains the marker of a selected provider.

# Criteria

NormalizeCriterion strips a "N. " prefix and splits at the first colon:

	"2. Validity: checks input types" → ("Validity", "checks input types")
*/
package scoring
