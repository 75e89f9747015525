// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"sort"

	"github.com/danielhkuo/tool-index/models"
)

// RunRef pairs a run with the survey that owns it
type RunRef struct {
	Run    models.SurveyRun
	Survey *models.Survey
}

// FlattenRuns lists every run of every batch of every survey, in that order
func FlattenRuns(surveys []models.Survey) []RunRef {
	var refs []RunRef
	for i := range surveys {
		survey := &surveys[i]
		for _, batch := range survey.SurveyBatches {
			for _, run := range batch.Runs {
				refs = append(refs, RunRef{Run: run, Survey: survey})
			}
		}
	}
	return refs
}

// CategoryResult holds the averaged scores for one category
type CategoryResult struct {
	Score          float64
	ModelScores    []models.ModelScore
	CriteriaScores map[string]float64
}

// modelKey identifies one model within a category
type modelKey struct {
	provider string
	name     string
}

// categoryAccumulator collects raw grades for one category. Slices of keys
// keep first-encounter order so the output is deterministic.
type categoryAccumulator struct {
	all       []float64
	providers []string
	models    map[string][]string
	byModel   map[modelKey][]float64
	byCrit    map[string][]float64
}

func newCategoryAccumulator() *categoryAccumulator {
	return &categoryAccumulator{
		models:  make(map[string][]string),
		byModel: make(map[modelKey][]float64),
		byCrit:  make(map[string][]float64),
	}
}

func (a *categoryAccumulator) add(provider, modelName, criterion string, grade float64) {
	key := modelKey{provider: provider, name: modelName}
	if _, ok := a.models[provider]; !ok {
		a.providers = append(a.providers, provider)
	}
	if _, ok := a.byModel[key]; !ok {
		a.models[provider] = append(a.models[provider], modelName)
	}
	a.byModel[key] = append(a.byModel[key], grade)
	a.byCrit[criterion] = append(a.byCrit[criterion], grade)
	a.all = append(a.all, grade)
}

func (a *categoryAccumulator) result() CategoryResult {
	res := CategoryResult{
		Score:          mean(a.all),
		ModelScores:    []models.ModelScore{},
		CriteriaScores: make(map[string]float64, len(a.byCrit)),
	}
	for _, provider := range a.providers {
		for _, name := range a.models[provider] {
			res.ModelScores = append(res.ModelScores, models.ModelScore{
				Provider: provider,
				Name:     name,
				Score:    mean(a.byModel[modelKey{provider: provider, name: name}]),
			})
		}
	}
	for criterion, grades := range a.byCrit {
		res.CriteriaScores[criterion] = mean(grades)
	}
	return res
}

// Aggregate averages the grades of refs per category. Every category in
// models.Categories is present in the result; a category nothing
// contributed to has a zero score and an empty model list.
//
// Runs are skipped when they have no evaluations, no model name, a survey
// outside the scored categories, or a model outside the providers filter.
func Aggregate(refs []RunRef, providers []string) map[string]CategoryResult {
	acc := make(map[string]*categoryAccumulator, len(models.Categories))
	for _, c := range models.Categories {
		acc[c] = newCategoryAccumulator()
	}

	for _, ref := range refs {
		evals := ref.Run.Result.CriteriaEvaluations
		if len(evals) == 0 {
			continue
		}
		if ref.Survey == nil {
			continue
		}
		category, ok := acc[ref.Survey.PipelineMetadata.FeatureName]
		if !ok {
			continue
		}
		modelName := ref.Run.Metadata.Querier.ModelUsed.Name
		if modelName == "" {
			continue
		}
		provider := ClassifyProvider(modelName)
		if !matchesFilter(modelName, provider, providers) {
			continue
		}

		for _, eval := range evals {
			if eval.Grade == nil {
				continue
			}
			category.add(provider, modelName, CriterionName(eval.Criteria), *eval.Grade)
		}
	}

	results := make(map[string]CategoryResult, len(acc))
	for name, a := range acc {
		results[name] = a.result()
	}
	return results
}

// OverallScore is the mean of every model score across all categories
func OverallScore(results map[string]CategoryResult) float64 {
	var scores []float64
	for _, c := range models.Categories {
		for _, ms := range results[c].ModelScores {
			scores = append(scores, ms.Score)
		}
	}
	return mean(scores)
}

// TopModels returns up to three models ranked by their mean score across
// the categories they appear in. Equal means keep first-encounter order,
// walking categories in display order.
func TopModels(results map[string]CategoryResult) []models.ModelScore {
	var order []modelKey
	sums := make(map[modelKey][]float64)
	for _, c := range models.Categories {
		for _, ms := range results[c].ModelScores {
			key := modelKey{provider: ms.Provider, name: ms.Name}
			if _, ok := sums[key]; !ok {
				order = append(order, key)
			}
			sums[key] = append(sums[key], ms.Score)
		}
	}

	top := make([]models.ModelScore, 0, len(order))
	for _, key := range order {
		top = append(top, models.ModelScore{
			Provider: key.provider,
			Name:     key.name,
			Score:    mean(sums[key]),
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Score > top[j].Score
	})

	if len(top) > 3 {
		top = top[:3]
	}
	return top
}

// mean calculates the arithmetic mean, 0 for no values
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
