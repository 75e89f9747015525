// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"github.com/danielhkuo/tool-index/models"
)

// TransformProject computes the leaderboard view of a single project.
// providers restricts scoring to runs from those model families; nil or
// empty means all runs count.
func TransformProject(project models.Project, providers []string) models.TransformedProject {
	refs := FlattenRuns(project.Surveys)
	results := Aggregate(refs, providers)

	categories := make(map[string]models.CategoryScore, len(models.Categories))
	for _, c := range models.Categories {
		res := results[c]
		categories[c] = models.CategoryScore{
			Score:          res.Score,
			ModelScores:    res.ModelScores,
			CriteriaScores: res.CriteriaScores,
			Criteria:       CategoryCriteria(project.Surveys, c),
		}
	}

	return models.TransformedProject{
		ID:                  project.ID,
		Name:                project.Name,
		Description:         project.Description,
		Category:            project.ProjectMetadata.IndexCategory,
		CriteriaDefinitions: ProjectCriteria(project.Surveys),
		Scores: models.ProjectScores{
			Overall:    OverallScore(results),
			Categories: categories,
			TopModels:  TopModels(results),
		},
	}
}

// TransformProjects applies TransformProject to each project, keeping order
func TransformProjects(projects []models.Project, providers []string) []models.TransformedProject {
	out := make([]models.TransformedProject, 0, len(projects))
	for _, p := range projects {
		out = append(out, TransformProject(p, providers))
	}
	return out
}
