// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"regexp"
	"strings"

	"github.com/danielhkuo/tool-index/models"
)

var numberPrefix = regexp.MustCompile(`^\d+\.\s*`)

// NormalizeCriterion splits a raw criterion such as
// "2. Validity: checks input types" into its name ("Validity") and
// description ("checks input types"). The description is empty when the
// text has no colon.
//
// Normalizing a returned name again yields the same name.
func NormalizeCriterion(raw string) (name, description string) {
	name = strings.TrimSpace(raw)
	for numberPrefix.MatchString(name) {
		name = numberPrefix.ReplaceAllString(name, "")
	}
	name, _, _ = strings.Cut(name, ":")
	name = strings.TrimSpace(name)

	if _, after, found := strings.Cut(raw, ":"); found {
		description = strings.TrimSpace(after)
	}
	return name, description
}

// CriterionName returns only the name part of NormalizeCriterion
func CriterionName(raw string) string {
	name, _ := NormalizeCriterion(raw)
	return name
}

// appendDefinitions appends the definitions for raw criteria to defs,
// skipping names already present.
func appendDefinitions(defs []models.CriteriaDefinition, seen map[string]bool, raw []string) []models.CriteriaDefinition {
	for _, c := range raw {
		name, desc := NormalizeCriterion(c)
		if seen[name] {
			continue
		}
		seen[name] = true
		defs = append(defs, models.CriteriaDefinition{Name: name, Description: desc})
	}
	return defs
}

// CategoryCriteria returns the deduplicated criteria of every survey whose
// feature name equals category, in survey order.
func CategoryCriteria(surveys []models.Survey, category string) []models.CriteriaDefinition {
	defs := []models.CriteriaDefinition{}
	seen := make(map[string]bool)
	for _, s := range surveys {
		if s.PipelineMetadata.FeatureName != category {
			continue
		}
		defs = appendDefinitions(defs, seen, s.PipelineMetadata.Criterias)
	}
	return defs
}

// ProjectCriteria returns the deduplicated criteria across all surveys,
// including surveys outside the scored categories.
func ProjectCriteria(surveys []models.Survey) []models.CriteriaDefinition {
	defs := []models.CriteriaDefinition{}
	seen := make(map[string]bool)
	for _, s := range surveys {
		defs = appendDefinitions(defs, seen, s.PipelineMetadata.Criterias)
	}
	return defs
}
