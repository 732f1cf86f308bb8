package catalog

import (
	"slices"

	"github.com/klastad/course-finder/pkg/types"
)

// CountFacets computes the per-dimension value counts over the projected
// universe. For each categorical dimension the count is taken with that
// dimension's own restriction removed and everything else (the other two
// categorical dimensions plus all scalar restrictions) still applied, so
// a UI can show how many results each unchecked value would add.
func CountFacets(universe []types.ProjectedItem, c *types.FilterCriteria) types.FacetCounts {
	counts := types.EmptyFacetCounts()

	// Scalar restrictions apply to every dimension, filter on them once.
	scalar := universe
	if c.HasScalarFilters() {
		scalar = make([]types.ProjectedItem, 0, len(universe))
		for i := range universe {
			if MatchesScalar(&universe[i], c) {
				scalar = append(scalar, universe[i])
			}
		}
	}

	for i := range scalar {
		item := &scalar[i]
		matchesCategory := anyNameMatches(c.CategoryNames, item.CategoryNames)
		matchesLanguage := anyNameMatches(c.LanguageNames, item.LanguageNames)
		matchesLevel := len(c.LevelNames) == 0 || slices.Contains(c.LevelNames, item.LevelName)

		if matchesLanguage && matchesLevel {
			for _, name := range item.CategoryNames {
				counts.Categories[name]++
			}
		}
		if matchesCategory && matchesLanguage && item.LevelName != "" {
			counts.Levels[item.LevelName]++
		}
		if matchesCategory && matchesLevel {
			for _, name := range item.LanguageNames {
				counts.Languages[name]++
			}
		}
	}
	return counts
}
