package catalog

import (
	"slices"
	"time"

	"github.com/klastad/course-finder/pkg/types"
)

// Matches reports whether item satisfies every non-empty dimension of
// the criteria. Categorical dimensions use OR within the dimension,
// ranges are inclusive on both bounds.
func Matches(item *types.ProjectedItem, c *types.FilterCriteria) bool {
	if !anyNameMatches(c.CategoryNames, item.CategoryNames) {
		return false
	}
	if !anyNameMatches(c.LanguageNames, item.LanguageNames) {
		return false
	}
	if len(c.LevelNames) > 0 && !slices.Contains(c.LevelNames, item.LevelName) {
		return false
	}
	return MatchesScalar(item, c)
}

// MatchesScalar checks only the numeric, date and boolean restrictions.
// The facet counter uses it to pre-filter before the per-dimension
// passes.
func MatchesScalar(item *types.ProjectedItem, c *types.FilterCriteria) bool {
	if !inRangeFloat(item.DurationMinutes, c.MinDuration, c.MaxDuration) {
		return false
	}
	if !inRangeInt(item.EnrollmentCount, c.MinEnrollments, c.MaxEnrollments) {
		return false
	}
	if !inRangeFloat(item.Rating, c.MinRating, c.MaxRating) {
		return false
	}
	if !inRangeDate(item.CreatedDate, c.MinCreationDate, c.MaxCreationDate) {
		return false
	}
	if c.HasCertificate != nil && *c.HasCertificate != item.HasCertificate {
		return false
	}
	return true
}

// Filter returns the matching subset, preserving input order.
func Filter(items []types.ProjectedItem, c *types.FilterCriteria) []types.ProjectedItem {
	ret := make([]types.ProjectedItem, 0, len(items))
	for i := range items {
		if Matches(&items[i], c) {
			ret = append(ret, items[i])
		}
	}
	return ret
}

// anyNameMatches is true when the requested set is empty or intersects
// the item's set.
func anyNameMatches(requested, have []string) bool {
	if len(requested) == 0 {
		return true
	}
	for _, want := range requested {
		if slices.Contains(have, want) {
			return true
		}
	}
	return false
}

func inRangeFloat(value float64, min, max *float64) bool {
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}

func inRangeInt(value int, min, max *int) bool {
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}

func inRangeDate(value time.Time, min, max *time.Time) bool {
	if min != nil && value.Before(*min) {
		return false
	}
	if max != nil && value.After(*max) {
		return false
	}
	return true
}
