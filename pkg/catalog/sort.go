package catalog

import (
	"slices"
	"strings"

	"github.com/klastad/course-finder/pkg/types"
)

// Sort orders a copy of items by the given key and direction. The sort
// is stable: equal keys keep their input order, which is primary-key
// order coming out of the store and gives a deterministic tie-break.
func Sort(items []types.ProjectedItem, key types.SortKey, order types.SortOrder) []types.ProjectedItem {
	ret := slices.Clone(items)
	cmp := comparerFor(key)
	if order == types.Descending {
		inner := cmp
		cmp = func(a, b *types.ProjectedItem) int { return -inner(a, b) }
	}
	slices.SortStableFunc(ret, func(a, b types.ProjectedItem) int {
		return cmp(&a, &b)
	})
	return ret
}

func comparerFor(key types.SortKey) func(a, b *types.ProjectedItem) int {
	switch key {
	case types.SortByTitle:
		return func(a, b *types.ProjectedItem) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case types.SortByPopularity:
		return func(a, b *types.ProjectedItem) int {
			return compareOrdered(a.EnrollmentCount, b.EnrollmentCount)
		}
	case types.SortByRating:
		return func(a, b *types.ProjectedItem) int {
			return compareOrdered(a.Rating, b.Rating)
		}
	case types.SortByReviews:
		return func(a, b *types.ProjectedItem) int {
			return compareOrdered(a.ReviewCount, b.ReviewCount)
		}
	default:
		return func(a, b *types.ProjectedItem) int {
			return a.CreatedDate.Compare(b.CreatedDate)
		}
	}
}

func compareOrdered[T int | float64](a, b T) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
