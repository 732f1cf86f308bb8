package catalog

import (
	"github.com/klastad/course-finder/pkg/types"
)

// Paginate slices a sorted sequence into one page. An out-of-range page
// request never errors: currentPage is clamped to [1, max(totalPages,1)]
// and only a fully empty input yields an empty page. pageSize must have
// been validated (>= 1) before this point.
func Paginate(items []types.ProjectedItem, currentPage, pageSize int) ([]types.ProjectedItem, types.PaginationSettings) {
	totalCount := len(items)
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	if currentPage < 1 {
		currentPage = 1
	}
	if totalPages >= 1 && currentPage > totalPages {
		currentPage = totalPages
	}

	start := (currentPage - 1) * pageSize
	end := min(start+pageSize, totalCount)
	if start > totalCount {
		start = totalCount
	}

	settings := types.PaginationSettings{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
	}
	return items[start:end], settings
}
