package catalog

import (
	"testing"

	"github.com/klastad/course-finder/pkg/types"
)

func fiveItems() []types.ProjectedItem {
	ret := make([]types.ProjectedItem, 0, 5)
	for id := uint(1); id <= 5; id++ {
		ret = append(ret, testItem(id, nil))
	}
	return ret
}

func TestPaginate_MiddlePage(t *testing.T) {
	page, settings := Paginate(fiveItems(), 2, 2)
	if len(page) != 2 || page[0].Id != 3 || page[1].Id != 4 {
		t.Errorf("expected items 3 and 4, got %v", ids(page))
	}
	if settings.TotalPages != 3 || settings.TotalCount != 5 || settings.CurrentPage != 2 {
		t.Errorf("unexpected settings %+v", settings)
	}
}

func TestPaginate_ClampsBeyondLastPage(t *testing.T) {
	page, settings := Paginate(fiveItems(), 99, 2)
	if len(page) != 1 || page[0].Id != 5 {
		t.Errorf("expected last page with item 5, got %v", ids(page))
	}
	if settings.CurrentPage != 3 {
		t.Errorf("expected currentPage clamped to 3, got %d", settings.CurrentPage)
	}
}

func TestPaginate_ClampsBelowFirstPage(t *testing.T) {
	page, settings := Paginate(fiveItems(), 0, 2)
	if len(page) != 2 || page[0].Id != 1 {
		t.Errorf("expected first page, got %v", ids(page))
	}
	if settings.CurrentPage != 1 {
		t.Errorf("expected currentPage clamped to 1, got %d", settings.CurrentPage)
	}
}

func TestPaginate_Empty(t *testing.T) {
	page, settings := Paginate(nil, 1, 10)
	if len(page) != 0 {
		t.Errorf("expected empty page, got %v", ids(page))
	}
	if settings.TotalPages != 0 || settings.TotalCount != 0 || settings.CurrentPage != 1 {
		t.Errorf("unexpected settings %+v", settings)
	}
}

func TestPaginate_PagesCoverEverything(t *testing.T) {
	items := fiveItems()
	_, settings := Paginate(items, 1, 2)

	seen := 0
	for p := 1; p <= settings.TotalPages; p++ {
		page, _ := Paginate(items, p, 2)
		seen += len(page)
	}
	if seen != settings.TotalCount {
		t.Errorf("expected pages to cover %d items, saw %d", settings.TotalCount, seen)
	}
}

func TestPaginate_BeyondEqualsLastPage(t *testing.T) {
	items := fiveItems()
	beyond, _ := Paginate(items, 42, 2)
	last, _ := Paginate(items, 3, 2)
	if len(beyond) != len(last) || beyond[0].Id != last[0].Id {
		t.Errorf("expected page beyond the end to equal the last page")
	}
}
