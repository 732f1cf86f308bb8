package types

// FacetCounts maps each categorical dimension's distinct value to the
// number of items that would remain with that dimension's own filter
// cleared but every other restriction still in effect.
type FacetCounts struct {
	Categories map[string]int `json:"categories"`
	Levels     map[string]int `json:"levels"`
	Languages  map[string]int `json:"languages"`
}

func EmptyFacetCounts() FacetCounts {
	return FacetCounts{
		Categories: map[string]int{},
		Levels:     map[string]int{},
		Languages:  map[string]int{},
	}
}

type BrowseRequest struct {
	FilterCriteria FilterCriteria `json:"filterCriteria"`
	PagingRequest  PagingRequest  `json:"pagingRequest"`
	Scope          Scope          `json:"scope"`
}

type BrowseSettings struct {
	FilterCriteria     FilterCriteria     `json:"filterCriteria"`
	PaginationSettings PaginationSettings `json:"paginationSettings"`
	FacetCounts        FacetCounts        `json:"facetCounts"`
}

type BrowseResult struct {
	Items    []ProjectedItem `json:"items"`
	Settings BrowseSettings  `json:"settings"`
}

// FacetResult is the facet-only response, for the facets endpoint.
type FacetResult struct {
	TotalCount  int         `json:"totalCount"`
	FacetCounts FacetCounts `json:"facetCounts"`
}
