package types

type SortKey string

const (
	SortByCreationDate SortKey = "CreationDate"
	SortByTitle        SortKey = "Title"
	SortByPopularity   SortKey = "Popularity"
	SortByRating       SortKey = "Rating"
	SortByReviews      SortKey = "Reviews"
)

type SortOrder string

const (
	Ascending  SortOrder = "Ascending"
	Descending SortOrder = "Descending"
)

// PagingRequest carries page selection and ordering. Zero values are
// filled in by Normalize; a PagingRequest must be normalized before
// Validate. The query-string default for size mirrors what the web UI
// requests; an explicit size of zero is still rejected.
type PagingRequest struct {
	CurrentPage int       `json:"currentPage" schema:"page"`
	PageSize    int       `json:"pageSize" schema:"size,default:20"`
	SortBy      SortKey   `json:"sortBy" schema:"sort"`
	SortOrder   SortOrder `json:"sortOrder" schema:"order"`
}

// Normalize fills the documented defaults: first page, newest first.
// An explicit PageSize of zero or less is left alone so Validate can
// reject it.
func (p *PagingRequest) Normalize() {
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.SortBy == "" {
		p.SortBy = SortByCreationDate
	}
	if p.SortOrder == "" {
		p.SortOrder = Descending
	}
}

func (p *PagingRequest) Validate() error {
	if p.PageSize <= 0 {
		return &ValidationError{Field: "pageSize", Message: "pageSize must be at least 1"}
	}
	switch p.SortBy {
	case SortByCreationDate, SortByTitle, SortByPopularity, SortByRating, SortByReviews:
	default:
		return &ValidationError{Field: "sortBy", Message: "unknown sort key " + string(p.SortBy)}
	}
	switch p.SortOrder {
	case Ascending, Descending:
	default:
		return &ValidationError{Field: "sortOrder", Message: "unknown sort order " + string(p.SortOrder)}
	}
	return nil
}

// PaginationSettings is derived by the paginator, never set by the caller.
type PaginationSettings struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
}
