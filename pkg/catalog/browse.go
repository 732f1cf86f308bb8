package catalog

import (
	"context"

	"github.com/klastad/course-finder/pkg/types"
)

// Source is the external data source the engine pulls its universe
// from. One fetch per request, nothing else touches I/O.
type Source interface {
	FetchCourses(ctx context.Context) ([]types.RawCourse, error)
	FetchTracks(ctx context.Context) ([]types.RawTrack, error)
}

// Browser composes projection, filtering, facet counting, sorting and
// pagination into one request/response cycle. It holds no per-request
// state, concurrent Browse calls are independent.
type Browser struct {
	Source Source
}

func NewBrowser(source Source) *Browser {
	return &Browser{Source: source}
}

// Browse runs the full pipeline: validate, fetch, project, filter,
// facet, sort, paginate. Validation failures and fetch failures are the
// only error paths; an empty match is a valid result.
func (b *Browser) Browse(ctx context.Context, req types.BrowseRequest) (*types.BrowseResult, error) {
	req.PagingRequest.Normalize()
	if err := validate(&req); err != nil {
		return nil, err
	}

	universe, err := b.fetchUniverse(ctx, req.Scope)
	if err != nil {
		return nil, &types.DataSourceError{Err: err}
	}

	matched := Filter(universe, &req.FilterCriteria)
	facets := CountFacets(universe, &req.FilterCriteria)
	sorted := Sort(matched, req.PagingRequest.SortBy, req.PagingRequest.SortOrder)
	page, pagination := Paginate(sorted, req.PagingRequest.CurrentPage, req.PagingRequest.PageSize)

	return &types.BrowseResult{
		Items: page,
		Settings: types.BrowseSettings{
			FilterCriteria:     req.FilterCriteria,
			PaginationSettings: pagination,
			FacetCounts:        facets,
		},
	}, nil
}

// Facets computes the facet counts and total match count without
// sorting or paging, for the facet-only endpoint.
func (b *Browser) Facets(ctx context.Context, scope types.Scope, criteria types.FilterCriteria) (*types.FacetResult, error) {
	if !scope.Valid() {
		return nil, &types.ValidationError{Field: "scope", Message: "unknown scope " + string(scope)}
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	universe, err := b.fetchUniverse(ctx, scope)
	if err != nil {
		return nil, &types.DataSourceError{Err: err}
	}

	return &types.FacetResult{
		TotalCount:  len(Filter(universe, &criteria)),
		FacetCounts: CountFacets(universe, &criteria),
	}, nil
}

func validate(req *types.BrowseRequest) error {
	if !req.Scope.Valid() {
		return &types.ValidationError{Field: "scope", Message: "unknown scope " + string(req.Scope)}
	}
	if err := req.FilterCriteria.Validate(); err != nil {
		return err
	}
	return req.PagingRequest.Validate()
}

// fetchUniverse pulls and projects the browsable items for a scope.
// Unpublished and deleted records are skipped, as are items violating
// the non-empty category/language invariant.
func (b *Browser) fetchUniverse(ctx context.Context, scope types.Scope) ([]types.ProjectedItem, error) {
	switch scope {
	case types.ScopeTracks:
		raw, err := b.Source.FetchTracks(ctx)
		if err != nil {
			return nil, err
		}
		ret := make([]types.ProjectedItem, 0, len(raw))
		for i := range raw {
			if raw[i].Deleted || !raw[i].Published {
				continue
			}
			p := ProjectTrack(&raw[i])
			if p.Browsable() {
				ret = append(ret, p)
			}
		}
		return ret, nil
	default:
		raw, err := b.Source.FetchCourses(ctx)
		if err != nil {
			return nil, err
		}
		ret := make([]types.ProjectedItem, 0, len(raw))
		for i := range raw {
			if raw[i].Deleted || !raw[i].Published {
				continue
			}
			p := ProjectCourse(&raw[i])
			if p.Browsable() {
				ret = append(ret, p)
			}
		}
		return ret, nil
	}
}
