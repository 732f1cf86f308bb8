package server

import (
	"net/http"
	"net/url"
	"reflect"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/schema"
	"github.com/klastad/course-finder/pkg/types"
)

// browseParams is the flat query-string shape of a browse request.
// Repeatable keys (category, language, level) become the multi-select
// sets, everything else maps one to one.
type browseParams struct {
	types.FilterCriteria
	types.PagingRequest
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
	decoder.RegisterConverter(time.Time{}, convertTime)
}

// convertTime accepts plain dates and full RFC 3339 timestamps.
func convertTime(value string) reflect.Value {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return reflect.ValueOf(t)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return reflect.ValueOf(t)
	}
	return reflect.Value{}
}

// GetBrowseRequest decodes a browse request for the given scope, from
// the query string on GET and from a JSON body otherwise.
func GetBrowseRequest(r *http.Request, scope types.Scope) (*types.BrowseRequest, error) {
	if r.Method == http.MethodGet {
		return browseRequestFromQuery(r.URL.Query(), scope)
	}
	req := &types.BrowseRequest{}
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(req); err != nil {
		return nil, &types.ValidationError{Field: "body", Message: err.Error()}
	}
	req.Scope = scope
	return req, nil
}

// GetFacetRequest decodes only the filter criteria, for the facet-only
// endpoint.
func GetFacetRequest(r *http.Request) (*types.FilterCriteria, error) {
	if r.Method == http.MethodGet {
		criteria := &types.FilterCriteria{}
		if err := decoder.Decode(criteria, r.URL.Query()); err != nil {
			return nil, &types.ValidationError{Field: "query", Message: err.Error()}
		}
		return criteria, nil
	}
	criteria := &types.FilterCriteria{}
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(criteria); err != nil {
		return nil, &types.ValidationError{Field: "body", Message: err.Error()}
	}
	return criteria, nil
}

func browseRequestFromQuery(query url.Values, scope types.Scope) (*types.BrowseRequest, error) {
	params := &browseParams{}
	if err := decoder.Decode(params, query); err != nil {
		return nil, &types.ValidationError{Field: "query", Message: err.Error()}
	}
	return &types.BrowseRequest{
		FilterCriteria: params.FilterCriteria,
		PagingRequest:  params.PagingRequest,
		Scope:          scope,
	}, nil
}
