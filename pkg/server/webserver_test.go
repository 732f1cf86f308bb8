package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/klastad/course-finder/pkg/catalog"
	"github.com/klastad/course-finder/pkg/store"
	"github.com/klastad/course-finder/pkg/types"
	"github.com/stretchr/testify/assert"
)

func testServer() *WebServer {
	c := store.NewCatalog()
	c.HandleCourses([]types.RawCourse{
		{
			Id: 1, Title: "Intro to Go",
			Categories: []string{"Backend"}, Languages: []string{"English"},
			Level: "Beginner", Published: true,
			Created: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Id: 2, Title: "Advanced SQL",
			Categories: []string{"Data"}, Languages: []string{"English"},
			Level: "Advanced", Published: true,
			Created: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	return &WebServer{
		Browser: catalog.NewBrowser(c),
		Store:   c,
	}
}

func TestBrowseEndpoint(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/courses/browse?category=Data")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var result types.BrowseResult
	assert.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&result))
	if assert.Len(t, result.Items, 1) {
		assert.Equal(t, "Advanced SQL", result.Items[0].Title)
	}
	assert.Equal(t, 1, result.Settings.PaginationSettings.TotalCount)
	assert.Equal(t, 1, result.Settings.FacetCounts.Categories["Backend"])
}

func TestBrowseEndpoint_ValidationError(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/courses/browse?sort=Price")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var validation types.ValidationError
	assert.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&validation))
	assert.Equal(t, "sortBy", validation.Field)
}

func TestBrowseEndpoint_UnknownScope(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/articles/browse")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFacetsEndpoint(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/courses/facets?category=Data")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result types.FacetResult
	assert.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 1, result.TotalCount)
	assert.Equal(t, 1, result.FacetCounts.Categories["Data"])
	assert.Equal(t, 1, result.FacetCounts.Categories["Backend"])
}

func TestGetItemEndpoint(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/courses/get/1")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var course types.RawCourse
	assert.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&course))
	assert.Equal(t, "Intro to Go", course.Title)
}

func TestGetItemEndpoint_NotFound(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/courses/get/999")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBrowseEndpoint_SetsVisitorCookie(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/courses/browse")
	assert.NoError(t, err)
	defer resp.Body.Close()

	found := false
	for _, c := range resp.Cookies() {
		if c.Name == "vid" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a visitor cookie on the response")
}

func TestBrowseEndpoint_Options(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/courses/browse", nil)
	req.Header.Set("Origin", "https://example.com")
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
