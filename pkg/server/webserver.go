package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/klastad/course-finder/pkg/catalog"
	"github.com/klastad/course-finder/pkg/common"
	"github.com/klastad/course-finder/pkg/store"
	"github.com/klastad/course-finder/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noBrowses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coursefinder_browses_total",
		Help: "The total number of processed browse requests",
	})
	noFacetRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coursefinder_facets_total",
		Help: "The total number of processed facet requests",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coursefinder_cache_hits_total",
		Help: "The total number of browse responses served from cache",
	})
)

type WebServer struct {
	Browser *catalog.Browser
	Store   *store.Catalog
	Cache   *ResponseCache
}

func defaultHeaders(w http.ResponseWriter, r *http.Request, cacheTime string) {
	w.Header().Set("Cache-Control", "private, stale-while-revalidate="+cacheTime)
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
}

func writeError(w http.ResponseWriter, err error) {
	var validation *types.ValidationError
	if errors.As(err, &validation) {
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(http.StatusBadRequest)
		sonic.ConfigDefault.NewEncoder(w).Encode(validation)
		return
	}
	var source *types.DataSourceError
	if errors.As(err, &source) {
		log.Printf("universe fetch failed: %v", source.Unwrap())
		http.Error(w, source.Error(), http.StatusServiceUnavailable)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func scopeFromRequest(r *http.Request) (types.Scope, error) {
	scope := types.Scope(r.PathValue("scope"))
	if !scope.Valid() {
		return "", &types.ValidationError{Field: "scope", Message: "unknown scope " + string(scope)}
	}
	return scope, nil
}

func (ws *WebServer) Browse(w http.ResponseWriter, r *http.Request) {
	go noBrowses.Inc()
	scope, err := scopeFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := GetBrowseRequest(r, scope)
	if err != nil {
		writeError(w, err)
		return
	}
	req.PagingRequest.Normalize()

	var cacheKey string
	if ws.Cache != nil && r.Method == http.MethodGet {
		cacheKey = BrowseCacheKey(ws.Store.Generation(), req)
		if data, ok := ws.Cache.Get(r.Context(), cacheKey); ok {
			go cacheHits.Inc()
			defaultHeaders(w, r, "60")
			w.WriteHeader(http.StatusOK)
			w.Write(data)
			return
		}
	}

	result, err := ws.Browser.Browse(r.Context(), *req)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := sonic.Marshal(result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if ws.Cache != nil && cacheKey != "" {
		if err := ws.Cache.Set(r.Context(), cacheKey, data); err != nil {
			log.Printf("Failed to cache browse response: %v", err)
		}
	}
	defaultHeaders(w, r, "60")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (ws *WebServer) FacetCounts(w http.ResponseWriter, r *http.Request) {
	go noFacetRequests.Inc()
	scope, err := scopeFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	criteria, err := GetFacetRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := ws.Browser.Facets(r.Context(), scope, *criteria)
	if err != nil {
		writeError(w, err)
		return
	}
	defaultHeaders(w, r, "60")
	w.WriteHeader(http.StatusOK)
	sonic.ConfigDefault.NewEncoder(w).Encode(result)
}

func (ws *WebServer) GetItem(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, &types.ValidationError{Field: "id", Message: "id must be an integer"})
		return
	}

	var item any
	var found bool
	switch scope {
	case types.ScopeTracks:
		item, found = ws.Store.GetTrack(uint(id))
	default:
		item, found = ws.Store.GetCourse(uint(id))
	}
	if !found {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	defaultHeaders(w, r, "120")
	w.WriteHeader(http.StatusOK)
	sonic.ConfigDefault.NewEncoder(w).Encode(item)
}

func (ws *WebServer) Handler() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/api/{scope}/browse", ws.withCookie(ws.Browse))
	mux.HandleFunc("/api/{scope}/facets", ws.withCookie(ws.FacetCounts))
	mux.HandleFunc("GET /api/{scope}/get/{id}", ws.GetItem)

	return mux
}

func (ws *WebServer) withCookie(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "OPTIONS" {
			common.RespondToOptions(w, r)
			return
		}
		common.HandleVisitorCookie(w, r)
		fn(w, r)
	}
}
