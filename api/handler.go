// Package api serves the dashboard's JSON endpoints. Every handler is a
// pure read over the immutable company table loaded at startup, so no
// locking is needed anywhere.
package api

import (
	"fmt"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"unicorn-dashboard/models"
	"unicorn-dashboard/search"
	"unicorn-dashboard/stats"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Handler struct {
	companies []models.Company
	skipped   int
	engine    search.Engine
	logger    *zap.Logger
}

func NewHandler(companies []models.Company, skipped int, engine search.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		companies: companies,
		skipped:   skipped,
		engine:    engine,
		logger:    logger,
	}
}

// Register wires the dashboard routes onto mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/summary", h.Summary)
	mux.HandleFunc("/api/aggregate", h.Aggregate)
	mux.HandleFunc("/api/timeline", h.Timeline)
	mux.HandleFunc("/api/companies", h.Companies)
	mux.HandleFunc("/api/facets", h.Facets)
	mux.HandleFunc("/api/search", h.Search)
}

// filterFromQuery reads the filter params shared by most endpoints:
// country, vertical, from, to.
func filterFromQuery(r *http.Request) (stats.Filter, error) {
	f := stats.Filter{
		Country:  r.URL.Query().Get("country"),
		Vertical: r.URL.Query().Get("vertical"),
	}
	var err error
	if f.FromYear, err = yearParam(r, "from"); err != nil {
		return f, err
	}
	if f.ToYear, err = yearParam(r, "to"); err != nil {
		return f, err
	}
	return f, nil
}

func yearParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be a year", name)
	}
	return year, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// Summary serves the scorecard totals over the (optionally filtered) table.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, stats.Summarize(stats.Apply(h.companies, f), h.skipped))
}

// Aggregate serves ordered buckets for the bar charts:
// /api/aggregate?by=country&metric=valuation&n=10
func (h *Handler) Aggregate(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	by := r.URL.Query().Get("by")
	if by == "" {
		by = stats.KeyCountry
	}
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = stats.MetricCount
	}
	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		if n, err = strconv.Atoi(raw); err != nil {
			http.Error(w, `parameter "n" must be an integer`, http.StatusBadRequest)
			return
		}
	}

	buckets, err := stats.TopN(stats.Apply(h.companies, f), by, metric, n)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, buckets)
}

// Timeline serves per-year counts for the stacked bar charts.
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	by := r.URL.Query().Get("by")
	if by == "" {
		by = stats.KeyCountry
	}

	slices, err := stats.Timeline(stats.Apply(h.companies, f), by)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, slices)
}

// Companies serves the filtered table rows for the data grid.
func (h *Handler) Companies(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, stats.Apply(h.companies, f))
}

// Facets serves the values available to the filter widgets.
func (h *Handler) Facets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, stats.FacetsOf(h.companies))
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Missing query parameter 'q'", http.StatusBadRequest)
		return
	}

	results := h.engine.Search(query)
	if results == nil {
		results = []models.Company{}
	}
	h.writeJSON(w, results)
}
