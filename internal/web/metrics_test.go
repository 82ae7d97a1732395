package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware_CountsRoutedRequests(t *testing.T) {
	router := mux.NewRouter()
	router.Use(mux.MiddlewareFunc(MetricsMiddleware))
	router.HandleFunc("/api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, Response{Success: true})
	}).Methods("GET")

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/orders/{id}", "200"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/orders/42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	// The counter is keyed by the route template, not the raw URL.
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/orders/{id}", "200"))
	assert.Equal(t, before+1, after)
}

func TestMetricsMiddleware_RecordsStatusLabel(t *testing.T) {
	router := mux.NewRouter()
	router.Use(mux.MiddlewareFunc(MetricsMiddleware))
	router.HandleFunc("/api/refunds", func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, http.StatusForbidden, "Admin access required")
	}).Methods("GET")

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/refunds", "403"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/refunds", nil))

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/refunds", "403"))
	assert.Equal(t, before+1, after)
}
