package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	promcl "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
)

func TestRequestMetrics(t *testing.T) {
	m, reg := metrics.NewTestManagerAndRegistry()

	router := mux.NewRouter()
	router.HandleFunc("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods("GET").Name("teapot")
	router.Use(RequestMetrics(m))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/teapot", nil))
	require.Equal(t, http.StatusTeapot, rr.Code)

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)

	assert.Equal(t, 1.0, counterValue(t, metricFamilies,
		"fittrack_test_server_request",
		map[string]string{"method": "GET", "status": "418"},
	))

	histogram := findMetric(t, metricFamilies,
		"fittrack_test_server_request_duration_seconds",
		map[string]string{"route": "teapot", "method": "GET", "status_code": "418"},
	)
	require.NotNil(t, histogram.Histogram)
	assert.Equal(t, uint64(1), histogram.Histogram.GetSampleCount())
}

func TestRequestMetrics_FallsBackToPath(t *testing.T) {
	m, reg := metrics.NewTestManagerAndRegistry()

	// outside of a mux route match the raw path is used as the route label
	handler := RequestMetrics(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/some/raw/path", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)

	histogram := findMetric(t, metricFamilies,
		"fittrack_test_server_request_duration_seconds",
		map[string]string{"route": "/some/raw/path", "method": "GET", "status_code": "200"},
	)
	require.NotNil(t, histogram.Histogram)
}

func counterValue(t *testing.T, families []*promcl.MetricFamily, name string, labels map[string]string) float64 {
	t.Helper()
	metric := findMetric(t, families, name, labels)
	require.NotNil(t, metric.Counter)
	return metric.Counter.GetValue()
}

func findMetric(t *testing.T, families []*promcl.MetricFamily, name string, labels map[string]string) *promcl.Metric {
	t.Helper()
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if labelsMatch(metric.GetLabel(), labels) {
				return metric
			}
		}
	}
	t.Fatalf("metric %s with labels %v not found", name, labels)
	return nil
}

func labelsMatch(labelPairs []*promcl.LabelPair, want map[string]string) bool {
	if len(labelPairs) != len(want) {
		return false
	}
	for _, pair := range labelPairs {
		if want[pair.GetName()] != pair.GetValue() {
			return false
		}
	}
	return true
}
