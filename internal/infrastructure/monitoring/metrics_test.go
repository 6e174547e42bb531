package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewMetricsIndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		a := NewMetrics()
		b := NewMetrics()
		assert.NotSame(t, a.Registry(), b.Registry())
	})
}

func TestMiddlewareRecordsRouteTemplate(t *testing.T) {
	metrics := NewMetrics()

	router := gin.New()
	router.Use(Middleware(metrics))
	router.GET("/items/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", unmatchedRoute, "404")))
}

func TestTimer(t *testing.T) {
	metrics := NewMetrics()

	timer := NewTimer(metrics, "add")
	d := timer.Stop("success")
	assert.GreaterOrEqual(t, d, time.Duration(0))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OperationCalls.WithLabelValues("add", "success")))

	metrics.RecordOperationError("add", "validation_error")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OperationErrors.WithLabelValues("add", "validation_error")))

	assert.NotPanics(t, func() { NewTimer(nil, "noop").Stop("success") })
}

func TestHandlerExposition(t *testing.T) {
	metrics := NewMetrics()
	metrics.RecordOperation("power", "success", time.Millisecond)

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `cloudapi_operation_calls_total{operation="power",status="success"} 1`))
	assert.Contains(t, body, "cloudapi_uptime_seconds")
}
