package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/cloudapi/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *monitoring.Metrics) {
	t.Helper()

	metrics := monitoring.NewMetrics()
	router := gin.New()
	NewHandlers("cloud-api", "1.0.0", NewHandlerMetrics(metrics), zap.NewNop()).Register(router)
	return router, metrics
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) types.ErrorResponse {
	t.Helper()

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestHandlersSuccess(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   string
	}{
		{name: "add", method: http.MethodPost, target: "/math/add", body: `{"a":2,"b":3}`, want: `{"result":5}`},
		{name: "add zeros", method: http.MethodPost, target: "/math/add", body: `{"a":0,"b":0}`, want: `{"result":0}`},
		{name: "add negative", method: http.MethodPost, target: "/math/add", body: `{"a":-7,"b":3}`, want: `{"result":-4}`},
		{name: "add max int64", method: http.MethodPost, target: "/math/add", body: `{"a":9223372036854775806,"b":1}`, want: `{"result":9223372036854775807}`},
		{name: "multiply", method: http.MethodPost, target: "/math/multiply?a=2.5&b=4", want: `{"result":10}`},
		{name: "multiply by zero", method: http.MethodPost, target: "/math/multiply?a=0&b=3", want: `{"result":0}`},
		{name: "power", method: http.MethodPost, target: "/math/power?base=2&exponent=3", want: `{"result":8}`},
		{name: "power zero exponent", method: http.MethodPost, target: "/math/power?base=2&exponent=0", want: `{"result":1}`},
		{name: "power zero zero", method: http.MethodPost, target: "/math/power?base=0&exponent=0", want: `{"result":1}`},
		{
			name:   "text upper",
			method: http.MethodPost,
			target: "/text/process",
			body:   `{"text":"Hello World! 123","operation":"upper"}`,
			want:   `{"original_text":"Hello World! 123","processed_text":"HELLO WORLD! 123","operation":"upper"}`,
		},
		{
			name:   "text reverse",
			method: http.MethodPost,
			target: "/text/process",
			body:   `{"text":"abc","operation":"reverse"}`,
			want:   `{"original_text":"abc","processed_text":"cba","operation":"reverse"}`,
		},
		{
			name:   "text clean",
			method: http.MethodPost,
			target: "/text/process",
			body:   `{"text":"Hello World! 123","operation":"clean"}`,
			want:   `{"original_text":"Hello World! 123","processed_text":"Hello World 123","operation":"clean"}`,
		},
		{
			name:   "text empty string",
			method: http.MethodPost,
			target: "/text/process",
			body:   `{"text":"","operation":"reverse"}`,
			want:   `{"original_text":"","processed_text":"","operation":"reverse"}`,
		},
		{
			name:   "statistics",
			method: http.MethodPost,
			target: "/stats/calculate",
			body:   `{"numbers":[1,2,3,4,5,6,7,8,9,10]}`,
			want:   `{"mean":5.5,"median":5.5,"max":10,"min":1,"count":10}`,
		},
		{
			name:   "statistics sum overflows",
			method: http.MethodPost,
			target: "/stats/calculate",
			body:   `{"numbers":[1e308,1e308]}`,
			want:   `{"mean":1e308,"median":1e308,"max":1e308,"min":1e308,"count":2}`,
		},
		{
			name:   "health",
			method: http.MethodGet,
			target: "/health",
			want:   `{"status":"healthy","service":"cloud-api","version":"1.0.0"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestHandlersErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "add missing b", method: http.MethodPost, target: "/math/add", body: `{"a":1}`, wantStatus: 422, wantCode: types.CodeValidation},
		{name: "add float operand", method: http.MethodPost, target: "/math/add", body: `{"a":1.5,"b":2}`, wantStatus: 422, wantCode: types.CodeValidation},
		{name: "add string operand", method: http.MethodPost, target: "/math/add", body: `{"a":"1","b":2}`, wantStatus: 422, wantCode: types.CodeValidation},
		{name: "add malformed json", method: http.MethodPost, target: "/math/add", body: `{"a":1,`, wantStatus: 422, wantCode: types.CodeValidation},
		{name: "add overflow", method: http.MethodPost, target: "/math/add", body: `{"a":9223372036854775807,"b":1}`, wantStatus: 422, wantCode: types.CodeOverflow},
		{name: "add underflow", method: http.MethodPost, target: "/math/add", body: `{"a":-9223372036854775808,"b":-1}`, wantStatus: 422, wantCode: types.CodeOverflow},
		{name: "add empty body", method: http.MethodPost, target: "/math/add", wantStatus: 422, wantCode: types.CodeValidation},
		{name: "multiply missing b", method: http.MethodPost, target: "/math/multiply?a=2", wantStatus: 422, wantCode: types.CodeValidation},
		{name: "multiply empty a", method: http.MethodPost, target: "/math/multiply?a=&b=2", wantStatus: 422, wantCode: types.CodeValidation},
		{name: "multiply blank b", method: http.MethodPost, target: "/math/multiply?a=2&b=%20", wantStatus: 422, wantCode: types.CodeValidation},
		{name: "multiply not a number", method: http.MethodPost, target: "/math/multiply?a=two&b=3", wantStatus: 422, wantCode: types.CodeValidation},
		{name: "multiply NaN input", method: http.MethodPost, target: "/math/multiply?a=NaN&b=3", wantStatus: 422, wantCode: types.CodeValidation},
		{name: "multiply overflow", method: http.MethodPost, target: "/math/multiply?a=1e308&b=10", wantStatus: 422, wantCode: types.CodeNonFiniteResult},
		{name: "multiply operands in body", method: http.MethodPost, target: "/math/multiply", body: `{"a":2,"b":3}`, wantStatus: 422, wantCode: types.CodeValidation},
		{name: "power missing exponent", method: http.MethodPost, target: "/math/power?base=2", wantStatus: 422, wantCode: types.CodeValidation},
		{name: "power empty operands", method: http.MethodPost, target: "/math/power?base=&exponent=", wantStatus: 422, wantCode: types.CodeValidation},
		{name: "power empty exponent", method: http.MethodPost, target: "/math/power?base=2&exponent=", wantStatus: 422, wantCode: types.CodeValidation},
		{name: "power negative base fractional exponent", method: http.MethodPost, target: "/math/power?base=-8&exponent=0.5", wantStatus: 422, wantCode: types.CodeNonFiniteResult},
		{name: "power zero negative exponent", method: http.MethodPost, target: "/math/power?base=0&exponent=-1", wantStatus: 422, wantCode: types.CodeNonFiniteResult},
		{name: "text unknown operation", method: http.MethodPost, target: "/text/process", body: `{"text":"abc","operation":"lower"}`, wantStatus: 400, wantCode: types.CodeInvalidOperation},
		{name: "text missing text", method: http.MethodPost, target: "/text/process", body: `{"operation":"upper"}`, wantStatus: 422, wantCode: types.CodeValidation},
		{name: "text missing operation", method: http.MethodPost, target: "/text/process", body: `{"text":"abc"}`, wantStatus: 422, wantCode: types.CodeValidation},
		{name: "stats empty", method: http.MethodPost, target: "/stats/calculate", body: `{"numbers":[]}`, wantStatus: 400, wantCode: types.CodeEmptyInput},
		{name: "stats missing", method: http.MethodPost, target: "/stats/calculate", body: `{}`, wantStatus: 422, wantCode: types.CodeValidation},
		{name: "stats null", method: http.MethodPost, target: "/stats/calculate", body: `{"numbers":null}`, wantStatus: 422, wantCode: types.CodeValidation},
		{name: "stats non numeric", method: http.MethodPost, target: "/stats/calculate", body: `{"numbers":[1,"x"]}`, wantStatus: 422, wantCode: types.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Error)
			assert.NotEmpty(t, resp.Details)
		})
	}
}

func TestValidationDetailsNameField(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/math/add", `{"a":1}`)
	resp := decodeError(t, w)
	assert.Equal(t, "field 'b' is required", resp.Details)
}

func TestEmptyQueryValueDetails(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/math/multiply?a=&b=2", "")
	resp := decodeError(t, w)
	assert.Equal(t, "field 'a' is empty", resp.Details)
}

func TestRootCatalogue(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cat types.Catalogue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))
	assert.Equal(t, "cloud-api", cat.Service)
	assert.Equal(t, "1.0.0", cat.Version)
	require.Len(t, cat.Operations, 6)

	// Every advertised route is actually served
	for _, op := range cat.Operations {
		rec := do(router, op.Method, op.Path, "")
		assert.NotEqual(t, http.StatusNotFound, rec.Code, op.Path)
	}
}

func TestOperationMetrics(t *testing.T) {
	router, metrics := newTestRouter(t)

	do(router, http.MethodPost, "/math/add", `{"a":1,"b":2}`)
	do(router, http.MethodPost, "/math/add", `{"a":1}`)
	do(router, http.MethodPost, "/stats/calculate", `{"numbers":[]}`)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OperationCalls.WithLabelValues("add", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OperationErrors.WithLabelValues("add", types.CodeValidation)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OperationErrors.WithLabelValues("calculate_statistics", types.CodeEmptyInput)))
}

func TestHandlersWithoutMetrics(t *testing.T) {
	router := gin.New()
	NewHandlers("cloud-api", "", nil, nil).Register(router)

	w := do(router, http.MethodPost, "/math/add", `{"a":40,"b":2}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":42}`, w.Body.String())

	w = do(router, http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"status":"healthy","service":"cloud-api"}`, w.Body.String())
}

func TestClassifyUnknownError(t *testing.T) {
	status, code, msg := classify(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, types.CodeInternal, code)
	assert.Equal(t, "internal server error", msg)
}
