package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/cloudapi/internal/compute"
	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/cloudapi/pkg/types"
)

// DefaultTimeout bounds every call unless WithTimeout says otherwise.
const DefaultTimeout = 10 * time.Second

const userAgent = "cloudapi-client/1.0"

// Client calls the compute API. It is safe for concurrent use.
type Client struct {
	resty   *resty.Client
	baseURL string
	breaker *resilience.Breaker
}

type options struct {
	timeout    time.Duration
	httpClient *http.Client
	breaker    *resilience.Settings
	headers    map[string]string
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*options)

// WithTimeout sets the per-call timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPClient supplies the underlying *http.Client, e.g. for custom TLS.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithBreaker fails calls fast after threshold consecutive connectivity
// failures, probing again after cooldown. Error responses never trip it.
func WithBreaker(threshold uint32, cooldown time.Duration) Option {
	return func(o *options) {
		o.breaker = &resilience.Settings{
			Timeout: cooldown,
			ReadyToTrip: func(counts resilience.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
		}
	}
}

// WithHeader adds a header to every request
func WithHeader(key, value string) Option {
	return func(o *options) {
		o.headers[key] = value
	}
}

// WithLogger routes transport diagnostics to logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be an absolute http(s) URL", baseURL)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	o := options{
		timeout: DefaultTimeout,
		headers: map[string]string{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		// Pooled transport only; every failed call is reported, never retried
		rc = resty.New().SetTransport(retryablehttp.NewClient().HTTPClient.Transport)
	}

	rc.SetBaseURL(baseURL).
		SetTimeout(o.timeout).
		SetRetryCount(0).
		SetLogger(o.logger.Sugar()).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetHeaders(o.headers)

	c := &Client{resty: rc, baseURL: baseURL}

	if o.breaker != nil {
		settings := *o.breaker
		settings.IsSuccessful = func(err error) bool {
			return err == nil || !IsConnectivity(err)
		}
		c.breaker = resilience.New("cloudapi-client", settings)
	}

	return c, nil
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Add sums two integers on the server
func (c *Client) Add(ctx context.Context, a, b int64) (int64, error) {
	var out types.AddResult
	err := c.call(ctx, "add", http.MethodPost, "/math/add", types.AddRequest{A: &a, B: &b}, nil, &out)
	return out.Result, err
}

// Multiply multiplies two numbers on the server
func (c *Client) Multiply(ctx context.Context, a, b float64) (float64, error) {
	if err := validateOperands("multiply", map[string]float64{"a": a, "b": b}); err != nil {
		return 0, err
	}

	var out types.FloatResult
	query := map[string]string{"a": formatFloat(a), "b": formatFloat(b)}
	err := c.call(ctx, "multiply", http.MethodPost, "/math/multiply", nil, query, &out)
	return out.Result, err
}

// Power raises base to exponent on the server
func (c *Client) Power(ctx context.Context, base, exponent float64) (float64, error) {
	if err := validateOperands("power", map[string]float64{"base": base, "exponent": exponent}); err != nil {
		return 0, err
	}

	var out types.FloatResult
	query := map[string]string{"base": formatFloat(base), "exponent": formatFloat(exponent)}
	err := c.call(ctx, "power", http.MethodPost, "/math/power", nil, query, &out)
	return out.Result, err
}

// ProcessText applies a text operation on the server
func (c *Client) ProcessText(ctx context.Context, text string, op types.TextOperation) (*types.TextResult, error) {
	var out types.TextResult
	if err := c.call(ctx, "process_text", http.MethodPost, "/text/process", types.TextRequest{Text: &text, Operation: op}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CalculateStatistics summarizes numbers on the server
func (c *Client) CalculateStatistics(ctx context.Context, numbers []float64) (*types.StatsResult, error) {
	if numbers == nil {
		numbers = []float64{}
	}

	var out types.StatsResult
	if err := c.call(ctx, "calculate_statistics", http.MethodPost, "/stats/calculate", types.StatsRequest{Numbers: numbers}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HealthCheck fetches the server status
func (c *Client) HealthCheck(ctx context.Context) (*types.HealthStatus, error) {
	var out types.HealthStatus
	if err := c.call(ctx, "health_check", http.MethodGet, "/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) call(ctx context.Context, op, method, path string, body any, query map[string]string, out any) error {
	req := c.resty.R().SetContext(ctx)
	tracing.InjectTraceContext(ctx, req.Header)

	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}
	if query != nil {
		req.SetQueryParams(query)
	}

	var resp *resty.Response
	send := func() error {
		r, err := req.Execute(method, path)
		if err != nil {
			return &ConnectivityError{Op: op, URL: c.baseURL + path, Err: err}
		}
		resp = r
		return nil
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.Do(send)
		if errors.Is(err, resilience.ErrCircuitOpen) || errors.Is(err, resilience.ErrTooManyRequests) {
			err = &ConnectivityError{Op: op, URL: c.baseURL + path, Err: err}
		}
	} else {
		err = send()
	}
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return newTransportError(op, resp.StatusCode(), resp.Body())
	}

	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return &DecodeError{Op: op, Body: string(resp.Body()), Err: err}
	}
	return nil
}

// validateOperands rejects NaN and infinite query operands before sending.
// JSON bodies get the same treatment from the encoder.
func validateOperands(op string, operands map[string]float64) error {
	for name, x := range operands {
		if err := compute.ValidateNumber(x, name); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
