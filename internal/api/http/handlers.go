package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/cloudapi/internal/compute"
	"github.com/GriffinCanCode/cloudapi/pkg/types"
)

// Handlers serves the compute operations over HTTP
type Handlers struct {
	service string
	version string
	metrics *HandlerMetrics
	logger  *zap.Logger
}

// NewHandlers creates the handler set. metrics and logger may be nil.
func NewHandlers(service, version string, metrics *HandlerMetrics, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		service: service,
		version: version,
		metrics: metrics,
		logger:  logger,
	}
}

// Register mounts every operation route on r.
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	r.POST("/math/add", h.Add)
	r.POST("/math/multiply", h.Multiply)
	r.POST("/math/power", h.Power)
	r.POST("/text/process", h.ProcessText)
	r.POST("/stats/calculate", h.CalculateStatistics)
}

// Root returns the operation catalogue
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, types.Catalogue{
		Service:    h.service,
		Version:    h.version,
		Operations: compute.Catalogue(),
	})
}

// Health reports service status
func (h *Handlers) Health(c *gin.Context) {
	done := h.metrics.TrackOperation("health_check")
	c.JSON(http.StatusOK, compute.HealthCheck(h.service, h.version))
	done("")
}

// Add sums two integers from the JSON body
func (h *Handlers) Add(c *gin.Context) {
	const op = "add"
	done := h.metrics.TrackOperation(op)

	var req types.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		done(h.fail(c, op, &ValidationError{Err: err}))
		return
	}

	result, err := compute.Add(*req.A, *req.B)
	if err != nil {
		done(h.fail(c, op, err))
		return
	}

	c.JSON(http.StatusOK, types.AddResult{Result: result})
	done("")
}

// Multiply multiplies the a and b query parameters
func (h *Handlers) Multiply(c *gin.Context) {
	const op = "multiply"
	done := h.metrics.TrackOperation(op)

	if err := requireQueryValues(c, "a", "b"); err != nil {
		done(h.fail(c, op, err))
		return
	}

	var req types.MultiplyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		done(h.fail(c, op, &ValidationError{Err: err}))
		return
	}

	result, err := compute.Multiply(*req.A, *req.B)
	if err != nil {
		done(h.fail(c, op, err))
		return
	}

	c.JSON(http.StatusOK, types.FloatResult{Result: result})
	done("")
}

// Power raises the base query parameter to exponent
func (h *Handlers) Power(c *gin.Context) {
	const op = "power"
	done := h.metrics.TrackOperation(op)

	if err := requireQueryValues(c, "base", "exponent"); err != nil {
		done(h.fail(c, op, err))
		return
	}

	var req types.PowerRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		done(h.fail(c, op, &ValidationError{Err: err}))
		return
	}

	result, err := compute.Power(*req.Base, *req.Exponent)
	if err != nil {
		done(h.fail(c, op, err))
		return
	}

	c.JSON(http.StatusOK, types.FloatResult{Result: result})
	done("")
}

// ProcessText applies a text operation from the JSON body
func (h *Handlers) ProcessText(c *gin.Context) {
	const op = "process_text"
	done := h.metrics.TrackOperation(op)

	var req types.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		done(h.fail(c, op, &ValidationError{Err: err}))
		return
	}

	result, err := compute.ProcessText(*req.Text, req.Operation)
	if err != nil {
		done(h.fail(c, op, err))
		return
	}

	c.JSON(http.StatusOK, result)
	done("")
}

// CalculateStatistics summarizes the numbers in the JSON body
func (h *Handlers) CalculateStatistics(c *gin.Context) {
	const op = "calculate_statistics"
	done := h.metrics.TrackOperation(op)

	var req types.StatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		done(h.fail(c, op, &ValidationError{Err: err}))
		return
	}

	result, err := compute.CalculateStatistics(req.Numbers)
	if err != nil {
		done(h.fail(c, op, err))
		return
	}

	c.JSON(http.StatusOK, result)
	done("")
}
