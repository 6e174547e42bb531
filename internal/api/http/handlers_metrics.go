package http

import (
	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/monitoring"
)

const statusSuccess = "success"

// HandlerMetrics wraps handlers with metrics tracking
type HandlerMetrics struct {
	metrics *monitoring.Metrics
}

// NewHandlerMetrics creates a metrics wrapper. A nil collector disables tracking.
func NewHandlerMetrics(metrics *monitoring.Metrics) *HandlerMetrics {
	return &HandlerMetrics{metrics: metrics}
}

// TrackOperation starts timing a compute operation. The returned func
// records the outcome; an empty code means success.
func (hm *HandlerMetrics) TrackOperation(operation string) func(code string) {
	if hm == nil || hm.metrics == nil {
		return func(string) {}
	}

	timer := monitoring.NewTimer(hm.metrics, operation)
	return func(code string) {
		if code == "" {
			timer.Stop(statusSuccess)
			return
		}
		timer.Stop(code)
		hm.metrics.RecordOperationError(operation, code)
	}
}
