package compute

import (
	"net/http"

	"github.com/GriffinCanCode/cloudapi/pkg/types"
)

// StatusHealthy is the only status the service reports
const StatusHealthy = "healthy"

// HealthCheck builds a fresh status record for service
func HealthCheck(service, version string) types.HealthStatus {
	return types.HealthStatus{
		Status:  StatusHealthy,
		Service: service,
		Version: version,
	}
}

// Catalogue returns the operation definitions exposed over HTTP
func Catalogue() []types.OperationInfo {
	return []types.OperationInfo{
		{
			Name:        "add",
			Method:      http.MethodPost,
			Path:        "/math/add",
			Description: "Add two integers",
			Parameters: []types.Parameter{
				{Name: "a", Type: "integer", In: "body", Description: "First operand", Required: true},
				{Name: "b", Type: "integer", In: "body", Description: "Second operand", Required: true},
			},
			Returns: "integer",
		},
		{
			Name:        "multiply",
			Method:      http.MethodPost,
			Path:        "/math/multiply",
			Description: "Multiply two numbers",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", In: "query", Description: "First factor", Required: true},
				{Name: "b", Type: "number", In: "query", Description: "Second factor", Required: true},
			},
			Returns: "number",
		},
		{
			Name:        "power",
			Method:      http.MethodPost,
			Path:        "/math/power",
			Description: "Raise base to the power of exponent",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", In: "query", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", In: "query", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
		{
			Name:        "process_text",
			Method:      http.MethodPost,
			Path:        "/text/process",
			Description: "Transform text (upper, reverse, clean)",
			Parameters: []types.Parameter{
				{Name: "text", Type: "string", In: "body", Description: "Input text", Required: true},
				{Name: "operation", Type: "string", In: "body", Description: "One of upper, reverse, clean", Required: true},
			},
			Returns: "object",
		},
		{
			Name:        "calculate_statistics",
			Method:      http.MethodPost,
			Path:        "/stats/calculate",
			Description: "Mean, median, max, min and count of a non-empty sequence",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", In: "body", Description: "Numbers", Required: true},
			},
			Returns: "object",
		},
		{
			Name:        "health_check",
			Method:      http.MethodGet,
			Path:        "/health",
			Description: "Service status",
			Parameters:  []types.Parameter{},
			Returns:     "object",
		},
	}
}
