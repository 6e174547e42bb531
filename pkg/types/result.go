package types

// TextOperation selects a text transform
type TextOperation string

const (
	TextUpper   TextOperation = "upper"
	TextReverse TextOperation = "reverse"
	TextClean   TextOperation = "clean"
)

// TextOperations lists the accepted selectors in a stable order
var TextOperations = []TextOperation{TextUpper, TextReverse, TextClean}

// Valid reports whether op is one of the enumerated selectors
func (op TextOperation) Valid() bool {
	switch op {
	case TextUpper, TextReverse, TextClean:
		return true
	default:
		return false
	}
}

// AddResult is the response of add
type AddResult struct {
	Result int64 `json:"result"`
}

// FloatResult is the response of multiply and power
type FloatResult struct {
	Result float64 `json:"result"`
}

// TextResult is the response of process_text
type TextResult struct {
	OriginalText  string        `json:"original_text"`
	ProcessedText string        `json:"processed_text"`
	Operation     TextOperation `json:"operation"`
}

// StatsResult is the response of calculate_statistics
type StatsResult struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
	Min    float64 `json:"min"`
	Count  int     `json:"count"`
}

// HealthStatus is the response of health_check
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
}

// OperationInfo describes one exposed operation
type OperationInfo struct {
	Name        string      `json:"name"`
	Method      string      `json:"method"`
	Path        string      `json:"path"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Parameter describes one operation input
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	In          string `json:"in"` // "body" or "query"
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Catalogue is the response of GET /
type Catalogue struct {
	Service    string          `json:"service"`
	Version    string          `json:"version"`
	Operations []OperationInfo `json:"operations"`
}

// Error codes carried in ErrorResponse.Code
const (
	CodeValidation       = "validation_error"
	CodeInvalidOperation = "invalid_operation"
	CodeEmptyInput       = "empty_input"
	CodeNonFiniteResult  = "non_finite_result"
	CodeOverflow         = "overflow"
	CodeInternal         = "internal_error"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
