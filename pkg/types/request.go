package types

// AddRequest is the JSON body of POST /math/add.
// Pointers distinguish a missing operand from a zero operand.
type AddRequest struct {
	A *int64 `json:"a" binding:"required"`
	B *int64 `json:"b" binding:"required"`
}

// MultiplyRequest carries the query parameters of POST /math/multiply.
type MultiplyRequest struct {
	A *float64 `form:"a" json:"a" binding:"required"`
	B *float64 `form:"b" json:"b" binding:"required"`
}

// PowerRequest carries the query parameters of POST /math/power.
type PowerRequest struct {
	Base     *float64 `form:"base" json:"base" binding:"required"`
	Exponent *float64 `form:"exponent" json:"exponent" binding:"required"`
}

// TextRequest is the JSON body of POST /text/process.
// The operation is checked by the compute layer, not by binding, so an
// unknown selector is reported as an invalid operation rather than a malformed payload.
type TextRequest struct {
	Text      *string       `json:"text" binding:"required"`
	Operation TextOperation `json:"operation" binding:"required"`
}

// StatsRequest is the JSON body of POST /stats/calculate.
// An empty but present array passes binding and is rejected as empty input.
type StatsRequest struct {
	Numbers []float64 `json:"numbers" binding:"required"`
}
