package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/cloudapi/internal/compute"
	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/cloudapi/pkg/types"
)

// ValidationError marks input rejected before any computation ran.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return describeBindError(e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// requireQueryValues rejects parameters that are present but blank. Form
// binding turns "a=" into 0, so a blank value would otherwise pass as zero.
func requireQueryValues(c *gin.Context, names ...string) error {
	for _, name := range names {
		if v, ok := c.GetQuery(name); ok && strings.TrimSpace(v) == "" {
			return &ValidationError{Err: fmt.Errorf("field '%s' is empty", name)}
		}
	}
	return nil
}

// classify maps an error to its HTTP status, error code and public message.
func classify(err error) (int, string, string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, compute.ErrInvalidNumber):
		return http.StatusUnprocessableEntity, types.CodeValidation, "invalid input"
	case errors.Is(err, compute.ErrInvalidOperation):
		return http.StatusBadRequest, types.CodeInvalidOperation, "invalid operation"
	case errors.Is(err, compute.ErrEmptyInput):
		return http.StatusBadRequest, types.CodeEmptyInput, "empty input"
	case errors.Is(err, compute.ErrNonFiniteResult):
		return http.StatusUnprocessableEntity, types.CodeNonFiniteResult, "result is not a finite number"
	case errors.Is(err, compute.ErrOverflow):
		return http.StatusUnprocessableEntity, types.CodeOverflow, "result does not fit in a 64-bit integer"
	default:
		return http.StatusInternalServerError, types.CodeInternal, "internal server error"
	}
}

// fail writes the error response for err and returns its code.
func (h *Handlers) fail(c *gin.Context, op string, err error) string {
	status, code, message := classify(err)

	resp := types.ErrorResponse{Error: message, Code: code}
	if code != types.CodeInternal {
		resp.Details = err.Error()
	}

	fields := append(tracing.Fields(c.Request.Context()),
		zap.String("operation", op),
		zap.String("code", code),
		zap.Error(err),
	)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Operation failed", fields...)
		_ = c.Error(err)
	} else {
		h.logger.Debug("Operation rejected", fields...)
	}

	c.AbortWithStatusJSON(status, resp)
	return code
}

// describeBindError renders binding failures without leaking Go type names.
func describeBindError(err error) string {
	if errors.Is(err, io.EOF) {
		return "request body is empty"
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("field '%s' is %s", fieldName(fe), fe.Tag()))
		}
		return strings.Join(msgs, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("field '%s' has the wrong type (got %s)", typeErr.Field, typeErr.Value)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Sprintf("%q is not a number", numErr.Num)
	}

	return err.Error()
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return fe.StructField()
	}
	return strings.ToLower(name)
}
