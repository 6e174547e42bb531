package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/cloudapi/pkg/types"
)

// Recovery turns panics into a 500 internal_error response and logs them.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		fields := append(tracing.Fields(c.Request.Context()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		logger.Error("Recovered from panic", fields...)

		c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{
			Error: "internal server error",
			Code:  types.CodeInternal,
		})
	})
}
