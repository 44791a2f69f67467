// internal/middleware/recovery_middleware.go
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fiscal-service/internal/driver/novitus"
	"fiscal-service/internal/utils"
)

// RecoveryMiddleware turns panics into error responses. A panic that
// carries one of the driver's link errors means the serial conversation
// died mid-operation; that is reported as a gateway failure so callers
// reconnect instead of retrying blindly.
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		fields := []zap.Field{
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Stack("stacktrace"),
		}

		if err, ok := recovered.(error); ok {
			var transportErr *novitus.TransportError
			var framingErr *novitus.FramingError

			switch {
			case errors.As(err, &transportErr):
				logger.Error("Panic with printer transport failure", fields...)
				utils.ErrorResponse(c, http.StatusBadGateway, "Printer link failed", transportErr)
				return
			case errors.As(err, &framingErr):
				logger.Error("Panic with printer framing failure", fields...)
				utils.ErrorResponse(c, http.StatusBadGateway, "Printer reply was malformed", framingErr)
				return
			}
		}

		logger.Error("Panic recovered", fields...)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error", nil)
	})
}
