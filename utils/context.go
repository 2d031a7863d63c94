package utils

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Keys stored on the gin context by the request middleware chain.
const (
	ContextLoggerKey        = "logger"
	ContextTransactionIDKey = "transactionId"
	ContextStartTimeKey     = "requestStart"
	ContextUserIDKey        = "userID"
	ContextClaimsKey        = "claims"
	ContextTokenKey         = "token"
)

var nop = zap.NewNop()

// LoggerFrom returns the request-scoped logger, or a no-op logger outside the middleware chain.
func LoggerFrom(ctx *gin.Context) *zap.Logger {
	if v, ok := ctx.Get(ContextLoggerKey); ok {
		if lg, ok := v.(*zap.Logger); ok && lg != nil {
			return lg
		}
	}
	return nop
}
