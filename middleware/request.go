package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cppla/inkpost/utils"
)

const TransactionIDHeader = "X-Transaction-Id"

// RequestContext tags each request with a transaction id, a start time and a scoped logger.
// An incoming X-Transaction-Id is reused so ids can be traced across services.
func RequestContext(lg *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		txID := ctx.GetHeader(TransactionIDHeader)
		if txID == "" {
			txID = uuid.NewString()
		}
		ctx.Set(utils.ContextTransactionIDKey, txID)
		ctx.Set(utils.ContextStartTimeKey, time.Now())
		ctx.Set(utils.ContextLoggerKey, lg)
		ctx.Header(TransactionIDHeader, txID)

		lg.Debug("request",
			zap.String("type", "REQUEST"),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.String("ip", ctx.ClientIP()),
			zap.String("transactionId", txID),
		)
		ctx.Next()
	}
}
