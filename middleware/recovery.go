package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cppla/inkpost/utils"
)

// Recovery is the top-level panic boundary. It logs the stack and answers with
// the INTERNAL_SERVER_ERROR envelope unless a response was already written.
func Recovery() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			utils.LoggerFrom(ctx).Error("panic recovered",
				zap.Any("error", rec),
				zap.String("path", ctx.Request.URL.Path),
				zap.String("transactionId", ctx.GetString(utils.ContextTransactionIDKey)),
				zap.ByteString("stack", debug.Stack()),
			)
			if ctx.Writer.Written() {
				ctx.Abort()
				return
			}
			utils.Abort(ctx, utils.JSONResponse{
				StatusCode: http.StatusInternalServerError,
				Message:    "internal server error",
				ErrorCode:  utils.CodeInternalServerError,
			})
		}()
		ctx.Next()
	}
}
