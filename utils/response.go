package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes carried in the errorCode field of failed responses.
const (
	CodeBadRequest             = "BAD_REQUEST"
	CodeInvalidEmailFormat     = "INVALID_EMAIL_FORMAT"
	CodeCredentialsNotValid    = "CREDENTIALS_NOT_VALID"
	CodeCannotFollowSelf       = "CANNOT_FOLLOW_SELF"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeNotFound               = "NOT_FOUND"
	CodeUserNotFound           = "USER_NOT_FOUND"
	CodeArticleNotFound        = "ARTICLE_NOT_FOUND"
	CodeConflict               = "CONFLICT"
	CodeEmailAlreadyRegistered = "EMAIL_ALREADY_REGISTERED"
	CodeAlreadyFollowing       = "ALREADY_FOLLOWING"
	CodeTooManyRequests        = "TOO_MANY_REQUESTS"
	CodeInternalServerError    = "INTERNAL_SERVER_ERROR"
)

// JSONResponse defines the uniform structure for API responses.
type JSONResponse struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Count      *int64      `json:"count,omitempty"`
	ErrorCode  string      `json:"errorCode,omitempty"`
}

// Respond writes the envelope and logs one RESPONSE line for the request.
func Respond(ctx *gin.Context, body JSONResponse) {
	logResponse(ctx, body)
	ctx.JSON(body.StatusCode, body)
}

// Abort is Respond for middleware: later handlers are skipped.
func Abort(ctx *gin.Context, body JSONResponse) {
	logResponse(ctx, body)
	ctx.AbortWithStatusJSON(body.StatusCode, body)
}

// OK writes a 200 envelope; success messages are always the status reason phrase.
func OK(ctx *gin.Context, data interface{}) {
	Respond(ctx, JSONResponse{StatusCode: http.StatusOK, Message: http.StatusText(http.StatusOK), Data: data})
}

func Created(ctx *gin.Context, data interface{}) {
	Respond(ctx, JSONResponse{StatusCode: http.StatusCreated, Message: http.StatusText(http.StatusCreated), Data: data})
}

// List writes a page of rows plus the total match count.
func List(ctx *gin.Context, rows interface{}, count int64) {
	Respond(ctx, JSONResponse{StatusCode: http.StatusOK, Message: http.StatusText(http.StatusOK), Data: rows, Count: &count})
}

// Fail writes an error envelope without data.
func Fail(ctx *gin.Context, status int, code, message string) {
	Respond(ctx, JSONResponse{StatusCode: status, Message: message, ErrorCode: code})
}

func BadRequest(ctx *gin.Context, code, message string) {
	Fail(ctx, http.StatusBadRequest, code, message)
}

func NotFound(ctx *gin.Context, code, message string) {
	Fail(ctx, http.StatusNotFound, code, message)
}

func Conflict(ctx *gin.Context, code, message string) {
	Fail(ctx, http.StatusConflict, code, message)
}

func Unauthorized(ctx *gin.Context, message string) {
	Fail(ctx, http.StatusUnauthorized, CodeUnauthorized, message)
}

// Internal logs err and hides it from the client.
func Internal(ctx *gin.Context, err error) {
	LoggerFrom(ctx).Error("request failed", zap.Error(err), zap.String("transactionId", ctx.GetString(ContextTransactionIDKey)))
	Fail(ctx, http.StatusInternalServerError, CodeInternalServerError, "internal server error")
}

func logResponse(ctx *gin.Context, body JSONResponse) {
	fields := []zap.Field{
		zap.String("type", "RESPONSE"),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.Request.URL.Path),
		zap.String("route", ctx.FullPath()),
		zap.Int("statusCode", body.StatusCode),
		zap.String("transactionId", ctx.GetString(ContextTransactionIDKey)),
	}
	if start, ok := ctx.Get(ContextStartTimeKey); ok {
		if t, ok := start.(time.Time); ok {
			fields = append(fields, zap.Duration("responseTime", time.Since(t)))
		}
	}
	if uid := ctx.GetString(ContextUserIDKey); uid != "" {
		fields = append(fields, zap.String("userId", uid))
	}
	if body.ErrorCode != "" {
		fields = append(fields, zap.String("errorCode", body.ErrorCode))
	}
	lg := LoggerFrom(ctx)
	switch {
	case body.StatusCode >= http.StatusInternalServerError:
		lg.Error(body.Message, fields...)
	case body.StatusCode >= http.StatusBadRequest:
		lg.Warn(body.Message, fields...)
	default:
		lg.Info(body.Message, fields...)
	}
}
