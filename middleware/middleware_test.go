package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cppla/inkpost/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.ErrorCode
}

func newAuthEngine(tokens *utils.TokenIssuer, blacklist *utils.TokenBlacklist) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthRequired(tokens, blacklist), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(utils.ContextUserIDKey))
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	tokens := utils.NewTokenIssuer("secret", time.Minute)
	blacklist := utils.NewTokenBlacklist(nil)
	r := newAuthEngine(tokens, blacklist)

	valid, exp, err := tokens.Generate(utils.TokenUser{ID: "u1", Email: "a@b.com"})
	require.NoError(t, err)
	foreign, _, err := utils.NewTokenIssuer("other", time.Minute).Generate(utils.TokenUser{ID: "u1"})
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"foreign signature", "Bearer " + foreign, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
		{"scheme is case-insensitive", "bearer " + valid, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, "u1", w.Body.String())
			} else {
				assert.Equal(t, utils.CodeUnauthorized, errorCode(t, w))
			}
		})
	}

	require.NoError(t, blacklist.Revoke(context.Background(), valid, exp))
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimiter(t *testing.T) {
	// 2 per minute gives a burst of 1
	rl := NewRateLimiter(2)
	r := gin.New()
	r.POST("/login", rl.Middleware(), func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	w := send("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, utils.CodeTooManyRequests, errorCode(t, w))

	// buckets are per client
	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(), RequestContext(zap.NewNop()))
	r.GET("/boom", func(ctx *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, utils.CodeInternalServerError, errorCode(t, w))
}

func TestRequestContext(t *testing.T) {
	r := gin.New()
	r.Use(RequestContext(zap.NewNop()))
	r.GET("/tx", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(utils.ContextTransactionIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tx", nil))
	generated := w.Header().Get(TransactionIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/tx", nil)
	req.Header.Set(TransactionIDHeader, "trace-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Body.String())
	assert.Equal(t, "trace-123", w.Header().Get(TransactionIDHeader))
}
