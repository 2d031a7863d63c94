package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	return ctx, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestOKEnvelope(t *testing.T) {
	ctx, w := newTestContext()
	OK(ctx, gin.H{"id": "u1"})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 200, body["statusCode"])
	assert.Equal(t, "OK", body["message"])
	assert.Equal(t, map[string]interface{}{"id": "u1"}, body["data"])
	assert.NotContains(t, body, "count")
	assert.NotContains(t, body, "errorCode")
}

func TestListKeepsEmptyRowsAndZeroCount(t *testing.T) {
	ctx, w := newTestContext()
	List(ctx, []string{}, 0)

	body := decode(t, w)
	assert.Equal(t, []interface{}{}, body["data"])
	assert.EqualValues(t, 0, body["count"])
}

func TestFailEnvelope(t *testing.T) {
	ctx, w := newTestContext()
	Conflict(ctx, CodeEmailAlreadyRegistered, "email already registered")

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 409, body["statusCode"])
	assert.Equal(t, CodeEmailAlreadyRegistered, body["errorCode"])
	assert.NotContains(t, body, "data")
}

func TestInternalHidesError(t *testing.T) {
	ctx, w := newTestContext()
	Internal(ctx, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
	assert.Equal(t, CodeInternalServerError, decode(t, w)["errorCode"])
}

func TestAbortStopsChain(t *testing.T) {
	ctx, w := newTestContext()
	Abort(ctx, JSONResponse{StatusCode: http.StatusTooManyRequests, Message: "slow down", ErrorCode: CodeTooManyRequests})

	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
