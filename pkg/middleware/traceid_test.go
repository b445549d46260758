package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traceIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

func TestTraceIDGeneratedWhenAbsent(t *testing.T) {
	r := traceIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	header := w.Header().Get("X-Trace-ID")
	require.NotEmpty(t, header)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
	assert.Equal(t, header, w.Body.String(), "context trace_id should match the response header")
}

func TestTraceIDReusesInboundHeader(t *testing.T) {
	r := traceIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", "upstream-trace-7")
	r.ServeHTTP(w, req)

	assert.Equal(t, "upstream-trace-7", w.Header().Get("X-Trace-ID"))
	assert.Equal(t, "upstream-trace-7", w.Body.String())
}
