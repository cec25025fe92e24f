package middleware

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newLogRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs, *prometheus.CounterVec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_requests"}, []string{"result"})

	r := gin.New()
	r.Use(RequestLogGin(zap.New(core), counter))

	return r, logs, counter
}

func TestRequestLogGin_CapturesRequest(t *testing.T) {
	r, logs, counter := newLogRouter(t)

	var seenBody string
	r.POST("/echo", func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		seenBody = string(b)
		c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"ping":true}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	// body capture must not starve the handler
	assert.Equal(t, `{"ping":true}`, seenBody)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, "HTTP request", entry.Message)
	assert.Equal(t, http.MethodPost, fields["method"])
	assert.Equal(t, "/echo", fields["url"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, `{"ping":true}`, fields["body"])
	assert.Equal(t, int64(len("pong")), fields["response_bytes"])

	assert.Equal(t, float64(1), testutil.ToFloat64(counter.WithLabelValues("app_requests_total")))
}

func TestRequestLogGin_SkipsOpsEndpoints(t *testing.T) {
	r, logs, counter := newLogRouter(t)

	r.GET("/api/v1/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/v1/healthz", "/api/v1/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	assert.Zero(t, logs.Len())
	assert.Zero(t, testutil.ToFloat64(counter.WithLabelValues("app_requests_total")))
}

func TestRequestLogGin_ElidesMultipartUploads(t *testing.T) {
	r, logs, _ := newLogRouter(t)

	r.POST("/upload", func(c *gin.Context) {
		fh, err := c.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "doc.pdf", fh.Filename)
		c.Status(http.StatusCreated)
	})

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	fw, err := w.CreateFormFile("file", "doc.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &b)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "<multipart/form-data omitted>", logs.All()[0].ContextMap()["body"])
}
