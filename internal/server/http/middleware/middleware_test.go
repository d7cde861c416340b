package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGenerated(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	var seen string
	engine.GET("/", func(c *gin.Context) {
		seen = c.GetString(RequestIDContextKey)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("request id not set in context")
	}
	if rec.Header().Get("X-Request-ID") != seen {
		t.Fatalf("response header %q does not match context id %q", rec.Header().Get("X-Request-ID"), seen)
	}
}

func TestRequestIDHonorsCallerHeader(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Fatalf("expected caller id to be kept, got %q", got)
	}
}

func TestDecisionRateLimitThrottles(t *testing.T) {
	engine := gin.New()
	engine.GET("/", DecisionRateLimit(1, 2), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests must pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once burst is exhausted, got %v", codes)
	}
}

func TestDecompressRequestUnwrapsGzip(t *testing.T) {
	engine := gin.New()
	engine.Use(DecompressRequest())
	var seen string
	engine.POST("/", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		seen = string(body)
		c.Status(http.StatusOK)
	})

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(`{"hello":"world"}`)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen != `{"hello":"world"}` {
		t.Fatalf("body not decompressed: %q", seen)
	}
}

func TestDecompressRequestRejectsBrokenGzip(t *testing.T) {
	engine := gin.New()
	engine.Use(DecompressRequest())
	engine.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDecompressRequestPassesPlainBody(t *testing.T) {
	engine := gin.New()
	engine.Use(DecompressRequest())
	var seen string
	engine.POST("/", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		seen = string(body)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if seen != "plain" {
		t.Fatalf("plain body altered: %q", seen)
	}
}
