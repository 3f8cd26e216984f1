package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.JSON(200, gin.H{"ok": true})
}

// TestRequestID tests request ID propagation and generation
func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(200, c.GetString(RequestIDKey))
	})

	t.Run("uses incoming header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "incoming-id")
		router.ServeHTTP(w, req)

		if w.Body.String() != "incoming-id" {
			t.Errorf("Expected incoming request ID, got %q", w.Body.String())
		}
		if w.Header().Get("X-Request-ID") != "incoming-id" {
			t.Errorf("Expected request ID echoed in header, got %q", w.Header().Get("X-Request-ID"))
		}
	})

	t.Run("generates when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		if _, err := uuid.Parse(w.Body.String()); err != nil {
			t.Errorf("Expected generated UUID, got %q", w.Body.String())
		}
	})
}

// TestRateLimiter tests that requests beyond the burst are rejected
func TestRateLimiter(t *testing.T) {
	logger, _ := test.NewNullLogger()

	router := gin.New()
	router.Use(RateLimiter(1, 1, logger))
	router.GET("/", okHandler)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest("GET", "/", nil))
	if first.Code != 200 {
		t.Errorf("Expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest("GET", "/", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429 after burst, got %d", second.Code)
	}
}

// TestContentTypeValidation tests content type checks for requests with bodies
func TestContentTypeValidation(t *testing.T) {
	router := gin.New()
	router.Use(ContentTypeValidation("application/json"))
	router.POST("/", okHandler)

	tests := []struct {
		name        string
		body        string
		contentType string
		wantStatus  int
	}{
		{"json body", `{"id": "1"}`, "application/json", 200},
		{"json body with charset", `{"id": "1"}`, "application/json; charset=utf-8", 200},
		{"empty body without content type", "", "", 200},
		{"body without content type", `{"id": "1"}`, "", http.StatusBadRequest},
		{"unsupported content type", `{"id": "1"}`, "text/plain", http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

// TestRequestSizeLimit tests oversized request rejection
func TestRequestSizeLimit(t *testing.T) {
	router := gin.New()
	router.Use(RequestSizeLimit(16))
	router.POST("/", okHandler)

	small := httptest.NewRecorder()
	router.ServeHTTP(small, httptest.NewRequest("POST", "/", strings.NewReader(`{"id": "1"}`)))
	if small.Code != 200 {
		t.Errorf("Expected small request to pass, got %d", small.Code)
	}

	large := httptest.NewRecorder()
	router.ServeHTTP(large, httptest.NewRequest("POST", "/", strings.NewReader(strings.Repeat("x", 64))))
	if large.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413 for oversized request, got %d", large.Code)
	}
}

// TestCORS tests preflight handling
func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.GET("/", okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("Expected CORS origin header, got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

// TestSecurityHeaders tests that responses carry the security header set
func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/", okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Errorf("Expected nosniff header, got %q", w.Header().Get("X-Content-Type-Options"))
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Errorf("Expected DENY frame options, got %q", w.Header().Get("X-Frame-Options"))
	}
}
