package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newMiddlewareRouter(mw gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestCORSMiddleware(t *testing.T) {
	allowed := []string{"http://localhost:3000", "https://*.dealbridge.example"}

	t.Run("exact origin is allowed", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware(allowed))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Allow-Origin = %q, want the request origin", got)
		}
	})

	t.Run("wildcard prefix matches subdomains", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware(allowed))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://app.dealbridge.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.dealbridge.example" {
			t.Errorf("Allow-Origin = %q, want the request origin", got)
		}
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware(allowed))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("preflight short-circuits with 204", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware(allowed))

		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", w.Code)
		}
		if headers := w.Header().Get("Access-Control-Allow-Headers"); headers == "" {
			t.Error("Allow-Headers missing on preflight response")
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("requests over the burst get 429", func(t *testing.T) {
		// Effectively no refill within the test, burst of 2.
		router := newMiddlewareRouter(RateLimitMiddleware(0.001, 2))

		statuses := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			statuses = append(statuses, w.Code)
		}

		if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
			t.Errorf("first two statuses = %v, want both 200", statuses[:2])
		}
		if statuses[2] != http.StatusTooManyRequests {
			t.Errorf("third status = %d, want 429", statuses[2])
		}
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		router := newMiddlewareRouter(RateLimitMiddleware(0.001, 1))

		first := httptest.NewRequest(http.MethodGet, "/ping", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, first)
		if w.Code != http.StatusOK {
			t.Fatalf("first client status = %d, want 200", w.Code)
		}

		second := httptest.NewRequest(http.MethodGet, "/ping", nil)
		second.RemoteAddr = "10.0.0.2:1234"
		w = httptest.NewRecorder()
		router.ServeHTTP(w, second)
		if w.Code != http.StatusOK {
			t.Errorf("second client status = %d, want 200 (separate bucket)", w.Code)
		}
	})
}
