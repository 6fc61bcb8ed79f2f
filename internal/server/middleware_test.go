package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("mints an ID", func(t *testing.T) {
		handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RequestID(r.Context()) == "" {
				t.Error("expected a request ID in the context")
			}
			w.WriteHeader(http.StatusOK)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/topology/discover", http.NoBody))

		if w.Header().Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID response header")
		}
	})

	t.Run("propagates caller ID", func(t *testing.T) {
		handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := RequestID(r.Context()); got != "discovery-run-7" {
				t.Errorf("context ID = %q, want discovery-run-7", got)
			}
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest("POST", "/api/v1/topology/discover", http.NoBody)
		req.Header.Set("X-Request-ID", "discovery-run-7")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "discovery-run-7" {
			t.Errorf("response X-Request-ID = %q, want discovery-run-7", got)
		}
	})
}

func TestLoggingMiddleware_PassesStatusThrough(t *testing.T) {
	logger := zap.NewNop()
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	handler := LoggingMiddleware(logger, []string{"/healthz"})(inner)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/topology/assemble", http.NoBody))

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/health", http.NoBody))

	want := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Content-Security-Policy": "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
	}
	for header, value := range want {
		if got := w.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
}

func TestVersionHeaderMiddleware(t *testing.T) {
	handler := VersionHeaderMiddleware(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/health", http.NoBody))

	if w.Header().Get("X-NetVantage-Version") == "" {
		t.Error("expected X-NetVantage-Version header")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := zap.NewNop()

	t.Run("converts panic to problem response", func(t *testing.T) {
		handler := RecoveryMiddleware(logger)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			panic("assembler blew up")
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/topology/assemble", http.NoBody))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
			t.Errorf("content-type = %q, want application/problem+json", ct)
		}
	})

	t.Run("no-op without panic", func(t *testing.T) {
		handler := RecoveryMiddleware(logger)(okHandler())

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/health", http.NoBody))

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks past the burst", func(t *testing.T) {
		// One request per second, burst of one: the second request from
		// the same client must be rejected.
		handler := RateLimitMiddleware(1, 1, nil)(okHandler())

		req := httptest.NewRequest("POST", "/api/v1/topology/discover", http.NoBody)
		req.RemoteAddr = "10.0.0.1:9999"

		w1 := httptest.NewRecorder()
		handler.ServeHTTP(w1, req)
		if w1.Code != http.StatusOK {
			t.Fatalf("first request: status = %d, want 200", w1.Code)
		}

		w2 := httptest.NewRecorder()
		handler.ServeHTTP(w2, req)
		if w2.Code != http.StatusTooManyRequests {
			t.Fatalf("second request: status = %d, want 429", w2.Code)
		}
	})

	t.Run("probe paths are never limited", func(t *testing.T) {
		handler := RateLimitMiddleware(0.001, 1, []string{"/healthz"})(okHandler())

		req := httptest.NewRequest("GET", "/healthz", http.NoBody)
		req.RemoteAddr = "10.0.0.2:9999"
		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("probe %d: status = %d, want 200", i, w.Code)
			}
		}
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		handler := RateLimitMiddleware(1, 1, nil)(okHandler())

		first := httptest.NewRequest("GET", "/api/v1/topology/status", http.NoBody)
		first.RemoteAddr = "192.0.2.10:1000"
		second := httptest.NewRequest("GET", "/api/v1/topology/status", http.NoBody)
		second.RemoteAddr = "192.0.2.20:1000"

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, first)
		if w.Code != http.StatusOK {
			t.Fatalf("first client: status = %d, want 200", w.Code)
		}

		w = httptest.NewRecorder()
		handler.ServeHTTP(w, second)
		if w.Code != http.StatusOK {
			t.Fatalf("second client: status = %d, want 200 (separate bucket)", w.Code)
		}
	})
}

func TestChain_OrdersOutsideIn(t *testing.T) {
	var trace []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trace = append(trace, name+"-in")
				next.ServeHTTP(w, r)
				trace = append(trace, name+"-out")
			})
		}
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		trace = append(trace, "handler")
		w.WriteHeader(http.StatusOK)
	})

	handler := Chain(inner, mark("outer"), mark("inner"))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/v1/health", http.NoBody))

	want := []string{"outer-in", "inner-in", "handler", "inner-out", "outer-out"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{name: "remote addr", remoteAddr: "192.168.1.100:12345", want: "192.168.1.100"},
		{name: "x-forwarded-for first hop", remoteAddr: "127.0.0.1:12345", forwarded: "203.0.113.50, 70.41.3.18", want: "203.0.113.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", http.NoBody)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewRequestID(t *testing.T) {
	a, b := newRequestID(), newRequestID()
	if len(a) != 32 {
		t.Errorf("len = %d, want 32", len(a))
	}
	if a == b {
		t.Error("two generated IDs should differ")
	}
}

func TestResponseRecorder_FirstStatusWins(t *testing.T) {
	rec := &responseRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}

	rec.WriteHeader(http.StatusUnprocessableEntity)
	rec.WriteHeader(http.StatusNotFound) // ignored

	if rec.status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422 (first call wins)", rec.status)
	}
}
