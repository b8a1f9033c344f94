package middleware

import (
	"context"
	"net/http"
	"time"
)

// Common size limits
const (
	KB = 1024
	MB = 1024 * KB

	// DefaultMaxBodySize caps request bodies. Cart and checkout payloads are
	// small JSON documents; 1MB leaves generous headroom.
	DefaultMaxBodySize = 1 * MB
)

// Common timeout values
const (
	// DefaultTimeout is the default request timeout
	DefaultTimeout = 30 * time.Second
)

// MaxBodySize limits the size of request bodies. Requests with a declared
// Content-Length over the limit are rejected with 413; chunked bodies are
// capped by a MaxBytesReader.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.ContentLength > maxBytes {
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// Timeout bounds request processing with a context deadline. Handlers that
// respect the request context stop work once the deadline passes; the
// deadline also propagates to outbound catalog and payment calls.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
