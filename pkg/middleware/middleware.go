// Package middleware provides the HTTP middleware that usually
// surrounds media decoding and encoding: request logging, panic
// recovery, body size limiting, and trace ID propagation. Each piece is
// optional; handlers built on pkg/media work without any of them.
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
)

// Middleware is a function that wraps an http.Handler to provide
// additional functionality.
type Middleware func(http.Handler) http.Handler

// Chain chains multiple middlewares together into a single middleware.
// The middlewares are applied in reverse order, so the first middleware
// in the list will be the outermost wrapper (the first to process the
// request and the last to process the response).
func Chain(middlewares ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// Recovery is a middleware that recovers from panics in HTTP handlers.
// It logs the panic and stack trace using the provided logger and
// returns a 500 Internal Server Error response. This prevents the
// server from crashing when a panic occurs in a handler.
func Recovery(logger *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					fields := []zap.Field{
						zap.Any("panic", rec),
						zap.String("stack", string(debug.Stack())),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
					}
					if traceID := TraceID(r); traceID != "" {
						fields = append([]zap.Field{zap.String("trace_id", traceID)}, fields...)
					}
					logger.Error("Panic recovered", fields...)

					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Logging is a middleware that logs HTTP requests and responses.
// It captures the request method, path, status code, and duration.
// The log level is determined by the status code and duration:
// - 500+ status codes are logged at Error level
// - 400-499 status codes are logged at Warn level
// - Requests taking longer than 1 second are logged at Warn level
// - All other requests are logged at Debug level
func Logging(logger *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rw.statusCode),
				zap.Duration("duration", duration),
			}
			if traceID := TraceID(r); traceID != "" {
				fields = append([]zap.Field{zap.String("trace_id", traceID)}, fields...)
			}

			switch {
			case rw.statusCode >= 500:
				logger.Error("Server error", fields...)
			case rw.statusCode >= 400:
				logger.Warn("Client error", fields...)
			case duration > time.Second:
				logger.Warn("Slow request", fields...)
			default:
				logger.Debug("Request", fields...)
			}
		})
	}
}

// MaxBodySize is a middleware that limits the size of the request body.
// It prevents clients from sending excessively large requests that
// could consume too much memory. A body over the limit surfaces on the
// decode side as an unreadable-body rejection with status 413.
func MaxBodySize(maxSize int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxSize)
			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter is a wrapper around http.ResponseWriter that captures
// the status code for logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code and calls the underlying
// ResponseWriter.WriteHeader.
func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

// Flush calls the underlying ResponseWriter.Flush if it implements
// http.Flusher. This allows streaming responses to be flushed to the
// client immediately.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
