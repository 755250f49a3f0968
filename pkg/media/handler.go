package media

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Suhaibinator/SMedia/pkg/middleware"
)

// HTTPError represents an HTTP error with a status code and message.
// Handlers wrapped by Handler return it to control the response status;
// any other error is answered as a generic 500.
type HTTPError struct {
	StatusCode int    // HTTP status code (e.g., 400, 404, 500)
	Message    string // Error message to be sent in the response body
}

// Error implements the error interface.
// It returns a string representation of the HTTP error in the format "status: message".
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates a new HTTPError with the specified status code and message.
// It's a convenience function for creating HTTP errors in handlers.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// Handler adapts a typed request/response function into an
// http.HandlerFunc. The request body is decoded into Req by
// Content-Type and the response encoded per the request's Accept
// header. Decode rejections answer with their own status and message;
// errors returned by fn answer 500 unless they are an *HTTPError
// carrying a status of their own.
func Handler[Req any, Resp any](fn func(r *http.Request, req Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := Decode[Req](r)
		if err != nil {
			WriteError(w, err)
			return
		}

		out, err := fn(r, in.Value)
		if err != nil {
			handleHandlerError(w, r, err)
			return
		}

		Write(w, New(out).WithHint(AcceptHint(r)))
	}
}

func handleHandlerError(w http.ResponseWriter, r *http.Request, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if traceID := middleware.TraceID(r); traceID != "" {
		fields = append([]zap.Field{zap.String("trace_id", traceID)}, fields...)
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		configuredLogger().Error(httpErr.Message, fields...)
		http.Error(w, httpErr.Message, httpErr.StatusCode)
		return
	}
	configuredLogger().Error("Handler error", fields...)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
