package media

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Suhaibinator/SMedia/pkg/codec"
)

// Rejection is the classified failure produced when a request body
// cannot be decoded or a response value cannot be encoded. The message
// it renders is safe to hand to clients verbatim; the underlying error
// stays reachable through Unwrap.
type Rejection struct {
	// Kind says what failed.
	Kind codec.ErrorKind

	// Codec identifies the codec that was selected when the failure
	// happened.
	Codec codec.ID

	// Path names the offending field for data mismatches, when the
	// codec could identify it.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (r *Rejection) Error() string {
	name := r.Codec.DisplayName()
	switch r.Kind {
	case codec.KindBodyRead:
		return fmt.Sprintf("Failed to read the request body: %v", r.Err)
	case codec.KindSyntax:
		return fmt.Sprintf("Failed to parse the request body as %s: %v", name, r.Err)
	case codec.KindData:
		if r.Path != "" {
			return fmt.Sprintf("Failed to deserialize the %s body into the target type: %s: %v", name, r.Path, r.Err)
		}
		return fmt.Sprintf("Failed to deserialize the %s body into the target type: %v", name, r.Err)
	case codec.KindEncode:
		return fmt.Sprintf("Failed to encode the response body as %s: %v", name, r.Err)
	default:
		return fmt.Sprintf("Failed to decode the request body as %s: %v", name, r.Err)
	}
}

// Unwrap returns the underlying error so errors.Is and errors.As see
// through the rejection.
func (r *Rejection) Unwrap() error { return r.Err }

// StatusCode returns the HTTP status the rejection should be answered
// with: encode failures are server faults, a body over the configured
// size limit is 413, and every other decode failure is the client's
// 400.
func (r *Rejection) StatusCode() int {
	switch r.Kind {
	case codec.KindEncode:
		return http.StatusInternalServerError
	case codec.KindBodyRead:
		var maxErr *http.MaxBytesError
		if errors.As(r.Err, &maxErr) {
			return http.StatusRequestEntityTooLarge
		}
	}
	return http.StatusBadRequest
}
