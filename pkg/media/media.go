// Package media decodes HTTP request bodies and encodes response bodies
// according to their media types. Codec selection lives in pkg/codec;
// this package owns the HTTP-facing surfaces: reading bodies, the
// classified Rejection error, response writing with the negotiated
// Content-Type, and a typed handler adapter. All of it is safe for
// concurrent use; the only shared state is the configuration installed
// once at startup.
package media

// Payload couples a body value with the media type text that should
// drive its serialization.
type Payload[T any] struct {
	// Value is the body value itself.
	Value T

	// Hint is free-form media type text, typically lifted from an
	// Accept header with AcceptHint. It is consulted when the payload
	// is encoded and never modified by this package; empty means no
	// preference, which encodes as JSON.
	Hint string
}

// New wraps v in a Payload with no encoding preference.
func New[T any](v T) Payload[T] {
	return Payload[T]{Value: v}
}

// WithHint returns a copy of p that prefers the given media type text
// when encoded.
func (p Payload[T]) WithHint(hint string) Payload[T] {
	p.Hint = hint
	return p
}
