package media

import (
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Suhaibinator/SMedia/pkg/codec"
	"github.com/Suhaibinator/SMedia/pkg/middleware"
)

// Decode reads the request body and deserializes it into T using the
// codec resolved from the Content-Type header; an absent or unusable
// header means JSON. Failures come back as a *Rejection whose
// StatusCode separates unreadable bodies (413 when over the configured
// size limit) from undecodable ones (400). Either way the body has been
// consumed. The returned payload carries no encode hint: what the
// request arrived as says nothing about what the response should be.
func Decode[T any](r *http.Request) (Payload[T], error) {
	start := time.Now()
	contentType := r.Header.Get("Content-Type")

	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			rej := &Rejection{
				Kind:  codec.KindBodyRead,
				Codec: codec.Resolve(contentType, codec.DirectionDecode),
				Err:   err,
			}
			observeDecode(rej.Codec, string(rej.Kind), start)
			logDecodeFailure(r, rej)
			return Payload[T]{}, rej
		}
		defer r.Body.Close()
	}

	p, id, err := decodeBytes[T](contentType, body)
	if err != nil {
		rej := err.(*Rejection)
		observeDecode(id, string(rej.Kind), start)
		logDecodeFailure(r, rej)
		return Payload[T]{}, err
	}
	observeDecode(id, "ok", start)
	return p, nil
}

// DecodeBytes deserializes body into T using the codec resolved from
// contentType. It is the pure core of Decode: no I/O, no logging, no
// metrics, which also makes it the entry point for payloads that arrive
// outside a request body.
func DecodeBytes[T any](contentType string, body []byte) (Payload[T], error) {
	p, _, err := decodeBytes[T](contentType, body)
	return p, err
}

func decodeBytes[T any](contentType string, body []byte) (Payload[T], codec.ID, error) {
	u := codec.ResolveDecoder(contentType)
	id := u.ID()

	var v T
	if err := u.Unmarshal(body, &v); err != nil {
		kind, path := u.Classify(err)
		return Payload[T]{}, id, &Rejection{Kind: kind, Codec: id, Path: path, Err: err}
	}
	return Payload[T]{Value: v}, id, nil
}

func logDecodeFailure(r *http.Request, rej *Rejection) {
	fields := []zap.Field{
		zap.Error(rej.Err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("codec", string(rej.Codec)),
		zap.String("kind", string(rej.Kind)),
	}
	if traceID := middleware.TraceID(r); traceID != "" {
		fields = append([]zap.Field{zap.String("trace_id", traceID)}, fields...)
	}

	logger := configuredLogger()
	if rej.StatusCode() == http.StatusRequestEntityTooLarge {
		logger.Warn("Request body too large", fields...)
		return
	}
	logger.Error("Failed to decode request body", fields...)
}
