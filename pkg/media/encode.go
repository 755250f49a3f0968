package media

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Suhaibinator/SMedia/pkg/codec"
	"github.com/Suhaibinator/SMedia/pkg/mediatype"
)

// Encode serializes v according to the media type hint and returns the
// body bytes together with the Content-Type value to send them under.
// The hint picks the codec through the usual resolution, but the
// returned content type echoes the hint itself in canonical form even
// when serialization fell back to the default codec, so a declared
// vendor type survives the trip untouched. An absent or malformed hint
// yields "application/json". Serialize failures come back as a
// *Rejection with status 500; no other codec is tried.
func Encode[T any](v T, hint string) ([]byte, string, error) {
	body, contentType, _, err := encodeHinted(v, hint)
	return body, contentType, err
}

func encodeHinted[T any](v T, hint string) ([]byte, string, codec.ID, error) {
	contentType := "application/json"
	enc := codec.DefaultEncoder()
	if m, ok := mediatype.Parse(hint); ok {
		contentType = m.String()
		enc = codec.ResolveEncoder(m)
	}

	body, err := enc.Marshal(v)
	if err != nil {
		return nil, "", enc.ID(), &Rejection{Kind: codec.KindEncode, Codec: enc.ID(), Err: err}
	}
	return body, contentType, enc.ID(), nil
}

// Write encodes p and writes it to w under the matching Content-Type
// header. When encoding fails the response is the plain-text rendering
// of the failure with status 500, the failure is logged, and the
// rejection is returned.
func Write[T any](w http.ResponseWriter, p Payload[T]) error {
	start := time.Now()
	body, contentType, id, err := encodeHinted(p.Value, p.Hint)
	if err != nil {
		rej := err.(*Rejection)
		observeEncode(id, string(rej.Kind), start)
		logEncodeFailure(p.Hint, rej)
		WriteError(w, err)
		return err
	}
	observeEncode(id, "ok", start)

	w.Header().Set("Content-Type", contentType)
	_, err = w.Write(body)
	return err
}

// WriteError answers the request with the plain-text rendering of err.
// A *Rejection chooses its own status; anything else is a 500.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var rej *Rejection
	if errors.As(err, &rej) {
		status = rej.StatusCode()
	}
	http.Error(w, err.Error(), status)
}

func logEncodeFailure(hint string, rej *Rejection) {
	configuredLogger().Error("Failed to encode response body",
		zap.Error(rej.Err),
		zap.String("hint", hint),
		zap.String("codec", string(rej.Codec)),
	)
}
