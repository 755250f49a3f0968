package codec

import (
	"encoding/json"
	"errors"
	"io"
)

// jsonCodec is the default codec. It is always compiled in: it backs
// the fallback for absent, malformed, and unknown media types, and it
// serves every "+json" structured-syntax type.
type jsonCodec struct{}

func init() { register(jsonCodec{}) }

func (jsonCodec) ID() ID { return JSON }

func (jsonCodec) MediaTypes() []string { return []string{"application/json"} }

func (jsonCodec) Suffixes() []string { return []string{"application/*+json"} }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Classify separates malformed JSON from well-formed JSON that does not
// fit the target type. encoding/json reports the latter with the
// offending field attached, which becomes the path.
func (jsonCodec) Classify(err error) (ErrorKind, string) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return KindData, typeErr.Field
	}
	var synErr *json.SyntaxError
	if errors.As(err, &synErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return KindSyntax, ""
	}
	return KindData, ""
}
