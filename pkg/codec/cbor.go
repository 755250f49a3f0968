//go:build !smedia_omit_cbor

package codec

import (
	"errors"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// cborCodec carries RFC 8949 binary bodies. Encoding uses the core
// deterministic options fixed at init so a value always serializes to
// the same bytes.
type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func init() {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	register(&cborCodec{enc: enc, dec: dec})
}

func (*cborCodec) ID() ID { return CBOR }

func (*cborCodec) MediaTypes() []string { return []string{"application/cbor"} }

func (*cborCodec) Suffixes() []string { return []string{"application/*+cbor"} }

func (c *cborCodec) Marshal(v any) ([]byte, error) { return c.enc.Marshal(v) }

func (c *cborCodec) Unmarshal(data []byte, v any) error { return c.dec.Unmarshal(data, v) }

// Classify maps the library's typed errors onto the shared kinds:
// malformed or truncated items and trailing garbage are syntax
// failures, well-formed items that do not fit the destination are data
// failures carrying the struct field name when one is known.
func (c *cborCodec) Classify(err error) (ErrorKind, string) {
	var typeErr *cbor.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return KindData, typeErr.StructFieldName
	}
	var synErr *cbor.SyntaxError
	if errors.As(err, &synErr) {
		return KindSyntax, ""
	}
	var extraErr *cbor.ExtraneousDataError
	if errors.As(err, &extraErr) {
		return KindSyntax, ""
	}
	// Truncated items surface as bare EOF sentinels from the
	// well-formedness check.
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return KindSyntax, ""
	}
	return KindFormat, ""
}
