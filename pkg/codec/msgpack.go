//go:build !smedia_omit_msgpack

package codec

import (
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

type msgpackCodec struct{}

func init() { register(msgpackCodec{}) }

func (msgpackCodec) ID() ID { return MsgPack }

func (msgpackCodec) MediaTypes() []string {
	return []string{"application/msgpack", "application/x-msgpack"}
}

func (msgpackCodec) Suffixes() []string { return nil }

func (msgpackCodec) Marshal(v any) ([]byte, error) { return msgpack.Marshal(v) }

func (msgpackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

// Classify treats truncated input as a syntax failure. The library
// reports every other problem as a plain error with no type to pull a
// field path from, so the rest land in the format bucket.
func (msgpackCodec) Classify(err error) (ErrorKind, string) {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return KindSyntax, ""
	}
	return KindFormat, ""
}
