//go:build !smedia_omit_proto

package codec

import (
	"errors"
	"fmt"
	"reflect"

	"google.golang.org/protobuf/proto"
)

// For testing purposes, we expose these variables so they can be overridden in tests
var protoMarshal = proto.Marshal
var protoUnmarshal = proto.Unmarshal

// protoCodec carries Protocol Buffers bodies. Values must implement
// proto.Message: the wire format carries no schema, so there is nothing
// to decode into an arbitrary Go value.
type protoCodec struct{}

func init() { register(protoCodec{}) }

func (protoCodec) ID() ID { return Proto }

func (protoCodec) MediaTypes() []string {
	return []string{"application/x-protobuf", "application/protobuf"}
}

func (protoCodec) Suffixes() []string { return nil }

func (protoCodec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(proto.Message)
	if !ok {
		return nil, &protoTargetError{target: fmt.Sprintf("%T", v)}
	}
	return protoMarshal(msg)
}

// Unmarshal accepts either a proto.Message directly or a pointer to a
// message pointer, which is what a generic decode of T = *pb.Msg hands
// in. In the latter case a nil message is allocated before decoding.
func (protoCodec) Unmarshal(data []byte, v any) error {
	if msg, ok := v.(proto.Message); ok {
		return protoUnmarshal(data, msg)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Pointer {
		elem := rv.Elem()
		if elem.IsNil() {
			elem.Set(reflect.New(elem.Type().Elem()))
		}
		if msg, ok := elem.Interface().(proto.Message); ok {
			return protoUnmarshal(data, msg)
		}
	}
	return &protoTargetError{target: fmt.Sprintf("%T", v)}
}

// Classify puts destination type problems in the format bucket; any
// error out of the wire decoder itself means malformed bytes, since a
// message that fits the schema always decodes.
func (protoCodec) Classify(err error) (ErrorKind, string) {
	var targetErr *protoTargetError
	if errors.As(err, &targetErr) {
		return KindFormat, ""
	}
	return KindSyntax, ""
}

type protoTargetError struct {
	target string
}

func (e *protoTargetError) Error() string {
	return "proto: " + e.target + " does not implement proto.Message"
}
