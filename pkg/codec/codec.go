// Package codec provides the codec set and media type dispatch used to
// read and write HTTP bodies in different data formats.
// Each format lives in its own file and registers itself at init time;
// which formats are compiled in is decided by build tags (for example
// the smedia_omit_yaml tag removes the YAML codec), so the resolution
// table is fixed for the lifetime of the process.
package codec

// ID identifies one codec in the compiled-in set.
type ID string

// The full codec set. The constants exist regardless of build tags;
// whether a codec is actually available is reported by Has.
const (
	JSON       ID = "json"
	URLEncoded ID = "urlencoded"
	YAML       ID = "yaml"
	XML        ID = "xml"
	CBOR       ID = "cbor"
	MsgPack    ID = "msgpack"
	Proto      ID = "proto"
)

// Default is the codec used when no media type is given, or when the
// given one is malformed or unknown. The JSON codec is always compiled
// in so Default can always be resolved.
const Default = JSON

// DisplayName returns the format name used in client-facing error
// messages, e.g. "Failed to parse the request body as JSON".
func (id ID) DisplayName() string {
	switch id {
	case JSON:
		return "JSON"
	case URLEncoded:
		return "form urlencoded"
	case YAML:
		return "yaml"
	case XML:
		return "XML"
	case CBOR:
		return "CBOR"
	case MsgPack:
		return "MessagePack"
	case Proto:
		return "Protobuf"
	default:
		return string(id)
	}
}

// ErrorKind classifies why a decode or encode attempt failed. The
// decode-side kinds separate transport problems from malformed payloads
// and from well-formed payloads that do not fit the target type, so
// callers can answer with a precise message.
type ErrorKind string

const (
	// KindBodyRead means the request body could not be read at all.
	// No codec was invoked.
	KindBodyRead ErrorKind = "body_read"
	// KindSyntax means the payload is not well formed in the codec's
	// encoding.
	KindSyntax ErrorKind = "syntax"
	// KindData means the payload is well formed but does not fit the
	// target type.
	KindData ErrorKind = "data"
	// KindFormat covers codec failures that are neither syntax nor
	// data mismatches, for formats that cannot tell the two apart.
	KindFormat ErrorKind = "format"
	// KindEncode means serializing a response value failed.
	KindEncode ErrorKind = "encode"
)

// Direction selects which capability a resolved codec must have.
// Resolution is direction-aware because the set is asymmetric: a
// serialize-only codec such as XML must never be chosen to decode a
// request body.
type Direction int

const (
	// DirectionDecode selects codecs able to deserialize request bodies.
	DirectionDecode Direction = iota
	// DirectionEncode selects codecs able to serialize response bodies.
	DirectionEncode
)

// Codec describes one wire format in the set: its identity and the
// media types it claims. Implementations also satisfy Marshaler,
// Unmarshaler, or both; resolution only ever hands out a codec through
// one of those capability interfaces.
type Codec interface {
	// ID returns the codec's identity.
	ID() ID

	// MediaTypes returns the exact "type/subtype" strings the codec
	// serves, lowercase, without parameters.
	MediaTypes() []string

	// Suffixes returns structured-syntax patterns of the form
	// "type/*+suffix" the codec serves, matching any subtype carrying
	// that suffix, e.g. "application/*+json" for
	// "application/vnd.api+json".
	Suffixes() []string
}

// Marshaler is a codec that can serialize values into its wire format.
type Marshaler interface {
	Codec

	// Marshal serializes v into a fresh byte slice.
	Marshal(v any) ([]byte, error)
}

// Unmarshaler is a codec that can deserialize its wire format.
type Unmarshaler interface {
	Codec

	// Unmarshal deserializes data into v, which must be a non-nil
	// pointer to the destination value.
	Unmarshal(data []byte, v any) error

	// Classify reports why an error returned by Unmarshal happened:
	// the failure kind and, for data mismatches, the path of the
	// offending field when the format can name it.
	Classify(err error) (ErrorKind, string)
}
