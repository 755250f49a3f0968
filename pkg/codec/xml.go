//go:build !smedia_omit_xml

package codec

import "encoding/xml"

// xmlCodec serializes responses only. Decoding XML into arbitrary Go
// values needs per-type element mappings that a generic body layer
// cannot supply, so the codec stays out of decode resolution by not
// implementing Unmarshaler.
type xmlCodec struct{}

func init() { register(xmlCodec{}) }

func (xmlCodec) ID() ID { return XML }

func (xmlCodec) MediaTypes() []string {
	return []string{"application/xml", "text/xml"}
}

func (xmlCodec) Suffixes() []string { return []string{"application/*+xml"} }

func (xmlCodec) Marshal(v any) ([]byte, error) { return xml.Marshal(v) }
