//go:build !smedia_omit_urlencoded

package codec

import (
	"errors"
	"net/url"
	"sort"

	"github.com/gorilla/schema"
)

// urlencodedCodec handles classic HTML form bodies. Only flat
// structures survive the format; nested values have no standard
// representation in it. Field names follow the json struct tags so a
// type keeps one set of names across every codec.
type urlencodedCodec struct {
	enc *schema.Encoder
	dec *schema.Decoder
}

func init() {
	enc := schema.NewEncoder()
	enc.SetAliasTag("json")
	dec := schema.NewDecoder()
	dec.SetAliasTag("json")
	dec.IgnoreUnknownKeys(true)
	register(&urlencodedCodec{enc: enc, dec: dec})
}

func (*urlencodedCodec) ID() ID { return URLEncoded }

func (*urlencodedCodec) MediaTypes() []string {
	return []string{"application/x-www-form-urlencoded"}
}

func (*urlencodedCodec) Suffixes() []string { return nil }

func (c *urlencodedCodec) Marshal(v any) ([]byte, error) {
	vals := make(url.Values)
	if err := c.enc.Encode(v, vals); err != nil {
		return nil, err
	}
	return []byte(vals.Encode()), nil
}

func (c *urlencodedCodec) Unmarshal(data []byte, v any) error {
	vals, err := url.ParseQuery(string(data))
	if err != nil {
		return err
	}
	return c.dec.Decode(v, vals)
}

// Classify reports value conversion failures as data mismatches carrying
// the offending key; everything else, including query strings that do
// not parse at all, is a format error. When several keys failed the
// lowest one is reported so the message is stable.
func (c *urlencodedCodec) Classify(err error) (ErrorKind, string) {
	var multi schema.MultiError
	if errors.As(err, &multi) {
		keys := make([]string, 0, len(multi))
		for key := range multi {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			var conv schema.ConversionError
			if errors.As(multi[key], &conv) {
				return KindData, key
			}
		}
		return KindFormat, ""
	}
	var conv schema.ConversionError
	if errors.As(err, &conv) {
		return KindData, conv.Key
	}
	return KindFormat, ""
}
