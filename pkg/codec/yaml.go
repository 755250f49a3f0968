//go:build !smedia_omit_yaml

package codec

import (
	"errors"

	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

func init() { register(yamlCodec{}) }

func (yamlCodec) ID() ID { return YAML }

func (yamlCodec) MediaTypes() []string {
	return []string{"application/yaml", "text/yaml"}
}

func (yamlCodec) Suffixes() []string { return []string{"application/*+yaml"} }

func (yamlCodec) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// Classify reports type mismatches as data failures. yaml.v3 wraps them
// in a TypeError without a machine-readable field path, so the path
// stays empty; every other failure, malformed input included, comes
// back as a plain error and is reported as a format error.
func (yamlCodec) Classify(err error) (ErrorKind, string) {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return KindData, ""
	}
	return KindFormat, ""
}
