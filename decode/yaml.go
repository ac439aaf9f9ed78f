package decode

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLDecoder implements the Decoder interface for YAML content.
type YAMLDecoder struct{}

// NewYAMLDecoder creates a new YAMLDecoder instance.
func NewYAMLDecoder() *YAMLDecoder {
	return &YAMLDecoder{}
}

// Decode parses YAML content into a generic value. Mappings with non-string
// keys come back as map[any]any; the validators match those against declared
// keys by string form, so "1: x" still satisfies a declared key "1".
func (d *YAMLDecoder) Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, errors.Join(ErrInvalidYAML, err)
	}
	return v, nil
}

// SupportsExtension checks if the decoder supports the given file extension.
func (d *YAMLDecoder) SupportsExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
