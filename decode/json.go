package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// JSONDecoder implements the Decoder interface for JSON content.
type JSONDecoder struct{}

// NewJSONDecoder creates a new JSONDecoder instance.
func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{}
}

// Decode parses JSON content into a generic value. Numbers are kept as
// json.Number rather than float64, so integer validation stays exact beyond
// float64's 53-bit integer range and whole-versus-fractional is decided by
// the validator, not the decoder.
func (d *JSONDecoder) Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}
	// Exactly one value per document; trailing content is malformed.
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrInvalidJSON
	}
	return v, nil
}

// SupportsExtension checks if the decoder supports the given file extension.
func (d *JSONDecoder) SupportsExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
