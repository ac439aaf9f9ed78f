package decode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/schemakit"
)

// Decoder turns raw bytes into the loosely-typed values schemakit validates:
// maps, slices, strings, numbers, booleans, and nil.
type Decoder interface {
	// Decode parses data into a generic value.
	Decode(data []byte) (any, error)

	// SupportsExtension checks if the decoder handles a given file extension.
	// The extension may or may not include a leading dot, so both "json" and
	// ".json" are valid.
	SupportsExtension(ext string) bool
}

// ForFile returns a decoder based on the file extension, or nil when no
// decoder handles it.
func ForFile(filename string) Decoder {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "json":
		return NewJSONDecoder()
	case "yaml", "yml":
		return NewYAMLDecoder()
	default:
		return nil
	}
}

// Parse decodes data with d and validates the result with v, returning the
// normalized value. Decoding failures come back as the decoder's error,
// validation failures as a schemakit Detail.
func Parse(d Decoder, v schemakit.Validator, data []byte) (any, error) {
	if d == nil {
		return nil, ErrUnsupportedFormat
	}
	raw, err := d.Decode(data)
	if err != nil {
		return nil, err
	}
	return v.Validate(raw)
}

// ParseFile reads filename, picks a decoder from its extension, and validates
// the decoded content with v.
func ParseFile(v schemakit.Validator, filename string) (any, error) {
	d := ForFile(filename)
	if d == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	// The os error already names the file and distinguishes a missing file
	// from a permission problem, so keep it in the chain.
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	return Parse(d, v, data)
}
