package decode

import "errors"

var (
	ErrInvalidJSON       = errors.New("invalid JSON content")
	ErrInvalidYAML       = errors.New("invalid YAML content")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrReadFile          = errors.New("failed to read file")
)
