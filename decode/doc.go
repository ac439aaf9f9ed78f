// Package decode bridges raw JSON and YAML bytes into the loosely-typed
// values the schemakit validators consume, keeping decoding lossless where
// it matters: JSON numbers stay json.Number so large integers validate
// exactly, and YAML's mixed-key mappings survive untouched for the
// validators' key matching to resolve.
//
// Typical use pairs a decoder with a schema in one call:
//
//	out, err := decode.Parse(decode.NewJSONDecoder(), schema, body)
//
// or picks the decoder from a filename:
//
//	cfg, err := decode.ParseFile(schema, "config.yaml")
package decode
