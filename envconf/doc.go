// Package envconf loads configuration from environment variables and .env
// files, either into tagged structs via Load, or through a schemakit schema
// via Validate for loosely-typed configuration with coercion, bounds, and
// defaults.
package envconf
