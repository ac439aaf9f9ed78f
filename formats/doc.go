// Package formats provides validators for common string formats: UUIDs,
// email addresses, URLs, and IP addresses.
//
// Each constructor wraps a string validator, so inputs are trimmed and
// coerced first and the usual options apply:
//
//	id := formats.UUID(schemakit.Required())
//	out, err := id.Validate("  6BA7B810-9DAD-11D1-80B4-00C04FD430C8  ")
//	// out == "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Format checks run only on present values. An absent input passes through
// as nil unless the validator was built with schemakit.Required, matching
// the behavior of the primitive validators.
//
// UUID and Email normalize their output: UUIDs are lowercased and email
// addresses are reduced to the bare address form with any display name
// removed. URL and IP validators return the trimmed input unchanged.
package formats
