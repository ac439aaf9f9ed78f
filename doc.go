// Package schemakit provides composable validation and normalization for
// untyped data such as decoded JSON, form submissions, and configuration
// files. A validator is a pure function from an input value to either a
// normalized output or a structured failure, so the same schema both checks
// a value and canonicalizes it in one pass: strings come back trimmed,
// numbers come back as int64 or float64 regardless of the spelling they
// arrived in, and maps come back holding exactly the declared keys.
//
// # Architecture
//
// Constructors like String, Int, and ListOf assemble a pipeline of small
// steps (coerce, check, substitute) chosen by the options they receive, and
// return an immutable Validator. The structural constructors ListOf and
// MapOf recurse into validators for their elements and keys, while Compose
// and AnyOf combine arbitrary validators sequentially or as alternatives.
// There is no hidden state anywhere: building a validator is pure, running
// one is pure, and any validator can be shared across goroutines.
//
// Core building blocks:
//   - Validator: the single-method interface every piece implements
//   - Func: adapter turning an ordinary function into a Validator
//   - Option: construction-time configuration (Required, Min, OneOf, ...)
//   - Detail: structured failure payload, also an ordinary error
//
// # Usage
//
//	signup := schemakit.MapOf(map[string]schemakit.Validator{
//		"email": schemakit.String(schemakit.Required(), schemakit.Max(254)),
//		"age":   schemakit.Int(schemakit.Min(18)),
//		"tags":  schemakit.ListOf(schemakit.String(), schemakit.Max(10)),
//	})
//
//	out, err := signup.Validate(input)
//	if err != nil {
//		var fields schemakit.Fields
//		if errors.As(err, &fields) {
//			// per-key failure details
//		}
//	}
//
// # Absence
//
// Nil input, nil pointers, and strings that are blank after trimming all
// normalize to the same "no value" state. Absence flows through every check
// untouched: bounds, allow-lists, and patterns only constrain values that
// are present. Required turns absence into a failure, Default replaces it
// after all checks ran, and a validator with neither simply returns nil.
// Empty lists and maps count as absent for Required.
//
// # Error Handling
//
// Every failure is one of four Detail shapes: Message (a single reason),
// Fields and Elements (the per-key and per-index failures of MapOf and
// ListOf), and Alternatives (the per-attempt failures of AnyOf). Details
// nest, so a failing map of lists reports exactly which index of which key
// went wrong, and every shape implements error as well as natural JSON
// marshaling. WithMessage replaces a validator's failure with one fixed
// string when a caller-facing surface needs stable wording.
//
// # Concurrency and Recursion
//
// Validators are immutable after construction and safe for concurrent use.
// Validation recurses over the schema, so stack depth is bounded by the
// depth of the schema itself, not by the input; input nested deeper than the
// declared schema is never traversed.
//
// Misconfiguration is reported at construction time: an invalid Matches
// pattern, a fractional length bound, and a default that cannot fit the
// validator's output type all panic when the validator is built, never
// during Validate.
package schemakit
