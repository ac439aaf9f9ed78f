package schemakit

import "fmt"

// boolLiterals resolves non-bool input through the engine's own coercions:
// anything Int reads as 0 or 1, or anything String trims to exactly "false"
// or "true".
var boolLiterals = AnyOf(
	Int(OneOf(0, 1)),
	String(OneOf("false", "true")),
)

// Bool builds a validator that coerces input to a bool. Booleans pass
// through. Anything the integer validator reads as 0 or 1, including the
// strings "0" and "1" and the float 1.0, converts, as do strings trimming to
// exactly "false" or "true". Blank strings normalize to absence, as with
// String and Int. Everything else fails with "is not a boolean": there is no
// "yes"/"on" family, and the literals are case-sensitive, so "TRUE" is
// rejected.
func Bool(opts ...Option) Validator {
	cfg := buildConfig(opts)

	steps := make([]step, 0, 3)
	steps = append(steps, coerceBool)
	if cfg.required {
		steps = append(steps, checkRequired)
	}
	if cfg.hasDef {
		steps = append(steps, substituteDefault(boolDefault(cfg.def)))
	}

	return pipeline{steps: steps, message: cfg.message}
}

func coerceBool(v any) (any, Detail) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	if isAbsent(v) {
		return nil, nil
	}

	out, err := boolLiterals.Validate(v)
	if err != nil {
		return nil, Message("is not a boolean")
	}
	if isAbsent(out) {
		// A blank string passed through the literal coercion: absence, not
		// a malformed boolean.
		return nil, nil
	}
	switch out {
	case int64(1), "true":
		return true, nil
	default: // int64(0) or "false"
		return false, nil
	}
}

func boolDefault(def any) any {
	b, ok := def.(bool)
	if !ok {
		panic(fmt.Sprintf("schemakit: Bool default %v is not a bool", def))
	}
	return b
}
