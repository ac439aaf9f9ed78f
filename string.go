package schemakit

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// String builds a validator that coerces input to a trimmed string. Anything
// with a canonical textual form is accepted: strings, byte slices, numbers,
// booleans, and fmt.Stringer values. Composite values fail with
// "is not a string".
//
// Leading and trailing whitespace is always stripped, and a string that is
// empty after trimming normalizes to absence, so Required rejects
// whitespace-only input. With Normalize the string is NFC-normalized before
// trimming. Length bounds count runes, not bytes.
func String(opts ...Option) Validator {
	cfg := buildConfig(opts)

	steps := make([]step, 0, 8)
	steps = append(steps, coerceString)
	if cfg.normalize {
		steps = append(steps, normalizeNFC)
	}
	steps = append(steps, trimString)
	if cfg.required {
		steps = append(steps, checkRequired)
	}
	if cfg.oneOf != nil {
		steps = append(steps, checkOneOf(allowList("String", "a string", cfg.oneOf, asString)))
	}
	if cfg.hasMin {
		steps = append(steps, checkMinChars(lengthBound("String", "min", cfg.min)))
	}
	if cfg.hasMax {
		steps = append(steps, checkMaxChars(lengthBound("String", "max", cfg.max)))
	}
	if cfg.pattern != nil {
		steps = append(steps, checkPattern(cfg.pattern))
	}
	if cfg.hasDef {
		steps = append(steps, substituteDefault(stringDefault(cfg.def)))
	}

	return pipeline{steps: steps, message: cfg.message}
}

func coerceString(v any) (any, Detail) {
	if isAbsent(v) {
		return nil, nil
	}
	s, ok := stringify(v)
	if !ok {
		return nil, Message("is not a string")
	}
	return s, nil
}

func normalizeNFC(v any) (any, Detail) {
	if isAbsent(v) {
		return nil, nil
	}
	return norm.NFC.String(v.(string)), nil
}

// trimString strips surrounding whitespace and turns strings that are empty
// afterwards into absence.
func trimString(v any) (any, Detail) {
	if isAbsent(v) {
		return nil, nil
	}
	s := strings.TrimSpace(v.(string))
	if s == "" {
		return nil, nil
	}
	return s, nil
}

func checkMinChars(min int) step {
	message := Message(fmt.Sprintf("is less than %d chars long", min))
	return func(v any) (any, Detail) {
		if isAbsent(v) {
			return v, nil
		}
		if utf8.RuneCountInString(v.(string)) < min {
			return nil, message
		}
		return v, nil
	}
}

func checkMaxChars(max int) step {
	message := Message(fmt.Sprintf("is more than %d chars long", max))
	return func(v any) (any, Detail) {
		if isAbsent(v) {
			return v, nil
		}
		if utf8.RuneCountInString(v.(string)) > max {
			return nil, message
		}
		return v, nil
	}
}

func checkPattern(re *regexp.Regexp) step {
	return func(v any) (any, Detail) {
		if isAbsent(v) {
			return v, nil
		}
		if !re.MatchString(v.(string)) {
			return nil, Message("does not match")
		}
		return v, nil
	}
}

func asString(v any) (any, bool) {
	s, ok := stringify(v)
	return s, ok
}

func stringDefault(def any) any {
	s, ok := stringify(def)
	if !ok {
		panic(fmt.Sprintf("schemakit: String default %v is not a string", def))
	}
	return s
}
