package schemakit

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int builds a validator that coerces input to an int64. Integer values of
// any width are accepted, as are floats and JSON numbers that carry a whole
// value, so 42.0 validates where 42.5 does not. Textual input is trimmed and
// must then satisfy the strict base-10 integer grammar: "42" passes, "42.0"
// and "42a" fail. Unsigned values past the int64 range fail rather than
// wrap.
//
// Strings that are blank after trimming normalize to absence, matching
// String's behavior, so a form submitting an empty number field reads as "no
// value" rather than a malformed one.
func Int(opts ...Option) Validator {
	cfg := buildConfig(opts)

	steps := make([]step, 0, 6)
	steps = append(steps, coerceInt)
	if cfg.required {
		steps = append(steps, checkRequired)
	}
	if cfg.oneOf != nil {
		steps = append(steps, checkOneOf(allowList("Int", "an integer", cfg.oneOf, asInt64)))
	}
	if cfg.hasMin {
		steps = append(steps, checkMin(intBound("min", cfg.min)))
	}
	if cfg.hasMax {
		steps = append(steps, checkMax(intBound("max", cfg.max)))
	}
	if cfg.hasDef {
		steps = append(steps, substituteDefault(intDefault(cfg.def)))
	}

	return pipeline{steps: steps, message: cfg.message}
}

// Float mirrors Int with float64 output. Any numeric input converts; textual
// input is trimmed and parsed with the full float grammar, so "1e3" and
// "0.5" both pass. Outputs are always finite: NaN and the infinities fail
// with "is not a number" whether they arrive as floats or as strings. Float
// does not recognize OneOf.
func Float(opts ...Option) Validator {
	cfg := buildConfig(opts)

	steps := make([]step, 0, 5)
	steps = append(steps, coerceFloat)
	if cfg.required {
		steps = append(steps, checkRequired)
	}
	if cfg.hasMin {
		steps = append(steps, checkMin(floatBound(cfg.min)))
	}
	if cfg.hasMax {
		steps = append(steps, checkMax(floatBound(cfg.max)))
	}
	if cfg.hasDef {
		steps = append(steps, substituteDefault(floatDefault(cfg.def)))
	}

	return pipeline{steps: steps, message: cfg.message}
}

func coerceInt(v any) (any, Detail) {
	if isAbsent(v) {
		return nil, nil
	}

	// JSON numbers arrive as strings but count as numeric input, so a whole
	// "42.0" converts the same way a float64 42.0 does.
	if n, ok := v.(json.Number); ok {
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(string(n), 64); err == nil {
			if i, ok := toInt64(f); ok {
				return i, nil
			}
		}
		return nil, Message("is not a number")
	}

	if isNumericKind(v) {
		i, ok := toInt64(v)
		if !ok {
			return nil, Message("is not a number")
		}
		return i, nil
	}

	s, ok := stringify(v)
	if !ok {
		return nil, Message("is not a number")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, Message("is not a number")
	}
	return i, nil
}

func coerceFloat(v any) (any, Detail) {
	if isAbsent(v) {
		return nil, nil
	}

	if isNumericKind(v) {
		f, _ := toFloat64(v)
		return finiteFloat(f)
	}

	s, ok := stringify(v)
	if !ok {
		return nil, Message("is not a number")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, Message("is not a number")
	}
	return finiteFloat(f)
}

// finiteFloat rejects NaN and the infinities. Coerced floats are always
// finite, so bound checks stay ordered comparisons.
func finiteFloat(f float64) (any, Detail) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, Message("is not a number")
	}
	return f, nil
}

func asInt64(v any) (any, bool) {
	i, ok := toInt64(v)
	return i, ok
}

func intDefault(def any) any {
	i, ok := toInt64(def)
	if !ok {
		panic(fmt.Sprintf("schemakit: Int default %v is not a whole number", def))
	}
	return i
}

func floatDefault(def any) any {
	f, ok := toFloat64(def)
	if !ok {
		panic(fmt.Sprintf("schemakit: Float default %v is not a number", def))
	}
	return f
}
