package schemakit

import (
	"fmt"
	"reflect"
	"strings"
)

// checkRequired fails with "is blank" when the value is absent or an empty
// collection. Emptiness of strings never reaches this step: blank strings
// are normalized to absence during coercion.
func checkRequired(v any) (any, Detail) {
	if isAbsent(v) {
		return nil, Message("is blank")
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		if rv.Len() == 0 {
			return nil, Message("is blank")
		}
	}
	return v, nil
}

// substituteDefault replaces a value that is still absent after every check
// with def. It runs last, so defaults are never validated.
func substituteDefault(def any) step {
	return func(v any) (any, Detail) {
		if isAbsent(v) {
			return def, nil
		}
		return v, nil
	}
}

// checkOneOf fails values outside the allow-list. Entries are already in the
// validator's canonical type, so plain equality is the membership test.
// Absent values pass.
func checkOneOf(allowed []any) step {
	message := Message("is not one of: " + joinValues(allowed))
	return func(v any) (any, Detail) {
		if isAbsent(v) {
			return v, nil
		}
		for _, a := range allowed {
			if v == a {
				return v, nil
			}
		}
		return nil, message
	}
}

func joinValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, ", ")
}

// checkMin fails values below min. Absent values pass.
func checkMin[T int64 | float64](min T) step {
	message := Message(fmt.Sprintf("is less than %v", min))
	return func(v any) (any, Detail) {
		if isAbsent(v) {
			return v, nil
		}
		if v.(T) < min {
			return nil, message
		}
		return v, nil
	}
}

// checkMax fails values above max. Absent values pass.
func checkMax[T int64 | float64](max T) step {
	message := Message(fmt.Sprintf("is greater than %v", max))
	return func(v any) (any, Detail) {
		if isAbsent(v) {
			return v, nil
		}
		if v.(T) > max {
			return nil, message
		}
		return v, nil
	}
}

// allowList converts raw OneOf values to the constructor's canonical type,
// panicking at construction time on values that cannot convert.
func allowList(constructor, want string, raw []any, convert func(any) (any, bool)) []any {
	out := make([]any, len(raw))
	for i, v := range raw {
		c, ok := convert(v)
		if !ok {
			panic(fmt.Sprintf("schemakit: %s OneOf value %v is not %s", constructor, v, want))
		}
		out[i] = c
	}
	return out
}

// lengthBound converts a Min or Max option value to a whole-number length,
// panicking at construction time on fractional values.
func lengthBound(constructor, name string, v any) int {
	n, ok := toInt64(v)
	if !ok {
		panic(fmt.Sprintf("schemakit: %s %s must be a whole number, got %v", constructor, name, v))
	}
	return int(n)
}

// intBound converts a Min or Max option value to an int64 bound, panicking
// at construction time on fractional values.
func intBound(name string, v any) int64 {
	n, ok := toInt64(v)
	if !ok {
		panic(fmt.Sprintf("schemakit: Int %s must be a whole number, got %v", name, v))
	}
	return n
}

func floatBound(v any) float64 {
	f, _ := toFloat64(v)
	return f
}
