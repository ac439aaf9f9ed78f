package schemakit

import (
	"fmt"
	"reflect"
	"sort"
)

// MapOf builds a validator that checks a map against a fixed set of keys,
// applying each key's validator to the corresponding input value. Any map is
// accepted as input; the output is always a map[string]any holding exactly
// the declared keys, never extra input keys.
//
// A declared key missing from the input validates as absence, so Required
// and Default on the key's validator decide whether that is a failure, a
// substituted value, or a nil entry in the output. Input keys are matched
// directly first, then by their string form, so a map[any]any carrying the
// key 42 satisfies the declared key "42".
//
// Every declared key is validated even after one fails, and failures are
// reported together as a Fields detail keyed by the declared key.
func MapOf(keys map[string]Validator, opts ...Option) Validator {
	cfg := buildConfig(opts)

	// Deterministic evaluation order. Results never depend on it, but
	// panics and any side effects of custom Funcs do.
	declared := make([]string, 0, len(keys))
	for k := range keys {
		declared = append(declared, k)
	}
	sort.Strings(declared)

	steps := make([]step, 0, 4)
	steps = append(steps, coerceMap)
	if cfg.required {
		steps = append(steps, checkRequired)
	}
	steps = append(steps, validateKeys(declared, keys))
	if cfg.hasDef {
		steps = append(steps, substituteDefault(mapDefault(cfg.def)))
	}

	return pipeline{steps: steps, message: cfg.message}
}

func coerceMap(v any) (any, Detail) {
	if isAbsent(v) {
		return nil, nil
	}
	if reflect.ValueOf(v).Kind() != reflect.Map {
		return nil, Message("is not a map")
	}
	return v, nil
}

// validateKeys runs each declared key's validator over the looked-up input
// value, collecting failures by key and building the output map in parallel.
// Failures win: when any key failed the step returns only the Fields detail.
func validateKeys(declared []string, keys map[string]Validator) step {
	return func(v any) (any, Detail) {
		if isAbsent(v) {
			return v, nil
		}

		failed := make(Fields)
		out := make(map[string]any, len(declared))
		for _, key := range declared {
			res, err := keys[key].Validate(lookupKey(v, key))
			if err != nil {
				failed[key] = asDetail(err)
				continue
			}
			out[key] = res
		}
		if len(failed) > 0 {
			return nil, failed
		}
		return out, nil
	}
}

// lookupKey finds the input value for a declared key: a direct lookup when
// the key type admits strings, then a scan comparing each input key's string
// form. A key found neither way yields absence.
func lookupKey(m any, key string) any {
	if direct, ok := m.(map[string]any); ok {
		return direct[key]
	}

	rv := reflect.ValueOf(m)
	kv := reflect.ValueOf(key)
	if kv.Type().AssignableTo(rv.Type().Key()) {
		if val := rv.MapIndex(kv); val.IsValid() {
			return val.Interface()
		}
	}
	for _, mk := range rv.MapKeys() {
		if fmt.Sprint(mk.Interface()) == key {
			return rv.MapIndex(mk).Interface()
		}
	}
	return nil
}

func mapDefault(def any) any {
	rv := reflect.ValueOf(def)
	if rv.Kind() != reflect.Map {
		panic(fmt.Sprintf("schemakit: MapOf default %v is not a map", def))
	}
	out := make(map[string]any, rv.Len())
	for _, mk := range rv.MapKeys() {
		out[fmt.Sprint(mk.Interface())] = rv.MapIndex(mk).Interface()
	}
	return out
}
