package schemakit

import (
	"fmt"
	"reflect"
)

// ListOf builds a validator that applies inner to every element of a list.
// Any slice or array is accepted as input; the output is always a []any
// holding the normalized elements.
//
// Every element is validated even after one fails, so the error reports all
// failing positions at once as an Elements detail keyed by the original
// index. Elements whose normalized result is absent, such as blank strings,
// are dropped from the output without being reported; indices in the error
// always refer to positions in the input, not the compacted output. Length
// bounds apply to the compacted output, and only run once every element has
// validated.
//
// ListOf panics when inner is nil.
func ListOf(inner Validator, opts ...Option) Validator {
	if inner == nil {
		panic("schemakit: ListOf requires an element validator")
	}
	cfg := buildConfig(opts)

	steps := make([]step, 0, 6)
	steps = append(steps, coerceList)
	if cfg.required {
		steps = append(steps, checkRequired)
	}
	steps = append(steps, validateElements(inner))
	if cfg.hasMin {
		steps = append(steps, checkMinElements(lengthBound("ListOf", "min", cfg.min)))
	}
	if cfg.hasMax {
		steps = append(steps, checkMaxElements(lengthBound("ListOf", "max", cfg.max)))
	}
	if cfg.hasDef {
		steps = append(steps, substituteDefault(listDefault(cfg.def)))
	}

	return pipeline{steps: steps, message: cfg.message}
}

func coerceList(v any) (any, Detail) {
	if isAbsent(v) {
		return nil, nil
	}
	if k := reflect.ValueOf(v).Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, Message("is not a list")
	}
	return v, nil
}

// validateElements runs inner over each element, collecting failures by
// original index and building the compacted success list in parallel.
// Failures win: when any element failed the step returns only the Elements
// detail.
func validateElements(inner Validator) step {
	return func(v any) (any, Detail) {
		if isAbsent(v) {
			return v, nil
		}

		rv := reflect.ValueOf(v)
		failed := make(Elements)
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			res, err := inner.Validate(rv.Index(i).Interface())
			if err != nil {
				failed[i] = asDetail(err)
				continue
			}
			if isAbsent(res) {
				continue
			}
			out = append(out, res)
		}
		if len(failed) > 0 {
			return nil, failed
		}
		return out, nil
	}
}

func checkMinElements(min int) step {
	message := Message(fmt.Sprintf("is smaller than %d elements", min))
	return func(v any) (any, Detail) {
		if isAbsent(v) {
			return v, nil
		}
		if len(v.([]any)) < min {
			return nil, message
		}
		return v, nil
	}
}

func checkMaxElements(max int) step {
	message := Message(fmt.Sprintf("is longer than %d elements", max))
	return func(v any) (any, Detail) {
		if isAbsent(v) {
			return v, nil
		}
		if len(v.([]any)) > max {
			return nil, message
		}
		return v, nil
	}
}

func listDefault(def any) any {
	rv := reflect.ValueOf(def)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		panic(fmt.Sprintf("schemakit: ListOf default %v is not a list", def))
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
