package schemakit

// Validator validates a single value and returns its normalized form.
// Validators are pure: the same input always yields the same result, the
// input is never mutated, and a validator can be shared freely across
// goroutines once built.
//
// On success the returned error is nil and the returned value is the
// normalized result, which may itself be nil when the input normalized to
// absence. On failure the returned value is nil and the error is a Detail
// describing what went wrong.
type Validator interface {
	Validate(value any) (any, error)
}

// Func adapts an ordinary function to the Validator interface, the same way
// http.HandlerFunc adapts handlers. Use it to drop custom checks into
// Compose and AnyOf chains:
//
//	even := schemakit.Func(func(value any) (any, error) {
//		n, ok := value.(int64)
//		if ok && n%2 != 0 {
//			return nil, schemakit.Message("is not even")
//		}
//		return value, nil
//	})
//	v := schemakit.Compose(schemakit.Int(schemakit.Required()), even)
type Func func(value any) (any, error)

// Validate calls f.
func (f Func) Validate(value any) (any, error) { return f(value) }
