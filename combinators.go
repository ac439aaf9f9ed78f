package schemakit

// Compose chains validators into one. Each validator receives the previous
// one's output, so coercions and normalizations accumulate left to right,
// and the first failure stops the chain with that validator's own detail.
// Compose of nothing validates everything unchanged.
func Compose(validators ...Validator) Validator {
	return Func(func(value any) (any, error) {
		v := value
		for _, inner := range validators {
			out, err := inner.Validate(v)
			if err != nil {
				return nil, err
			}
			v = out
		}
		return v, nil
	})
}

// AnyOf tries each validator in order against the same original input and
// returns the first success, including its normalized value. When every
// alternative fails the error is an Alternatives detail carrying each
// failure in order. AnyOf of nothing always fails.
func AnyOf(validators ...Validator) Validator {
	return Func(func(value any) (any, error) {
		failures := make(Alternatives, 0, len(validators))
		for _, inner := range validators {
			out, err := inner.Validate(value)
			if err == nil {
				return out, nil
			}
			failures = append(failures, asDetail(err))
		}
		return nil, failures
	})
}
