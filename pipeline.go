package schemakit

// step is a single fallible transformation inside a built validator. A step
// either produces the next value or a failure detail, never both. Steps after
// a coercion step may assume the coerced type; every step must pass absence
// (nil) through untouched unless handling absence is its job.
type step func(value any) (any, Detail)

// pipeline runs steps in order, feeding each step's output to the next.
// The first failing step stops the run. When a custom message is configured
// it replaces the failing step's detail wholesale, whatever its shape, so a
// caller-facing field can fail with one stable string instead of the
// engine's default wording.
type pipeline struct {
	steps   []step
	message string
}

// Validate implements Validator.
func (p pipeline) Validate(value any) (any, error) {
	v := indirect(value)
	for _, s := range p.steps {
		next, d := s(v)
		if d != nil {
			if p.message != "" {
				return nil, Message(p.message)
			}
			return nil, d
		}
		v = next
	}
	return v, nil
}
