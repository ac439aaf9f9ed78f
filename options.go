package schemakit

import "regexp"

// Numeric covers the built-in numeric types accepted by Min and Max.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Option configures a validator constructor. Each constructor reads only the
// options it recognizes and silently ignores the rest, so a shared option
// list can be reused across constructors. Passing the same option twice keeps
// the last value.
type Option func(*config)

// config accumulates the option values a constructor assembles its pipeline
// from. Zero value means "not set" for everything except the explicit has*
// flags, which let nil and zero be legal option values.
type config struct {
	required  bool
	def       any
	hasDef    bool
	message   string
	min       any
	hasMin    bool
	max       any
	hasMax    bool
	oneOf     []any
	pattern   *regexp.Regexp
	normalize bool
}

func buildConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Required makes absence a failure. Without it every validator treats absence
// as a valid result. For lists and maps an empty collection counts as absent.
func Required() Option {
	return func(cfg *config) {
		cfg.required = true
	}
}

// Default substitutes the given value when the input is still absent after
// all checks ran. The default is taken as-is and not validated; it must
// already have the constructor's output type or the constructor panics.
func Default(value any) Option {
	return func(cfg *config) {
		cfg.def = value
		cfg.hasDef = true
	}
}

// WithMessage replaces the failure detail of the configured validator with a
// single fixed message, whatever check failed and whatever shape the original
// detail had. Failures produced by nested validators keep their own details;
// only the validator carrying the option is rewritten.
func WithMessage(message string) Option {
	return func(cfg *config) {
		cfg.message = message
	}
}

// Min sets the lower bound: the minimum numeric value for Int and Float, the
// minimum rune count for String, and the minimum element count for ListOf.
// String and ListOf require a whole number and panic at construction time on
// a fractional one.
func Min[T Numeric](n T) Option {
	return func(cfg *config) {
		cfg.min = n
		cfg.hasMin = true
	}
}

// Max sets the upper bound, mirroring Min.
func Max[T Numeric](n T) Option {
	return func(cfg *config) {
		cfg.max = n
		cfg.hasMax = true
	}
}

// OneOf restricts the normalized value to the given allow-list. Values are
// converted to the constructor's output type at construction time, so
// OneOf(1, 2) on Int matches inputs that coerce to 1 or 2. Absent values are
// not checked. Only String and Int recognize the option; the other
// constructors ignore it.
func OneOf[T comparable](values ...T) Option {
	allowed := make([]any, len(values))
	for i, v := range values {
		allowed[i] = v
	}
	return func(cfg *config) {
		cfg.oneOf = allowed
	}
}

// Matches requires the normalized string to match the given regular
// expression. The pattern is compiled once when the option is built and an
// invalid pattern panics, same as regexp.MustCompile.
func Matches(pattern string) Option {
	re := regexp.MustCompile(pattern)
	return func(cfg *config) {
		cfg.pattern = re
	}
}

// Normalize applies Unicode NFC normalization to string input before any
// other processing, so canonically equivalent spellings compare and match
// identically.
func Normalize() Option {
	return func(cfg *config) {
		cfg.normalize = true
	}
}
