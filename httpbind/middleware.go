package httpbind

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/schemakit"
)

// payloadContextKey is the key for storing the validated payload in context.
type payloadContextKey struct{}

// payload boxes the stored value so a legitimately nil result is still
// distinguishable from "no middleware ran".
type payload struct{ value any }

// FromContext retrieves the normalized payload stored by the Validate
// middleware. The bool reports whether the middleware ran on this request.
func FromContext(ctx context.Context) (any, bool) {
	p, ok := ctx.Value(payloadContextKey{}).(payload)
	return p.value, ok
}

// Option configures the Validate middleware.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	status  int
	onError func(w http.ResponseWriter, r *http.Request, err error)
}

// WithLogger sets the logger for rejected requests: validation failures log
// at debug, extraction failures at warn. Logging is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithStatus overrides the status used for validation failures, which
// defaults to 422 Unprocessable Entity.
func WithStatus(status int) Option {
	return func(cfg *config) {
		cfg.status = status
	}
}

// WithErrorHandler replaces the built-in JSON error responses entirely. The
// handler receives the extraction error or validation Detail and owns the
// response.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) Option {
	return func(cfg *config) {
		cfg.onError = fn
	}
}

// Validate creates HTTP middleware that runs every request through src and
// v before the wrapped handler. On success the normalized payload is stored
// in the request context for FromContext; on failure the request is rejected
// with a JSON error response and the handler never runs.
//
//	r.With(httpbind.Validate(schema, httpbind.JSON())).Post("/signup", handler)
func Validate(v schemakit.Validator, src Source, opts ...Option) func(http.Handler) http.Handler {
	if v == nil {
		panic("httpbind.Validate: validator is required")
	}
	if src == nil {
		panic("httpbind.Validate: source is required")
	}

	cfg := config{
		logger: newNoopLogger(),
		status: http.StatusUnprocessableEntity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			out, err := Bind(r, v, src)
			if err != nil {
				var d schemakit.Detail
				if errors.As(err, &d) {
					cfg.logger.DebugContext(r.Context(), "request payload rejected",
						slog.String("path", r.URL.Path),
						slog.String("error", err.Error()),
					)
				} else {
					cfg.logger.WarnContext(r.Context(), "request extraction failed",
						slog.String("path", r.URL.Path),
						slog.String("error", err.Error()),
					)
				}
				if cfg.onError != nil {
					cfg.onError(w, r, err)
					return
				}
				respondError(w, cfg.status, err)
				return
			}

			ctx := context.WithValue(r.Context(), payloadContextKey{}, payload{out})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// respondError writes the rejection as JSON: validation details under the
// configured validation status, extraction errors under the closest HTTP
// status.
func respondError(w http.ResponseWriter, validationStatus int, err error) {
	var d schemakit.Detail
	if errors.As(err, &d) {
		writeJSON(w, validationStatus, map[string]any{
			"error":   "validation_failed",
			"details": d,
		})
		return
	}

	status := http.StatusBadRequest
	switch {
	case errors.Is(err, ErrUnsupportedMediaType):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, ErrBodyTooLarge):
		status = http.StatusRequestEntityTooLarge
	}
	writeJSON(w, status, map[string]any{
		"error":   "invalid_request",
		"message": err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
