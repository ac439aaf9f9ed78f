package envconf

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/schemakit"
)

var defaultEnvLoaded sync.Once

// loadDotEnv loads the default .env file once per process. Errors are
// ignored - the file might not exist and that's ok.
func loadDotEnv() {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
}

// Load parses environment variables into the provided struct based on its
// env tags, loading the default .env file first.
//
// Example:
//
//	type DatabaseConfig struct {
//		Host     string `env:"DB_HOST" envDefault:"localhost"`
//		Port     int    `env:"DB_PORT" envDefault:"5432"`
//		Password string `env:"DB_PASS,required"`
//	}
//
//	var dbConfig DatabaseConfig
//	if err := envconf.Load(&dbConfig); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	loadDotEnv()
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application
// to start.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("envconf: failed to load configuration: %v", err))
	}
}

// Environ returns the current process environment as a map ready for schema
// validation. Values stay raw strings; validators do the coercion.
func Environ() map[string]any {
	environ := os.Environ()
	out := make(map[string]any, len(environ))
	for _, kv := range environ {
		if key, value, ok := strings.Cut(kv, "="); ok {
			out[key] = value
		}
	}
	return out
}

// Validate checks the process environment against a schema, after loading
// the default .env file. Paired with MapOf this reads, coerces, bounds, and
// defaults a set of variables in one call, with per-variable failure
// details:
//
//	out, err := envconf.Validate(schemakit.MapOf(map[string]schemakit.Validator{
//		"PORT":  schemakit.Int(schemakit.Min(1), schemakit.Max(65535), schemakit.Default(8080)),
//		"DEBUG": schemakit.Bool(schemakit.Default(false)),
//	}))
func Validate(v schemakit.Validator) (any, error) {
	loadDotEnv()
	return v.Validate(Environ())
}
