package envconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit"
	"github.com/dmitrymomot/schemakit/envconf"
)

func TestLoad(t *testing.T) {
	type serverConfig struct {
		Host string `env:"TEST_ENVCONF_HOST" envDefault:"localhost"`
		Port int    `env:"TEST_ENVCONF_PORT" envDefault:"8080"`
	}

	t.Run("parses tagged fields", func(t *testing.T) {
		t.Setenv("TEST_ENVCONF_HOST", "0.0.0.0")
		t.Setenv("TEST_ENVCONF_PORT", "9090")

		var cfg serverConfig
		require.NoError(t, envconf.Load(&cfg))
		assert.Equal(t, "0.0.0.0", cfg.Host)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("applies tag defaults", func(t *testing.T) {
		var cfg serverConfig
		require.NoError(t, envconf.Load(&cfg))
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("reports unparsable values", func(t *testing.T) {
		t.Setenv("TEST_ENVCONF_PORT", "not-a-port")

		var cfg serverConfig
		err := envconf.Load(&cfg)
		assert.ErrorIs(t, err, envconf.ErrParsingConfig)
	})

	t.Run("rejects nil pointers", func(t *testing.T) {
		var cfg *serverConfig
		assert.ErrorIs(t, envconf.Load(cfg), envconf.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	type strictConfig struct {
		Secret string `env:"TEST_ENVCONF_SECRET,required"`
	}

	t.Run("panics when loading fails", func(t *testing.T) {
		var cfg strictConfig
		assert.Panics(t, func() { envconf.MustLoad(&cfg) })
	})

	t.Run("loads when the variable is set", func(t *testing.T) {
		t.Setenv("TEST_ENVCONF_SECRET", "hunter2")

		var cfg strictConfig
		assert.NotPanics(t, func() { envconf.MustLoad(&cfg) })
		assert.Equal(t, "hunter2", cfg.Secret)
	})
}

func TestEnviron(t *testing.T) {
	t.Run("snapshots the process environment", func(t *testing.T) {
		t.Setenv("TEST_ENVCONF_MARKER", "present")

		environ := envconf.Environ()
		assert.Equal(t, "present", environ["TEST_ENVCONF_MARKER"])
	})
}

func TestValidate(t *testing.T) {
	schema := schemakit.MapOf(map[string]schemakit.Validator{
		"TEST_ENVCONF_PORT":  schemakit.Int(schemakit.Min(1), schemakit.Max(65535), schemakit.Default(8080)),
		"TEST_ENVCONF_DEBUG": schemakit.Bool(schemakit.Default(false)),
		"TEST_ENVCONF_MODE":  schemakit.String(schemakit.OneOf("dev", "prod"), schemakit.Default("dev")),
	})

	t.Run("coerces and defaults variables", func(t *testing.T) {
		t.Setenv("TEST_ENVCONF_PORT", "9090")
		t.Setenv("TEST_ENVCONF_DEBUG", "1")

		out, err := envconf.Validate(schema)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"TEST_ENVCONF_PORT":  int64(9090),
			"TEST_ENVCONF_DEBUG": true,
			"TEST_ENVCONF_MODE":  "dev",
		}, out)
	})

	t.Run("reports failures per variable", func(t *testing.T) {
		t.Setenv("TEST_ENVCONF_PORT", "70000")
		t.Setenv("TEST_ENVCONF_MODE", "staging")

		_, err := envconf.Validate(schema)

		var fields schemakit.Fields
		require.ErrorAs(t, err, &fields)
		assert.EqualError(t, fields["TEST_ENVCONF_PORT"], "is greater than 65535")
		assert.EqualError(t, fields["TEST_ENVCONF_MODE"], "is not one of: dev, prod")
	})
}
