package decode_test

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit"
	"github.com/dmitrymomot/schemakit/decode"
)

func TestJSONDecoder(t *testing.T) {
	t.Run("decodes objects with exact numbers", func(t *testing.T) {
		raw, err := decode.NewJSONDecoder().Decode([]byte(`{"id": 9007199254740993, "name": "ada"}`))
		require.NoError(t, err)

		m, ok := raw.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, json.Number("9007199254740993"), m["id"],
			"numbers must stay textual, not collapse to float64")
		assert.Equal(t, "ada", m["name"])
	})

	t.Run("large integers validate exactly", func(t *testing.T) {
		schema := schemakit.MapOf(map[string]schemakit.Validator{
			"id": schemakit.Int(schemakit.Required()),
		})

		out, err := decode.Parse(decode.NewJSONDecoder(), schema, []byte(`{"id": 9007199254740993}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": int64(9007199254740993)}, out)
	})

	t.Run("rejects malformed content", func(t *testing.T) {
		_, err := decode.NewJSONDecoder().Decode([]byte(`{"id":`))
		assert.ErrorIs(t, err, decode.ErrInvalidJSON)
	})

	t.Run("rejects trailing content", func(t *testing.T) {
		_, err := decode.NewJSONDecoder().Decode([]byte(`{"a":1} garbage`))
		assert.ErrorIs(t, err, decode.ErrInvalidJSON)
	})

	t.Run("supports the json extension", func(t *testing.T) {
		d := decode.NewJSONDecoder()
		assert.True(t, d.SupportsExtension("json"))
		assert.True(t, d.SupportsExtension(".JSON"))
		assert.False(t, d.SupportsExtension("yaml"))
	})
}

func TestYAMLDecoder(t *testing.T) {
	t.Run("decodes nested mappings", func(t *testing.T) {
		raw, err := decode.NewYAMLDecoder().Decode([]byte("server:\n  port: 8080\n  tags:\n    - api\n    - internal\n"))
		require.NoError(t, err)

		schema := schemakit.MapOf(map[string]schemakit.Validator{
			"server": schemakit.MapOf(map[string]schemakit.Validator{
				"port": schemakit.Int(schemakit.Min(1), schemakit.Max(65535)),
				"tags": schemakit.ListOf(schemakit.String()),
			}),
		})
		out, err := schema.Validate(raw)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"server": map[string]any{
				"port": int64(8080),
				"tags": []any{"api", "internal"},
			},
		}, out)
	})

	t.Run("non-string keys resolve by string form", func(t *testing.T) {
		raw, err := decode.NewYAMLDecoder().Decode([]byte("1: one\n2: two\n"))
		require.NoError(t, err)

		schema := schemakit.MapOf(map[string]schemakit.Validator{
			"1": schemakit.String(schemakit.Required()),
			"2": schemakit.String(schemakit.Required()),
		})
		out, err := schema.Validate(raw)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"1": "one", "2": "two"}, out)
	})

	t.Run("non-finite numbers fail validation", func(t *testing.T) {
		// YAML resolves .nan and .inf to real float64 values.
		raw, err := decode.NewYAMLDecoder().Decode([]byte("price: .nan\n"))
		require.NoError(t, err)

		schema := schemakit.MapOf(map[string]schemakit.Validator{
			"price": schemakit.Float(schemakit.Min(0.0), schemakit.Max(100.0)),
		})
		_, err = schema.Validate(raw)

		var fields schemakit.Fields
		require.ErrorAs(t, err, &fields, "NaN must not pass the bounds")
		assert.EqualError(t, fields["price"], "is not a number")
	})

	t.Run("rejects malformed content", func(t *testing.T) {
		_, err := decode.NewYAMLDecoder().Decode([]byte("key: [unclosed\n"))
		assert.ErrorIs(t, err, decode.ErrInvalidYAML)
	})

	t.Run("supports yaml and yml extensions", func(t *testing.T) {
		d := decode.NewYAMLDecoder()
		assert.True(t, d.SupportsExtension(".yaml"))
		assert.True(t, d.SupportsExtension("yml"))
		assert.False(t, d.SupportsExtension("json"))
	})
}

func TestForFile(t *testing.T) {
	t.Run("picks by extension", func(t *testing.T) {
		assert.IsType(t, &decode.JSONDecoder{}, decode.ForFile("payload.json"))
		assert.IsType(t, &decode.YAMLDecoder{}, decode.ForFile("config.yaml"))
		assert.IsType(t, &decode.YAMLDecoder{}, decode.ForFile("config.YML"))
	})

	t.Run("unknown extensions return nil", func(t *testing.T) {
		assert.Nil(t, decode.ForFile("data.toml"))
		assert.Nil(t, decode.ForFile("noextension"))
	})
}

func TestParse(t *testing.T) {
	schema := schemakit.MapOf(map[string]schemakit.Validator{
		"name": schemakit.String(schemakit.Required()),
	})

	t.Run("nil decoder", func(t *testing.T) {
		_, err := decode.Parse(nil, schema, []byte(`{}`))
		assert.ErrorIs(t, err, decode.ErrUnsupportedFormat)
	})

	t.Run("validation failures carry details", func(t *testing.T) {
		_, err := decode.Parse(decode.NewJSONDecoder(), schema, []byte(`{"name": "  "}`))

		var fields schemakit.Fields
		require.ErrorAs(t, err, &fields)
		assert.EqualError(t, fields["name"], "is blank")
	})
}

func TestParseFile(t *testing.T) {
	schema := schemakit.MapOf(map[string]schemakit.Validator{
		"port": schemakit.Int(schemakit.Default(8080)),
		"host": schemakit.String(schemakit.Required()),
	})

	t.Run("reads and validates yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.yml")
		require.NoError(t, os.WriteFile(path, []byte("host: localhost\n"), 0o644))

		out, err := decode.ParseFile(schema, path)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"host": "localhost", "port": int64(8080)}, out)
	})

	t.Run("reads and validates json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"host":"localhost","port":"9090"}`), 0o644))

		out, err := decode.ParseFile(schema, path)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"host": "localhost", "port": int64(9090)}, out)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := decode.ParseFile(schema, "config.ini")
		assert.ErrorIs(t, err, decode.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := decode.ParseFile(schema, filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorIs(t, err, decode.ErrReadFile)
		assert.ErrorIs(t, err, fs.ErrNotExist, "the os error stays inspectable")
	})
}
