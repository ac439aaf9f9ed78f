package schemakit_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit"
)

func TestDetail(t *testing.T) {
	t.Run("message renders itself", func(t *testing.T) {
		assert.EqualError(t, schemakit.Message("is blank"), "is blank")
	})

	t.Run("alternatives join with or", func(t *testing.T) {
		d := schemakit.Alternatives{
			schemakit.Message("is not a number"),
			schemakit.Message("is not a boolean"),
		}
		assert.EqualError(t, d, "is not a number or is not a boolean")
		assert.EqualError(t, schemakit.Alternatives{}, "no alternative matched")
	})

	t.Run("elements render in index order", func(t *testing.T) {
		d := schemakit.Elements{
			2: schemakit.Message("is blank"),
			0: schemakit.Message("is not a number"),
		}
		assert.EqualError(t, d, "0: is not a number; 2: is blank")
		assert.True(t, d.Has(0))
		assert.False(t, d.Has(1))
	})

	t.Run("fields render in key order", func(t *testing.T) {
		d := schemakit.Fields{
			"name": schemakit.Message("is blank"),
			"age":  schemakit.Message("is less than 18"),
		}
		assert.EqualError(t, d, "age: is less than 18; name: is blank")
		assert.True(t, d.Has("age"))
		assert.False(t, d.Has("email"))
	})

	t.Run("nested details render recursively", func(t *testing.T) {
		d := schemakit.Fields{
			"tags": schemakit.Elements{1: schemakit.Message("is not a string")},
		}
		assert.EqualError(t, d, "tags: 1: is not a string")
	})

	t.Run("marshals to natural json", func(t *testing.T) {
		cases := map[string]struct {
			detail schemakit.Detail
			want   string
		}{
			"message": {
				schemakit.Message("is blank"),
				`"is blank"`,
			},
			"fields": {
				schemakit.Fields{"age": schemakit.Message("is not a number")},
				`{"age":"is not a number"}`,
			},
			"elements": {
				schemakit.Elements{0: schemakit.Message("is blank")},
				`{"0":"is blank"}`,
			},
			"alternatives": {
				schemakit.Alternatives{schemakit.Message("a"), schemakit.Message("b")},
				`["a","b"]`,
			},
			"nested": {
				schemakit.Fields{
					"tags": schemakit.Elements{
						1: schemakit.Alternatives{schemakit.Message("a"), schemakit.Message("b")},
					},
				},
				`{"tags":{"1":["a","b"]}}`,
			},
		}
		for name, tc := range cases {
			raw, err := json.Marshal(tc.detail)
			require.NoError(t, err, name)
			assert.JSONEq(t, tc.want, string(raw), name)
		}
	})

	t.Run("every shape is an error", func(t *testing.T) {
		details := []schemakit.Detail{
			schemakit.Message(""),
			schemakit.Alternatives{},
			schemakit.Elements{},
			schemakit.Fields{},
		}
		for _, d := range details {
			assert.Implements(t, (*error)(nil), d)
		}
	})
}
