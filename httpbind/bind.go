package httpbind

import (
	"net/http"

	"github.com/dmitrymomot/schemakit"
)

// Bind extracts a value from the request with src and validates it with v,
// returning the normalized result. Extraction failures come back as this
// package's errors; validation failures as a schemakit Detail.
//
//	schema := schemakit.MapOf(map[string]schemakit.Validator{
//		"email": schemakit.String(schemakit.Required()),
//	})
//
//	out, err := httpbind.Bind(r, schema, httpbind.JSON())
func Bind(r *http.Request, v schemakit.Validator, src Source) (any, error) {
	raw, err := src(r)
	if err != nil {
		return nil, err
	}
	return v.Validate(raw)
}
