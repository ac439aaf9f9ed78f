// Package httpbind connects schemakit validation to net/http requests.
// Sources extract a loosely-typed value from a request (JSON body, form
// body, query string, chi route parameters, or a merge of several), and the
// same schema then validates any of them, so one declaration covers every
// transport a field might arrive on.
//
// # Usage
//
// Direct binding inside a handler:
//
//	schema := schemakit.MapOf(map[string]schemakit.Validator{
//		"email": schemakit.String(schemakit.Required()),
//		"page":  schemakit.Int(schemakit.Min(1), schemakit.Default(1)),
//	})
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		out, err := httpbind.Bind(r, schema, httpbind.JSON())
//		...
//	}
//
// Or as middleware, which rejects invalid requests with a JSON error body
// before the handler runs and stores the normalized payload in the request
// context:
//
//	r := chi.NewRouter()
//	r.With(httpbind.Validate(schema, httpbind.JSON())).Post("/signup", handler)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		out, _ := httpbind.FromContext(r.Context())
//		form := out.(map[string]any)
//		...
//	}
//
// Validation failures respond with 422 and the failure's natural JSON shape
// under "details"; Flatten converts the same failure to flat field paths for
// server-rendered form errors.
package httpbind
