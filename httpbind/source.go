package httpbind

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/schemakit/decode"
)

// MaxBodySize caps how much of a request body the JSON source reads.
const MaxBodySize = 1 << 20 // 1 MiB

// Source extracts a loosely-typed value from an HTTP request for validation.
// Sources only extract; schemas decide what the value must look like.
type Source func(r *http.Request) (any, error)

// JSON creates a source that decodes the request body as JSON.
//
// The Content-Type header must be application/json (parameters such as
// charset are ignored), the body must hold exactly one JSON value, and
// bodies over MaxBodySize are rejected. Numbers are decoded losslessly, so
// integer fields validate exactly.
func JSON() Source {
	return func(r *http.Request) (any, error) {
		mediaType := contentMediaType(r)
		if mediaType == "" {
			return nil, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		if mediaType != "application/json" {
			return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize+1))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
		if len(body) > MaxBodySize {
			return nil, ErrBodyTooLarge
		}

		v, err := decode.NewJSONDecoder().Decode(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
		return v, nil
	}
}

// Form creates a source that reads application/x-www-form-urlencoded bodies
// into a map. Single-valued fields become strings, repeated fields become
// []any, so "tags=a&tags=b" reads as a two-element list.
func Form() Source {
	return func(r *http.Request) (any, error) {
		mediaType := contentMediaType(r)
		if mediaType == "" {
			return nil, fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
		}
		if mediaType != "application/x-www-form-urlencoded" {
			return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
		return valuesToMap(r.PostForm), nil
	}
}

// Query creates a source that reads URL query parameters into a map, with
// the same single-versus-repeated shape as Form.
func Query() Source {
	return func(r *http.Request) (any, error) {
		return valuesToMap(r.URL.Query()), nil
	}
}

// RouteParams creates a source that reads chi route parameters into a map.
// Requests served outside a chi router produce an empty map.
func RouteParams() Source {
	return func(r *http.Request) (any, error) {
		out := make(map[string]any)
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			return out, nil
		}
		for i, key := range rctx.URLParams.Keys {
			if key == "*" {
				continue
			}
			out[key] = rctx.URLParams.Values[i]
		}
		return out, nil
	}
}

// Merge combines sources that produce maps, later sources overriding earlier
// ones on key collisions. Use it to validate body, query, and route
// parameters against a single schema:
//
//	src := httpbind.Merge(httpbind.JSON(), httpbind.RouteParams())
func Merge(sources ...Source) Source {
	return func(r *http.Request) (any, error) {
		out := make(map[string]any)
		for _, src := range sources {
			v, err := src(r)
			if err != nil {
				return nil, err
			}
			m, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: expected an object, got %T", ErrInvalidBody, v)
			}
			for k, val := range m {
				out[k] = val
			}
		}
		return out, nil
	}
}

// contentMediaType returns the media type of the request without parameters.
func contentMediaType(r *http.Request) string {
	contentType := r.Header.Get("Content-Type")
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

func valuesToMap(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for key, list := range values {
		switch len(list) {
		case 0:
			out[key] = nil
		case 1:
			out[key] = list[0]
		default:
			converted := make([]any, len(list))
			for i, s := range list {
				converted[i] = s
			}
			out[key] = converted
		}
	}
	return out
}
