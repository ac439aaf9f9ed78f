package httpbind

import (
	"net/url"
	"strconv"

	"github.com/dmitrymomot/schemakit"
)

// Flatten converts a validation error into flat field paths, ready for form
// re-rendering or query-string style transport. Nested maps join with dots
// and list positions append their index, so a failure on the second tag of a
// user object lands under "user.tags.1". A failure of the value as a whole,
// such as "is not a map", lands under the empty key.
//
// Alternatives collapse to their joined message, since they describe one
// position in several ways. Non-detail errors flatten to their Error string
// under the empty key.
func Flatten(err error) url.Values {
	out := make(url.Values)
	if err == nil {
		return out
	}
	d, ok := err.(schemakit.Detail)
	if !ok {
		out.Add("", err.Error())
		return out
	}
	flattenDetail(out, "", d)
	return out
}

func flattenDetail(out url.Values, path string, d schemakit.Detail) {
	switch d := d.(type) {
	case schemakit.Fields:
		for key, child := range d {
			flattenDetail(out, joinPath(path, key), child)
		}
	case schemakit.Elements:
		for index, child := range d {
			flattenDetail(out, joinPath(path, strconv.Itoa(index)), child)
		}
	default:
		out.Add(path, d.Error())
	}
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}
