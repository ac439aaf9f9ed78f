package schemakit

import (
	"fmt"
	"sort"
	"strings"
)

// Detail is the structured payload carried by every validation failure. It is
// a closed set of shapes: Message for a single failure, Alternatives for the
// per-attempt failures of AnyOf, and Elements/Fields for the per-position
// failures of ListOf and MapOf. Each shape implements error, so a Detail
// travels through ordinary error returns while keeping its structure intact
// for callers that want to render or inspect it.
//
// All shapes marshal to JSON naturally: Message as a string, Alternatives as
// an array, Elements and Fields as objects keyed by index or field name.
type Detail interface {
	error

	// detail seals the set of shapes so structural recursion over a Detail
	// can be exhaustive.
	detail()
}

// Message is a leaf failure: a single human-readable reason such as
// "is blank" or "is not a number".
type Message string

func (m Message) detail() {}

// Error implements error.
func (m Message) Error() string { return string(m) }

// Alternatives holds the failure of every alternative tried by AnyOf, in
// declaration order. Its length always equals the number of alternatives
// tried; entries are not deduplicated.
type Alternatives []Detail

func (a Alternatives) detail() {}

// Error implements error, joining the alternatives' failures with " or ".
func (a Alternatives) Error() string {
	if len(a) == 0 {
		return "no alternative matched"
	}
	parts := make([]string, len(a))
	for i, d := range a {
		parts[i] = d.Error()
	}
	return strings.Join(parts, " or ")
}

// Elements maps the original index of every failing list element to that
// element's failure. Indices whose elements validated successfully do not
// appear.
type Elements map[int]Detail

func (e Elements) detail() {}

// Error implements error, listing failures in index order.
func (e Elements) Error() string {
	indexes := make([]int, 0, len(e))
	for i := range e {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	parts := make([]string, len(indexes))
	for n, i := range indexes {
		parts[n] = fmt.Sprintf("%d: %s", i, e[i].Error())
	}
	return strings.Join(parts, "; ")
}

// Has reports whether the element at the given index failed.
func (e Elements) Has(index int) bool {
	_, ok := e[index]
	return ok
}

// Fields maps every failing field key to that field's failure. Keys whose
// values validated successfully do not appear.
type Fields map[string]Detail

func (f Fields) detail() {}

// Error implements error, listing failures in key order.
func (f Fields) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for n, k := range keys {
		parts[n] = fmt.Sprintf("%s: %s", k, f[k].Error())
	}
	return strings.Join(parts, "; ")
}

// Has reports whether the given field failed.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// asDetail converts an error returned by a child validator into a Detail.
// Engine-built validators always fail with details; custom Func validators
// may return arbitrary errors, which collapse to leaf messages.
func asDetail(err error) Detail {
	if d, ok := err.(Detail); ok {
		return d
	}
	return Message(err.Error())
}
