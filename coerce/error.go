// Package coerce converts raw JSON-shaped variable values and AST
// value literals into the Go values a resolver sees, against a
// target schema.Type (spec §4.6). It is grounded on the teacher's
// internal/ast/values.go value-node shapes and selections.go's
// argument-map flattening, generalized to the two-routine
// variable/literal split spec.md calls for.
package coerce

import (
	"fmt"
	"strings"
)

// PathElement is one segment of an Error's path: a field, argument,
// or input-object-field name (string), or a list index (int).
type PathElement interface{}

// Error reports a coercion failure together with the path to the
// offending value, e.g. `input.tags[2]`.
type Error struct {
	Message string
	Path    []PathElement
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (at %s)", e.Message, formatPath(e.Path))
}

func newErr(path []PathElement, format string, args ...interface{}) *Error {
	cp := make([]PathElement, len(path))
	copy(cp, path)
	return &Error{Message: fmt.Sprintf(format, args...), Path: cp}
}

func extend(path []PathElement, elem PathElement) []PathElement {
	out := make([]PathElement, len(path)+1)
	copy(out, path)
	out[len(path)] = elem
	return out
}

func formatPath(path []PathElement) string {
	var b strings.Builder
	for _, p := range path {
		if i, ok := p.(int); ok {
			fmt.Fprintf(&b, "[%d]", i)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		fmt.Fprintf(&b, "%v", p)
	}
	return b.String()
}
