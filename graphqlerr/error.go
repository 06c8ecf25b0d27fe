// Package graphqlerr defines the error and location types shared by
// every stage of the pipeline, from lexing through execution.
package graphqlerr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Location is a 1-indexed line/column pair identifying where in the
// source text an error occurred.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Before reports whether a sorts strictly before b in source order.
func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// Error is the wire-stable shape of a single GraphQL error (spec §6,
// §7). Rule carries the validation-rule name for diagnostics and is
// never serialized.
type Error struct {
	Message    string                 `json:"message"`
	Locations  []Location             `json:"locations,omitempty"`
	Path       []interface{}          `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
	Rule       string                 `json:"-"`
	Kind       Kind                   `json:"-"`
	cause      error
}

// Kind tags an Error with the taxonomy of spec §7.
type Kind string

const (
	KindSyntax            Kind = "SYNTAX_ERROR"
	KindSchemaBuild       Kind = "SCHEMA_BUILD_ERROR"
	KindSchemaValidation  Kind = "SCHEMA_VALIDATION_ERROR"
	KindValidation        Kind = "VALIDATION_ERROR"
	KindCoercion          Kind = "COERCION_ERROR"
	KindResolver          Kind = "RESOLVER_ERROR"
	KindExecution         Kind = "EXECUTION_ERROR"
	KindUnknownDirective  Kind = "UNKNOWN_DIRECTIVE"
)

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("graphql: ")
	b.WriteString(e.Message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	for _, loc := range e.Locations {
		fmt.Fprintf(&b, " (%d:%d)", loc.Line, loc.Column)
	}
	if len(e.Path) > 0 {
		fmt.Fprintf(&b, " path=%s", formatPath(e.Path))
	}
	return b.String()
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Cause returns the underlying error this one was built from, if any.
func (e *Error) Cause() error { return e.cause }

func formatPath(path []interface{}) string {
	parts := make([]string, len(path))
	for i, p := range path {
		switch v := p.(type) {
		case int:
			parts[i] = strconv.Itoa(v)
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	return strings.Join(parts, ".")
}

// New builds an Error from a format string, with no location.
func New(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// At builds an Error with a single location attached.
func At(loc Location, format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Locations: []Location{loc}}
}

// AtMulti builds an Error referencing several locations (e.g. a
// merge conflict between two selections).
func AtMulti(locs []Location, format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Locations: locs}
}

// Wrap builds a new Error with the formatted message and cause as its
// cause, given a stack via pkg/errors so a build or internal failure
// keeps its originating frame.
func Wrap(cause error, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		cause:   errors.WithStack(cause),
	}
}

// WithRule tags the error with the validation rule that produced it
// and returns it for chaining.
func (e *Error) WithRule(rule string) *Error {
	e.Rule = rule
	return e
}

// WithKind tags the error with its taxonomy kind and returns it for
// chaining.
func (e *Error) WithKind(kind Kind) *Error {
	e.Kind = kind
	return e
}

// WithPath sets the error path and returns it for chaining.
func (e *Error) WithPath(path []interface{}) *Error {
	e.Path = path
	return e
}

// List is an ordered collection of Errors; satisfies error so a
// validator/coercion/build step can return one value.
type List []*Error

func (l List) Error() string {
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

var _ error = (*Error)(nil)
var _ error = List(nil)

// Suggest appends a "Did you mean ...?" hint built from the closest
// matches to input among options, or "" if nothing is close enough.
// Grounded on the teacher's makeSuggestion/levenshteinDistance
// (selections.go).
func Suggest(prefix string, options []string, input string) string {
	type scored struct {
		name string
		dist int
	}
	var candidates []scored
	for _, opt := range options {
		dist := levenshtein(input, opt)
		threshold := maxInt(len(input)/2, maxInt(len(opt)/2, 1))
		if dist <= threshold {
			candidates = append(candidates, scored{opt, dist})
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	quoted := make([]string, len(candidates))
	for i, c := range candidates {
		quoted[i] = strconv.Quote(c.name)
	}
	if len(quoted) > 1 {
		quoted[len(quoted)-1] = "or " + quoted[len(quoted)-1]
	}
	return fmt.Sprintf(" %s %s?", prefix, strings.Join(quoted, ", "))
}

func levenshtein(a, b string) int {
	column := make([]int, len(a)+1)
	for y := range a {
		column[y+1] = y + 1
	}
	for x, rx := range b {
		column[0] = x + 1
		lastDiag := x
		for y, ry := range a {
			oldDiag := column[y+1]
			cost := 0
			if rx != ry {
				cost = 1
			}
			column[y+1] = minInt(column[y+1]+1, minInt(column[y]+1, lastDiag+cost))
			lastDiag = oldDiag
		}
	}
	return column[len(a)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
