// Package scalars provides the optional custom scalar extensions spec
// §6 names beyond the five built-ins: UUID, JSONString, DateTime/Date/
// Time, Base64String, and a parameterized RegexType. None of these are
// auto-applied to a built schema -- a caller opts in per scalar with
// schemabuild.WithScalar, the same registration path a hand-rolled
// custom scalar would use.
package scalars

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// UUID serializes/parses RFC 4122 UUIDs as their canonical string form
// (grounded on github.com/google/uuid, the pack's UUID dependency).
func UUID() (serialize, parseValue func(interface{}) (interface{}, error)) {
	serialize = func(v interface{}) (interface{}, error) {
		switch u := v.(type) {
		case uuid.UUID:
			return u.String(), nil
		case string:
			if _, err := uuid.Parse(u); err != nil {
				return nil, fmt.Errorf("not a UUID: %q", u)
			}
			return u, nil
		}
		return nil, fmt.Errorf("cannot serialize %T as UUID", v)
	}
	parseValue = func(v interface{}) (interface{}, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("UUID must be a string")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("not a UUID: %w", err)
		}
		return id, nil
	}
	return
}

// JSONString carries an arbitrary JSON-encoded value as a string on
// the wire, round-tripping through encoding/json for validation.
func JSONString() (serialize, parseValue func(interface{}) (interface{}, error)) {
	serialize = func(v interface{}) (interface{}, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	}
	parseValue = func(v interface{}) (interface{}, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("JSONString must be a string")
		}
		var out interface{}
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return nil, fmt.Errorf("not valid JSON: %w", err)
		}
		return out, nil
	}
	return
}

// isoTime serializes/parses a time.Time against an ISO 8601 layout,
// shared by DateTime, Date, and Time.
func isoTime(layout string) (serialize, parseValue func(interface{}) (interface{}, error)) {
	serialize = func(v interface{}) (interface{}, error) {
		t, ok := v.(time.Time)
		if !ok {
			return nil, fmt.Errorf("cannot serialize %T as a time", v)
		}
		return t.Format(layout), nil
	}
	parseValue = func(v interface{}) (interface{}, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("time value must be a string")
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, fmt.Errorf("not a valid time in %q format: %w", layout, err)
		}
		return t, nil
	}
	return
}

// DateTime is RFC 3339 (`2006-01-02T15:04:05Z07:00`).
func DateTime() (serialize, parseValue func(interface{}) (interface{}, error)) {
	return isoTime(time.RFC3339)
}

// Date is the ISO 8601 calendar-date form (`2006-01-02`).
func Date() (serialize, parseValue func(interface{}) (interface{}, error)) {
	return isoTime("2006-01-02")
}

// Time is the ISO 8601 time-of-day form (`15:04:05Z07:00`).
func Time() (serialize, parseValue func(interface{}) (interface{}, error)) {
	return isoTime("15:04:05Z07:00")
}

// Base64String serializes raw bytes as standard base64 and rejects
// malformed input on parse.
func Base64String() (serialize, parseValue func(interface{}) (interface{}, error)) {
	serialize = func(v interface{}) (interface{}, error) {
		switch b := v.(type) {
		case []byte:
			return base64.StdEncoding.EncodeToString(b), nil
		case string:
			return b, nil
		}
		return nil, fmt.Errorf("cannot serialize %T as Base64String", v)
	}
	parseValue = func(v interface{}) (interface{}, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("Base64String must be a string")
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("not valid base64: %w", err)
		}
		return b, nil
	}
	return
}

// RegexType builds a scalar that accepts a string value only if it
// matches pattern, passing it through unchanged, and rejects any
// other value with an error -- useful
// for SDL-declared scalars like `scalar PhoneNumber` constrained by a
// fixed shape without a bespoke Go type.
func RegexType(pattern string) (serialize, parseValue func(interface{}) (interface{}, error), err error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid RegexType pattern %q: %w", pattern, err)
	}
	check := func(v interface{}) (interface{}, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("value must be a string to match pattern %q", pattern)
		}
		if !re.MatchString(s) {
			return nil, fmt.Errorf("value %q does not match pattern %q", s, pattern)
		}
		return s, nil
	}
	return check, check, nil
}
