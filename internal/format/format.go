// Package format defines how clipboard text is rendered on stdout.
//
// A Format decides two things independently: the body written for a piece of
// content (Serialize) and the terminator written after it (Terminator). Plain
// formats pass content through untouched and differ only in their terminator;
// the JSON formats wrap content in a single-line object.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects the output rendering.
type Format string

const (
	Newline       Format = "newline"
	NewlineAlways Format = "newline-always"
	NUL           Format = "nul"
	Raw           Format = "raw"
	JSON          Format = "json"
	JSONValue     Format = "json-value"
)

// Default is the format used when none is selected.
const Default = Newline

// ErrUnknown is returned by Parse for names that are not a Format.
var ErrUnknown = errors.New("unknown output format")

// All returns every Format in declaration order.
func All() []Format {
	return []Format{Newline, NewlineAlways, NUL, Raw, JSON, JSONValue}
}

// Parse converts a name to a Format. Matching is case-insensitive and
// accepts underscores in place of dashes. An empty name yields Default.
func Parse(s string) (Format, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if name == "" {
		return Default, nil
	}
	for _, f := range All() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknown, s)
}

func (f Format) String() string { return string(f) }

// IsJSON reports whether f wraps content in a JSON object.
func (f Format) IsJSON() bool { return f == JSON || f == JSONValue }

// Terminator returns the string written after output rendered in format f.
func Terminator(output string, f Format) string {
	switch f {
	case Newline:
		if strings.HasSuffix(output, "\n") {
			return ""
		}
		return "\n"
	case NewlineAlways, JSON, JSONValue:
		return "\n"
	case NUL:
		return "\x00"
	default:
		return ""
	}
}
