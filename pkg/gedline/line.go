// Package gedline tokenizes single lines of decoded GEDCOM text.
//
// The GEDCOM line grammar is "LEVEL [XREF] TAG [VALUE]" where LEVEL
// is a non-negative integer, XREF is an optional @...@ identifier,
// TAG is an alphanumeric token and VALUE is the unescaped remainder
// of the line. The package is pure: it performs no I/O and keeps no
// state between lines.
package gedline

import (
	"fmt"
	"strconv"
	"strings"
)

// Line is one tokenized GEDCOM line.
type Line struct {
	Level int
	XRef  string
	Tag   string
	Value string
}

// ParseLine tokenizes a single line of GEDCOM text.
//
// Leading and trailing whitespace is trimmed first. A blank line
// yields (nil, nil): it produces no token but is not an error. A
// non-blank line that does not match the grammar yields a non-nil
// error; callers are expected to warn and skip, never to abort the
// file, since real GEDCOM exports contain stray garbage.
func ParseLine(s string) (*Line, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	rest := s
	levelTok, rest := nextField(rest)
	level, err := strconv.Atoi(levelTok)
	if err != nil || level < 0 {
		return nil, fmt.Errorf("bad level %q in line %q", levelTok, s)
	}

	if rest == "" {
		return nil, fmt.Errorf("missing tag in line %q", s)
	}

	var xref string
	tok, after := nextField(rest)
	if len(tok) >= 2 && tok[0] == '@' && tok[len(tok)-1] == '@' {
		xref = tok
		rest = after
		if rest == "" {
			return nil, fmt.Errorf("missing tag after xref in line %q", s)
		}
		tok, after = nextField(rest)
	}

	if !isTag(tok) {
		return nil, fmt.Errorf("bad tag %q in line %q", tok, s)
	}

	return &Line{
		Level: level,
		XRef:  xref,
		Tag:   strings.ToUpper(tok),
		Value: after,
	}, nil
}

// String re-synthesizes the "LEVEL [XREF] TAG [VALUE]" form. For any
// line accepted by ParseLine the fields round-trip.
func (l *Line) String() string {
	parts := make([]string, 0, 4)
	parts = append(parts, strconv.Itoa(l.Level))
	if l.XRef != "" {
		parts = append(parts, l.XRef)
	}
	parts = append(parts, l.Tag)
	if l.Value != "" {
		parts = append(parts, l.Value)
	}
	return strings.Join(parts, " ")
}

// nextField splits off the first whitespace-delimited field and
// returns it with the rest of the string, itself trimmed on the left.
func nextField(s string) (field, rest string) {
	idx := strings.IndexAny(s, " \t")
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimLeft(s[idx:], " \t")
}

// isTag reports whether the token is a valid GEDCOM tag. Tags are
// alphanumeric; user-defined tags may start with an underscore.
func isTag(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}
