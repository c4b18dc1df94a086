package gedline

import "strings"

// Name holds the parts of a GEDCOM NAME value: "Given /Surname/
// Suffix". Any part may be empty.
type Name struct {
	Full    string
	Given   string
	Surname string
	Suffix  string
}

// ParseName splits a NAME value into given name, surname and suffix.
// The surname is the part delimited by slashes; text before the first
// slash is the given name and text after the second slash is the
// suffix. A value with no slashes is all given name. Full is the
// display form with the slashes dropped.
func ParseName(s string) Name {
	s = strings.TrimSpace(s)

	res := Name{}
	first := strings.Index(s, "/")
	if first < 0 {
		res.Given = s
		res.Full = s
		return res
	}

	res.Given = strings.TrimSpace(s[:first])

	rest := s[first+1:]
	second := strings.Index(rest, "/")
	if second < 0 {
		// Unterminated surname; take everything after the slash.
		res.Surname = strings.TrimSpace(rest)
	} else {
		res.Surname = strings.TrimSpace(rest[:second])
		res.Suffix = strings.TrimSpace(rest[second+1:])
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{res.Given, res.Surname, res.Suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	res.Full = strings.Join(parts, " ")

	return res
}
