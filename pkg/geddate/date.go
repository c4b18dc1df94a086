// Package geddate parses GEDCOM date strings, including dates from
// non-Gregorian "fictional" calendars.
//
// A GEDCOM date has an optional leading modifier (ABT, BEF, AFT,
// BET, EST, CAL, plus their long forms), a core of
// "DAY MONTH YEAR", "MONTH YEAR" or "YEAR", and an optional trailing
// calendar suffix: a 2-4 letter all-caps token that is not one of the
// twelve month abbreviations. When no suffix is present the calendar
// is GREGORIAN.
//
// Parsing never fails with an error: a string that matches none of
// the patterns yields a nil *Date and callers must treat nil as "no
// computable date".
package geddate

import (
	"regexp"
	"strconv"
	"strings"
)

// Gregorian is the default calendar tag.
const Gregorian = "GREGORIAN"

// Date is a structured GEDCOM date.
type Date struct {
	// Calendar is GREGORIAN or the fictional calendar suffix from
	// the source string (e.g. "AG").
	Calendar string

	Year  int
	Month int // 1-12, defaults to 1
	Day   int // defaults to 1

	// Modifier is the normalized short modifier keyword ("ABT",
	// "BEF", ...) or "" when none was present.
	Modifier string

	// Source is the original unparsed string.
	Source string
}

var modifiers = map[string]string{
	"ABT":        "ABT",
	"ABOUT":      "ABT",
	"BEF":        "BEF",
	"BEFORE":     "BEF",
	"AFT":        "AFT",
	"AFTER":      "AFT",
	"BET":        "BET",
	"BETWEEN":    "BET",
	"EST":        "EST",
	"ESTIMATED":  "EST",
	"CAL":        "CAL",
	"CALCULATED": "CAL",
}

var months = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4,
	"MAY": 5, "JUN": 6, "JUL": 7, "AUG": 8,
	"SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

var (
	calendarRe = regexp.MustCompile(`^[A-Z]{2,4}$`)
	fullRe     = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3})\s+(\d+)$`)
	monthYrRe  = regexp.MustCompile(`^([A-Za-z]{3})\s+(\d+)$`)
	yearRe     = regexp.MustCompile(`^(\d+)$`)
)

// Parse converts a GEDCOM date string into a Date. It returns nil
// when the string matches none of the supported patterns.
func Parse(s string) *Date {
	src := s
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	res := &Date{
		Calendar: Gregorian,
		Month:    1,
		Day:      1,
		Source:   src,
	}

	// Leading modifier keyword, case-insensitive.
	first, rest := splitFirst(s)
	if mod, ok := modifiers[strings.ToUpper(first)]; ok && rest != "" {
		res.Modifier = mod
		s = rest
	}

	// Trailing calendar suffix. Month abbreviations are excluded so
	// "20 JUN" is never read as a date in calendar JUN.
	last, prefix := splitLast(s)
	if calendarRe.MatchString(last) {
		if _, isMonth := months[last]; !isMonth && prefix != "" {
			res.Calendar = last
			s = prefix
		}
	}

	// Most specific pattern first.
	if m := fullRe.FindStringSubmatch(s); m != nil {
		if month, ok := months[strings.ToUpper(m[2])]; ok {
			res.Day, _ = strconv.Atoi(m[1])
			res.Month = month
			res.Year, _ = strconv.Atoi(m[3])
			return res
		}
	}
	if m := monthYrRe.FindStringSubmatch(s); m != nil {
		if month, ok := months[strings.ToUpper(m[1])]; ok {
			res.Month = month
			res.Year, _ = strconv.Atoi(m[2])
			return res
		}
	}
	if m := yearRe.FindStringSubmatch(s); m != nil {
		res.Year, _ = strconv.Atoi(m[1])
		return res
	}

	return nil
}

// YearsBetween returns the number of whole years from one date to a
// later reference date, using the standard anniversary adjustment:
// the difference is decremented when the reference month/day falls
// before the from month/day within the year.
//
// The result is defined only when both dates exist and share the same
// calendar tag; otherwise ok is false and the int is meaningless.
func YearsBetween(from, to *Date) (int, bool) {
	if from == nil || to == nil {
		return 0, false
	}
	if from.Calendar != to.Calendar {
		return 0, false
	}

	res := to.Year - from.Year
	if to.Month < from.Month ||
		(to.Month == from.Month && to.Day < from.Day) {
		res--
	}
	return res, true
}

func splitFirst(s string) (first, rest string) {
	idx := strings.IndexByte(s, ' ')
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx+1:])
}

func splitLast(s string) (last, prefix string) {
	idx := strings.LastIndexByte(s, ' ')
	if idx < 0 {
		return s, ""
	}
	return s[idx+1:], strings.TrimSpace(s[:idx])
}
