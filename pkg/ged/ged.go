// Package ged defines the entity shapes produced by GEDCOM parsing.
//
// All cross-references between entities (family links, spouses,
// children, note references) are plain identifier strings, not
// pointers. A reference may point to an entity that was never defined
// in the source file; resolving such a reference is the job of the
// pkg/tree lookup methods, which report "not found" instead of
// failing. This decoupling is deliberate and must be preserved.
package ged

// Name holds the parts of a GEDCOM NAME value.
// GEDCOM encodes surnames between slashes: "Given /Surname/ Suffix".
type Name struct {
	// Full is the display form with slashes removed.
	Full string

	Given   string
	Surname string
	Suffix  string
}

// EventKind identifies the GEDCOM tag an event was assembled from.
type EventKind string

const (
	EventBirth          EventKind = "BIRT"
	EventDeath          EventKind = "DEAT"
	EventBaptism        EventKind = "BAPM"
	EventFirstCommunion EventKind = "FCOM"
	EventGraduation     EventKind = "GRAD"
	EventResidence      EventKind = "RESI"
	EventObject         EventKind = "OBJE"
	EventMarriage       EventKind = "MARR"
	EventDivorce        EventKind = "DIV"
)

// Event is a dated/placed sub-structure nested under an individual or
// family record. An event with no captured fields is still
// meaningful: its presence records that the tag appeared in the
// source at all.
type Event struct {
	Kind  EventKind
	Date  string
	Place string
	Type  string
	Time  string

	// Address is populated from a nested ADDR structure.
	Address *Address

	// File, Format and Title are used by multimedia (OBJE) events.
	File   string
	Format string
	Title  string

	Notes []NoteValue
}

// Address is a nested ADDR structure under an event.
type Address struct {
	Lines   string
	City    string
	Country string
}

// NoteValue is either a reference to a Note record (Ref set) or
// inline note text accumulated from NOTE/CONT/CONC lines (Text set).
// The two are mutually exclusive.
type NoteValue struct {
	Ref  string
	Text string
}

// IsRef reports whether the note is a cross-reference to a Note
// record rather than inline text.
func (n *NoteValue) IsRef() bool { return n.Ref != "" }

// ChangeDate records the CHAN structure: when a record was last
// modified by the producing application.
type ChangeDate struct {
	Date string
	Time string
}

// Individual is a person record (INDI).
type Individual struct {
	ID   string
	Name Name

	// Sex holds the GEDCOM sex code, usually "M" or "F".
	Sex string

	Birth          *Event
	Death          *Event
	Baptism        *Event
	FirstCommunion *Event

	Graduations []*Event
	Residences  []*Event
	Objects     []*Event

	Notes []NoteValue

	// FamiliesAsChild lists family IDs where this person appears as a
	// child (FAMC). More than one entry is passed through as-is.
	FamiliesAsChild []string

	// FamiliesAsSpouse lists family IDs where this person appears as
	// a spouse (FAMS).
	FamiliesAsSpouse []string

	Change *ChangeDate
}

// BirthDate returns the raw birth date string, or "" when no dated
// birth event was recorded.
func (ind *Individual) BirthDate() string {
	if ind.Birth == nil {
		return ""
	}
	return ind.Birth.Date
}

// DeathDate returns the raw death date string, or "" when no dated
// death event was recorded.
func (ind *Individual) DeathDate() string {
	if ind.Death == nil {
		return ""
	}
	return ind.Death.Date
}

// Family is a family record (FAM) linking spouses and children by ID.
type Family struct {
	ID      string
	Husband string
	Wife    string

	// Children preserves the order of CHIL lines.
	Children []string

	Marriage *Event
	Divorce  *Event

	// ChildCount is the declared NCHI value; nil when absent. The
	// declared count is not reconciled with len(Children).
	ChildCount *int

	Notes []NoteValue

	Change *ChangeDate
}

// Note is a shared note record (NOTE with an XREF at level 0).
// Continuation lines are appended to Text with newline separators.
type Note struct {
	ID     string
	Text   string
	Change *ChangeDate
}

// Submitter is a SUBM record.
type Submitter struct {
	ID     string
	Name   string
	Change *ChangeDate
}

// Header holds the free-form HEAD record. It is metadata about the
// file itself and is not relationally linked to other entities.
type Header struct {
	Source        string
	SourceVersion string
	SourceName    string
	Destination   string
	Date          string
	Time          string
	Encoding      string
	Submitter     string
	GedcomVersion string
	GedcomForm    string
}
