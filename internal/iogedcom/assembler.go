package iogedcom

import (
	"log/slog"

	"github.com/gedtk/gedtree/pkg/ged"
	"github.com/gedtk/gedtree/pkg/gedline"
	"github.com/gedtk/gedtree/pkg/tree"
)

// recordKind identifies which record type is currently open at
// level 0.
type recordKind int

const (
	recordNone recordKind = iota
	recordIndividual
	recordFamily
	recordNote
	recordHeader
	recordSubmitter
	// recordSkipped consumes sub-lines of level-0 record types this
	// parser does not model (SOUR, REPO, ...). Their lines are read
	// and discarded.
	recordSkipped
)

// attachKind tags the variant of an attach target on the context
// stack, so handlers can pattern-match instead of probing fields.
type attachKind int

const (
	attachNone attachKind = iota
	attachRecord
	attachEvent
	attachAddress
	attachChange
	// attachSection marks a flat header sub-structure (SOUR, GEDC,
	// DATE) whose children populate header fields.
	attachSection
)

// attach is one entry of the level-indexed context stack: the object
// that tags one level deeper should attach to.
type attach struct {
	kind    attachKind
	event   *ged.Event
	addr    *ged.Address
	change  *ged.ChangeDate
	section string
}

// assembler turns the tokenized line stream into records inside a
// Tree. It holds the open record, the provisional "current event" and
// the level-indexed context stack described by the format: stack[n]
// is the attach point for tags at level n+1. The stack is reset at
// every level-0 boundary and entries are overwritten, never popped.
type assembler struct {
	t *tree.Tree

	kind recordKind
	ind  *ged.Individual
	fam  *ged.Family
	note *ged.Note
	head *ged.Header
	subm *ged.Submitter

	// event is the provisional event being accumulated. It commits
	// into its record when another event opens, when the record
	// finalizes, or at end of input; a dateless event still commits,
	// recording that the tag was present.
	event *ged.Event

	// openNote is the most recently started note value; CONT/CONC
	// lines append to it.
	openNote *ged.NoteValue

	stack []attach

	// done is set by the TRLR record; all further lines are ignored.
	done bool
}

func newAssembler(t *tree.Tree) *assembler {
	return &assembler{t: t}
}

// handle processes one tokenized line.
func (a *assembler) handle(l *gedline.Line) {
	if a.done {
		return
	}

	if l.Level == 0 {
		a.handleLevel0(l)
		return
	}

	// Lines without an open record are tolerated garbage.
	if a.kind == recordNone || a.kind == recordSkipped {
		return
	}

	parent := a.parentAt(l.Level)

	switch a.kind {
	case recordIndividual:
		a.handleIndividual(l, parent)
	case recordFamily:
		a.handleFamily(l, parent)
	case recordNote:
		a.handleNote(l, parent)
	case recordHeader:
		a.handleHeader(l, parent)
	case recordSubmitter:
		a.handleSubmitter(l, parent)
	}
}

func (a *assembler) handleLevel0(l *gedline.Line) {
	a.finalizeRecord()

	switch {
	case l.Tag == "HEAD":
		a.kind = recordHeader
		a.head = &ged.Header{}
	case l.Tag == "TRLR":
		a.done = true
		return
	case l.XRef != "":
		a.openXRef(l)
	case l.Tag == "SUBM":
		// SUBM without an XREF at level 0 is keyed by its value.
		a.kind = recordSubmitter
		a.subm = &ged.Submitter{ID: l.Value}
	default:
		slog.Warn("Ignoring unsupported level-0 line", "line", l.String())
		a.kind = recordNone
	}

	a.resetStack()
}

func (a *assembler) openXRef(l *gedline.Line) {
	switch l.Tag {
	case "INDI":
		a.kind = recordIndividual
		a.ind = &ged.Individual{ID: l.XRef}
	case "FAM":
		a.kind = recordFamily
		a.fam = &ged.Family{ID: l.XRef}
	case "NOTE":
		a.kind = recordNote
		a.note = &ged.Note{ID: l.XRef, Text: l.Value}
	case "SUBM":
		a.kind = recordSubmitter
		a.subm = &ged.Submitter{ID: l.XRef}
	default:
		a.kind = recordSkipped
	}
}

// finish commits whatever record is still open at end of input.
func (a *assembler) finish() {
	a.finalizeRecord()
}

// finalizeRecord commits the open record into the tree. A record ID
// that already exists is never overwritten by a later record.
func (a *assembler) finalizeRecord() {
	a.finalizeEvent()
	a.openNote = nil

	switch a.kind {
	case recordIndividual:
		if _, ok := a.t.Individuals[a.ind.ID]; ok {
			slog.Warn("Duplicate individual record ignored", "id", a.ind.ID)
		} else {
			a.t.Individuals[a.ind.ID] = a.ind
		}
		a.ind = nil
	case recordFamily:
		if _, ok := a.t.Families[a.fam.ID]; ok {
			slog.Warn("Duplicate family record ignored", "id", a.fam.ID)
		} else {
			a.t.Families[a.fam.ID] = a.fam
		}
		a.fam = nil
	case recordNote:
		if _, ok := a.t.Notes[a.note.ID]; ok {
			slog.Warn("Duplicate note record ignored", "id", a.note.ID)
		} else {
			a.t.Notes[a.note.ID] = a.note
		}
		a.note = nil
	case recordHeader:
		a.t.Header = a.head
		a.head = nil
	case recordSubmitter:
		if _, ok := a.t.Submitters[a.subm.ID]; ok {
			slog.Warn("Duplicate submitter record ignored", "id", a.subm.ID)
		} else {
			a.t.Submitters[a.subm.ID] = a.subm
		}
		a.subm = nil
	}

	a.kind = recordNone
}

// finalizeEvent commits the provisional event into its owning record.
// Empty events commit too: the presence of the field distinguishes
// "tag was present but dateless" from "no event recorded".
func (a *assembler) finalizeEvent() {
	if a.event == nil {
		return
	}
	ev := a.event
	a.event = nil

	switch a.kind {
	case recordIndividual:
		a.commitIndividualEvent(ev)
	case recordFamily:
		a.commitFamilyEvent(ev)
	}
}

// openEvent finalizes any prior event and starts a new provisional
// one, registering it on the context stack at the line's level.
func (a *assembler) openEvent(kind ged.EventKind, level int) *ged.Event {
	a.finalizeEvent()
	ev := &ged.Event{Kind: kind}
	a.event = ev
	a.setStack(level, attach{kind: attachEvent, event: ev})
	return ev
}

func (a *assembler) resetStack() {
	a.stack = a.stack[:0]
	a.stack = append(a.stack, attach{kind: attachRecord})
}

// setStack records the attach point for children of a line at the
// given level. Entries above it become stale and are cleared.
func (a *assembler) setStack(level int, at attach) {
	for len(a.stack) <= level {
		a.stack = append(a.stack, attach{})
	}
	a.stack = a.stack[:level+1]
	a.stack[level] = at
}

// parentAt returns the attach point for a line at the given level,
// which is the stack entry one level up.
func (a *assembler) parentAt(level int) attach {
	idx := level - 1
	if idx < 0 || idx >= len(a.stack) {
		return attach{}
	}
	return a.stack[idx]
}

// nearestAddress walks the stack downward from the line's parent
// looking for an open address. Addresses are recognized by their
// variant tag, not by tag level alone.
func (a *assembler) nearestAddress(level int) *ged.Address {
	for idx := level - 1; idx >= 0; idx-- {
		if idx >= len(a.stack) {
			continue
		}
		if a.stack[idx].kind == attachAddress {
			return a.stack[idx].addr
		}
	}
	return nil
}
