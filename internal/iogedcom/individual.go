package iogedcom

import (
	"strings"

	"github.com/gedtk/gedtree/pkg/ged"
	"github.com/gedtk/gedtree/pkg/gedline"
)

// handleIndividual dispatches one tag inside an INDI record.
func (a *assembler) handleIndividual(l *gedline.Line, parent attach) {
	switch l.Tag {
	case "NAME":
		n := gedline.ParseName(l.Value)
		a.ind.Name = ged.Name{
			Full:    n.Full,
			Given:   n.Given,
			Surname: n.Surname,
			Suffix:  n.Suffix,
		}
	case "SEX":
		a.ind.Sex = strings.ToUpper(strings.TrimSpace(l.Value))
	case "BIRT":
		a.openEvent(ged.EventBirth, l.Level)
	case "DEAT":
		a.openEvent(ged.EventDeath, l.Level)
	case "BAPM":
		a.openEvent(ged.EventBaptism, l.Level)
	case "FCOM":
		a.openEvent(ged.EventFirstCommunion, l.Level)
	case "GRAD":
		a.openEvent(ged.EventGraduation, l.Level)
	case "RESI":
		a.openEvent(ged.EventResidence, l.Level)
	case "OBJE":
		a.openEvent(ged.EventObject, l.Level)
	case "FAMC":
		// Family links are structure, not events; an open event ends
		// here.
		a.finalizeEvent()
		a.ind.FamiliesAsChild = append(a.ind.FamiliesAsChild, l.Value)
	case "FAMS":
		a.finalizeEvent()
		a.ind.FamiliesAsSpouse = append(a.ind.FamiliesAsSpouse, l.Value)
	case "DATE", "PLAC", "TYPE", "TIME", "FILE", "FORM", "TITL":
		a.setEventField(l, parent)
	case "ADDR":
		a.openAddress(l)
	case "CITY", "CTRY":
		a.setAddressField(l)
	case "NOTE":
		if a.event != nil {
			a.appendNote(&a.event.Notes, l.Value)
		} else {
			a.appendNote(&a.ind.Notes, l.Value)
		}
	case "CONT", "CONC":
		a.continueNote(l)
	case "CHAN":
		a.ind.Change = &ged.ChangeDate{}
		a.setStack(l.Level, attach{kind: attachChange, change: a.ind.Change})
	}
}

// commitIndividualEvent stores a finalized event in its structured
// slot on the individual.
func (a *assembler) commitIndividualEvent(ev *ged.Event) {
	switch ev.Kind {
	case ged.EventBirth:
		if a.ind.Birth == nil {
			a.ind.Birth = ev
		}
	case ged.EventDeath:
		if a.ind.Death == nil {
			a.ind.Death = ev
		}
	case ged.EventBaptism:
		if a.ind.Baptism == nil {
			a.ind.Baptism = ev
		}
	case ged.EventFirstCommunion:
		if a.ind.FirstCommunion == nil {
			a.ind.FirstCommunion = ev
		}
	case ged.EventGraduation:
		a.ind.Graduations = append(a.ind.Graduations, ev)
	case ged.EventResidence:
		a.ind.Residences = append(a.ind.Residences, ev)
	case ged.EventObject:
		a.ind.Objects = append(a.ind.Objects, ev)
	}
}

// setEventField attaches a dated-detail tag to the change date or
// event its line nests under, falling back to the currently open
// event.
func (a *assembler) setEventField(l *gedline.Line, parent attach) {
	if parent.kind == attachChange {
		switch l.Tag {
		case "DATE":
			parent.change.Date = l.Value
		case "TIME":
			parent.change.Time = l.Value
		}
		return
	}

	ev := parent.event
	if parent.kind != attachEvent {
		ev = a.event
	}
	if ev == nil {
		return
	}

	switch l.Tag {
	case "DATE":
		ev.Date = l.Value
	case "PLAC":
		ev.Place = l.Value
	case "TYPE":
		ev.Type = l.Value
	case "TIME":
		ev.Time = l.Value
	case "FILE":
		ev.File = l.Value
	case "FORM":
		ev.Format = l.Value
	case "TITL":
		ev.Title = l.Value
	}
}

// openAddress starts a nested address under the current event and
// registers it on the stack so CITY/CTRY can find it.
func (a *assembler) openAddress(l *gedline.Line) {
	if a.event == nil {
		return
	}
	addr := &ged.Address{Lines: l.Value}
	a.event.Address = addr
	a.setStack(l.Level, attach{kind: attachAddress, addr: addr})
}

func (a *assembler) setAddressField(l *gedline.Line) {
	addr := a.nearestAddress(l.Level)
	if addr == nil {
		return
	}
	switch l.Tag {
	case "CITY":
		addr.City = l.Value
	case "CTRY":
		addr.Country = l.Value
	}
}

// appendNote adds a note value to the given list. A value of the form
// @...@ is a reference to a Note record; anything else starts inline
// text. The new note becomes the target for CONT/CONC continuations.
func (a *assembler) appendNote(list *[]ged.NoteValue, value string) {
	nv := ged.NoteValue{}
	if isXRef(value) {
		nv.Ref = value
	} else {
		nv.Text = value
	}
	*list = append(*list, nv)
	a.openNote = &(*list)[len(*list)-1]
}

// continueNote appends a continuation line to the most recently open
// note. CONT joins with a newline, CONC without one.
func (a *assembler) continueNote(l *gedline.Line) {
	if a.openNote == nil || a.openNote.IsRef() {
		return
	}
	if l.Tag == "CONT" {
		a.openNote.Text += "\n" + l.Value
	} else {
		a.openNote.Text += l.Value
	}
}

func isXRef(s string) bool {
	return len(s) >= 2 && s[0] == '@' && s[len(s)-1] == '@'
}
