package iogedcom

import (
	"strconv"

	"github.com/gedtk/gedtree/pkg/ged"
	"github.com/gedtk/gedtree/pkg/gedline"
)

// handleFamily dispatches one tag inside a FAM record. Spouse and
// child links are stored exactly as declared; duplicate spouse pairs
// or repeated children are passed through, not deduplicated.
func (a *assembler) handleFamily(l *gedline.Line, parent attach) {
	switch l.Tag {
	case "HUSB":
		a.fam.Husband = l.Value
	case "WIFE":
		a.fam.Wife = l.Value
	case "CHIL":
		a.fam.Children = append(a.fam.Children, l.Value)
	case "MARR":
		a.openEvent(ged.EventMarriage, l.Level)
	case "DIV":
		a.openEvent(ged.EventDivorce, l.Level)
	case "NCHI":
		if n, err := strconv.Atoi(l.Value); err == nil {
			a.fam.ChildCount = &n
		}
	case "DATE", "PLAC", "TYPE", "TIME":
		a.setEventField(l, parent)
	case "ADDR":
		a.openAddress(l)
	case "CITY", "CTRY":
		a.setAddressField(l)
	case "NOTE":
		if a.event != nil {
			a.appendNote(&a.event.Notes, l.Value)
		} else {
			a.appendNote(&a.fam.Notes, l.Value)
		}
	case "CONT", "CONC":
		a.continueNote(l)
	case "CHAN":
		a.fam.Change = &ged.ChangeDate{}
		a.setStack(l.Level, attach{kind: attachChange, change: a.fam.Change})
	}
}

// commitFamilyEvent stores a finalized event in its slot on the
// family.
func (a *assembler) commitFamilyEvent(ev *ged.Event) {
	switch ev.Kind {
	case ged.EventMarriage:
		if a.fam.Marriage == nil {
			a.fam.Marriage = ev
		}
	case ged.EventDivorce:
		if a.fam.Divorce == nil {
			a.fam.Divorce = ev
		}
	}
}
