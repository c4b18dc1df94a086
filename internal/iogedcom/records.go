package iogedcom

import (
	"github.com/gedtk/gedtree/pkg/ged"
	"github.com/gedtk/gedtree/pkg/gedline"
)

// handleNote dispatches one tag inside a shared NOTE record.
// Continuations accumulate into the note body with newline joins.
func (a *assembler) handleNote(l *gedline.Line, parent attach) {
	switch l.Tag {
	case "CONT":
		a.note.Text += "\n" + l.Value
	case "CONC":
		a.note.Text += l.Value
	case "CHAN":
		a.note.Change = &ged.ChangeDate{}
		a.setStack(l.Level, attach{kind: attachChange, change: a.note.Change})
	case "DATE":
		if parent.kind == attachChange {
			parent.change.Date = l.Value
		}
	case "TIME":
		if parent.kind == attachChange {
			parent.change.Time = l.Value
		}
	}
}

// handleHeader populates the flat HEAD fields. Header sub-structures
// (SOUR, GEDC, DATE) are flat too; a section marker on the stack
// tells nested VERS/FORM/NAME/TIME lines which field family they
// belong to.
func (a *assembler) handleHeader(l *gedline.Line, parent attach) {
	switch l.Tag {
	case "SOUR":
		a.head.Source = l.Value
		a.setStack(l.Level, attach{kind: attachSection, section: "SOUR"})
	case "GEDC":
		a.setStack(l.Level, attach{kind: attachSection, section: "GEDC"})
	case "DEST":
		a.head.Destination = l.Value
	case "DATE":
		a.head.Date = l.Value
		a.setStack(l.Level, attach{kind: attachSection, section: "DATE"})
	case "TIME":
		if parent.kind == attachSection && parent.section == "DATE" {
			a.head.Time = l.Value
		}
	case "CHAR":
		a.head.Encoding = l.Value
	case "SUBM":
		a.head.Submitter = l.Value
	case "VERS":
		if parent.kind != attachSection {
			return
		}
		switch parent.section {
		case "SOUR":
			a.head.SourceVersion = l.Value
		case "GEDC":
			a.head.GedcomVersion = l.Value
		}
	case "FORM":
		if parent.kind == attachSection && parent.section == "GEDC" {
			a.head.GedcomForm = l.Value
		}
	case "NAME":
		if parent.kind == attachSection && parent.section == "SOUR" {
			a.head.SourceName = l.Value
		}
	}
}

// handleSubmitter dispatches one tag inside a SUBM record.
func (a *assembler) handleSubmitter(l *gedline.Line, parent attach) {
	switch l.Tag {
	case "NAME":
		a.subm.Name = l.Value
	case "CHAN":
		a.subm.Change = &ged.ChangeDate{}
		a.setStack(l.Level, attach{kind: attachChange, change: a.subm.Change})
	case "DATE":
		if parent.kind == attachChange {
			parent.change.Date = l.Value
		}
	case "TIME":
		if parent.kind == attachChange {
			parent.change.Time = l.Value
		}
	}
}
