// Package tree owns the genealogical graph built from one GEDCOM
// source and answers relationship queries over it.
//
// A Tree is assembled once during parsing and is read-only
// afterwards: no query mutates it. Reloading a source never mutates
// an existing Tree; the loader constructs a fresh one and the caller
// swaps the reference (see Holder). Each Tree carries a unique LoadID
// so consumers holding entities from an older load can detect that
// they are stale and must re-fetch by ID.
package tree

import (
	"strings"

	"github.com/gedtk/gedtree/pkg/ged"
	"github.com/google/uuid"
)

// Tree is the in-memory graph of one parsed GEDCOM source.
type Tree struct {
	// LoadID uniquely identifies this load; a reload of the same path
	// produces a different LoadID.
	LoadID uuid.UUID

	// Path is the source file the tree was built from.
	Path string

	Individuals map[string]*ged.Individual
	Families    map[string]*ged.Family
	Notes       map[string]*ged.Note
	Submitters  map[string]*ged.Submitter
	Header      *ged.Header
}

// New returns an empty Tree with a fresh LoadID. The loader fills the
// maps during assembly; after that the tree is treated as immutable.
func New(path string) *Tree {
	return &Tree{
		LoadID:      uuid.New(),
		Path:        path,
		Individuals: make(map[string]*ged.Individual),
		Families:    make(map[string]*ged.Family),
		Notes:       make(map[string]*ged.Note),
		Submitters:  make(map[string]*ged.Submitter),
	}
}

// Individual resolves an individual ID. Missing IDs, including
// dangling cross-references from other records, report ok=false.
func (t *Tree) Individual(id string) (*ged.Individual, bool) {
	ind, ok := t.Individuals[id]
	return ind, ok
}

// Family resolves a family ID.
func (t *Tree) Family(id string) (*ged.Family, bool) {
	fam, ok := t.Families[id]
	return fam, ok
}

// Note resolves a note ID.
func (t *Tree) Note(id string) (*ged.Note, bool) {
	n, ok := t.Notes[id]
	return n, ok
}

// Submitter resolves a submitter ID.
func (t *Tree) Submitter(id string) (*ged.Submitter, bool) {
	s, ok := t.Submitters[id]
	return s, ok
}

// SearchIndividuals returns individuals whose full, given or surname
// contains the query, case-insensitively. An empty query matches
// nobody.
func (t *Tree) SearchIndividuals(query string) []*ged.Individual {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var res []*ged.Individual
	for _, ind := range t.Individuals {
		if strings.Contains(strings.ToLower(ind.Name.Full), query) ||
			strings.Contains(strings.ToLower(ind.Name.Given), query) ||
			strings.Contains(strings.ToLower(ind.Name.Surname), query) {
			res = append(res, ind)
		}
	}
	sortByID(res)
	return res
}

// AllIndividuals lists every individual, ordered by ID for stable
// output.
func (t *Tree) AllIndividuals() []*ged.Individual {
	res := make([]*ged.Individual, 0, len(t.Individuals))
	for _, ind := range t.Individuals {
		res = append(res, ind)
	}
	sortByID(res)
	return res
}

// AllFamilies lists every family, ordered by ID.
func (t *Tree) AllFamilies() []*ged.Family {
	res := make([]*ged.Family, 0, len(t.Families))
	for _, fam := range t.Families {
		res = append(res, fam)
	}
	sortFamiliesByID(res)
	return res
}
