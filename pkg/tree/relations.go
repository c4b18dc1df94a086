package tree

import (
	"sort"

	"github.com/gedtk/gedtree/pkg/ged"
)

// Parents returns the resolvable spouses of the families where the
// individual appears as a child. Dangling family or spouse references
// are skipped silently.
func (t *Tree) Parents(id string) []*ged.Individual {
	ind, ok := t.Individuals[id]
	if !ok {
		return nil
	}

	var res []*ged.Individual
	seen := make(map[string]bool)
	for _, famID := range ind.FamiliesAsChild {
		fam, ok := t.Families[famID]
		if !ok {
			continue
		}
		for _, pid := range []string{fam.Husband, fam.Wife} {
			if pid == "" || seen[pid] {
				continue
			}
			if parent, ok := t.Individuals[pid]; ok {
				seen[pid] = true
				res = append(res, parent)
			}
		}
	}
	sortByID(res)
	return res
}

// Children returns the resolvable children of the families where the
// individual appears as a spouse.
func (t *Tree) Children(id string) []*ged.Individual {
	ind, ok := t.Individuals[id]
	if !ok {
		return nil
	}

	var res []*ged.Individual
	seen := make(map[string]bool)
	for _, famID := range ind.FamiliesAsSpouse {
		fam, ok := t.Families[famID]
		if !ok {
			continue
		}
		for _, cid := range fam.Children {
			if cid == "" || seen[cid] {
				continue
			}
			if child, ok := t.Individuals[cid]; ok {
				seen[cid] = true
				res = append(res, child)
			}
		}
	}
	sortByID(res)
	return res
}

// Siblings returns the other children of the families where the
// individual appears as a child.
func (t *Tree) Siblings(id string) []*ged.Individual {
	ind, ok := t.Individuals[id]
	if !ok {
		return nil
	}

	var res []*ged.Individual
	seen := map[string]bool{id: true}
	for _, famID := range ind.FamiliesAsChild {
		fam, ok := t.Families[famID]
		if !ok {
			continue
		}
		for _, sid := range fam.Children {
			if sid == "" || seen[sid] {
				continue
			}
			if sib, ok := t.Individuals[sid]; ok {
				seen[sid] = true
				res = append(res, sib)
			}
		}
	}
	sortByID(res)
	return res
}

// Spouses returns the other spouse of each family where the
// individual appears as a spouse. Families listing the same person in
// both spouse roles are passed through as the data declares them.
func (t *Tree) Spouses(id string) []*ged.Individual {
	ind, ok := t.Individuals[id]
	if !ok {
		return nil
	}

	var res []*ged.Individual
	seen := make(map[string]bool)
	for _, famID := range ind.FamiliesAsSpouse {
		fam, ok := t.Families[famID]
		if !ok {
			continue
		}
		other := fam.Husband
		if other == id {
			other = fam.Wife
		}
		if other == "" || other == id || seen[other] {
			continue
		}
		if sp, ok := t.Individuals[other]; ok {
			seen[other] = true
			res = append(res, sp)
		}
	}
	sortByID(res)
	return res
}

// Roots returns the individuals with no resolvable parents: either no
// FAMC reference at all, or every referenced family is missing or has
// neither husband nor wife populated.
func (t *Tree) Roots() []*ged.Individual {
	var res []*ged.Individual
	for _, ind := range t.Individuals {
		if t.isRoot(ind) {
			res = append(res, ind)
		}
	}
	sortByID(res)
	return res
}

func (t *Tree) isRoot(ind *ged.Individual) bool {
	for _, famID := range ind.FamiliesAsChild {
		fam, ok := t.Families[famID]
		if !ok {
			continue
		}
		if fam.Husband != "" || fam.Wife != "" {
			return false
		}
	}
	return true
}

// Ancestors walks parent links up to maxDepth generations and returns
// every distinct ancestor reached. The visited set guards against
// cyclic data, such as a family that lists one of its own ancestors
// as a child; traversal terminates and never reports a person twice.
func (t *Tree) Ancestors(id string, maxDepth int) []*ged.Individual {
	visited := map[string]bool{id: true}
	var res []*ged.Individual
	t.collectAncestors(id, maxDepth, visited, &res)
	sortByID(res)
	return res
}

func (t *Tree) collectAncestors(
	id string,
	depth int,
	visited map[string]bool,
	res *[]*ged.Individual,
) {
	if depth <= 0 {
		return
	}
	for _, parent := range t.Parents(id) {
		if visited[parent.ID] {
			continue
		}
		visited[parent.ID] = true
		*res = append(*res, parent)
		t.collectAncestors(parent.ID, depth-1, visited, res)
	}
}

// Descendants walks child links up to maxDepth generations with the
// same visited-set cycle guard as Ancestors.
func (t *Tree) Descendants(id string, maxDepth int) []*ged.Individual {
	visited := map[string]bool{id: true}
	var res []*ged.Individual
	t.collectDescendants(id, maxDepth, visited, &res)
	sortByID(res)
	return res
}

func (t *Tree) collectDescendants(
	id string,
	depth int,
	visited map[string]bool,
	res *[]*ged.Individual,
) {
	if depth <= 0 {
		return
	}
	for _, child := range t.Children(id) {
		if visited[child.ID] {
			continue
		}
		visited[child.ID] = true
		*res = append(*res, child)
		t.collectDescendants(child.ID, depth-1, visited, res)
	}
}

func sortByID(inds []*ged.Individual) {
	sort.Slice(inds, func(i, j int) bool {
		return inds[i].ID < inds[j].ID
	})
}

func sortFamiliesByID(fams []*ged.Family) {
	sort.Slice(fams, func(i, j int) bool {
		return fams[i].ID < fams[j].ID
	})
}
