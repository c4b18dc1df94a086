package tree

import (
	"testing"

	"github.com/gedtk/gedtree/pkg/ged"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree constructs a three-generation tree:
//
//	@I1@ + @I2@ -> @I3@, @I4@ (family @F1@)
//	@I3@ + @I5@ -> @I6@       (family @F2@)
func buildTree() *Tree {
	t := New("test.ged")

	t.Individuals["@I1@"] = &ged.Individual{
		ID: "@I1@", FamiliesAsSpouse: []string{"@F1@"},
	}
	t.Individuals["@I2@"] = &ged.Individual{
		ID: "@I2@", FamiliesAsSpouse: []string{"@F1@"},
	}
	t.Individuals["@I3@"] = &ged.Individual{
		ID:               "@I3@",
		FamiliesAsChild:  []string{"@F1@"},
		FamiliesAsSpouse: []string{"@F2@"},
	}
	t.Individuals["@I4@"] = &ged.Individual{
		ID: "@I4@", FamiliesAsChild: []string{"@F1@"},
	}
	t.Individuals["@I5@"] = &ged.Individual{
		ID: "@I5@", FamiliesAsSpouse: []string{"@F2@"},
	}
	t.Individuals["@I6@"] = &ged.Individual{
		ID: "@I6@", FamiliesAsChild: []string{"@F2@"},
	}

	t.Families["@F1@"] = &ged.Family{
		ID: "@F1@", Husband: "@I1@", Wife: "@I2@",
		Children: []string{"@I3@", "@I4@"},
	}
	t.Families["@F2@"] = &ged.Family{
		ID: "@F2@", Husband: "@I3@", Wife: "@I5@",
		Children: []string{"@I6@"},
	}

	return t
}

func ids(inds []*ged.Individual) []string {
	res := make([]string, len(inds))
	for i, ind := range inds {
		res[i] = ind.ID
	}
	return res
}

func TestParents(t *testing.T) {
	tr := buildTree()
	assert.Equal(t, []string{"@I1@", "@I2@"}, ids(tr.Parents("@I3@")))
	assert.Empty(t, tr.Parents("@I1@"))
	assert.Empty(t, tr.Parents("@missing@"))
}

func TestChildren(t *testing.T) {
	tr := buildTree()
	assert.Equal(t, []string{"@I3@", "@I4@"}, ids(tr.Children("@I1@")))
	assert.Equal(t, []string{"@I6@"}, ids(tr.Children("@I3@")))
	assert.Empty(t, tr.Children("@I6@"))
}

func TestSiblings(t *testing.T) {
	tr := buildTree()
	assert.Equal(t, []string{"@I4@"}, ids(tr.Siblings("@I3@")))
	assert.Empty(t, tr.Siblings("@I6@"))
}

func TestSpouses(t *testing.T) {
	tr := buildTree()
	assert.Equal(t, []string{"@I2@"}, ids(tr.Spouses("@I1@")))
	assert.Equal(t, []string{"@I5@"}, ids(tr.Spouses("@I3@")))
	assert.Empty(t, tr.Spouses("@I6@"))
}

func TestDanglingReferencesSkipped(t *testing.T) {
	tr := buildTree()
	tr.Individuals["@I7@"] = &ged.Individual{
		ID:               "@I7@",
		FamiliesAsChild:  []string{"@F404@"},
		FamiliesAsSpouse: []string{"@F405@"},
	}

	assert.Empty(t, tr.Parents("@I7@"))
	assert.Empty(t, tr.Children("@I7@"))
	assert.Empty(t, tr.Spouses("@I7@"))
}

func TestRoots(t *testing.T) {
	tr := buildTree()
	assert.Equal(t,
		[]string{"@I1@", "@I2@", "@I5@"},
		ids(tr.Roots()),
	)
}

func TestRootsDanglingFamily(t *testing.T) {
	// A FAMC pointing at a missing family does not disqualify a root.
	tr := New("test.ged")
	tr.Individuals["@I1@"] = &ged.Individual{
		ID: "@I1@", FamiliesAsChild: []string{"@F404@"},
	}
	assert.Equal(t, []string{"@I1@"}, ids(tr.Roots()))
}

func TestAncestors(t *testing.T) {
	tr := buildTree()
	assert.Equal(t,
		[]string{"@I1@", "@I2@", "@I3@", "@I5@"},
		ids(tr.Ancestors("@I6@", 10)),
	)

	// Depth bound cuts the walk.
	assert.Equal(t,
		[]string{"@I3@", "@I5@"},
		ids(tr.Ancestors("@I6@", 1)),
	)
}

func TestDescendants(t *testing.T) {
	tr := buildTree()
	assert.Equal(t,
		[]string{"@I3@", "@I4@", "@I6@"},
		ids(tr.Descendants("@I1@", 10)),
	)
	assert.Equal(t,
		[]string{"@I3@", "@I4@"},
		ids(tr.Descendants("@I1@", 1)),
	)
}

func TestTraversalCycleTerminates(t *testing.T) {
	// @I1@ is both parent in @F1@ and listed as a child of @F2@, whose
	// spouse is @I1@'s own descendant. The walk must terminate and not
	// report anyone twice.
	tr := New("test.ged")
	tr.Individuals["@I1@"] = &ged.Individual{
		ID:               "@I1@",
		FamiliesAsChild:  []string{"@F2@"},
		FamiliesAsSpouse: []string{"@F1@"},
	}
	tr.Individuals["@I2@"] = &ged.Individual{
		ID:               "@I2@",
		FamiliesAsChild:  []string{"@F1@"},
		FamiliesAsSpouse: []string{"@F2@"},
	}
	tr.Families["@F1@"] = &ged.Family{
		ID: "@F1@", Husband: "@I1@", Children: []string{"@I2@"},
	}
	tr.Families["@F2@"] = &ged.Family{
		ID: "@F2@", Husband: "@I2@", Children: []string{"@I1@"},
	}

	anc := tr.Ancestors("@I1@", 1000)
	require.NotNil(t, anc)
	assert.Equal(t, []string{"@I2@"}, ids(anc))

	desc := tr.Descendants("@I1@", 1000)
	assert.Equal(t, []string{"@I2@"}, ids(desc))
}

func TestSelfSpouseFamilyPassedThrough(t *testing.T) {
	// A family listing the same person as both spouses is kept as the
	// data declares it; Spouses just finds nobody else.
	tr := New("test.ged")
	tr.Individuals["@I1@"] = &ged.Individual{
		ID: "@I1@", FamiliesAsSpouse: []string{"@F1@"},
	}
	tr.Families["@F1@"] = &ged.Family{
		ID: "@F1@", Husband: "@I1@", Wife: "@I1@",
	}

	assert.Empty(t, tr.Spouses("@I1@"))
}
