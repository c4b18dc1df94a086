package tree

import (
	"testing"

	"github.com/gedtk/gedtree/pkg/ged"
	"github.com/gedtk/gedtree/pkg/geddate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	tr := New("test.ged")
	tr.Individuals["@I1@"] = &ged.Individual{
		ID: "@I1@", Sex: "M",
		Birth: &ged.Event{Kind: ged.EventBirth, Date: "20 JUN 1900"},
		Death: &ged.Event{Kind: ged.EventDeath, Date: "1980"},
	}
	tr.Individuals["@I2@"] = &ged.Individual{
		ID: "@I2@", Sex: "F",
		Birth: &ged.Event{Kind: ged.EventBirth, Date: "1910"},
	}
	tr.Individuals["@I3@"] = &ged.Individual{
		ID: "@I3@",
		Birth: &ged.Event{
			Kind: ged.EventBirth, Date: "10191 AG",
		},
	}
	tr.Individuals["@I4@"] = &ged.Individual{
		ID: "@I4@", Sex: "M",
		Birth: &ged.Event{Kind: ged.EventBirth, Date: "unknowable"},
	}
	tr.Families["@F1@"] = &ged.Family{ID: "@F1@"}
	tr.Notes["@N1@"] = &ged.Note{ID: "@N1@"}

	st := tr.Stats()

	assert.Equal(t, 4, st.Individuals)
	assert.Equal(t, 1, st.Families)
	assert.Equal(t, 1, st.Notes)
	assert.Equal(t, 0, st.Submitters)
	assert.Equal(t, 2, st.Male)
	assert.Equal(t, 1, st.Female)
	assert.Equal(t, 1, st.Unknown)

	// Gregorian first, fictional calendar after.
	require.Len(t, st.Calendars, 2)

	greg := st.Calendars[0]
	assert.Equal(t, geddate.Gregorian, greg.Calendar)
	assert.Equal(t, 2, greg.Births)
	assert.Equal(t, 1900, greg.EarliestBirth)
	assert.Equal(t, 1910, greg.LatestBirth)
	assert.Equal(t, 1, greg.Deaths)
	assert.Equal(t, 1980, greg.EarliestDeath)

	ag := st.Calendars[1]
	assert.Equal(t, "AG", ag.Calendar)
	assert.Equal(t, 1, ag.Births)
	assert.Equal(t, 10191, ag.EarliestBirth)
	assert.Equal(t, 0, ag.Deaths)
}

func TestStatsEmptyTree(t *testing.T) {
	st := New("empty.ged").Stats()
	assert.Equal(t, 0, st.Individuals)
	assert.Empty(t, st.Calendars)
}
