package ioexport

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/gedtk/gedtree/pkg/ged"
	"github.com/gedtk/gedtree/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportableTree() *tree.Tree {
	t := tree.New("test.ged")
	t.Individuals["@I1@"] = &ged.Individual{
		ID: "@I1@",
		Name: ged.Name{
			Full: "John Smith", Given: "John", Surname: "Smith",
		},
		Sex:   "M",
		Birth: &ged.Event{Kind: ged.EventBirth, Date: "1900", Place: "Boston"},
		Death: &ged.Event{Kind: ged.EventDeath, Date: "1980"},
	}
	t.Individuals["@I2@"] = &ged.Individual{
		ID:   "@I2@",
		Name: ged.Name{Full: "Jane Doe", Given: "Jane", Surname: "Doe"},
		Sex:  "F",
	}
	t.Families["@F1@"] = &ged.Family{
		ID: "@F1@", Husband: "@I1@", Wife: "@I2@",
		Children: []string{"@I3@"},
		Marriage: &ged.Event{
			Kind: ged.EventMarriage, Date: "1925", Place: "Boston",
		},
	}
	t.Notes["@N1@"] = &ged.Note{ID: "@N1@", Text: "a shared note"}
	return t
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVExport(t *testing.T) {
	dir := t.TempDir()
	exp := NewCSV(dir)

	err := exp.Export(context.Background(), exportableTree())
	require.NoError(t, err)

	inds := readCSV(t, filepath.Join(dir, "individuals.csv"))
	require.Len(t, inds, 3)
	assert.Equal(t, "id", inds[0][0])
	assert.Equal(t,
		[]string{"@I1@", "John", "Smith", "", "M", "1900", "Boston", "1980", ""},
		inds[1],
	)
	assert.Equal(t, "@I2@", inds[2][0])

	fams := readCSV(t, filepath.Join(dir, "families.csv"))
	require.Len(t, fams, 2)
	assert.Equal(t,
		[]string{"@F1@", "@I1@", "@I2@", "1", "1925", "Boston", ""},
		fams[1],
	)
}

func TestCSVExportCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	exp := NewCSV(dir)

	err := exp.Export(context.Background(), tree.New("empty.ged"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "individuals.csv"))
	assert.NoError(t, err)
}
