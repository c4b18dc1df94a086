// Package ioexport writes read-only views of a parsed tree to
// external formats. Exporters consume only the public query surface
// of pkg/tree; they never reach into parsing internals.
package ioexport

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gedtk/gedtree/pkg/ged"
	"github.com/gedtk/gedtree/pkg/gedtree"
	"github.com/gedtk/gedtree/pkg/tree"
)

type csvExporter struct {
	dir string
}

// NewCSV creates an Exporter writing individuals.csv and families.csv
// into the given directory.
func NewCSV(dir string) gedtree.Exporter {
	return &csvExporter{dir: dir}
}

func (e *csvExporter) Export(ctx context.Context, t *tree.Tree) error {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return CreateFileError(e.dir, err)
	}

	if err := e.writeIndividuals(t); err != nil {
		return err
	}
	if err := e.writeFamilies(t); err != nil {
		return err
	}

	slog.Info("Exported tree to CSV",
		"dir", e.dir,
		"individuals", humanize.Comma(int64(len(t.Individuals))),
		"families", humanize.Comma(int64(len(t.Families))),
	)
	return nil
}

func (e *csvExporter) writeIndividuals(t *tree.Tree) error {
	path := filepath.Join(e.dir, "individuals.csv")
	f, err := os.Create(path)
	if err != nil {
		return CreateFileError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"id", "given", "surname", "suffix", "sex",
		"birth_date", "birth_place", "death_date", "death_place",
	}
	if err := w.Write(header); err != nil {
		return WriteError(path, err)
	}

	for _, ind := range t.AllIndividuals() {
		row := []string{
			ind.ID,
			ind.Name.Given,
			ind.Name.Surname,
			ind.Name.Suffix,
			ind.Sex,
			eventDate(ind.Birth), eventPlace(ind.Birth),
			eventDate(ind.Death), eventPlace(ind.Death),
		}
		if err := w.Write(row); err != nil {
			return WriteError(path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return WriteError(path, err)
	}
	return nil
}

func (e *csvExporter) writeFamilies(t *tree.Tree) error {
	path := filepath.Join(e.dir, "families.csv")
	f, err := os.Create(path)
	if err != nil {
		return CreateFileError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"id", "husband", "wife", "children",
		"marriage_date", "marriage_place", "divorce_date",
	}
	if err := w.Write(header); err != nil {
		return WriteError(path, err)
	}

	for _, fam := range t.AllFamilies() {
		row := []string{
			fam.ID,
			fam.Husband,
			fam.Wife,
			strconv.Itoa(len(fam.Children)),
			eventDate(fam.Marriage), eventPlace(fam.Marriage),
			eventDate(fam.Divorce),
		}
		if err := w.Write(row); err != nil {
			return WriteError(path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return WriteError(path, err)
	}
	return nil
}

func eventDate(ev *ged.Event) string {
	if ev == nil {
		return ""
	}
	return ev.Date
}

func eventPlace(ev *ged.Event) string {
	if ev == nil {
		return ""
	}
	return ev.Place
}
