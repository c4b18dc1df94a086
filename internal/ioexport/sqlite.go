package ioexport

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gedtk/gedtree/pkg/gedtree"
	"github.com/gedtk/gedtree/pkg/tree"
	_ "modernc.org/sqlite" // SQLite driver
)

type sqliteExporter struct {
	path string
}

// NewSQLite creates an Exporter writing the tree into a SQLite
// database file at path. An existing file is reused; tables are
// recreated so the export always reflects exactly one load.
func NewSQLite(path string) gedtree.Exporter {
	return &sqliteExporter{path: path}
}

const sqliteSchema = `
DROP TABLE IF EXISTS individuals;
DROP TABLE IF EXISTS families;
DROP TABLE IF EXISTS children;
DROP TABLE IF EXISTS notes;

CREATE TABLE individuals (
	id          TEXT PRIMARY KEY,
	given       TEXT,
	surname     TEXT,
	suffix      TEXT,
	sex         TEXT,
	birth_date  TEXT,
	birth_place TEXT,
	death_date  TEXT,
	death_place TEXT
);

CREATE TABLE families (
	id             TEXT PRIMARY KEY,
	husband        TEXT,
	wife           TEXT,
	marriage_date  TEXT,
	marriage_place TEXT,
	divorce_date   TEXT
);

CREATE TABLE children (
	family_id     TEXT NOT NULL,
	individual_id TEXT NOT NULL,
	position      INTEGER NOT NULL
);

CREATE TABLE notes (
	id   TEXT PRIMARY KEY,
	text TEXT
);
`

func (e *sqliteExporter) Export(ctx context.Context, t *tree.Tree) error {
	db, err := sql.Open("sqlite", e.path)
	if err != nil {
		return SQLiteOpenError(e.path, err)
	}
	defer db.Close()

	if err = db.PingContext(ctx); err != nil {
		return SQLiteOpenError(e.path, err)
	}

	if _, err = db.ExecContext(ctx, sqliteSchema); err != nil {
		return SQLiteExecError("create schema", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return SQLiteExecError("begin transaction", err)
	}
	defer tx.Rollback()

	if err = insertIndividuals(ctx, tx, t); err != nil {
		return err
	}
	if err = insertFamilies(ctx, tx, t); err != nil {
		return err
	}
	if err = insertNotes(ctx, tx, t); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return SQLiteExecError("commit", err)
	}

	slog.Info("Exported tree to SQLite",
		"path", e.path,
		"individuals", len(t.Individuals),
		"families", len(t.Families),
		"notes", len(t.Notes),
	)
	return nil
}

func insertIndividuals(ctx context.Context, tx *sql.Tx, t *tree.Tree) error {
	q := `INSERT INTO individuals
		(id, given, surname, suffix, sex,
		 birth_date, birth_place, death_date, death_place)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, ind := range t.AllIndividuals() {
		_, err := tx.ExecContext(ctx, q,
			ind.ID,
			ind.Name.Given, ind.Name.Surname, ind.Name.Suffix,
			ind.Sex,
			eventDate(ind.Birth), eventPlace(ind.Birth),
			eventDate(ind.Death), eventPlace(ind.Death),
		)
		if err != nil {
			return SQLiteExecError("insert individual "+ind.ID, err)
		}
	}
	return nil
}

func insertFamilies(ctx context.Context, tx *sql.Tx, t *tree.Tree) error {
	famQ := `INSERT INTO families
		(id, husband, wife, marriage_date, marriage_place, divorce_date)
		VALUES (?, ?, ?, ?, ?, ?)`
	childQ := `INSERT INTO children (family_id, individual_id, position)
		VALUES (?, ?, ?)`

	for _, fam := range t.AllFamilies() {
		_, err := tx.ExecContext(ctx, famQ,
			fam.ID, fam.Husband, fam.Wife,
			eventDate(fam.Marriage), eventPlace(fam.Marriage),
			eventDate(fam.Divorce),
		)
		if err != nil {
			return SQLiteExecError("insert family "+fam.ID, err)
		}
		for i, cid := range fam.Children {
			_, err = tx.ExecContext(ctx, childQ, fam.ID, cid, i)
			if err != nil {
				return SQLiteExecError("insert child link "+cid, err)
			}
		}
	}
	return nil
}

func insertNotes(ctx context.Context, tx *sql.Tx, t *tree.Tree) error {
	q := `INSERT INTO notes (id, text) VALUES (?, ?)`
	for id, n := range t.Notes {
		if _, err := tx.ExecContext(ctx, q, id, n.Text); err != nil {
			return SQLiteExecError("insert note "+id, err)
		}
	}
	return nil
}
