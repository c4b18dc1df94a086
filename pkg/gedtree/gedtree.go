// Package gedtree declares the top-level interfaces of the
// application. Implementations live in internal/io* packages; pure
// domain logic lives in the other pkg/ packages.
package gedtree

import (
	"context"

	"github.com/gedtk/gedtree/pkg/tree"
)

var (
	// Version and Build are set by build flags.
	Version = "dev"
	Build   = "unknown"
)

// Loader parses one GEDCOM source file into a Tree.
//
// The only fatal condition is inability to read or decode the source
// bytes. Malformed lines inside a readable file are warned about and
// skipped; missing cross-references are kept as-is and resolve to
// "not found" at query time.
type Loader interface {
	// Load parses the file at path and returns a freshly built tree.
	// Calling Load again for the same path re-parses the source and
	// returns a brand-new Tree with a new LoadID; the previous tree
	// is never mutated.
	Load(ctx context.Context, path string) (*tree.Tree, error)
}

// Exporter writes a read-only view of a tree to an external format
// (CSV files or a SQLite database).
type Exporter interface {
	Export(ctx context.Context, t *tree.Tree) error
}
