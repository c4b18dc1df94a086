// Package main provides the gedtree CLI application.
// gedtree parses GEDCOM genealogy files and answers queries over the
// resulting family tree.
package main

import (
	"github.com/gedtk/gedtree/cmd"
)

func main() {
	cmd.Execute()
}
