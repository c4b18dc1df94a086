/*
Copyright © 2026

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gedtk/gedtree/internal/ioexport"
	"github.com/gedtk/gedtree/pkg/gedtree"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	exportCmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export a parsed tree to CSV or SQLite",
		Long: `Parse a GEDCOM file and write its individuals, families, children and
notes to an external format.

Formats:
  csv     individuals.csv and families.csv in the output directory
  sqlite  a single SQLite database file

Examples:
  gedtree export family.ged --format csv --output ./out
  gedtree export family.ged --format sqlite --output family.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(args[0], format, output)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringVarP(
		&format, "format", "f", "csv",
		"export format, 'csv' or 'sqlite'",
	)
	exportCmd.Flags().StringVarP(
		&output, "output", "o", ".",
		"output directory (csv) or database file (sqlite)",
	)

	return exportCmd
}

func runExport(path, format, output string) error {
	ctx := context.Background()

	var exp gedtree.Exporter
	switch format {
	case "csv":
		exp = ioexport.NewCSV(output)
	case "sqlite":
		if output == "." {
			output = "gedtree.db"
		}
		exp = ioexport.NewSQLite(output)
	default:
		gn.Warn("<warn>Unknown export format '%s'</warn>", format)
		err := fmt.Errorf("unknown export format %q", format)
		slog.Error("invalid flag value", "error", err)
		return err
	}

	t, err := loadTree(ctx, path)
	if err != nil {
		return err
	}

	if err := exp.Export(ctx, t); err != nil {
		return err
	}

	gn.Info("Exported <em>%s</em> to <em>%s</em>", path, output)
	return nil
}
