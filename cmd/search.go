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

	"github.com/gedtk/gedtree/pkg/ged"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getSearchCmd returns the search command.
func getSearchCmd() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search FILE QUERY",
		Short: "Find individuals by name",
		Long: `Search individuals whose full, given or surname contains the query,
case-insensitively.

Examples:
  gedtree search family.ged smith
  gedtree search family.ged "von Trapp"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSearch(args[0], args[1])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return searchCmd
}

func runSearch(path, query string) error {
	t, err := loadTree(context.Background(), path)
	if err != nil {
		return err
	}

	matches := t.SearchIndividuals(query)
	if len(matches) == 0 {
		gn.Info("No individuals match <em>%s</em>", query)
		return nil
	}

	for _, ind := range matches {
		fmt.Println(formatIndividualLine(ind))
	}
	return nil
}

func formatIndividualLine(ind *ged.Individual) string {
	res := fmt.Sprintf("%s  %s", ind.ID, ind.Name.Full)
	birth, death := ind.BirthDate(), ind.DeathDate()
	if birth != "" || death != "" {
		res += fmt.Sprintf("  (%s - %s)", birth, death)
	}
	return res
}
