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

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getRootsCmd returns the roots command.
func getRootsCmd() *cobra.Command {
	var descendants bool

	rootsCmd := &cobra.Command{
		Use:   "roots FILE",
		Short: "List individuals with no known parents",
		Long: `List the roots of the family tree: individuals with no resolvable
parents. With --descendants, also count how many descendants each root
has within the configured traversal depth.

Examples:
  gedtree roots family.ged
  gedtree roots family.ged --descendants`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRoots(args[0], descendants)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	rootsCmd.Flags().BoolVarP(
		&descendants, "descendants", "d", false,
		"count descendants of each root",
	)

	return rootsCmd
}

func runRoots(path string, descendants bool) error {
	t, err := loadTree(context.Background(), path)
	if err != nil {
		return err
	}

	roots := t.Roots()
	if len(roots) == 0 {
		gn.Info("No root individuals found")
		return nil
	}

	for _, ind := range roots {
		line := formatIndividualLine(ind)
		if descendants {
			desc := t.Descendants(ind.ID, cfg.Traversal.MaxDepth)
			line += fmt.Sprintf("  [%d descendants]", len(desc))
		}
		fmt.Println(line)
	}
	return nil
}
