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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getStatsCmd returns the stats command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Show aggregate statistics for a GEDCOM file",
		Long: `Parse a GEDCOM file and report aggregate figures: record counts,
sex distribution, and birth/death year ranges grouped by the calendar
the dates were recorded in.

Examples:
  gedtree stats family.ged`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runStats(args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return statsCmd
}

func runStats(path string) error {
	t, err := loadTree(context.Background(), path)
	if err != nil {
		return err
	}

	st := t.Stats()

	fmt.Printf("File:        %s\n", t.Path)
	if t.Header != nil && t.Header.Source != "" {
		fmt.Printf("Source:      %s\n", t.Header.Source)
	}
	fmt.Printf("Individuals: %s\n", humanize.Comma(int64(st.Individuals)))
	fmt.Printf("Families:    %s\n", humanize.Comma(int64(st.Families)))
	fmt.Printf("Notes:       %d\n", st.Notes)
	fmt.Printf("Submitters:  %d\n", st.Submitters)
	fmt.Printf("Sex:         %d male, %d female, %d unknown\n",
		st.Male, st.Female, st.Unknown)

	for _, cs := range st.Calendars {
		fmt.Printf("\nCalendar %s:\n", cs.Calendar)
		if cs.Births > 0 {
			fmt.Printf("  births: %d (%d-%d)\n",
				cs.Births, cs.EarliestBirth, cs.LatestBirth)
		}
		if cs.Deaths > 0 {
			fmt.Printf("  deaths: %d (%d-%d)\n",
				cs.Deaths, cs.EarliestDeath, cs.LatestDeath)
		}
	}

	return nil
}
