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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gedtk/gedtree/pkg/errcode"
	"github.com/gedtk/gedtree/pkg/ged"
	"github.com/gedtk/gedtree/pkg/geddate"
	"github.com/gedtk/gedtree/pkg/tree"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getShowCmd returns the show command.
func getShowCmd() *cobra.Command {
	var now string

	showCmd := &cobra.Command{
		Use:   "show FILE ID",
		Short: "Show one individual with relationships and events",
		Long: `Display an individual record: names, events, relatives up and down
one generation, and notes.

The --now flag sets the current date used for age calculation. It is
required to get ages for fictional calendars, where no wall clock
applies. The format is [CALENDAR:]YEAR[-MONTH[-DAY]]; the calendar
defaults to Gregorian.

Examples:
  gedtree show family.ged @I42@
  gedtree show dune.ged @I1@ --now AG:10191-6-10`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runShow(args[0], args[1], now)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	showCmd.Flags().StringVarP(
		&now, "now", "n", "",
		"current date for age calculation, [CALENDAR:]YEAR[-MONTH[-DAY]]",
	)

	return showCmd
}

func runShow(path, id, now string) error {
	var dctx geddate.Context
	if now != "" {
		d, err := parseNowFlag(now)
		if err != nil {
			return err
		}
		dctx.Set(d)
	}

	t, err := loadTree(context.Background(), path)
	if err != nil {
		return err
	}

	ind, ok := t.Individual(id)
	if !ok {
		return &gn.Error{
			Code: errcode.QueryIndividualNotFoundError,
			Msg: `<err>No individual with ID %s.</err>
   Use <em>'gedtree search'</em> to find valid IDs.`,
			Vars: []any{id},
			Err:  errors.New("individual not found"),
		}
	}

	printIndividual(t, ind, &dctx)
	return nil
}

// parseNowFlag parses [CALENDAR:]YEAR[-MONTH[-DAY]] into a Date.
func parseNowFlag(s string) (geddate.Date, error) {
	var res geddate.Date

	if cal, rest, ok := strings.Cut(s, ":"); ok {
		res.Calendar = strings.ToUpper(cal)
		s = rest
	}

	parts := strings.SplitN(s, "-", 3)
	fields := []*int{&res.Year, &res.Month, &res.Day}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return res, fmt.Errorf("invalid --now value %q", s)
		}
		*fields[i] = n
	}
	return res, nil
}

func printIndividual(t *tree.Tree, ind *ged.Individual, dctx *geddate.Context) {
	fmt.Printf("%s  %s\n", ind.ID, ind.Name.Full)
	if ind.Sex != "" {
		fmt.Printf("Sex:   %s\n", ind.Sex)
	}

	printEvent("Birth", ind.Birth)
	printEvent("Death", ind.Death)
	printEvent("Baptism", ind.Baptism)
	printEvent("First communion", ind.FirstCommunion)
	for _, ev := range ind.Graduations {
		printEvent("Graduation", ev)
	}
	for _, ev := range ind.Residences {
		printEvent("Residence", ev)
	}
	for _, ev := range ind.Objects {
		printObject(ev)
	}

	if birth := geddate.Parse(ind.BirthDate()); birth != nil {
		if age, ok := geddate.Age(birth, dctx); ok && ind.Death == nil {
			fmt.Printf("Age:   %d\n", age)
		}
	}

	printRelatives("Parents", t.Parents(ind.ID))
	printRelatives("Spouses", t.Spouses(ind.ID))
	printRelatives("Siblings", t.Siblings(ind.ID))
	printRelatives("Children", t.Children(ind.ID))

	for _, nv := range ind.Notes {
		printNote(t, nv)
	}
}

func printEvent(label string, ev *ged.Event) {
	if ev == nil {
		return
	}
	line := label + ":"
	if ev.Date != "" {
		line += " " + ev.Date
	}
	if ev.Place != "" {
		line += ", " + ev.Place
	}
	if ev.Type != "" {
		line += " (" + ev.Type + ")"
	}
	fmt.Println(line)
	if ev.Address != nil {
		fmt.Printf("  address: %s\n", formatAddress(ev.Address))
	}
}

func printObject(ev *ged.Event) {
	if ev == nil {
		return
	}
	line := "Media:"
	if ev.Title != "" {
		line += " " + ev.Title
	}
	if ev.File != "" {
		line += " " + ev.File
	}
	if ev.Format != "" {
		line += " (" + ev.Format + ")"
	}
	fmt.Println(line)
}

func formatAddress(a *ged.Address) string {
	var parts []string
	for _, p := range []string{a.Lines, a.City, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func printRelatives(label string, inds []*ged.Individual) {
	if len(inds) == 0 {
		return
	}
	fmt.Printf("%s:\n", label)
	for _, ind := range inds {
		fmt.Printf("  %s\n", formatIndividualLine(ind))
	}
}

func printNote(t *tree.Tree, nv ged.NoteValue) {
	if nv.IsRef() {
		if n, ok := t.Note(nv.Ref); ok {
			fmt.Printf("Note: %s\n", n.Text)
		}
		return
	}
	fmt.Printf("Note: %s\n", nv.Text)
}
