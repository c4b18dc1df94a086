package tree

import (
	"sort"

	"github.com/gedtk/gedtree/pkg/geddate"
)

// CalendarStats aggregates parsed years for one calendar tag.
// Earliest/latest values are zero when no date of that kind parsed.
type CalendarStats struct {
	Calendar string

	Births        int
	EarliestBirth int
	LatestBirth   int

	Deaths        int
	EarliestDeath int
	LatestDeath   int
}

// Stats are aggregate figures over a whole tree.
type Stats struct {
	Individuals int
	Families    int
	Notes       int
	Submitters  int

	Male    int
	Female  int
	Unknown int

	// Calendars is ordered by calendar tag, Gregorian first.
	Calendars []CalendarStats
}

// Stats derives aggregate statistics from the tree. Dates are parsed
// with pkg/geddate and grouped by calendar tag; unparseable dates are
// ignored rather than counted.
func (t *Tree) Stats() Stats {
	res := Stats{
		Individuals: len(t.Individuals),
		Families:    len(t.Families),
		Notes:       len(t.Notes),
		Submitters:  len(t.Submitters),
	}

	byCal := make(map[string]*CalendarStats)
	cal := func(tag string) *CalendarStats {
		cs, ok := byCal[tag]
		if !ok {
			cs = &CalendarStats{Calendar: tag}
			byCal[tag] = cs
		}
		return cs
	}

	for _, ind := range t.Individuals {
		switch ind.Sex {
		case "M":
			res.Male++
		case "F":
			res.Female++
		default:
			res.Unknown++
		}

		if d := geddate.Parse(ind.BirthDate()); d != nil {
			cs := cal(d.Calendar)
			cs.Births++
			if cs.EarliestBirth == 0 || d.Year < cs.EarliestBirth {
				cs.EarliestBirth = d.Year
			}
			if d.Year > cs.LatestBirth {
				cs.LatestBirth = d.Year
			}
		}
		if d := geddate.Parse(ind.DeathDate()); d != nil {
			cs := cal(d.Calendar)
			cs.Deaths++
			if cs.EarliestDeath == 0 || d.Year < cs.EarliestDeath {
				cs.EarliestDeath = d.Year
			}
			if d.Year > cs.LatestDeath {
				cs.LatestDeath = d.Year
			}
		}
	}

	for _, cs := range byCal {
		res.Calendars = append(res.Calendars, *cs)
	}
	sort.Slice(res.Calendars, func(i, j int) bool {
		a, b := res.Calendars[i].Calendar, res.Calendars[j].Calendar
		if a == geddate.Gregorian {
			return b != geddate.Gregorian
		}
		if b == geddate.Gregorian {
			return false
		}
		return a < b
	})

	return res
}
