package geddate

import "time"

// Context supplies the notion of "now" for age calculations. It
// exists because dates from fictional calendars have no wall-clock
// "today": the caller (normally the CLI layer) owns a single Context
// and threads it into every call that needs a current date.
//
// The zero value is a usable Context with no override set.
type Context struct {
	now *Date
}

// Set installs a fictional current date. It replaces any previous
// override.
func (c *Context) Set(d Date) {
	d.Calendar = normalizeCalendar(d.Calendar)
	if d.Month == 0 {
		d.Month = 1
	}
	if d.Day == 0 {
		d.Day = 1
	}
	c.now = &d
}

// Get returns the current override, if any.
func (c *Context) Get() (Date, bool) {
	if c.now == nil {
		return Date{}, false
	}
	return *c.now, true
}

// Clear removes the override.
func (c *Context) Clear() {
	c.now = nil
}

// Now returns the current date in the given calendar. The override is
// used when its calendar tag matches. Without a matching override the
// wall clock serves the Gregorian calendar only; for any other
// calendar "now" is undefined and ok is false.
func (c *Context) Now(calendar string) (*Date, bool) {
	calendar = normalizeCalendar(calendar)

	if c.now != nil && c.now.Calendar == calendar {
		d := *c.now
		return &d, true
	}

	if calendar == Gregorian {
		t := time.Now()
		return &Date{
			Calendar: Gregorian,
			Year:     t.Year(),
			Month:    int(t.Month()),
			Day:      t.Day(),
		}, true
	}

	return nil, false
}

// Age computes the age in whole years of a person born at birth, as
// of the Context's current date for the birth calendar. ok is false
// when the birth date is nil or no current date exists for its
// calendar.
func Age(birth *Date, ctx *Context) (int, bool) {
	if birth == nil {
		return 0, false
	}
	now, ok := ctx.Now(birth.Calendar)
	if !ok {
		return 0, false
	}
	return YearsBetween(birth, now)
}

func normalizeCalendar(s string) string {
	if s == "" {
		return Gregorian
	}
	return s
}
