// README: Public-holiday calendar with fixed-date and recurring entries.
package holiday

import "time"

// Holiday is a public holiday carrying its own surcharge amount in FJD
// minor units. Exactly one of Date (fixed, "2006-01-02") or MonthDay
// (recurring, "01-02") is set.
type Holiday struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date,omitempty"`
	MonthDay  string `json:"month_day,omitempty"`
	Surcharge int64  `json:"surcharge"`
}

// Calendar answers holiday lookups. Built once at startup, read-only after.
type Calendar struct {
	fixed     map[string]Holiday // keyed by "2006-01-02"
	recurring map[string]Holiday // keyed by "01-02"
}

func NewCalendar(holidays []Holiday) *Calendar {
	c := &Calendar{
		fixed:     make(map[string]Holiday),
		recurring: make(map[string]Holiday),
	}
	for _, h := range holidays {
		if h.Date != "" {
			c.fixed[h.Date] = h
		} else if h.MonthDay != "" {
			c.recurring[h.MonthDay] = h
		}
	}
	return c
}

// Lookup returns the holiday in effect on the date, if any. A fixed-date
// entry wins over a recurring entry on the same day.
func (c *Calendar) Lookup(t time.Time) (Holiday, bool) {
	if h, ok := c.fixed[t.Format("2006-01-02")]; ok {
		return h, true
	}
	h, ok := c.recurring[t.Format("01-02")]
	return h, ok
}

// IsPublicHoliday reports whether the date is a public holiday.
func (c *Calendar) IsPublicHoliday(t time.Time) bool {
	_, ok := c.Lookup(t)
	return ok
}
