// Package availability classifies venue calendar days as booked or free
// for read-only display. Bookings are inclusive [dateFrom, dateTo] ranges
// that may carry irrelevant time-of-day data.
package availability

import (
	"fmt"
	"time"

	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
)

// Month is a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a month in YYYY-MM form.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label formats the month for display, e.g. "March 2025".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month.String(), m.Year)
}

// Add moves the month by delta, rolling over year boundaries. time.Date
// normalizes out-of-range months, so December+1 lands in January of the
// next year.
func (m Month) Add(delta int) Month {
	t := time.Date(m.Year, m.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Days returns the number of days in the month, derived from date
// arithmetic so leap years come out right.
func (m Month) Days() int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of day 1 (Sunday = 0).
func (m Month) FirstWeekday() time.Weekday {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// Cell is one slot in a month grid. A leading placeholder has Day 0 and a
// zero Date; it aligns day 1 with its weekday column and is never booked.
type Cell struct {
	Day  int
	Date time.Time
}

// IsPlaceholder reports whether the cell is a leading empty slot.
func (c Cell) IsPlaceholder() bool {
	return c.Day == 0
}

// Cells yields the month grid: one placeholder per weekday slot before
// day 1, then a cell per day. The sequence is a pure function of the
// month and can be ranged over any number of times.
func (m Month) Cells() func(yield func(Cell) bool) {
	return func(yield func(Cell) bool) {
		for i := 0; i < int(m.FirstWeekday()); i++ {
			if !yield(Cell{}) {
				return
			}
		}
		for day := 1; day <= m.Days(); day++ {
			cell := Cell{
				Day:  day,
				Date: time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC),
			}
			if !yield(cell) {
				return
			}
		}
	}
}

// Grid materializes Cells into a slice.
func (m Month) Grid() []Cell {
	cells := make([]Cell, 0, int(m.FirstWeekday())+m.Days())
	m.Cells()(func(c Cell) bool {
		cells = append(cells, c)
		return true
	})
	return cells
}

// dayOf strips the time-of-day component.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsDayBooked reports whether date falls within [dateFrom, dateTo]
// inclusive of any booking, comparing whole calendar days only.
func IsDayBooked(date time.Time, bookings []noroff.Booking) bool {
	day := dayOf(date)
	for _, b := range bookings {
		from := dayOf(b.DateFrom)
		to := dayOf(b.DateTo)
		if !day.Before(from) && !day.After(to) {
			return true
		}
	}
	return false
}

// RangeOverlapsBookings reports whether any day of [from, to] inclusive
// is already booked. Used on the booking write path.
func RangeOverlapsBookings(from, to time.Time, bookings []noroff.Booking) bool {
	f1, t1 := dayOf(from), dayOf(to)
	for _, b := range bookings {
		f2, t2 := dayOf(b.DateFrom), dayOf(b.DateTo)
		if !t1.Before(f2) && !f1.After(t2) {
			return true
		}
	}
	return false
}

// Calendar is the displayed-month state of one calendar view.
type Calendar struct {
	displayed Month
}

// NewCalendar creates a calendar showing the given month.
func NewCalendar(m Month) *Calendar {
	return &Calendar{displayed: m}
}

// Displayed returns the shown month.
func (c *Calendar) Displayed() Month {
	return c.displayed
}

// SetDisplayedMonth replaces the shown month.
func (c *Calendar) SetDisplayedMonth(m Month) {
	c.displayed = m
}

// GoToAdjacentMonth moves the view one month forward (+1) or back (-1).
func (c *Calendar) GoToAdjacentMonth(direction int) Month {
	if direction > 0 {
		c.displayed = c.displayed.Add(1)
	} else if direction < 0 {
		c.displayed = c.displayed.Add(-1)
	}
	return c.displayed
}
