package availability

import (
	"testing"
	"time"

	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDayBookedInclusiveRange(t *testing.T) {
	bookings := []noroff.Booking{
		{
			ID:       "b1",
			DateFrom: time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC),
			DateTo:   time.Date(2025, time.March, 13, 10, 0, 0, 0, time.UTC),
			Guests:   2,
		},
	}

	tests := []struct {
		day    time.Time
		booked bool
	}{
		{date(2025, time.March, 9), false},
		{date(2025, time.March, 10), true},
		{date(2025, time.March, 11), true},
		{date(2025, time.March, 12), true},
		{date(2025, time.March, 13), true},
		{date(2025, time.March, 14), false},
		// Time-of-day on the queried date must not matter either.
		{time.Date(2025, time.March, 13, 23, 59, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		if got := IsDayBooked(tt.day, bookings); got != tt.booked {
			t.Errorf("IsDayBooked(%s) = %v, want %v", tt.day.Format("2006-01-02 15:04"), got, tt.booked)
		}
	}
}

func TestIsDayBookedAnyBookingMatches(t *testing.T) {
	bookings := []noroff.Booking{
		{ID: "b1", DateFrom: date(2025, time.June, 1), DateTo: date(2025, time.June, 3)},
		{ID: "b2", DateFrom: date(2025, time.June, 20), DateTo: date(2025, time.June, 22)},
	}

	if !IsDayBooked(date(2025, time.June, 21), bookings) {
		t.Error("day inside second booking not classified as booked")
	}
	if IsDayBooked(date(2025, time.June, 10), bookings) {
		t.Error("free day between bookings classified as booked")
	}
	if IsDayBooked(date(2025, time.June, 10), nil) {
		t.Error("empty booking list classified a day as booked")
	}
}

func TestGridLeapYearDayCounts(t *testing.T) {
	feb2024, err := ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}
	feb2023, err := ParseMonth("2023-02")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}

	if got := feb2024.Days(); got != 29 {
		t.Errorf("2024-02 days = %d, want 29 (leap year)", got)
	}
	if got := feb2023.Days(); got != 28 {
		t.Errorf("2023-02 days = %d, want 28", got)
	}
}

func TestGridLeadingPlaceholders(t *testing.T) {
	// March 2025 starts on a Saturday: 6 leading placeholders.
	m, _ := ParseMonth("2025-03")
	grid := m.Grid()

	if len(grid) != 6+31 {
		t.Fatalf("grid length = %d, want 37", len(grid))
	}
	for i := 0; i < 6; i++ {
		if !grid[i].IsPlaceholder() {
			t.Errorf("cell %d should be a placeholder", i)
		}
	}
	if grid[6].Day != 1 {
		t.Errorf("first day cell = %d, want 1", grid[6].Day)
	}
	if grid[len(grid)-1].Day != 31 {
		t.Errorf("last day cell = %d, want 31", grid[len(grid)-1].Day)
	}
}

func TestCellsSequenceIsRestartable(t *testing.T) {
	m, _ := ParseMonth("2024-02")

	count := func() int {
		n := 0
		m.Cells()(func(Cell) bool {
			n++
			return true
		})
		return n
	}

	first := count()
	second := count()
	if first != second {
		t.Fatalf("sequence not restartable: %d then %d", first, second)
	}
}

func TestMonthRollover(t *testing.T) {
	tests := []struct {
		start string
		delta int
		want  string
	}{
		{"2025-12", 1, "2026-01"},
		{"2025-01", -1, "2024-12"},
		{"2025-06", 1, "2025-07"},
		{"2025-06", -1, "2025-05"},
	}

	for _, tt := range tests {
		m, err := ParseMonth(tt.start)
		if err != nil {
			t.Fatalf("ParseMonth(%s): %v", tt.start, err)
		}
		if got := m.Add(tt.delta).String(); got != tt.want {
			t.Errorf("%s %+d = %s, want %s", tt.start, tt.delta, got, tt.want)
		}
	}
}

func TestCalendarNavigation(t *testing.T) {
	start, _ := ParseMonth("2025-12")
	cal := NewCalendar(start)

	if got := cal.GoToAdjacentMonth(1); got.String() != "2026-01" {
		t.Errorf("next from 2025-12 = %s, want 2026-01", got)
	}
	if got := cal.GoToAdjacentMonth(-1); got.String() != "2025-12" {
		t.Errorf("prev from 2026-01 = %s, want 2025-12", got)
	}

	other, _ := ParseMonth("2024-02")
	cal.SetDisplayedMonth(other)
	if cal.Displayed().String() != "2024-02" {
		t.Errorf("SetDisplayedMonth did not replace month")
	}
}

func TestRangeOverlapsBookings(t *testing.T) {
	bookings := []noroff.Booking{
		{ID: "b1", DateFrom: date(2025, time.July, 10), DateTo: date(2025, time.July, 15)},
	}

	tests := []struct {
		from, to time.Time
		overlap  bool
	}{
		{date(2025, time.July, 1), date(2025, time.July, 9), false},
		{date(2025, time.July, 16), date(2025, time.July, 20), false},
		{date(2025, time.July, 9), date(2025, time.July, 10), true},
		{date(2025, time.July, 15), date(2025, time.July, 18), true},
		{date(2025, time.July, 11), date(2025, time.July, 12), true},
		{date(2025, time.July, 1), date(2025, time.July, 31), true},
	}

	for _, tt := range tests {
		if got := RangeOverlapsBookings(tt.from, tt.to, bookings); got != tt.overlap {
			t.Errorf("overlap(%s..%s) = %v, want %v",
				tt.from.Format("01-02"), tt.to.Format("01-02"), got, tt.overlap)
		}
	}
}

func TestRenderMonthMarksBookedCells(t *testing.T) {
	m, _ := ParseMonth("2025-03")
	bookings := []noroff.Booking{
		{
			ID:       "b1",
			DateFrom: time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC),
			DateTo:   time.Date(2025, time.March, 13, 11, 0, 0, 0, time.UTC),
		},
	}

	view := renderMonth("v1", m, bookings)

	if view.Previous != "2025-02" || view.Next != "2025-04" {
		t.Errorf("adjacent months wrong: prev=%s next=%s", view.Previous, view.Next)
	}

	booked := map[int]bool{}
	for _, d := range view.Days {
		if d.Day == 0 {
			if d.Booked {
				t.Error("placeholder cell marked booked")
			}
			continue
		}
		booked[d.Day] = d.Booked
	}

	for day := 10; day <= 13; day++ {
		if !booked[day] {
			t.Errorf("day %d should be booked", day)
		}
	}
	if booked[9] || booked[14] {
		t.Error("days outside the booking marked booked")
	}
}
