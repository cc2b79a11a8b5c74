package availability

// DayView is one rendered grid cell. Placeholder cells have Day 0 and no
// date.
type DayView struct {
	Day    int    `json:"day"`
	Date   string `json:"date,omitempty"`
	Booked bool   `json:"booked"`
}

// MonthView is the rendered availability grid for a venue month.
type MonthView struct {
	VenueID  string    `json:"venue_id"`
	Month    string    `json:"month"`
	Label    string    `json:"label"`
	Previous string    `json:"previous"`
	Next     string    `json:"next"`
	Weekdays []string  `json:"weekdays"`
	Days     []DayView `json:"days"`
}

var weekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
