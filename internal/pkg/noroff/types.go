package noroff

import "time"

// Media represents an image with alt text.
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Location represents a venue location.
type Location struct {
	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`
	Zip       string   `json:"zip,omitempty"`
	Country   string   `json:"country,omitempty"`
	Continent string   `json:"continent,omitempty"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
}

// Amenities represents the four venue amenity flags.
type Amenities struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// Profile represents a Holidaze user profile.
type Profile struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Bio          string    `json:"bio,omitempty"`
	Avatar       *Media    `json:"avatar,omitempty"`
	Banner       *Media    `json:"banner,omitempty"`
	VenueManager bool      `json:"venueManager"`
	Venues       []Venue   `json:"venues,omitempty"`
	Bookings     []Booking `json:"bookings,omitempty"`
}

// Booking represents a venue reservation. DateFrom/DateTo are an inclusive
// calendar range; the upstream may attach time-of-day data to them.
type Booking struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Created  time.Time `json:"created,omitempty"`
	Updated  time.Time `json:"updated,omitempty"`
	Customer *Profile  `json:"customer,omitempty"`
	Venue    *Venue    `json:"venue,omitempty"`
}

// Venue represents a bookable listing.
type Venue struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Media       []Media   `json:"media"`
	Price       float64   `json:"price"`
	MaxGuests   int       `json:"maxGuests"`
	Rating      float64   `json:"rating"`
	Created     time.Time `json:"created,omitempty"`
	Updated     time.Time `json:"updated,omitempty"`
	Meta        Amenities `json:"meta"`
	Location    Location  `json:"location"`
	Owner       *Profile  `json:"owner,omitempty"`
	Bookings    []Booking `json:"bookings,omitempty"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register payload.
type Registration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	VenueManager bool   `json:"venueManager"`
}

// Account is the authenticated profile returned by login.
type Account struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Avatar       *Media `json:"avatar,omitempty"`
	Banner       *Media `json:"banner,omitempty"`
	VenueManager bool   `json:"venueManager"`
	AccessToken  string `json:"accessToken"`
}

// VenuePayload is the create/update venue payload.
type VenuePayload struct {
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Media       []Media    `json:"media,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	MaxGuests   *int       `json:"maxGuests,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	Meta        *Amenities `json:"meta,omitempty"`
	Location    *Location  `json:"location,omitempty"`
}

// BookingPayload is the create/update booking payload. Every field is
// optional so a partial update never sends a zero value upstream.
type BookingPayload struct {
	DateFrom *time.Time `json:"dateFrom,omitempty"`
	DateTo   *time.Time `json:"dateTo,omitempty"`
	Guests   *int       `json:"guests,omitempty"`
	VenueID  string     `json:"venueId,omitempty"`
}

// ProfilePayload is the update profile payload.
type ProfilePayload struct {
	Bio          *string `json:"bio,omitempty"`
	Avatar       *Media  `json:"avatar,omitempty"`
	Banner       *Media  `json:"banner,omitempty"`
	VenueManager *bool   `json:"venueManager,omitempty"`
}
