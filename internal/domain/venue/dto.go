package venue

import "github.com/holidaze/holidaze-api/internal/pkg/noroff"

// MediaRequest is one image in a venue payload.
type MediaRequest struct {
	URL string `json:"url" validate:"required,url"`
	Alt string `json:"alt" validate:"max=120"`
}

// LocationRequest is the optional venue location.
type LocationRequest struct {
	Address   string   `json:"address" validate:"max=100"`
	City      string   `json:"city" validate:"max=50"`
	Zip       string   `json:"zip" validate:"max=10"`
	Country   string   `json:"country" validate:"max=50"`
	Continent string   `json:"continent" validate:"max=50"`
	Lat       *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng       *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
}

// AmenitiesRequest is the four amenity flags.
type AmenitiesRequest struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// CreateVenueRequest represents venue creation by a venue manager.
type CreateVenueRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=100"`
	Description string            `json:"description" validate:"required,min=1,max=2000"`
	Media       []MediaRequest    `json:"media" validate:"omitempty,max=8,dive"`
	Price       float64           `json:"price" validate:"gte=0"`
	MaxGuests   int               `json:"maxGuests" validate:"required,gte=1,lte=100"`
	Rating      float64           `json:"rating" validate:"gte=0,lte=5"`
	Meta        *AmenitiesRequest `json:"meta"`
	Location    *LocationRequest  `json:"location" validate:"omitempty"`
}

// UpdateVenueRequest represents a partial venue update.
type UpdateVenueRequest struct {
	Name        string            `json:"name" validate:"omitempty,min=1,max=100"`
	Description string            `json:"description" validate:"omitempty,min=1,max=2000"`
	Media       []MediaRequest    `json:"media" validate:"omitempty,max=8,dive"`
	Price       *float64          `json:"price" validate:"omitempty,gte=0"`
	MaxGuests   *int              `json:"maxGuests" validate:"omitempty,gte=1,lte=100"`
	Rating      *float64          `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Meta        *AmenitiesRequest `json:"meta"`
	Location    *LocationRequest  `json:"location" validate:"omitempty"`
}

func mediaPayload(media []MediaRequest) []noroff.Media {
	if len(media) == 0 {
		return nil
	}
	out := make([]noroff.Media, len(media))
	for i, m := range media {
		out[i] = noroff.Media{URL: m.URL, Alt: m.Alt}
	}
	return out
}

func metaPayload(meta *AmenitiesRequest) *noroff.Amenities {
	if meta == nil {
		return nil
	}
	return &noroff.Amenities{
		Wifi:      meta.Wifi,
		Parking:   meta.Parking,
		Breakfast: meta.Breakfast,
		Pets:      meta.Pets,
	}
}

func locationPayload(loc *LocationRequest) *noroff.Location {
	if loc == nil {
		return nil
	}
	return &noroff.Location{
		Address:   loc.Address,
		City:      loc.City,
		Zip:       loc.Zip,
		Country:   loc.Country,
		Continent: loc.Continent,
		Lat:       loc.Lat,
		Lng:       loc.Lng,
	}
}

// ToPayload converts a create request to the upstream payload.
func (r *CreateVenueRequest) ToPayload() noroff.VenuePayload {
	price := r.Price
	maxGuests := r.MaxGuests
	rating := r.Rating
	return noroff.VenuePayload{
		Name:        r.Name,
		Description: r.Description,
		Media:       mediaPayload(r.Media),
		Price:       &price,
		MaxGuests:   &maxGuests,
		Rating:      &rating,
		Meta:        metaPayload(r.Meta),
		Location:    locationPayload(r.Location),
	}
}

// ToPayload converts an update request to the upstream payload, sending
// only the fields that were provided.
func (r *UpdateVenueRequest) ToPayload() noroff.VenuePayload {
	return noroff.VenuePayload{
		Name:        r.Name,
		Description: r.Description,
		Media:       mediaPayload(r.Media),
		Price:       r.Price,
		MaxGuests:   r.MaxGuests,
		Rating:      r.Rating,
		Meta:        metaPayload(r.Meta),
		Location:    locationPayload(r.Location),
	}
}
