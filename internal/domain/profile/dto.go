package profile

import "github.com/holidaze/holidaze-api/internal/pkg/noroff"

// MediaRequest sets an image with optional alt text.
type MediaRequest struct {
	URL string `json:"url" validate:"required,url"`
	Alt string `json:"alt" validate:"max=120"`
}

// UpdateProfileRequest changes the fields a profile owner may edit.
type UpdateProfileRequest struct {
	Bio          *string       `json:"bio,omitempty" validate:"omitempty,max=160"`
	Avatar       *MediaRequest `json:"avatar,omitempty"`
	Banner       *MediaRequest `json:"banner,omitempty"`
	VenueManager *bool         `json:"venue_manager,omitempty"`
}

// ToPayload converts the request to the upstream wire format.
func (r UpdateProfileRequest) ToPayload() noroff.ProfilePayload {
	p := noroff.ProfilePayload{
		Bio:          r.Bio,
		VenueManager: r.VenueManager,
	}
	if r.Avatar != nil {
		p.Avatar = &noroff.Media{URL: r.Avatar.URL, Alt: r.Avatar.Alt}
	}
	if r.Banner != nil {
		p.Banner = &noroff.Media{URL: r.Banner.URL, Alt: r.Banner.Alt}
	}
	return p
}
