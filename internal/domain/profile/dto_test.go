package profile

import "testing"

func TestToPayloadConvertsMedia(t *testing.T) {
	bio := "Hiker and host"
	manager := true
	req := UpdateProfileRequest{
		Bio:          &bio,
		Avatar:       &MediaRequest{URL: "https://img.example/a.jpg", Alt: "me"},
		VenueManager: &manager,
	}

	p := req.ToPayload()

	if p.Bio == nil || *p.Bio != bio {
		t.Errorf("bio = %v", p.Bio)
	}
	if p.Avatar == nil || p.Avatar.URL != "https://img.example/a.jpg" || p.Avatar.Alt != "me" {
		t.Errorf("avatar = %+v", p.Avatar)
	}
	if p.Banner != nil {
		t.Error("banner should stay unset")
	}
	if p.VenueManager == nil || !*p.VenueManager {
		t.Errorf("venueManager = %v", p.VenueManager)
	}
}
