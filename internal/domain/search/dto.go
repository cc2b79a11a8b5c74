package search

// CreateSessionResponse returns the new session and its initial view.
type CreateSessionResponse struct {
	SessionID string   `json:"session_id"`
	Snapshot  Snapshot `json:"snapshot"`
}

// TermRequest carries the raw search input text.
type TermRequest struct {
	Term string `json:"term" validate:"max=100"`
}

// PriceRequest carries the price ceiling.
type PriceRequest struct {
	MaxPrice float64 `json:"max_price" validate:"gte=0"`
}

// PageRequest carries the requested page number. Out-of-range values are
// clamped, not rejected.
type PageRequest struct {
	Page int `json:"page" validate:"required"`
}

// PageResponse returns the view after a page change together with the
// scroll-to-top signal.
type PageResponse struct {
	Snapshot    Snapshot `json:"snapshot"`
	ScrollToTop bool     `json:"scroll_to_top"`
}
