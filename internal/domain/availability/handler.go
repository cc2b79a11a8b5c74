package availability

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/holidaze/holidaze-api/internal/domain/venue"
	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
	"github.com/holidaze/holidaze-api/internal/pkg/response"
)

// VenueGetter fetches a venue including its bookings.
type VenueGetter interface {
	GetByID(ctx context.Context, id string) (*noroff.Venue, error)
}

// Handler handles availability HTTP requests.
type Handler struct {
	venues VenueGetter
}

// NewHandler creates an availability handler.
func NewHandler(venues VenueGetter) *Handler {
	return &Handler{venues: venues}
}

// GetMonth handles GET /api/v1/venues/{id}/availability?month=2025-03
// Defaults to the current month when no month is given.
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	month := MonthOf(time.Now())
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := ParseMonth(raw)
		if err != nil {
			response.BadRequest(w, "Month must be in YYYY-MM format")
			return
		}
		month = parsed
	}

	v, err := h.venues.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, venue.ErrVenueNotFound) {
			response.NotFound(w, "Venue not found")
			return
		}
		log.Error().Err(err).Str("venue_id", id).Msg("availability fetch failed")
		response.BadGateway(w, "Could not load venue bookings")
		return
	}

	response.OK(w, renderMonth(id, month, v.Bookings))
}

// renderMonth applies per-day booked classification to the month grid.
func renderMonth(venueID string, m Month, bookings []noroff.Booking) MonthView {
	grid := m.Grid()
	days := make([]DayView, len(grid))
	for i, cell := range grid {
		if cell.IsPlaceholder() {
			days[i] = DayView{}
			continue
		}
		days[i] = DayView{
			Day:    cell.Day,
			Date:   cell.Date.Format("2006-01-02"),
			Booked: IsDayBooked(cell.Date, bookings),
		}
	}

	return MonthView{
		VenueID:  venueID,
		Month:    m.String(),
		Label:    m.Label(),
		Previous: m.Add(-1).String(),
		Next:     m.Add(1).String(),
		Weekdays: weekdayHeaders,
		Days:     days,
	}
}
