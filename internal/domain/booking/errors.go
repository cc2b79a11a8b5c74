package booking

import "errors"

var (
	ErrInvalidDateRange = errors.New("check-out must be on or after check-in")
	ErrTooManyGuests    = errors.New("guest count exceeds venue capacity")
	ErrDatesUnavailable = errors.New("venue is already booked for the selected dates")
	ErrBookingNotFound  = errors.New("booking not found")
)
