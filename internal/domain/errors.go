package domain

import "errors"

var (
	ErrIdentityNotFound      = errors.New("identity not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrPricingOptionNotFound = errors.New("pricing option not found")
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrTitleRequired         = errors.New("event title required")
	ErrPricingRequired       = errors.New("at least one pricing option required")
	ErrInvalidPrice          = errors.New("price must not be negative")
	ErrNotOrganizer          = errors.New("identity is not an organizer")
	ErrDuplicateReservation  = errors.New("identity already holds a reservation for this event")
	ErrOrganizerOwnEvent     = errors.New("organizer cannot reserve own event")
	ErrAlreadyPaid           = errors.New("reservation already paid")
	ErrEmptyTicketCode       = errors.New("ticket code must not be empty")
)
