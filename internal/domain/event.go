package domain

// Event is an organizer-owned activity with pricing tiers and reservations.
// Events are never deleted; they are mutated only by wholesale replacement
// or by appending/updating reservations.
type Event struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Location       string          `json:"location"`
	Image          string          `json:"image"`
	Organizer      string          `json:"organizer"`
	OrganizerID    string          `json:"organizerId"`
	PricingOptions []PricingOption `json:"pricingOptions"`
	Reservations   []Reservation   `json:"reservations"`
}

// PricingOption is a named price tier attached to an event. Options are set
// at event creation and have no edit path afterwards.
type PricingOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// PricingOption returns the tier with the given ID.
func (e Event) PricingOption(id string) (PricingOption, bool) {
	for _, p := range e.PricingOptions {
		if p.ID == id {
			return p, true
		}
	}
	return PricingOption{}, false
}

// ReservationBy returns the first reservation held by the given identity.
func (e Event) ReservationBy(holderID string) (Reservation, bool) {
	for _, r := range e.Reservations {
		if r.HolderID == holderID {
			return r, true
		}
	}
	return Reservation{}, false
}
