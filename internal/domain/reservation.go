package domain

// ReservationStatus tracks the single transition a reservation makes.
type ReservationStatus string

const (
	ReservationStatusUnpaid ReservationStatus = "unpaid"
	ReservationStatusPaid   ReservationStatus = "paid"
)

// Reservation is a claim by one identity on one pricing option of one event.
// Name and price are snapshots frozen at reservation time so later catalog
// edits cannot retroactively change sold tickets. TicketCode is set exactly
// when the status becomes paid; MarkPaid is the only way to get there.
type Reservation struct {
	ID                string            `json:"id"`
	HolderID          string            `json:"holderId"`
	HolderName        string            `json:"holderName"`
	PricingOptionID   string            `json:"pricingOptionId"`
	PricingOptionName string            `json:"pricingOptionName"`
	Price             float64           `json:"price"`
	Status            ReservationStatus `json:"status"`
	TicketCode        string            `json:"ticketCode,omitempty"`
}

func (r Reservation) Paid() bool {
	return r.Status == ReservationStatusPaid
}

// MarkPaid transitions the reservation from unpaid to paid, attaching the
// ticket payload. The transition is terminal: a paid reservation never
// reverts and cannot be re-marked.
func (r *Reservation) MarkPaid(ticketCode string) error {
	if r.Status == ReservationStatusPaid {
		return ErrAlreadyPaid
	}
	if ticketCode == "" {
		return ErrEmptyTicketCode
	}
	r.Status = ReservationStatusPaid
	r.TicketCode = ticketCode
	return nil
}
