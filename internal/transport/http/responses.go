package http

import "github.com/ocandela/eventpass/internal/domain"

type identityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toIdentityResponse(id domain.Identity) identityResponse {
	return identityResponse{
		ID:    id.ID,
		Name:  id.Name,
		Email: id.Email,
		Role:  string(id.Role),
	}
}

type pricingOptionResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type reservationResponse struct {
	ID                string  `json:"id"`
	HolderID          string  `json:"holder_id"`
	HolderName        string  `json:"holder_name"`
	PricingOptionID   string  `json:"pricing_option_id"`
	PricingOptionName string  `json:"pricing_option_name"`
	Price             float64 `json:"price"`
	Status            string  `json:"status"`
	TicketCode        string  `json:"ticket_code,omitempty"`
}

func toReservationResponse(r domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:                r.ID,
		HolderID:          r.HolderID,
		HolderName:        r.HolderName,
		PricingOptionID:   r.PricingOptionID,
		PricingOptionName: r.PricingOptionName,
		Price:             r.Price,
		Status:            string(r.Status),
		TicketCode:        r.TicketCode,
	}
}

type eventResponse struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Date           string                  `json:"date"`
	Time           string                  `json:"time"`
	Location       string                  `json:"location"`
	Image          string                  `json:"image"`
	Organizer      string                  `json:"organizer"`
	OrganizerID    string                  `json:"organizer_id"`
	PricingOptions []pricingOptionResponse `json:"pricing_options"`
	Reservations   []reservationResponse   `json:"reservations"`
}

func toEventResponse(e domain.Event) eventResponse {
	resp := eventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Date:           e.Date,
		Time:           e.Time,
		Location:       e.Location,
		Image:          e.Image,
		Organizer:      e.Organizer,
		OrganizerID:    e.OrganizerID,
		PricingOptions: make([]pricingOptionResponse, 0, len(e.PricingOptions)),
		Reservations:   make([]reservationResponse, 0, len(e.Reservations)),
	}
	for _, p := range e.PricingOptions {
		resp.PricingOptions = append(resp.PricingOptions, pricingOptionResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
		})
	}
	for _, r := range e.Reservations {
		resp.Reservations = append(resp.Reservations, toReservationResponse(r))
	}
	return resp
}

func toEventResponses(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}
