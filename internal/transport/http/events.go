package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ocandela/eventpass/internal/app"
	"github.com/ocandela/eventpass/internal/domain"
)

// EventCatalog is the full catalog surface the event tree needs.
type EventCatalog interface {
	ListEvents(ctx context.Context) []domain.Event
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	CreateEvent(ctx context.Context, in app.CreateEventInput) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	Reserve(ctx context.Context, eventID, pricingOptionID string, holder domain.Identity) (domain.Reservation, error)
	ConfirmPayment(ctx context.Context, eventID, reservationID string) (string, error)
}

// HandleEvents returns an HTTP handler for the events collection: listing is
// public, creation requires an organizer session. The created event is
// attributed to the current identity regardless of request contents.
func HandleEvents(svc EventCatalog, session SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, toEventResponses(svc.ListEvents(r.Context())))
			return
		case http.MethodPost:
			identity, ok := session.Current()
			if !ok {
				writeError(w, http.StatusUnauthorized, codeUnauthenticated, "not logged in")
				return
			}
			if !identity.IsOrganizer() {
				writeError(w, http.StatusForbidden, codeNotOrganizer, domain.ErrNotOrganizer.Error())
				return
			}

			var req createEventRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			in := app.CreateEventInput{
				Title:       req.Title,
				Description: req.Description,
				Date:        req.Date,
				Time:        req.Time,
				Location:    req.Location,
				Image:       req.Image,
				Organizer:   identity.Name,
				OrganizerID: identity.ID,
			}
			for _, p := range req.PricingOptions {
				in.PricingOptions = append(in.PricingOptions, app.PricingOptionInput{
					Name:        p.Name,
					Price:       p.Price,
					Description: p.Description,
				})
			}

			event, err := svc.CreateEvent(r.Context(), in)
			if err != nil {
				switch err {
				case domain.ErrTitleRequired:
					writeError(w, http.StatusBadRequest, codeTitleRequired, err.Error())
				case domain.ErrPricingRequired:
					writeError(w, http.StatusBadRequest, codePricingRequired, err.Error())
				case domain.ErrInvalidPrice:
					writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}
			writeJSON(w, http.StatusCreated, toEventResponse(event))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleEventTree routes everything under /events/{id}: event detail and
// update, reservations, and payment confirmation.
func HandleEventTree(svc EventCatalog, session SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) < 2 || parts[0] != "events" || parts[1] == "" {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		eventID := parts[1]

		switch {
		case len(parts) == 2:
			handleEventDetail(w, r, svc, session, eventID)
		case len(parts) == 3 && parts[2] == "reservations":
			handleReserve(w, r, svc, session, eventID)
		case len(parts) == 5 && parts[2] == "reservations" && parts[3] != "" && parts[4] == "payment":
			handleConfirmPayment(w, r, svc, session, eventID, parts[3])
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

type createEventRequest struct {
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Date           string                 `json:"date"`
	Time           string                 `json:"time"`
	Location       string                 `json:"location"`
	Image          string                 `json:"image"`
	PricingOptions []pricingOptionRequest `json:"pricing_options"`
}

type pricingOptionRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type updateEventRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Location       string `json:"location"`
	Image          string `json:"image"`
	PricingOptions []struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
	} `json:"pricing_options"`
	Reservations []struct {
		ID                string  `json:"id"`
		HolderID          string  `json:"holder_id"`
		HolderName        string  `json:"holder_name"`
		PricingOptionID   string  `json:"pricing_option_id"`
		PricingOptionName string  `json:"pricing_option_name"`
		Price             float64 `json:"price"`
		Status            string  `json:"status"`
		TicketCode        string  `json:"ticket_code"`
	} `json:"reservations"`
}

func (req updateEventRequest) toDomain() domain.Event {
	event := domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Image:       req.Image,
	}
	for _, p := range req.PricingOptions {
		event.PricingOptions = append(event.PricingOptions, domain.PricingOption{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
		})
	}
	for _, r := range req.Reservations {
		event.Reservations = append(event.Reservations, domain.Reservation{
			ID:                r.ID,
			HolderID:          r.HolderID,
			HolderName:        r.HolderName,
			PricingOptionID:   r.PricingOptionID,
			PricingOptionName: r.PricingOptionName,
			Price:             r.Price,
			Status:            domain.ReservationStatus(r.Status),
			TicketCode:        r.TicketCode,
		})
	}
	return event
}

func handleEventDetail(w http.ResponseWriter, r *http.Request, svc EventCatalog, session SessionReader, eventID string) {
	switch r.Method {
	case http.MethodGet:
		event, err := svc.GetEvent(r.Context(), eventID)
		if err != nil {
			switch err {
			case domain.ErrEventNotFound:
				writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(event))
	case http.MethodPut:
		identity, ok := session.Current()
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthenticated, "not logged in")
			return
		}

		stored, err := svc.GetEvent(r.Context(), eventID)
		if err != nil {
			switch err {
			case domain.ErrEventNotFound:
				writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		if stored.OrganizerID != identity.ID {
			writeError(w, http.StatusForbidden, codeForbidden, "only the organizer can update this event")
			return
		}

		var req updateEventRequest
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		event := req.toDomain()
		event.ID = eventID
		event.Organizer = stored.Organizer
		event.OrganizerID = stored.OrganizerID

		updated, err := svc.UpdateEvent(r.Context(), event)
		if err != nil {
			switch err {
			case domain.ErrEventNotFound:
				writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(updated))
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}
