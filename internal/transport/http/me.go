package http

import (
	"context"
	"net/http"

	"github.com/ocandela/eventpass/internal/app"
	"github.com/ocandela/eventpass/internal/domain"
)

// OwnedEventsLister is the minimal interface for the organizer dashboard.
type OwnedEventsLister interface {
	EventsOwnedBy(ctx context.Context, identity domain.Identity) []domain.Event
}

// ReservationsLister is the minimal interface for the my-tickets view.
type ReservationsLister interface {
	ReservationsOf(ctx context.Context, identity domain.Identity) []app.EventReservation
}

// HandleMyEvents returns the events the current identity organizes, with
// their full attendee rosters.
func HandleMyEvents(svc OwnedEventsLister, session SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		identity, ok := session.Current()
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthenticated, "not logged in")
			return
		}
		if !identity.IsOrganizer() {
			writeError(w, http.StatusForbidden, codeNotOrganizer, domain.ErrNotOrganizer.Error())
			return
		}
		writeJSON(w, http.StatusOK, toEventResponses(svc.EventsOwnedBy(r.Context(), identity)))
	}
}

// HandleMyReservations returns the current identity's tickets: one
// event/reservation pair per reserved event.
func HandleMyReservations(svc ReservationsLister, session SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		identity, ok := session.Current()
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthenticated, "not logged in")
			return
		}

		rsvps := svc.ReservationsOf(r.Context(), identity)
		resp := make([]rsvpResponse, 0, len(rsvps))
		for _, rv := range rsvps {
			resp = append(resp, rsvpResponse{
				Event:       toEventResponse(rv.Event),
				Reservation: toReservationResponse(rv.Reservation),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type rsvpResponse struct {
	Event       eventResponse       `json:"event"`
	Reservation reservationResponse `json:"reservation"`
}
