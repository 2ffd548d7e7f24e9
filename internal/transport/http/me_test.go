package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ocandela/eventpass/internal/domain"
)

func TestHandleMyEvents(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{events: []domain.Event{
		{ID: "event-1", Title: "Owned", OrganizerID: testOrganizer.ID},
		{ID: "event-2", Title: "Someone else's", OrganizerID: "other"},
	}}

	t.Run("returns only owned events", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me/events", nil)
		rec := httptest.NewRecorder()

		HandleMyEvents(catalog, &fakeSession{identity: &testOrganizer}).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var resp []eventResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp) != 1 || resp[0].ID != "event-1" {
			t.Fatalf("expected only owned event, got %+v", resp)
		}
	})

	t.Run("attendee forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me/events", nil)
		rec := httptest.NewRecorder()

		HandleMyEvents(catalog, &fakeSession{identity: &testAttendee}).ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected status 403, got %d", rec.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me/events", nil)
		rec := httptest.NewRecorder()

		HandleMyEvents(catalog, &fakeSession{}).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})
}

func TestHandleMyReservations(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{events: []domain.Event{
		{
			ID:    "event-1",
			Title: "Reserved",
			Reservations: []domain.Reservation{
				{ID: "res-1", HolderID: testAttendee.ID, Status: domain.ReservationStatusUnpaid},
			},
		},
		{ID: "event-2", Title: "Not reserved", Reservations: []domain.Reservation{}},
	}}

	t.Run("returns event and reservation pairs", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me/reservations", nil)
		rec := httptest.NewRecorder()

		HandleMyReservations(catalog, &fakeSession{identity: &testAttendee}).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var resp []rsvpResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp) != 1 {
			t.Fatalf("expected one rsvp, got %d", len(resp))
		}
		if resp[0].Event.ID != "event-1" || resp[0].Reservation.ID != "res-1" {
			t.Fatalf("unexpected rsvp %+v", resp[0])
		}
	})

	t.Run("empty list for identity without reservations", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me/reservations", nil)
		rec := httptest.NewRecorder()

		HandleMyReservations(catalog, &fakeSession{identity: &testOrganizer}).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if got := rec.Body.String(); got != "[]\n" {
			t.Fatalf("expected empty JSON array, got %q", got)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me/reservations", nil)
		rec := httptest.NewRecorder()

		HandleMyReservations(catalog, &fakeSession{}).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})
}
