package http

import (
	"context"

	"github.com/ocandela/eventpass/internal/app"
	"github.com/ocandela/eventpass/internal/domain"
)

// fakeSession satisfies SessionStore/SessionReader with canned state.
type fakeSession struct {
	identity   *domain.Identity
	loginErr   error
	loggedOut  bool
	lastEmail  string
	lastSecret string
}

func (f *fakeSession) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	f.lastEmail = email
	f.lastSecret = password
	if f.loginErr != nil {
		return domain.Identity{}, f.loginErr
	}
	return *f.identity, nil
}

func (f *fakeSession) Logout() {
	f.loggedOut = true
	f.identity = nil
}

func (f *fakeSession) Current() (domain.Identity, bool) {
	if f.identity == nil {
		return domain.Identity{}, false
	}
	return *f.identity, true
}

// fakeCatalog satisfies EventCatalog plus the /me listers, returning canned
// values or errors per call.
type fakeCatalog struct {
	events []domain.Event

	createErr  error
	created    domain.Event
	updateErr  error
	reserveErr error
	reserved   domain.Reservation
	confirmErr error
	ticket     string

	lastReserveHolder domain.Identity
}

func (f *fakeCatalog) ListEvents(ctx context.Context) []domain.Event {
	return f.events
}

func (f *fakeCatalog) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Event{}, domain.ErrEventNotFound
}

func (f *fakeCatalog) CreateEvent(ctx context.Context, in app.CreateEventInput) (domain.Event, error) {
	if f.createErr != nil {
		return domain.Event{}, f.createErr
	}
	return f.created, nil
}

func (f *fakeCatalog) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if f.updateErr != nil {
		return domain.Event{}, f.updateErr
	}
	return event, nil
}

func (f *fakeCatalog) Reserve(ctx context.Context, eventID, pricingOptionID string, holder domain.Identity) (domain.Reservation, error) {
	f.lastReserveHolder = holder
	if f.reserveErr != nil {
		return domain.Reservation{}, f.reserveErr
	}
	return f.reserved, nil
}

func (f *fakeCatalog) ConfirmPayment(ctx context.Context, eventID, reservationID string) (string, error) {
	if f.confirmErr != nil {
		return "", f.confirmErr
	}
	return f.ticket, nil
}

func (f *fakeCatalog) EventsOwnedBy(ctx context.Context, identity domain.Identity) []domain.Event {
	var out []domain.Event
	for _, e := range f.events {
		if e.OrganizerID == identity.ID {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeCatalog) ReservationsOf(ctx context.Context, identity domain.Identity) []app.EventReservation {
	var out []app.EventReservation
	for _, e := range f.events {
		for _, r := range e.Reservations {
			if r.HolderID == identity.ID {
				out = append(out, app.EventReservation{Event: e, Reservation: r})
				break
			}
		}
	}
	return out
}

var (
	testOrganizer = domain.Identity{ID: "org-1", Name: "John Organizer", Email: "john@example.com", Role: domain.RoleOrganizer}
	testAttendee  = domain.Identity{ID: "att-1", Name: "Jane Attendee", Email: "jane@example.com", Role: domain.RoleAttendee}
)
