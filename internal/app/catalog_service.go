package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ocandela/eventpass/internal/clock"
	"github.com/ocandela/eventpass/internal/domain"
	"github.com/ocandela/eventpass/internal/storage/blob"
	"github.com/ocandela/eventpass/internal/ticket"
)

// catalogKey is the fixed blob-store key the whole catalog serializes under.
const catalogKey = "events"

// CatalogService owns the event catalog: events in insertion order, each
// with its pricing tiers and reservation roster. Every mutation rewrites
// the full serialized catalog to the blob store; construction rehydrates
// from it, falling back to the seed dataset when the store is empty.
type CatalogService struct {
	mu      sync.Mutex
	events  []domain.Event
	store   blob.Store
	encoder ticket.Encoder
	clock   clock.Clock

	latency        time.Duration
	paymentLatency time.Duration
}

type CatalogOption func(*CatalogService)

// WithCatalogLatency adds a simulated delay before mutating operations.
func WithCatalogLatency(d time.Duration) CatalogOption {
	return func(s *CatalogService) {
		if d > 0 {
			s.latency = d
		}
	}
}

// WithPaymentLatency adds a (typically longer) delay before payment
// confirmation, standing in for payment processing.
func WithPaymentLatency(d time.Duration) CatalogOption {
	return func(s *CatalogService) {
		if d > 0 {
			s.paymentLatency = d
		}
	}
}

// NewCatalogService builds a catalog from the blob store contents, or from
// seedEvents when the store has no catalog yet (in which case the seed is
// persisted immediately so a later rehydrate sees the same data).
func NewCatalogService(ctx context.Context, store blob.Store, encoder ticket.Encoder, clk clock.Clock, seedEvents []domain.Event, opts ...CatalogOption) (*CatalogService, error) {
	svc := &CatalogService{
		store:   store,
		encoder: encoder,
		clock:   clk,
	}
	for _, opt := range opts {
		opt(svc)
	}

	raw, ok, err := store.Get(ctx, catalogKey)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &svc.events); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		return svc, nil
	}

	svc.events = copyEvents(seedEvents)
	if err := svc.persistLocked(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// persistLocked serializes the full catalog to the blob store. Callers must
// hold the mutex (or be constructing the service).
func (s *CatalogService) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.events)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := s.store.Set(ctx, catalogKey, string(raw)); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	return nil
}

// ListEvents returns the catalog in insertion order.
func (s *CatalogService) ListEvents(ctx context.Context) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyEvents(s.events)
}

func (s *CatalogService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id {
			return copyEvent(e), nil
		}
	}
	return domain.Event{}, domain.ErrEventNotFound
}

type PricingOptionInput struct {
	Name        string
	Price       float64
	Description string
}

type CreateEventInput struct {
	Title          string
	Description    string
	Date           string
	Time           string
	Location       string
	Image          string
	Organizer      string
	OrganizerID    string
	PricingOptions []PricingOptionInput
}

// CreateEvent validates the input, assigns fresh IDs, appends the event
// with an empty roster and persists. Organizer authorization is the
// boundary's concern; the catalog trusts the identity it is handed.
func (s *CatalogService) CreateEvent(ctx context.Context, in CreateEventInput) (domain.Event, error) {
	if in.Title == "" {
		return domain.Event{}, domain.ErrTitleRequired
	}
	if len(in.PricingOptions) == 0 {
		return domain.Event{}, domain.ErrPricingRequired
	}
	for _, p := range in.PricingOptions {
		if p.Price < 0 {
			return domain.Event{}, domain.ErrInvalidPrice
		}
	}

	if err := wait(ctx, s.latency); err != nil {
		return domain.Event{}, err
	}

	event := domain.Event{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Date:         in.Date,
		Time:         in.Time,
		Location:     in.Location,
		Image:        in.Image,
		Organizer:    in.Organizer,
		OrganizerID:  in.OrganizerID,
		Reservations: []domain.Reservation{},
	}
	for _, p := range in.PricingOptions {
		event.PricingOptions = append(event.PricingOptions, domain.PricingOption{
			ID:          uuid.NewString(),
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if err := s.persistLocked(ctx); err != nil {
		return domain.Event{}, err
	}
	return copyEvent(event), nil
}

// UpdateEvent replaces the stored event with the same ID wholesale.
func (s *CatalogService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if err := wait(ctx, s.latency); err != nil {
		return domain.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.events {
		if e.ID == event.ID {
			s.events[i] = copyEvent(event)
			if err := s.persistLocked(ctx); err != nil {
				return domain.Event{}, err
			}
			return copyEvent(event), nil
		}
	}
	return domain.Event{}, domain.ErrEventNotFound
}

// Reserve appends an unpaid reservation snapshotting the chosen pricing
// tier's name and price at call time. The catalog enforces the two policies
// the roster must never violate: one reservation per identity per event,
// and no organizer booking their own event.
func (s *CatalogService) Reserve(ctx context.Context, eventID, pricingOptionID string, holder domain.Identity) (domain.Reservation, error) {
	if err := wait(ctx, s.latency); err != nil {
		return domain.Reservation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(eventID)
	if idx < 0 {
		return domain.Reservation{}, domain.ErrEventNotFound
	}
	event := s.events[idx]

	option, ok := event.PricingOption(pricingOptionID)
	if !ok {
		return domain.Reservation{}, domain.ErrPricingOptionNotFound
	}
	if event.OrganizerID == holder.ID {
		return domain.Reservation{}, domain.ErrOrganizerOwnEvent
	}
	if _, ok := event.ReservationBy(holder.ID); ok {
		return domain.Reservation{}, domain.ErrDuplicateReservation
	}

	reservation := domain.Reservation{
		ID:                uuid.NewString(),
		HolderID:          holder.ID,
		HolderName:        holder.Name,
		PricingOptionID:   option.ID,
		PricingOptionName: option.Name,
		Price:             option.Price,
		Status:            domain.ReservationStatusUnpaid,
	}

	s.events[idx].Reservations = append(s.events[idx].Reservations, reservation)
	if err := s.persistLocked(ctx); err != nil {
		// Roll the roster back so a failed write never leaves phantom state.
		s.events[idx].Reservations = s.events[idx].Reservations[:len(s.events[idx].Reservations)-1]
		return domain.Reservation{}, err
	}
	return reservation, nil
}

// ConfirmPayment flips a reservation to paid, attaching a QR ticket payload
// derived from the event ID, reservation ID and current time. Confirming an
// already-paid reservation returns the stored payload unchanged. No payment
// instrument is validated; the delay stands in for processing.
func (s *CatalogService) ConfirmPayment(ctx context.Context, eventID, reservationID string) (string, error) {
	if err := wait(ctx, s.paymentLatency); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(eventID)
	if idx < 0 {
		return "", domain.ErrEventNotFound
	}

	resIdx := -1
	for i, r := range s.events[idx].Reservations {
		if r.ID == reservationID {
			resIdx = i
			break
		}
	}
	if resIdx < 0 {
		return "", domain.ErrReservationNotFound
	}

	reservation := s.events[idx].Reservations[resIdx]
	if reservation.Paid() {
		return reservation.TicketCode, nil
	}

	code := ticket.Code(eventID, reservationID, s.clock.Now())
	payload, err := s.encoder.Encode(code)
	if err != nil {
		return "", fmt.Errorf("render ticket: %w", err)
	}
	if err := reservation.MarkPaid(payload); err != nil {
		return "", err
	}

	s.events[idx].Reservations[resIdx] = reservation
	if err := s.persistLocked(ctx); err != nil {
		return "", err
	}
	return payload, nil
}

// EventsOwnedBy returns the events the identity organizes, in insertion
// order. Only meaningful for organizer identities.
func (s *CatalogService) EventsOwnedBy(ctx context.Context, identity domain.Identity) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var owned []domain.Event
	for _, e := range s.events {
		if e.OrganizerID == identity.ID {
			owned = append(owned, copyEvent(e))
		}
	}
	return owned
}

// EventReservation pairs an event with one reservation held on it.
type EventReservation struct {
	Event       domain.Event
	Reservation domain.Reservation
}

// ReservationsOf returns, for every event, the first reservation held by
// the identity. At most one reservation per event surfaces even if stored
// data contains duplicates.
func (s *CatalogService) ReservationsOf(ctx context.Context, identity domain.Identity) []EventReservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []EventReservation
	for _, e := range s.events {
		if r, ok := e.ReservationBy(identity.ID); ok {
			out = append(out, EventReservation{Event: copyEvent(e), Reservation: r})
		}
	}
	return out
}

func (s *CatalogService) indexOfLocked(eventID string) int {
	for i, e := range s.events {
		if e.ID == eventID {
			return i
		}
	}
	return -1
}

// copyEvent returns a value with its own slices, so callers can never
// mutate catalog state behind the mutex.
func copyEvent(e domain.Event) domain.Event {
	out := e
	if e.PricingOptions != nil {
		out.PricingOptions = append([]domain.PricingOption(nil), e.PricingOptions...)
	}
	if e.Reservations != nil {
		out.Reservations = append([]domain.Reservation(nil), e.Reservations...)
	}
	return out
}

func copyEvents(events []domain.Event) []domain.Event {
	out := make([]domain.Event, len(events))
	for i, e := range events {
		out[i] = copyEvent(e)
	}
	return out
}
