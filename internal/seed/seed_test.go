package seed

import (
	"testing"

	"github.com/ocandela/eventpass/internal/domain"
)

func TestIdentities(t *testing.T) {
	t.Parallel()

	ids, err := Identities()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 seed identities, got %d", len(ids))
	}
	if ids[0].Role != domain.RoleOrganizer {
		t.Fatalf("expected first identity to be an organizer, got %s", ids[0].Role)
	}
	if ids[1].Email != "jane@example.com" {
		t.Fatalf("expected jane@example.com, got %s", ids[1].Email)
	}
}

func TestEvents(t *testing.T) {
	t.Parallel()

	events, err := Events()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 seed events, got %d", len(events))
	}
	for _, e := range events {
		if len(e.PricingOptions) == 0 {
			t.Fatalf("event %s has no pricing options", e.ID)
		}
		if len(e.Reservations) != 0 {
			t.Fatalf("event %s should seed with no reservations", e.ID)
		}
		if e.OrganizerID == "" {
			t.Fatalf("event %s has no organizer id", e.ID)
		}
	}
}

func TestEventsReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	first, err := Events()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	first[0].Title = "mutated"

	second, err := Events()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if second[0].Title == "mutated" {
		t.Fatalf("seed data should not be shared between calls")
	}
}
