package app

import (
	"context"
	"testing"
	"time"

	"github.com/ocandela/eventpass/internal/domain"
)

var testIdentities = []domain.Identity{
	{ID: "1", Name: "John Organizer", Email: "john@example.com", Role: domain.RoleOrganizer},
	{ID: "2", Name: "Jane Attendee", Email: "jane@example.com", Role: domain.RoleAttendee},
}

func TestSessionService_Login(t *testing.T) {
	t.Parallel()

	t.Run("matching email succeeds with any password", func(t *testing.T) {
		svc := NewSessionService(testIdentities)

		id, err := svc.Login(context.Background(), "jane@example.com", "anything")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if id.Name != "Jane Attendee" || id.Role != domain.RoleAttendee {
			t.Fatalf("unexpected identity %+v", id)
		}
		if !svc.IsAuthenticated() {
			t.Fatalf("expected authenticated session")
		}
	})

	t.Run("empty password also succeeds", func(t *testing.T) {
		// Passwords are never checked in this demo; this is expected
		// behavior, not a bug.
		svc := NewSessionService(testIdentities)

		if _, err := svc.Login(context.Background(), "jane@example.com", ""); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("unknown email leaves session unset", func(t *testing.T) {
		svc := NewSessionService(testIdentities)

		_, err := svc.Login(context.Background(), "nobody@x.com", "x")
		if err != domain.ErrIdentityNotFound {
			t.Fatalf("expected ErrIdentityNotFound, got %v", err)
		}
		if svc.IsAuthenticated() {
			t.Fatalf("expected no current identity after failed login")
		}
	})

	t.Run("failed login keeps previous identity", func(t *testing.T) {
		svc := NewSessionService(testIdentities)

		if _, err := svc.Login(context.Background(), "john@example.com", "pw"); err != nil {
			t.Fatalf("login: %v", err)
		}
		if _, err := svc.Login(context.Background(), "nobody@x.com", "pw"); err != domain.ErrIdentityNotFound {
			t.Fatalf("expected ErrIdentityNotFound, got %v", err)
		}
		current, ok := svc.Current()
		if !ok || current.ID != "1" {
			t.Fatalf("expected john to remain current, got %+v ok=%v", current, ok)
		}
	})

	t.Run("cancelled context aborts simulated delay", func(t *testing.T) {
		svc := NewSessionService(testIdentities, WithLoginLatency(time.Minute))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := svc.Login(ctx, "jane@example.com", "pw"); err != context.Canceled {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestSessionService_Logout(t *testing.T) {
	t.Parallel()

	svc := NewSessionService(testIdentities)
	if _, err := svc.Login(context.Background(), "john@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !svc.IsOrganizer() {
		t.Fatalf("expected organizer session")
	}

	svc.Logout()

	if svc.IsAuthenticated() {
		t.Fatalf("expected cleared session")
	}
	if svc.IsOrganizer() {
		t.Fatalf("expected IsOrganizer false after logout")
	}
	// Logging out twice is harmless.
	svc.Logout()
}
