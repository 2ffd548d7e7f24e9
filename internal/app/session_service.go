package app

import (
	"context"
	"sync"
	"time"

	"github.com/ocandela/eventpass/internal/domain"
)

// SessionService resolves credentials against a fixed identity list and
// holds at most one current identity. This is a demo stub, not an auth
// system: the password is never checked, any value succeeds when the email
// matches a seeded identity.
type SessionService struct {
	mu         sync.Mutex
	identities []domain.Identity
	current    *domain.Identity
	latency    time.Duration
}

type SessionOption func(*SessionService)

// WithLoginLatency adds a simulated network delay before login resolves.
func WithLoginLatency(d time.Duration) SessionOption {
	return func(s *SessionService) {
		if d > 0 {
			s.latency = d
		}
	}
}

func NewSessionService(identities []domain.Identity, opts ...SessionOption) *SessionService {
	svc := &SessionService{
		identities: identities,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Login looks up an identity by exact email match and makes it current.
// The password is accepted unconditionally. On a miss the current identity
// is left untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	if err := wait(ctx, s.latency); err != nil {
		return domain.Identity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.identities {
		if id.Email == email {
			current := id
			s.current = &current
			return id, nil
		}
	}
	return domain.Identity{}, domain.ErrIdentityNotFound
}

// Logout clears the current identity. It has no failure modes.
func (s *SessionService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns the authenticated identity, if any.
func (s *SessionService) Current() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.Identity{}, false
	}
	return *s.current, true
}

func (s *SessionService) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

func (s *SessionService) IsOrganizer() bool {
	current, ok := s.Current()
	return ok && current.IsOrganizer()
}
