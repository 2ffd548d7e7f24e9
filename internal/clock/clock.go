package clock

import "time"

// Clock abstracts time so services stay deterministic under test. Ticket
// codes embed timestamps, which makes an injectable clock necessary.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now in UTC.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	at time.Time
}

// NewFixed returns a clock pinned to a single instant, for tests.
func NewFixed(t time.Time) Clock {
	return fixedClock{at: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.at
}
