// Package seed holds the fixed demo dataset: the identity list and the
// initial event catalog used when the blob store is empty.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/ocandela/eventpass/internal/domain"
)

//go:embed identities.json
var identitiesJSON []byte

//go:embed events.json
var eventsJSON []byte

// Identities decodes a fresh copy of the seed identity list.
func Identities() ([]domain.Identity, error) {
	var ids []domain.Identity
	if err := json.Unmarshal(identitiesJSON, &ids); err != nil {
		return nil, fmt.Errorf("decode seed identities: %w", err)
	}
	return ids, nil
}

// Events decodes a fresh copy of the seed event catalog.
func Events() ([]domain.Event, error) {
	var events []domain.Event
	if err := json.Unmarshal(eventsJSON, &events); err != nil {
		return nil, fmt.Errorf("decode seed events: %w", err)
	}
	return events, nil
}
