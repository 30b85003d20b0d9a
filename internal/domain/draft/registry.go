package draft

import (
	"slices"
	"strings"

	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
)

// Participant is a registered player with their bans and drafted picks
type Participant struct {
	ID    string
	bans  []string
	picks []string
}

// Bans returns a copy of the participant's bans in the order they were made
func (p *Participant) Bans() []string {
	return slices.Clone(p.bans)
}

// Picks returns a copy of the participant's drafted civilizations
func (p *Participant) Picks() []string {
	return slices.Clone(p.picks)
}

// HasBanned reports whether the participant banned item
func (p *Participant) HasBanned(item string) bool {
	return slices.Contains(p.bans, item)
}

// Registry keeps participants in registration order and never holds more than capacity
type Registry struct {
	capacity     int
	participants []*Participant
	byID         map[string]*Participant
}

// NewRegistry creates an empty registry
func NewRegistry(capacity int) *Registry {
	return &Registry{
		capacity: capacity,
		byID:     make(map[string]*Participant),
	}
}

// Register adds a participant. Registering twice is a warning, not an error,
// and leaves the existing bans and picks alone.
func (r *Registry) Register(id string) Outcome {
	if strings.TrimSpace(id) == "" {
		return failure(apperr.CodeInvalidArgument, "Can't register; participant is required.")
	}
	if _, exists := r.byID[id]; exists {
		return warning(apperr.CodeAlreadyExists, "%s is already in the lobby.", id)
	}
	if len(r.participants) >= r.capacity {
		return failure(apperr.CodeCapacityExceeded, "Can't register %s; not enough room.", id)
	}

	p := &Participant{ID: id}
	r.participants = append(r.participants, p)
	r.byID[id] = p
	return success("%s joined the active lobby.", id)
}

// Unregister removes a participant
func (r *Registry) Unregister(id string) Outcome {
	if _, exists := r.byID[id]; !exists {
		return warning(apperr.CodeNotRegistered, "Can't unregister %s; not registered.", id)
	}

	delete(r.byID, id)
	r.participants = slices.DeleteFunc(r.participants, func(p *Participant) bool {
		return p.ID == id
	})
	return success("%s left the active lobby.", id)
}

// Get looks up a participant
func (r *Registry) Get(id string) (*Participant, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// List returns participant IDs in registration order
func (r *Registry) List() []string {
	ids := make([]string, len(r.participants))
	for i, p := range r.participants {
		ids[i] = p.ID
	}
	return ids
}

// Participants returns copies of every participant in registration order
func (r *Registry) Participants() []Participant {
	out := make([]Participant, len(r.participants))
	for i, p := range r.participants {
		out[i] = Participant{ID: p.ID, bans: p.Bans(), picks: p.Picks()}
	}
	return out
}

// Len returns the number of registered participants
func (r *Registry) Len() int {
	return len(r.participants)
}

// Capacity returns the maximum number of participants
func (r *Registry) Capacity() int {
	return r.capacity
}

func (r *Registry) each(fn func(p *Participant)) {
	for _, p := range r.participants {
		fn(p)
	}
}
