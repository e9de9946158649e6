package rules

import "github.com/boarddrc/drc/polygon"

// Message is one RuleCheckMessage: a value type, cheaply cloned, immutable
// after construction (spec.md §9 — no shared-pointer message passing).
// Mutating the BoardModel after a run must not affect a Message already
// returned, so Locations holds copies of ring data, never model-owned
// slices.
type Message struct {
	Kind        Kind
	Severity    Severity
	Text        string
	Description string
	ApprovalKey Key
	Locations   []polygon.Path64
}

// New constructs a Message with the kind's default severity. Location
// rings are defensively copied so later model mutation cannot reach back
// into an emitted message.
func New(kind Kind, key Key, text, description string, locations ...polygon.Path64) Message {
	copied := make([]polygon.Path64, len(locations))
	for i, loc := range locations {
		ring := make(polygon.Path64, len(loc))
		copy(ring, loc)
		copied[i] = ring
	}
	return Message{
		Kind:        kind,
		Severity:    kind.DefaultSeverity(),
		Text:        text,
		Description: description,
		ApprovalKey: key,
		Locations:   copied,
	}
}
