// Package approval resolves a run's messages against a project's stored
// set of approved keys and orders the remainder for presentation
// (spec.md §4.H, SPEC_FULL.md §4.H): resolution and sorting are two
// separate, explicitly-named steps so the engine's own emission order
// stays independently inspectable (testable property 1).
package approval

import (
	"sort"

	"github.com/boarddrc/drc/rules"
)

// Resolve partitions messages into an approved count and the remaining
// (non-approved) messages, matching each message's ApprovalKey.Canonical()
// text against the approved set. approved keys that match nothing in
// messages are ignored, per spec.md's "unordered set of S-expression
// nodes" persistence model — a stale approval is not an error.
func Resolve(messages []rules.Message, approved map[string]struct{}) (approvedCount int, remaining []rules.Message) {
	for _, m := range messages {
		if _, ok := approved[m.ApprovalKey.Canonical()]; ok {
			approvedCount++
			continue
		}
		remaining = append(remaining, m)
	}
	return approvedCount, remaining
}

// SortForPresentation orders messages severity-descending (Error first,
// then Warning, then Hint) and, within a severity, by message text
// ascending — a stable, deterministic order for CLI/UI display that is
// independent of the engine's own emission order.
func SortForPresentation(messages []rules.Message) []rules.Message {
	sorted := make([]rules.Message, len(messages))
	copy(sorted, messages)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Severity != b.Severity {
			return a.Severity.Less(b.Severity)
		}
		return a.Text < b.Text
	})
	return sorted
}
