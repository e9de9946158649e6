package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boarddrc/drc/rules"
)

func msg(kind rules.Kind, head string) rules.Message {
	return rules.New(kind, rules.NewKey(head), "text-"+head, "")
}

func TestResolveSplitsApprovedFromRemaining(t *testing.T) {
	a := msg(rules.MissingDevice, "a")
	b := msg(rules.MissingConnection, "b")
	c := msg(rules.EmptyNetSegment, "c")
	approved := map[string]struct{}{
		a.ApprovalKey.Canonical(): {},
	}

	count, remaining := Resolve([]rules.Message{a, b, c}, approved)
	require.Equal(t, 1, count)
	require.Len(t, remaining, 2)
	assert.Equal(t, "text-b", remaining[0].Text)
	assert.Equal(t, "text-c", remaining[1].Text)
}

func TestResolveIgnoresStaleApprovals(t *testing.T) {
	a := msg(rules.MissingDevice, "a")
	approved := map[string]struct{}{
		"(StaleKind\n\"nonexistent\"\n)": {},
	}

	count, remaining := Resolve([]rules.Message{a}, approved)
	assert.Equal(t, 0, count)
	require.Len(t, remaining, 1)
}

func TestSortForPresentationOrdersBySeverityThenText(t *testing.T) {
	hint := msg(rules.DefaultDeviceMismatch, "z-hint")    // Hint
	warn := msg(rules.MissingDevice, "m-warning")          // Warning
	errB := msg(rules.MinimumWidthViolation, "b-error")    // Error
	errA := msg(rules.CopperBoardClearanceViolation, "a-error") // Error

	sorted := SortForPresentation([]rules.Message{hint, warn, errB, errA})
	require.Len(t, sorted, 4)
	assert.Equal(t, rules.Error, sorted[0].Severity)
	assert.Equal(t, rules.Error, sorted[1].Severity)
	assert.Equal(t, "text-a-error", sorted[0].Text)
	assert.Equal(t, "text-b-error", sorted[1].Text)
	assert.Equal(t, rules.Warning, sorted[2].Severity)
	assert.Equal(t, rules.Hint, sorted[3].Severity)
}

func TestSortForPresentationDoesNotMutateInput(t *testing.T) {
	a := msg(rules.MinimumWidthViolation, "a")
	b := msg(rules.DefaultDeviceMismatch, "b")
	input := []rules.Message{b, a}
	_ = SortForPresentation(input)
	assert.Equal(t, "text-b", input[0].Text)
}
