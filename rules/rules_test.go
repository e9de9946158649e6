package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalRoundTrip(t *testing.T) {
	key := KeyCopperCopperClearanceViolation(
		CopperFeatureRef{Layer: "TopCopper", Net: "GND", Obj: ObjectRef{Kind: "NetLine", UUID: "a-1"}},
		CopperFeatureRef{Layer: "TopCopper", Net: "VCC", Obj: ObjectRef{Kind: "NetLine", UUID: "b-2"}},
	)
	text := key.Canonical()
	parsed, err := ParseKey(text)
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestCanonicalQuotesOnlyWhitespaceOrParens(t *testing.T) {
	key := NewKey("Kind", "plain-atom", "has space", "has(paren")
	text := key.Canonical()
	assert.Contains(t, text, "plain-atom")
	assert.Contains(t, text, `"has space"`)
	assert.Contains(t, text, `"has(paren"`)

	parsed, err := ParseKey(text)
	require.NoError(t, err)
	assert.Equal(t, key.Children, parsed.Children)
}

func TestOrderedPairCanonicalizesSymmetricKeys(t *testing.T) {
	k1 := KeyCourtyardOverlap("dev-b", "dev-a")
	k2 := KeyCourtyardOverlap("dev-a", "dev-b")
	assert.Equal(t, k1.Canonical(), k2.Canonical())
}

func TestDrillDrillClearanceCanonicalizesRegardlessOfArgOrder(t *testing.T) {
	a := DrillRef{Owner: ObjectRef{Kind: "Via", UUID: "v1"}, HoleUUID: "h1"}
	b := DrillRef{Owner: ObjectRef{Kind: "Via", UUID: "v2"}, HoleUUID: "h2"}
	assert.Equal(t, KeyDrillDrillClearanceViolation(a, b).Canonical(), KeyDrillDrillClearanceViolation(b, a).Canonical())
}

func TestCopperCopperClearanceCanonicalizesRegardlessOfArgOrder(t *testing.T) {
	a := CopperFeatureRef{Layer: "TopCopper", Net: "GND", Obj: ObjectRef{Kind: "NetLine", UUID: "a-1"}}
	b := CopperFeatureRef{Layer: "TopCopper", Net: "VCC", Obj: ObjectRef{Kind: "Via", UUID: "b-2"}}
	assert.Equal(t, KeyCopperCopperClearanceViolation(a, b).Canonical(), KeyCopperCopperClearanceViolation(b, a).Canonical())
}

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, Error.Less(Warning))
	assert.True(t, Warning.Less(Hint))
	assert.False(t, Hint.Less(Error))
}

func TestConstantKeysIgnoreArgs(t *testing.T) {
	assert.Equal(t, "(MissingBoardOutline\n)", KeyMissingBoardOutline().Canonical())
}
