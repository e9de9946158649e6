// Package layer enumerates the board's layer stack and the mirroring
// relationship top↔bottom copper, mask, paste, silkscreen, courtyard,
// documentation, and placement layers share (spec.md §4.E).
package layer

import (
	"fmt"
	"strconv"
	"strings"
)

// Layer identifies one layer of the board stack-up.
type Layer struct {
	kind  Kind
	inner int // 1-based index into the inner copper stack; 0 for non-inner layers
}

// Kind is the category of a Layer, independent of which copper index (if
// any) it carries.
type Kind uint8

const (
	TopCopper Kind = iota
	InnerCopper
	BottomCopper
	TopStopMask
	BottomStopMask
	TopSolderPaste
	BottomSolderPaste
	TopSilkscreen
	BottomSilkscreen
	TopCourtyard
	BottomCourtyard
	TopDocumentation
	BottomDocumentation
	TopPlacement
	BottomPlacement
	BoardOutline
)

// New constructs a non-inner-copper layer of the given kind. Calling New
// with InnerCopper panics; use InnerCopperLayer instead — this mirrors the
// "range check on construction" newtype contract from spec.md §9 applied to
// an enum rather than a numeric wrapper.
func New(kind Kind) Layer {
	if kind == InnerCopper {
		panic("layer: use InnerCopperLayer for inner copper layers")
	}
	return Layer{kind: kind}
}

// InnerCopperLayer returns the i-th inner copper layer, 1-based.
func InnerCopperLayer(i int) Layer {
	if i < 1 {
		panic("layer: inner copper index must be >= 1")
	}
	return Layer{kind: InnerCopper, inner: i}
}

// Kind reports the layer's category.
func (l Layer) Kind() Kind { return l.kind }

// InnerIndex returns the 1-based inner copper index, or 0 if l is not an
// inner copper layer.
func (l Layer) InnerIndex() int { return l.inner }

// IsCopper reports whether l carries conductive copper.
func (l Layer) IsCopper() bool {
	switch l.kind {
	case TopCopper, InnerCopper, BottomCopper:
		return true
	default:
		return false
	}
}

// IsStopMask reports whether l is a stop-mask layer.
func (l Layer) IsStopMask() bool {
	return l.kind == TopStopMask || l.kind == BottomStopMask
}

// IsInnerCopper reports whether l is specifically inner copper layer i.
func (l Layer) IsInnerCopper(i int) bool {
	return l.kind == InnerCopper && l.inner == i
}

// IsCourtyard reports whether l is a courtyard (mechanical keep-out) layer.
func (l Layer) IsCourtyard() bool {
	return l.kind == TopCourtyard || l.kind == BottomCourtyard
}

// IsBoardOutline reports whether l is the invariant board-outline layer.
func (l Layer) IsBoardOutline() bool { return l.kind == BoardOutline }

// Equal reports whether two layers identify the same physical layer.
func (l Layer) Equal(o Layer) bool { return l.kind == o.kind && l.inner == o.inner }

// Mirror maps a top layer to its bottom counterpart and vice versa. Inner
// copper and the board outline are invariant under mirroring.
func (l Layer) Mirror() Layer {
	switch l.kind {
	case TopCopper:
		return Layer{kind: BottomCopper}
	case BottomCopper:
		return Layer{kind: TopCopper}
	case TopStopMask:
		return Layer{kind: BottomStopMask}
	case BottomStopMask:
		return Layer{kind: TopStopMask}
	case TopSolderPaste:
		return Layer{kind: BottomSolderPaste}
	case BottomSolderPaste:
		return Layer{kind: TopSolderPaste}
	case TopSilkscreen:
		return Layer{kind: BottomSilkscreen}
	case BottomSilkscreen:
		return Layer{kind: TopSilkscreen}
	case TopCourtyard:
		return Layer{kind: BottomCourtyard}
	case BottomCourtyard:
		return Layer{kind: TopCourtyard}
	case TopDocumentation:
		return Layer{kind: BottomDocumentation}
	case BottomDocumentation:
		return Layer{kind: TopDocumentation}
	case TopPlacement:
		return Layer{kind: BottomPlacement}
	case BottomPlacement:
		return Layer{kind: TopPlacement}
	default:
		return l // InnerCopper and BoardOutline are invariant
	}
}

// String renders a stable, human-readable identity for logging and test
// failure messages.
func (l Layer) String() string {
	if l.kind == InnerCopper {
		return fmt.Sprintf("InnerCopper(%d)", l.inner)
	}
	names := [...]string{
		"TopCopper", "InnerCopper", "BottomCopper",
		"TopStopMask", "BottomStopMask",
		"TopSolderPaste", "BottomSolderPaste",
		"TopSilkscreen", "BottomSilkscreen",
		"TopCourtyard", "BottomCourtyard",
		"TopDocumentation", "BottomDocumentation",
		"TopPlacement", "BottomPlacement",
		"BoardOutline",
	}
	if int(l.kind) < len(names) {
		return names[l.kind]
	}
	return "Unknown"
}

// Parse is the inverse of String, accepting "InnerCopper(N)" for inner
// copper layers. Used to decode a board.Model JSON snapshot, whose
// map[Layer]... fields need Layer to round-trip through a JSON object key.
func Parse(s string) (Layer, error) {
	if strings.HasPrefix(s, "InnerCopper(") && strings.HasSuffix(s, ")") {
		idx, err := strconv.Atoi(s[len("InnerCopper(") : len(s)-1])
		if err != nil {
			return Layer{}, fmt.Errorf("layer: invalid inner copper index in %q: %w", s, err)
		}
		return InnerCopperLayer(idx), nil
	}
	names := [...]Kind{
		TopCopper, InnerCopper, BottomCopper,
		TopStopMask, BottomStopMask,
		TopSolderPaste, BottomSolderPaste,
		TopSilkscreen, BottomSilkscreen,
		TopCourtyard, BottomCourtyard,
		TopDocumentation, BottomDocumentation,
		TopPlacement, BottomPlacement,
		BoardOutline,
	}
	for _, k := range names {
		if k == InnerCopper {
			continue
		}
		if New(k).String() == s {
			return New(k), nil
		}
	}
	return Layer{}, fmt.Errorf("layer: unknown layer name %q", s)
}

// MarshalText renders l as its String() form, letting Layer serve as a
// map key or scalar value in JSON/YAML encodings.
func (l Layer) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (l *Layer) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// CopperLayers builds the ordered copper stack: top, inner 1..n, bottom.
func CopperLayers(innerCount int) []Layer {
	layers := make([]Layer, 0, innerCount+2)
	layers = append(layers, New(TopCopper))
	for i := 1; i <= innerCount; i++ {
		layers = append(layers, InnerCopperLayer(i))
	}
	layers = append(layers, New(BottomCopper))
	return layers
}
