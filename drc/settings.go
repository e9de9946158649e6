// Package drc is the DRC engine: orchestration of the fixed check order
// over a BoardModel, progress/cancellation, and the engine's settings
// record (spec.md §4.G).
package drc

import "github.com/boarddrc/drc/geometry"

// SlotAllowance restricts which slot classifications a hole's path may
// take (spec.md §4.G allowed_npth_slots / allowed_pth_slots).
type SlotAllowance uint8

const (
	SlotNone SlotAllowance = iota
	SlotSingleSegmentStraight
	SlotMultiSegmentStraight
	SlotAny
)

// Allows reports whether a path.Classification is permitted under this
// allowance. Classifications are ranked round-drill < single-segment <
// multi-segment < curved, and an allowance permits its named class and
// everything "simpler" than it, per spec.md §4.G check 10 ("emit
// ForbiddenSlot when its class exceeds the allowance").
func (a SlotAllowance) Allows(rank int) bool {
	switch a {
	case SlotNone:
		return rank <= 0 // round drill only
	case SlotSingleSegmentStraight:
		return rank <= 1
	case SlotMultiSegmentStraight:
		return rank <= 2
	case SlotAny:
		return true
	default:
		return false
	}
}

// NetClassOverride lets a pair of net classes (or a single class against
// itself) specify clearance/width minima tighter or looser than the
// board-wide default (SPEC_FULL §3, additive over spec.md).
type NetClassOverride struct {
	ClassA, ClassB         string
	MinCopperWidth         geometry.Length
	MinCopperCopperClear   geometry.Length
}

// Settings is the engine's full configuration record (spec.md §4.G). A
// zero value for any clearance/width field disables the corresponding
// check, per spec.md's "0 ⇒ check disabled" convention.
type Settings struct {
	MinCopperWidth            geometry.Length
	MinCopperCopperClearance  geometry.Length
	MinCopperBoardClearance   geometry.Length
	MinCopperNpthClearance    geometry.Length
	MinDrillDrillClearance    geometry.Length
	MinDrillBoardClearance    geometry.Length
	MinPthAnnularRing         geometry.Length
	MinNpthDrillDiameter      geometry.Length
	MinPthDrillDiameter       geometry.Length
	MinNpthSlotWidth          geometry.Length
	MinPthSlotWidth           geometry.Length
	AllowedNpthSlots          SlotAllowance
	AllowedPthSlots           SlotAllowance
	MinOutlineToolDiameter    geometry.Length

	// NetClassOverrides is additive (SPEC_FULL §3): when no entry matches
	// the pair of net classes involved, the board-wide minima above apply
	// unchanged.
	NetClassOverrides []NetClassOverride
}

// MaxArcTolerance is the engine's fixed chord-error bound (spec.md §4.A):
// "a compile-time constant in the source (5 µm)". spec.md §9 leaves
// per-run configurability as an open question; DESIGN.md records the
// decision to keep it a constant, matching the cited source behavior
// exactly rather than guessing at a new knob.
const MaxArcTolerance = geometry.Length(5000)

// clearanceFor resolves the effective copper-copper clearance for a pair
// of net classes, applying the first matching NetClassOverride (checked in
// table order, matching either orientation of the pair) over the
// board-wide default.
func (s Settings) clearanceFor(classA, classB string) geometry.Length {
	for _, o := range s.NetClassOverrides {
		if (o.ClassA == classA && o.ClassB == classB) || (o.ClassA == classB && o.ClassB == classA) {
			if o.MinCopperCopperClear != 0 {
				return o.MinCopperCopperClear
			}
		}
	}
	return s.MinCopperCopperClearance
}

// widthFor resolves the effective minimum copper width for a net class,
// applying a same-class override if present.
func (s Settings) widthFor(class string) geometry.Length {
	for _, o := range s.NetClassOverrides {
		if o.ClassA == class && o.ClassB == class && o.MinCopperWidth != 0 {
			return o.MinCopperWidth
		}
	}
	return s.MinCopperWidth
}
