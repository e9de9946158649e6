package drc

import (
	"github.com/boarddrc/drc/internal/obs"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/pathgen"
	"github.com/boarddrc/drc/polygon"
	"github.com/boarddrc/drc/rules"
)

func (r *run) checkDrillDrillClearance() {
	clearance := r.settings.MinDrillDrillClearance
	if clearance == 0 {
		return
	}
	inflate := clearance - MaxArcTolerance - 1
	if inflate < 0 {
		inflate = 0
	}

	drills := r.allDrills()
	type pair struct{ a, b int }
	var pairs []pair
	for i := 0; i < len(drills); i++ {
		for j := i + 1; j < len(drills); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	results := mapPairs(len(pairs), pairWorkers, func(idx int) []rules.Message {
		p := pairs[idx]
		da := drills[p.a]
		db := drills[p.b]
		sa, err := da.render(inflate, r.tol)
		if err != nil {
			return nil
		}
		sb, err := db.render(inflate, r.tol)
		if err != nil {
			return nil
		}
		overlap := polygon.Intersect(sa, sb)
		if overlap.IsEmpty() {
			return nil
		}
		return []rules.Message{rules.New(rules.DrillDrillClearanceViolation,
			rules.KeyDrillDrillClearanceViolation(da.key, db.key),
			"two drilled holes are closer than the minimum drill-to-drill clearance",
			"", overlap.Paths...)}
	})
	for _, m := range results {
		r.emit(m)
	}
}

func (r *run) checkDrillBoardClearance() {
	clearance := r.settings.MinDrillBoardClearance
	if clearance == 0 {
		return
	}
	band, ok := r.boardOutlineBand(2*clearance - MaxArcTolerance - 1)
	if !ok {
		return
	}

	for _, d := range r.allDrills() {
		hole, err := d.render(0, r.tol)
		if err != nil {
			obs.SkippedFeature(r.log, "DrillBoardClearance", d.key.Owner.Kind, d.key.HoleUUID, err.Error())
			continue
		}
		overlap := polygon.Intersect(hole, band)
		if overlap.IsEmpty() {
			continue
		}
		r.emit(rules.New(rules.DrillBoardClearanceViolation,
			rules.KeyDrillBoardClearanceViolation(d.key),
			"drilled hole is closer to the board outline than the minimum clearance",
			"", overlap.Paths...))
	}
}

func (r *run) checkMinimumPthAnnularRing() {
	minRing := r.settings.MinPthAnnularRing
	if minRing == 0 {
		return
	}

	var commonCopper *polygon.Set
	for _, l := range r.model.CopperLayers() {
		set, err := r.netCopperAll(l)
		if err != nil {
			obs.SkippedFeature(r.log, "MinimumPthAnnularRing", "Layer", l.String(), err.Error())
			continue
		}
		if commonCopper == nil {
			commonCopper = &set
			continue
		}
		inter := polygon.Intersect(*commonCopper, set)
		commonCopper = &inter
	}
	if commonCopper == nil {
		return
	}

	for _, d := range r.allDrills() {
		if !d.plated {
			continue
		}
		inflated, err := d.render(2*minRing-1, r.tol)
		if err != nil {
			obs.SkippedFeature(r.log, "MinimumPthAnnularRing", d.key.Owner.Kind, d.key.HoleUUID, err.Error())
			continue
		}
		uncovered := polygon.Subtract(inflated, *commonCopper)
		if uncovered.IsEmpty() {
			continue
		}
		r.emit(rules.New(rules.MinimumAnnularRingViolation,
			rules.KeyMinimumAnnularRingViolation(d.key.Owner),
			"plated hole's annular ring is narrower than the minimum",
			"", uncovered.Paths...))
	}
}

// netCopperAll returns (and caches) the union of every copper feature on
// l regardless of net, used by checks that reason about copper presence
// rather than net identity (CopperHoleClearance, MinimumPthAnnularRing).
func (r *run) netCopperAll(l layer.Layer) (polygon.Set, error) {
	key := netSetKey(l, nil)
	if cached, ok := r.cache.get(key); ok {
		return cached, nil
	}
	set, err := pathgen.CopperByNetSet(r.model, r.graph, l, nil, r.quick, r.tol)
	if err != nil {
		return polygon.Set{}, err
	}
	r.cache.put(key, set)
	return set, nil
}

func (r *run) checkMinimumDrillDiameter() {
	for _, d := range r.allDrills() {
		min := r.settings.MinNpthDrillDiameter
		if d.plated {
			min = r.settings.MinPthDrillDiameter
		}
		if min == 0 {
			continue
		}
		diameter, ok := d.diameter()
		if !ok || diameter >= min {
			continue
		}
		set, err := d.render(0, r.tol)
		if err != nil {
			obs.SkippedFeature(r.log, "MinimumDrillDiameter", d.key.Owner.Kind, d.key.HoleUUID, err.Error())
			continue
		}
		r.emit(rules.New(rules.MinimumDrillDiameterViolation,
			rules.KeyMinimumDrillDiameterViolation(d.key),
			"drilled hole diameter is smaller than the minimum allowed",
			"", set.Paths...))
	}
}

func (r *run) checkMinimumSlotWidth() {
	for _, d := range r.allDrills() {
		if d.classify() == 0 { // round drill, not a slot
			continue
		}
		min := r.settings.MinNpthSlotWidth
		if d.plated {
			min = r.settings.MinPthSlotWidth
		}
		if min == 0 {
			continue
		}
		width, ok := d.slotWidth()
		if !ok || width >= min {
			continue
		}
		set, err := d.render(0, r.tol)
		if err != nil {
			obs.SkippedFeature(r.log, "MinimumSlotWidth", d.key.Owner.Kind, d.key.HoleUUID, err.Error())
			continue
		}
		r.emit(rules.New(rules.MinimumSlotWidthViolation,
			rules.KeyMinimumSlotWidthViolation(d.key),
			"slot width is smaller than the minimum allowed",
			"", set.Paths...))
	}
}

func (r *run) checkAllowedSlots() {
	for _, d := range r.allDrills() {
		allowance := r.settings.AllowedNpthSlots
		if d.plated {
			allowance = r.settings.AllowedPthSlots
		}
		if allowance.Allows(d.classify()) {
			continue
		}
		set, err := d.render(0, r.tol)
		if err != nil {
			obs.SkippedFeature(r.log, "AllowedSlots", d.key.Owner.Kind, d.key.HoleUUID, err.Error())
			continue
		}
		r.emit(rules.New(rules.ForbiddenSlot,
			rules.KeyForbiddenSlot(d.key),
			"slot shape exceeds the allowed classification",
			"", set.Paths...))
	}
}
