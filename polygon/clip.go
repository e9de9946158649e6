package polygon

import "math"

// ghVertex is one node of a Greiner–Hormann working list: either an
// original ring vertex or a synthetic intersection vertex inserted between
// two originals. Lists are circular and doubly linked so traversal can run
// in either direction without bounds checks.
type ghVertex struct {
	pt             Point64
	next, prev     *ghVertex
	neighbor       *ghVertex // the corresponding vertex in the other list, for intersections
	intersect      bool
	entry          bool
	visited        bool
}

func buildList(p Path64) *ghVertex {
	if len(p) == 0 {
		return nil
	}
	first := &ghVertex{pt: p[0]}
	prev := first
	for _, pt := range p[1:] {
		v := &ghVertex{pt: pt}
		prev.next = v
		v.prev = prev
		prev = v
	}
	prev.next = first
	first.prev = prev
	return first
}

// segmentIntersect computes the intersection of segments (a0,a1) and
// (b0,b1), if any, as parametric positions ta, tb ∈ (0,1) (endpoints
// excluded — those are handled as shared-vertex special cases upstream by
// the degenerate-input fallback). Returns ok=false when parallel or no
// proper crossing exists. Arithmetic is float64; intersection points are
// snapped to the nearest integer nanometre by the caller, the module's
// second documented floating-point touchpoint (see doc.go).
func segmentIntersect(a0, a1, b0, b1 Point64) (ta, tb float64, ok bool) {
	dax, day := float64(a1.X-a0.X), float64(a1.Y-a0.Y)
	dbx, dby := float64(b1.X-b0.X), float64(b1.Y-b0.Y)
	denom := dax*dby - day*dbx
	if denom == 0 {
		return 0, 0, false
	}
	ex, ey := float64(b0.X-a0.X), float64(b0.Y-a0.Y)
	ta = (ex*dby - ey*dbx) / denom
	tb = (ex*day - ey*dax) / denom
	if ta <= 0 || ta >= 1 || tb <= 0 || tb >= 1 {
		return 0, 0, false
	}
	return ta, tb, true
}

func lerpPoint(a, b Point64, t float64) Point64 {
	return Point64{
		X: a.X + int64(math.Round(float64(b.X-a.X)*t)),
		Y: a.Y + int64(math.Round(float64(b.Y-a.Y)*t)),
	}
}

// clipPair runs the Greiner–Hormann algorithm for one subject ring against
// one clip ring and returns the resulting ring(s) for the requested
// operation. Degenerate cases (no proper intersections) are resolved by
// point-in-polygon containment tests rather than the general traversal.
func clipPair(subject, clipRing Path64, op ClipType) Paths64 {
	if len(subject) < 3 || len(clipRing) < 3 {
		return degenerateClip(subject, clipRing, op)
	}
	if !boxesOverlap(subject, clipRing) {
		return degenerateClip(subject, clipRing, op)
	}

	sList := buildList(subject)
	cList := buildList(clipRing)

	type insertion struct {
		onSubjectEdge *ghVertex
		onClipEdge    *ghVertex
		alphaS        float64
		alphaC        float64
		pt            Point64
	}
	var insertions []insertion

	for sEdge := sList; ; sEdge = sEdge.next {
		sNext := sEdge.next
		for cEdge := cList; ; cEdge = cEdge.next {
			cNext := cEdge.next
			if ta, tb, ok := segmentIntersect(sEdge.pt, sNext.pt, cEdge.pt, cNext.pt); ok {
				pt := lerpPoint(sEdge.pt, sNext.pt, ta)
				insertions = append(insertions, insertion{sEdge, cEdge, ta, tb, pt})
			}
			if cEdge.next == cList {
				break
			}
		}
		if sEdge.next == sList {
			break
		}
	}

	if len(insertions) == 0 {
		return degenerateClip(subject, clipRing, op)
	}

	// Insert intersection vertices into both lists, grouped by the edge
	// they fall on and ordered by parametric position along that edge.
	sEdgeGroups := map[*ghVertex][]*insertion{}
	cEdgeGroups := map[*ghVertex][]*insertion{}
	for i := range insertions {
		ins := &insertions[i]
		sEdgeGroups[ins.onSubjectEdge] = append(sEdgeGroups[ins.onSubjectEdge], ins)
		cEdgeGroups[ins.onClipEdge] = append(cEdgeGroups[ins.onClipEdge], ins)
	}

	vertexFor := map[*insertion][2]*ghVertex{}
	for edge, group := range sEdgeGroups {
		insertSortedGroup(edge, group, true, vertexFor)
	}
	for edge, group := range cEdgeGroups {
		insertSortedGroup(edge, group, false, vertexFor)
	}
	for i := range insertions {
		ins := &insertions[i]
		pair := vertexFor[ins]
		pair[0].neighbor = pair[1]
		pair[1].neighbor = pair[0]
	}

	markEntries(sList, clipRing, true)
	markEntries(cList, subject, false)

	return traverse(sList, op)
}

func insertSortedGroup(edge *ghVertex, group []*insertion, subjectSide bool, vertexFor map[*insertion][2]*ghVertex) {
	// simple insertion sort by alpha (group sizes are tiny in practice)
	for i := 1; i < len(group); i++ {
		j := i
		for j > 0 {
			ai, aj := group[j], group[j-1]
			var vi, vj float64
			if subjectSide {
				vi, vj = ai.alphaS, aj.alphaS
			} else {
				vi, vj = ai.alphaC, aj.alphaC
			}
			if vi < vj {
				group[j], group[j-1] = group[j-1], group[j]
				j--
				continue
			}
			break
		}
	}

	cur := edge
	for _, ins := range group {
		v := &ghVertex{pt: ins.pt, intersect: true}
		v.next = cur.next
		v.prev = cur
		cur.next.prev = v
		cur.next = v
		cur = v

		pair := vertexFor[ins]
		if subjectSide {
			pair[0] = v
		} else {
			pair[1] = v
		}
		vertexFor[ins] = pair
	}
}

// markEntries walks list, setting each intersection vertex's entry flag
// based on whether the segment leading into it is inside other.
func markEntries(list *ghVertex, other Path64, subjectSide bool) {
	if list == nil {
		return
	}
	start := list
	// Use the first vertex to determine the initial containment status of
	// the walk; then toggle at each intersection, which is valid because
	// rings are simple closed curves crossing other's boundary transversally
	// at every recorded intersection.
	status := PointInPolygon(other, start.pt)
	if start.intersect {
		// If the very first node happens to be an intersection (rare), use
		// the midpoint to the next node instead for a stable initial status.
		mid := Point64{X: (start.pt.X + start.next.pt.X) / 2, Y: (start.pt.Y + start.next.pt.Y) / 2}
		status = PointInPolygon(other, mid)
	}
	for v := start; ; v = v.next {
		if v.intersect {
			v.entry = !status
			status = !status
		}
		if v.next == start {
			break
		}
	}
}

// traverse extracts result ring(s) from the marked, linked subject/clip
// lists for the requested operation.
func traverse(sList *ghVertex, op ClipType) Paths64 {
	var result Paths64

	for start := sList; ; start = start.next {
		if start.intersect && !start.visited {
			wantEntry := true
			if op == ClipDifference {
				wantEntry = false
			}
			if start.entry != wantEntry {
				if start.next == sList {
					break
				}
				continue
			}

			var ring Path64
			cur := start
			goForward := true
			if op == ClipDifference {
				goForward = true
			}
			for {
				cur.visited = true
				ring = append(ring, cur.pt)
				if cur.intersect {
					cur = cur.neighbor
					cur.visited = true
					if op == ClipUnion {
						goForward = !cur.entry
					} else if op == ClipIntersection {
						goForward = cur.entry
					} else { // difference
						goForward = !cur.entry
					}
				}
				if goForward {
					cur = cur.next
				} else {
					cur = cur.prev
				}
				if cur == start {
					break
				}
			}
			if len(ring) >= 3 {
				result = append(result, ring)
			}
		}
		if start.next == sList {
			break
		}
	}

	return result
}

// degenerateClip handles the cases Greiner–Hormann's general traversal
// cannot: no proper crossing found (disjoint, nested, or touching-only
// rings), or a degenerate (fewer than 3 vertex) input.
func degenerateClip(subject, clipRing Path64, op ClipType) Paths64 {
	subjectValid := len(subject) >= 3
	clipValid := len(clipRing) >= 3

	subjectInClip := subjectValid && clipValid && len(subject) > 0 && PointInPolygon(clipRing, subject[0])
	clipInSubject := subjectValid && clipValid && len(clipRing) > 0 && PointInPolygon(subject, clipRing[0])

	switch op {
	case ClipUnion:
		switch {
		case subjectInClip:
			return Paths64{append(Path64{}, clipRing...)}
		case clipInSubject:
			return Paths64{append(Path64{}, subject...)}
		default:
			var out Paths64
			if subjectValid {
				out = append(out, subject)
			}
			if clipValid {
				out = append(out, clipRing)
			}
			return out
		}
	case ClipIntersection:
		switch {
		case subjectInClip:
			return Paths64{append(Path64{}, subject...)}
		case clipInSubject:
			return Paths64{append(Path64{}, clipRing...)}
		default:
			return nil
		}
	default: // ClipDifference: subject minus clipRing
		switch {
		case clipInSubject:
			// clip fully inside subject with no touch: leaves a hole, which
			// this ring-only representation cannot express without the
			// caller's hole-tracking; report the subject unchanged and rely
			// on Set-level Subtract to retain clipRing as a negative ring.
			return Paths64{append(Path64{}, subject...)}
		case subjectInClip:
			return nil
		default:
			if subjectValid {
				return Paths64{append(Path64{}, subject...)}
			}
			return nil
		}
	}
}
