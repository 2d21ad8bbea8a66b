// SPDX-License-Identifier: MIT
// Package mesh: adjacency repair.
//
// A half-edge without a face is an open slot: the cycle it sits in runs
// through a gap of its vertex fan, so a new edge (or a face stitch) can be
// spliced there without tearing any existing face loop.
//
// All next/previous writes go through link so AddFace can journal and roll
// back a partially stitched loop.

package mesh

// FindFreeIncident returns a half-edge pointing into v that bounds no face,
// walking v's incoming half-edges (cur = cur.next.symmetric) starting from
// the symmetric of v's stored edge. It returns NoEdge when v is isolated,
// unknown, or its fan is saturated by faces; saturation is a normal result.
// Complexity: O(deg(v)).
func (m *Mesh) FindFreeIncident(v VertexID) EdgeID {
	if !m.hasVertex(v) || m.vertices[v].edge == NoEdge {
		return NoEdge
	}
	begin := m.vertices[v].edge.Symmetric()
	cur := begin
	for steps := 0; steps <= len(m.halfEdges); steps++ {
		if m.halfEdges[cur].face == NoFace {
			return cur
		}
		cur = m.halfEdges[cur].next.Symmetric()
		if cur == begin {
			break
		}
	}

	return NoEdge
}

// FindFreeIncidentBetween is FindFreeIncident restricted to the arc of one
// fan from start (inclusive) up to end (exclusive). Both must point into the
// same vertex. start == end is an empty arc and yields NoEdge.
// Complexity: O(arc length).
func (m *Mesh) FindFreeIncidentBetween(start, end EdgeID) EdgeID {
	if !m.hasEdge(start) || !m.hasEdge(end) || start == end {
		return NoEdge
	}
	cur := start
	for steps := 0; steps <= len(m.halfEdges); steps++ {
		if m.halfEdges[cur].face == NoFace {
			return cur
		}
		cur = m.halfEdges[cur].next.Symmetric()
		if cur == end {
			break
		}
	}

	return NoEdge
}

// MakeAdjacent makes out follow in (in.Next == out) by relinking the fan of
// the vertex between them. It reports false, with nothing written, when the
// IDs are unknown, in does not end where out starts, or no free slot lies
// between out.Symmetric and in.
// Complexity: O(deg(v)).
func (m *Mesh) MakeAdjacent(in, out EdgeID) bool {
	if !m.hasEdge(in) || !m.hasEdge(out) || m.Destination(in) != m.Origin(out) {
		return false
	}
	var j journal

	return m.makeAdjacent(&j, in, out)
}

// makeAdjacent makes out follow in (in.next == out), where in points into
// the vertex out leaves from. out's run of the fan is moved to sit right
// after in by relinking three pairs around a free slot g found between
// out.symmetric and in. It reports false, with nothing written, when no such
// slot exists.
func (m *Mesh) makeAdjacent(j *journal, in, out EdgeID) bool {
	if m.halfEdges[in].next == out {
		return true
	}
	b := m.halfEdges[in].next
	d := m.halfEdges[out].previous

	g := m.FindFreeIncidentBetween(out.Symmetric(), in)
	if g == NoEdge {
		return false
	}
	h := m.halfEdges[g].next

	m.link(j, in, out)
	m.link(j, g, b)
	m.link(j, d, h)

	return true
}

// freeSlot returns the incoming half-edge after which a new edge at v is
// spliced: NoEdge for an isolated vertex, ok=false for a saturated fan.
func (m *Mesh) freeSlot(v VertexID) (in EdgeID, ok bool) {
	if m.vertices[v].edge == NoEdge {
		return NoEdge, true
	}
	in = m.FindFreeIncident(v)

	return in, in != NoEdge
}

// linkUndo records the state overwritten by one link call.
type linkUndo struct {
	from, oldNext EdgeID
	to, oldPrev   EdgeID
}

// journal is an undo log of link calls, replayed backwards by rollback.
type journal []linkUndo

// link sets a.next = b and b.previous = a, logging the old values to j
// when j is non-nil.
func (m *Mesh) link(j *journal, a, b EdgeID) {
	if j != nil {
		*j = append(*j, linkUndo{
			from: a, oldNext: m.halfEdges[a].next,
			to: b, oldPrev: m.halfEdges[b].previous,
		})
	}
	m.halfEdges[a].next = b
	m.halfEdges[b].previous = a
}

func (m *Mesh) rollback(j journal) {
	for i := len(j) - 1; i >= 0; i-- {
		u := j[i]
		m.halfEdges[u.to].previous = u.oldPrev
		m.halfEdges[u.from].next = u.oldNext
	}
}
