// SPDX-License-Identifier: MIT
// Package mesh: edge lifecycle and half-edge navigation.
//
// Half-edges are allocated and destroyed in symmetric pairs. The pair of
// undirected edge p occupies slots 2p and 2p+1 of the half-edge store.

package mesh

import (
	"github.com/pkg/errors"
)

// AddEdge creates the symmetric pair (ab, ba) between a and b and splices
// it into both vertex fans, returning the half-edge directed a→b.
//
// Splicing:
//   - An isolated endpoint adopts the new half-edge as its incident edge and
//     the pair starts as a 2-cycle on that side.
//   - Otherwise the pair is inserted right after a free incoming half-edge
//     of that endpoint (see FindFreeIncident).
//
// Errors:
//   - ErrVertexNotFound if a or b is outside the vertex store.
//   - ErrInvalidTopology if a == b, or if an endpoint's fan is saturated by
//     faces so no slot can take the new edge. The mesh is left untouched.
//
// Complexity: O(deg(a) + deg(b)).
func (m *Mesh) AddEdge(a, b VertexID) (EdgeID, error) {
	if !m.hasVertex(a) {
		return NoEdge, errors.Wrapf(ErrVertexNotFound, "AddEdge(%d,%d): origin", a, b)
	}
	if !m.hasVertex(b) {
		return NoEdge, errors.Wrapf(ErrVertexNotFound, "AddEdge(%d,%d): destination", a, b)
	}
	if a == b {
		return NoEdge, errors.Wrapf(ErrInvalidTopology, "AddEdge(%d,%d): self-loop", a, b)
	}

	// Locate both slots before touching anything.
	aIn, ok := m.freeSlot(a)
	if !ok {
		return NoEdge, errors.Wrapf(ErrInvalidTopology, "AddEdge(%d,%d): fan of %d is saturated", a, b, a)
	}
	bIn, ok := m.freeSlot(b)
	if !ok {
		return NoEdge, errors.Wrapf(ErrInvalidTopology, "AddEdge(%d,%d): fan of %d is saturated", a, b, b)
	}

	ab := EdgeID(len(m.halfEdges))
	ba := ab + 1
	m.halfEdges = append(m.halfEdges,
		halfEdgeRec{origin: a, next: ba, previous: ba, face: NoFace},
		halfEdgeRec{origin: b, next: ab, previous: ab, face: NoFace},
	)

	if aIn == NoEdge {
		m.vertices[a].edge = ab
	} else {
		aOut := m.halfEdges[aIn].next
		m.link(nil, aIn, ab)
		m.link(nil, ba, aOut)
	}

	if bIn == NoEdge {
		m.vertices[b].edge = ba
	} else {
		bOut := m.halfEdges[bIn].next
		m.link(nil, bIn, ba)
		m.link(nil, ab, bOut)
	}

	return ab, nil
}

// RemoveEdge removes the pair containing e. Faces bounded by either half
// are removed first; both endpoint fans are closed over the gap, and an
// endpoint left without edges becomes isolated. Later pairs shift down.
//
// Returns ErrEdgeNotFound if e is outside the half-edge store.
// Complexity: O(V+E+F) for reindexing.
func (m *Mesh) RemoveEdge(e EdgeID) error {
	if !m.hasEdge(e) {
		return errors.Wrapf(ErrEdgeNotFound, "RemoveEdge(%d)", e)
	}
	m.removeEdge(e)

	return nil
}

// removeEdge is RemoveEdge without the bounds check.
func (m *Mesh) removeEdge(e EdgeID) {
	ab, ba := e, e.Symmetric()

	// Faces go first; the face ID on ba is re-read because removing the
	// first face may have shifted it.
	if f := m.halfEdges[ab].face; f != NoFace {
		m.removeFace(f)
	}
	if f := m.halfEdges[ba].face; f != NoFace {
		m.removeFace(f)
	}

	a, b := m.halfEdges[ab].origin, m.halfEdges[ba].origin
	aIn, aOut := m.halfEdges[ab].previous, m.halfEdges[ba].next
	bIn, bOut := m.halfEdges[ba].previous, m.halfEdges[ab].next

	if m.vertices[a].edge == ab {
		if aOut == ab {
			m.vertices[a].edge = NoEdge
		} else {
			m.vertices[a].edge = aOut
		}
	}
	if m.vertices[b].edge == ba {
		if bOut == ba {
			m.vertices[b].edge = NoEdge
		} else {
			m.vertices[b].edge = bOut
		}
	}
	m.link(nil, aIn, aOut)
	m.link(nil, bIn, bOut)

	m.dropEdgePair(ab.Pair())
}

// HalfEdge returns a snapshot of e, or ErrEdgeNotFound.
func (m *Mesh) HalfEdge(e EdgeID) (HalfEdge, error) {
	if !m.hasEdge(e) {
		return HalfEdge{}, errors.Wrapf(ErrEdgeNotFound, "HalfEdge(%d)", e)
	}
	rec := m.halfEdges[e]

	return HalfEdge{
		ID:        e,
		Origin:    rec.origin,
		Symmetric: e.Symmetric(),
		Next:      rec.next,
		Previous:  rec.previous,
		Face:      rec.face,
	}, nil
}

// Origin returns the vertex e leaves from.
func (m *Mesh) Origin(e EdgeID) VertexID { return m.halfEdges[e].origin }

// Destination returns the vertex e points to (the origin of its symmetric).
func (m *Mesh) Destination(e EdgeID) VertexID { return m.halfEdges[e.Symmetric()].origin }

// Next returns the successor of e in its current cycle.
func (m *Mesh) Next(e EdgeID) EdgeID { return m.halfEdges[e].next }

// Previous returns the predecessor of e in its current cycle.
func (m *Mesh) Previous(e EdgeID) EdgeID { return m.halfEdges[e].previous }

// FaceOf returns the face bounded by e, or NoFace.
func (m *Mesh) FaceOf(e EdgeID) FaceID { return m.halfEdges[e].face }

// IsBoundary reports whether e bounds no face.
func (m *Mesh) IsBoundary(e EdgeID) bool {
	return m.hasEdge(e) && m.halfEdges[e].face == NoFace
}

// FindEdge returns the half-edge a→b, or NoEdge when a and b are not joined.
// Complexity: O(deg(a)).
func (m *Mesh) FindEdge(a, b VertexID) EdgeID {
	for _, e := range m.Fan(a) {
		if m.Destination(e) == b {
			return e
		}
	}

	return NoEdge
}

func (m *Mesh) hasEdge(e EdgeID) bool {
	return e >= 0 && int(e) < len(m.halfEdges)
}
