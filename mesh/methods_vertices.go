// SPDX-License-Identifier: MIT
// Package mesh: vertex lifecycle and vertex-centred queries.
//
// A vertex owns a single outgoing half-edge; the rest of its fan is
// recovered by repeatedly stepping edge = edge.symmetric.next.

package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// AddVertex appends an isolated vertex at position p and returns its ID.
// Complexity: O(1) amortized.
func (m *Mesh) AddVertex(p mgl32.Vec3) VertexID {
	m.vertices = append(m.vertices, vertexRec{position: p, edge: NoEdge})

	return VertexID(len(m.vertices) - 1)
}

// RemoveVertex removes v together with every edge incident to it (and, by
// cascade, every face those edges bound). Later vertices shift down by one.
//
// Returns ErrVertexNotFound if v is outside the vertex store.
// Complexity: O(deg(v)·(V+E+F)) due to reindexing after each edge removal.
func (m *Mesh) RemoveVertex(v VertexID) error {
	if !m.hasVertex(v) {
		return errors.Wrapf(ErrVertexNotFound, "RemoveVertex(%d)", v)
	}
	// Each removal relinks the fan and refreshes v's incident edge,
	// so the loop ends exactly when v becomes isolated.
	for m.vertices[v].edge != NoEdge {
		m.removeEdge(m.vertices[v].edge)
	}
	m.dropVertexSlot(v)

	return nil
}

// Vertex returns a snapshot of v, or ErrVertexNotFound.
func (m *Mesh) Vertex(v VertexID) (Vertex, error) {
	if !m.hasVertex(v) {
		return Vertex{}, errors.Wrapf(ErrVertexNotFound, "Vertex(%d)", v)
	}
	rec := m.vertices[v]

	return Vertex{ID: v, Position: rec.position, Edge: rec.edge}, nil
}

// Position returns the position of v. v must belong to the mesh.
func (m *Mesh) Position(v VertexID) mgl32.Vec3 {
	return m.vertices[v].position
}

// SetPosition moves v to p. Topology is untouched.
func (m *Mesh) SetPosition(v VertexID, p mgl32.Vec3) error {
	if !m.hasVertex(v) {
		return errors.Wrapf(ErrVertexNotFound, "SetPosition(%d)", v)
	}
	m.vertices[v].position = p

	return nil
}

// Fan returns the outgoing half-edges of v in fan order, starting at the
// vertex's stored edge. An isolated or unknown vertex yields nil.
// Complexity: O(deg(v)).
func (m *Mesh) Fan(v VertexID) []EdgeID {
	if !m.hasVertex(v) || m.vertices[v].edge == NoEdge {
		return nil
	}
	start := m.vertices[v].edge
	fan := []EdgeID{start}
	for e := m.halfEdges[start.Symmetric()].next; e != start; e = m.halfEdges[e.Symmetric()].next {
		if len(fan) > len(m.halfEdges) {
			break // broken fan; Validate reports it
		}
		fan = append(fan, e)
	}

	return fan
}

// Degree returns the number of edges incident to v.
func (m *Mesh) Degree(v VertexID) int {
	return len(m.Fan(v))
}

// Positions returns a copy of every vertex position indexed by VertexID.
func (m *Mesh) Positions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(m.vertices))
	for i := range m.vertices {
		out[i] = m.vertices[i].position
	}

	return out
}

// ForEachVertex calls fn for every vertex in ID order until fn returns false.
// fn must not mutate the mesh.
func (m *Mesh) ForEachVertex(fn func(v VertexID, p mgl32.Vec3) bool) {
	for i := range m.vertices {
		if !fn(VertexID(i), m.vertices[i].position) {
			return
		}
	}
}

// IsIsolated reports whether v has no incident edge.
func (m *Mesh) IsIsolated(v VertexID) bool {
	return m.hasVertex(v) && m.vertices[v].edge == NoEdge
}

func (m *Mesh) hasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(m.vertices)
}
