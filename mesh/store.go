// SPDX-License-Identifier: MIT
// Package mesh: slot removal and reindexing.
//
// Every ID equals its slot position. Dropping a slot deletes it and
// decrements every stored relation pointing past it, so callers see dense
// stores after each completed operation.

package mesh

import "slices"

// dropVertexSlot deletes vertex v, which must already be isolated.
func (m *Mesh) dropVertexSlot(v VertexID) {
	m.vertices = slices.Delete(m.vertices, int(v), int(v)+1)
	for i := range m.halfEdges {
		if m.halfEdges[i].origin > v {
			m.halfEdges[i].origin--
		}
	}
}

// dropEdgePair deletes half-edges 2p and 2p+1, which must already be
// unlinked from every fan, face and vertex.
func (m *Mesh) dropEdgePair(p int) {
	lo := EdgeID(2 * p)
	m.halfEdges = slices.Delete(m.halfEdges, int(lo), int(lo)+2)

	shift := func(e EdgeID) EdgeID {
		if e > lo+1 {
			return e - 2
		}
		return e
	}
	for i := range m.vertices {
		m.vertices[i].edge = shift(m.vertices[i].edge)
	}
	for i := range m.faces {
		m.faces[i].edge = shift(m.faces[i].edge)
	}
	for i := range m.halfEdges {
		m.halfEdges[i].next = shift(m.halfEdges[i].next)
		m.halfEdges[i].previous = shift(m.halfEdges[i].previous)
	}
}

// dropFaceSlot deletes face f, which no half-edge may reference any more.
func (m *Mesh) dropFaceSlot(f FaceID) {
	m.faces = slices.Delete(m.faces, int(f), int(f)+1)
	for i := range m.halfEdges {
		if m.halfEdges[i].face > f {
			m.halfEdges[i].face--
		}
	}
}
