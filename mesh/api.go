// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only counters and the Stats snapshot.
// Policy:
//   - No mutation here.

package mesh

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// EdgeCount returns the number of undirected edges (half-edge pairs).
func (m *Mesh) EdgeCount() int { return len(m.halfEdges) / 2 }

// HalfEdgeCount returns the number of half-edges, always 2·EdgeCount.
func (m *Mesh) HalfEdgeCount() int { return len(m.halfEdges) }

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// IsEmpty reports whether the mesh has no vertices (hence nothing at all).
func (m *Mesh) IsEmpty() bool { return len(m.vertices) == 0 }

// IsClosed reports whether every half-edge bounds a face and at least one
// edge exists, i.e. the surface has no boundary.
func (m *Mesh) IsClosed() bool {
	if len(m.halfEdges) == 0 {
		return false
	}
	for i := range m.halfEdges {
		if m.halfEdges[i].face == NoFace {
			return false
		}
	}

	return true
}

// Stats produces a snapshot of store sizes and boundary/isolation counters.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
//
// Notes:
//   - EulerCharacteristic is 2 for a closed genus-0 surface and 1 for a disc.
func (m *Mesh) Stats() *MeshStats {
	stats := MeshStats{
		VertexCount: len(m.vertices),
		EdgeCount:   len(m.halfEdges) / 2,
		FaceCount:   len(m.faces),
	}
	for i := range m.halfEdges {
		if m.halfEdges[i].face == NoFace {
			stats.BoundaryHalfEdges++
		}
	}
	for i := range m.vertices {
		if m.vertices[i].edge == NoEdge {
			stats.IsolatedVertices++
		}
	}
	stats.EulerCharacteristic = stats.VertexCount - stats.EdgeCount + stats.FaceCount

	return &stats
}
