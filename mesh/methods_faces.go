// SPDX-License-Identifier: MIT
// Package mesh: face lifecycle and face-loop queries.

package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// AddFace creates a face bounded by loop, an ordered cycle of existing
// half-edges given in traversal order.
//
// Implementation:
//   - Stage 1: Validate the loop: non-empty, known IDs, no repeated
//     half-edge, consecutive edges vertex-connected, no edge already faced.
//   - Stage 2: Stitch each consecutive pair with makeAdjacent, journaling
//     every relink; verify the loop is closed under next.
//   - Stage 3: Append the face and assign it to every loop edge.
//
// AddFace is atomic: on any failure the journal is rolled back and the mesh
// is exactly as before the call.
//
// Errors:
//   - ErrEdgeNotFound for an ID outside the half-edge store.
//   - ErrInvalidTopology for an empty, repeated, disconnected or already
//     faced loop, or when no free fan slot exists for a stitch.
//
// Complexity: O(Σ deg) over the loop's vertices.
func (m *Mesh) AddFace(loop []EdgeID) (FaceID, error) {
	n := len(loop)
	if n == 0 {
		return NoFace, errors.Wrap(ErrInvalidTopology, "AddFace: empty edge loop")
	}
	for _, e := range loop {
		if !m.hasEdge(e) {
			return NoFace, errors.Wrapf(ErrEdgeNotFound, "AddFace: half-edge %d", e)
		}
	}

	seen := make(map[EdgeID]struct{}, n)
	for i, cur := range loop {
		next := loop[(i+1)%n]
		if _, dup := seen[cur]; dup {
			return NoFace, errors.Wrapf(ErrInvalidTopology, "AddFace: half-edge %d repeated", cur)
		}
		seen[cur] = struct{}{}
		if m.Destination(cur) != m.halfEdges[next].origin {
			return NoFace, errors.Wrapf(ErrInvalidTopology, "AddFace: disconnected edge loop at %d→%d", cur, next)
		}
		if f := m.halfEdges[cur].face; f != NoFace {
			return NoFace, errors.Wrapf(ErrInvalidTopology, "AddFace: half-edge %d already bounds face %d", cur, f)
		}
	}

	var j journal
	for i, cur := range loop {
		next := loop[(i+1)%n]
		if !m.makeAdjacent(&j, cur, next) {
			m.rollback(j)
			return NoFace, errors.Wrapf(ErrInvalidTopology, "AddFace: no free fan slot to join %d→%d (non-manifold)", cur, next)
		}
	}
	// A later stitch may not undo an earlier one on a manifold fan; check anyway.
	for i, cur := range loop {
		if m.halfEdges[cur].next != loop[(i+1)%n] {
			m.rollback(j)
			return NoFace, errors.Wrapf(ErrInvalidTopology, "AddFace: loop not closed at %d", cur)
		}
	}

	f := FaceID(len(m.faces))
	m.faces = append(m.faces, faceRec{edge: loop[0]})
	for _, e := range loop {
		m.halfEdges[e].face = f
	}

	return f, nil
}

// RemoveFace detaches f from every half-edge of its loop and removes it.
// Edges and vertices stay. Later faces shift down by one.
//
// Returns ErrFaceNotFound if f is outside the face store.
// Complexity: O(|loop| + E + F).
func (m *Mesh) RemoveFace(f FaceID) error {
	if !m.hasFace(f) {
		return errors.Wrapf(ErrFaceNotFound, "RemoveFace(%d)", f)
	}
	m.removeFace(f)

	return nil
}

func (m *Mesh) removeFace(f FaceID) {
	start := m.faces[f].edge
	e := start
	for {
		m.halfEdges[e].face = NoFace
		e = m.halfEdges[e].next
		if e == start {
			break
		}
	}
	m.dropFaceSlot(f)
}

// Face returns a snapshot of f, or ErrFaceNotFound.
func (m *Mesh) Face(f FaceID) (Face, error) {
	if !m.hasFace(f) {
		return Face{}, errors.Wrapf(ErrFaceNotFound, "Face(%d)", f)
	}

	return Face{ID: f, Edge: m.faces[f].edge}, nil
}

// FaceLoop returns the boundary half-edges of f in traversal order,
// starting at the face's stored edge. Unknown faces yield nil.
func (m *Mesh) FaceLoop(f FaceID) []EdgeID {
	if !m.hasFace(f) {
		return nil
	}
	start := m.faces[f].edge
	loop := []EdgeID{start}
	for e := m.halfEdges[start].next; e != start; e = m.halfEdges[e].next {
		if len(loop) > len(m.halfEdges) {
			break // broken loop; Validate reports it
		}
		loop = append(loop, e)
	}

	return loop
}

// FaceVertices returns the boundary vertices of f in loop order.
func (m *Mesh) FaceVertices(f FaceID) []VertexID {
	loop := m.FaceLoop(f)
	out := make([]VertexID, len(loop))
	for i, e := range loop {
		out[i] = m.halfEdges[e].origin
	}

	return out
}

// FacePositions returns the boundary vertex positions of f in loop order.
func (m *Mesh) FacePositions(f FaceID) []mgl32.Vec3 {
	loop := m.FaceLoop(f)
	out := make([]mgl32.Vec3, len(loop))
	for i, e := range loop {
		out[i] = m.vertices[m.halfEdges[e].origin].position
	}

	return out
}

// FaceNormal returns the unit normal of f computed with Newell's method,
// which tolerates non-planar and non-convex loops. Degenerate faces yield
// the zero vector.
func (m *Mesh) FaceNormal(f FaceID) mgl32.Vec3 {
	ps := m.FacePositions(f)
	var n mgl32.Vec3
	for i, cur := range ps {
		nxt := ps[(i+1)%len(ps)]
		n[0] += (cur[1] - nxt[1]) * (cur[2] + nxt[2])
		n[1] += (cur[2] - nxt[2]) * (cur[0] + nxt[0])
		n[2] += (cur[0] - nxt[0]) * (cur[1] + nxt[1])
	}
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}

	return n.Normalize()
}

// ForEachFace calls fn for every face in ID order with its boundary
// positions until fn returns false. fn must not mutate the mesh.
func (m *Mesh) ForEachFace(fn func(f FaceID, positions []mgl32.Vec3) bool) {
	for i := range m.faces {
		if !fn(FaceID(i), m.FacePositions(FaceID(i))) {
			return
		}
	}
}

func (m *Mesh) hasFace(f FaceID) bool {
	return f >= 0 && int(f) < len(m.faces)
}
