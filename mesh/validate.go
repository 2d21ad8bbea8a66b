// SPDX-License-Identifier: MIT
// Package mesh: structural self-check.

package mesh

import (
	"github.com/pkg/errors"
)

// Validate checks every structural invariant of the mesh and returns the
// first violation wrapped in ErrCorrupt, or nil.
//
// Checked:
//   - the half-edge store holds whole pairs (symmetric is e^1, an
//     involution by construction) and no pair is a self-loop;
//   - every stored relation is NoX or inside its store;
//   - e.next.previous == e and e.next leaves from e's destination;
//   - each vertex fan closes after exactly deg(v) steps, visiting only
//     half-edges leaving v; isolated vertices own no half-edge;
//   - each face loop closes after exactly as many steps as half-edges
//     referencing that face, and every step references it.
//
// Complexity: O(V + E + F)
func (m *Mesh) Validate() error {
	nh := len(m.halfEdges)
	if nh%2 != 0 {
		return errors.Wrapf(ErrCorrupt, "odd half-edge count %d", nh)
	}

	for i, v := range m.vertices {
		if v.edge == NoEdge {
			continue
		}
		if !m.hasEdge(v.edge) {
			return errors.Wrapf(ErrCorrupt, "vertex %d: edge %d out of range", i, v.edge)
		}
		if m.halfEdges[v.edge].origin != VertexID(i) {
			return errors.Wrapf(ErrCorrupt, "vertex %d: edge %d leaves %d", i, v.edge, m.halfEdges[v.edge].origin)
		}
	}

	for i, f := range m.faces {
		if !m.hasEdge(f.edge) {
			return errors.Wrapf(ErrCorrupt, "face %d: edge %d out of range", i, f.edge)
		}
	}

	for i, he := range m.halfEdges {
		e := EdgeID(i)
		if !m.hasVertex(he.origin) {
			return errors.Wrapf(ErrCorrupt, "half-edge %d: origin %d out of range", e, he.origin)
		}
		if !m.hasEdge(he.next) || !m.hasEdge(he.previous) {
			return errors.Wrapf(ErrCorrupt, "half-edge %d: next/previous out of range", e)
		}
		if he.face != NoFace && !m.hasFace(he.face) {
			return errors.Wrapf(ErrCorrupt, "half-edge %d: face %d out of range", e, he.face)
		}
	}

	for i, he := range m.halfEdges {
		e := EdgeID(i)
		if he.origin == m.halfEdges[e.Symmetric()].origin {
			return errors.Wrapf(ErrCorrupt, "half-edge %d: self-loop at %d", e, he.origin)
		}
		if m.halfEdges[he.next].previous != e {
			return errors.Wrapf(ErrCorrupt, "half-edge %d: next.previous is %d", e, m.halfEdges[he.next].previous)
		}
		if m.halfEdges[he.next].origin != m.Destination(e) {
			return errors.Wrapf(ErrCorrupt, "half-edge %d: next %d does not leave destination", e, he.next)
		}
	}

	degree := make([]int, len(m.vertices))
	faceSize := make([]int, len(m.faces))
	for _, he := range m.halfEdges {
		degree[he.origin]++
		if he.face != NoFace {
			faceSize[he.face]++
		}
	}

	for i, v := range m.vertices {
		if v.edge == NoEdge {
			if degree[i] != 0 {
				return errors.Wrapf(ErrCorrupt, "vertex %d: isolated but leaves %d half-edges", i, degree[i])
			}
			continue
		}
		steps := 0
		for e := v.edge; ; {
			if m.halfEdges[e].origin != VertexID(i) {
				return errors.Wrapf(ErrCorrupt, "vertex %d: fan reaches half-edge %d of vertex %d", i, e, m.halfEdges[e].origin)
			}
			steps++
			if steps > degree[i] {
				return errors.Wrapf(ErrCorrupt, "vertex %d: fan does not close within degree %d", i, degree[i])
			}
			e = m.halfEdges[e.Symmetric()].next
			if e == v.edge {
				break
			}
		}
		if steps != degree[i] {
			return errors.Wrapf(ErrCorrupt, "vertex %d: fan has %d of %d half-edges", i, steps, degree[i])
		}
	}

	for i, f := range m.faces {
		steps := 0
		for e := f.edge; ; {
			if m.halfEdges[e].face != FaceID(i) {
				return errors.Wrapf(ErrCorrupt, "face %d: loop reaches half-edge %d of face %d", i, e, m.halfEdges[e].face)
			}
			steps++
			if steps > faceSize[i] {
				return errors.Wrapf(ErrCorrupt, "face %d: loop does not close within %d half-edges", i, faceSize[i])
			}
			e = m.halfEdges[e].next
			if e == f.edge {
				break
			}
		}
		if steps != faceSize[i] {
			return errors.Wrapf(ErrCorrupt, "face %d: loop has %d of %d half-edges", i, steps, faceSize[i])
		}
	}

	return nil
}
