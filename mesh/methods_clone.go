// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copy, assignment and clearing of meshes.
// Determinism:
//   - Clone/CopyFrom preserve every ID, so the copy is an isomorphism with
//     the identity as its relabeling.

package mesh

import "slices"

// Clone returns a deep copy of m.
//
// Relations are stored as IDs, so the build-then-relink step of a pointer
// structure collapses into a slot-for-slot copy: each copied relation already
// names the corresponding element of the new stores.
//
// Complexity: O(V + E + F)
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		vertices:  slices.Clone(m.vertices),
		halfEdges: slices.Clone(m.halfEdges),
		faces:     slices.Clone(m.faces),
	}
}

// CopyFrom replaces the contents of m with a deep copy of src.
// Assigning a mesh to itself is a no-op.
// Complexity: O(V + E + F)
func (m *Mesh) CopyFrom(src *Mesh) {
	if m == src {
		return
	}
	m.vertices = slices.Clone(src.vertices)
	m.halfEdges = slices.Clone(src.halfEdges)
	m.faces = slices.Clone(src.faces)
}

// Clear removes every vertex, edge and face.
// Complexity: O(1)
func (m *Mesh) Clear() {
	m.vertices = nil
	m.halfEdges = nil
	m.faces = nil
}
