// SPDX-License-Identifier: MIT
// Package mesh provides an editable half-edge representation of a polygonal
// surface that keeps 2-manifold topology intact under local edits.
//
// The Mesh M = (V, H, F) stores:
//
//   - Vertices: a position and one outgoing half-edge (or NoEdge).
//   - Half-edges, allocated in symmetric pairs at slots 2p and 2p+1: an
//     origin vertex, next/previous links in the current cycle (a face loop,
//     or the open gap of a vertex fan), and an optional face.
//   - Faces: one boundary half-edge; the rest of the loop follows next.
//
// Euler operators (the only ways to change topology):
//
//	AddVertex(p) VertexID
//	AddEdge(a, b) (EdgeID, error)       // splice into both fans
//	AddFace(loop) (FaceID, error)       // stitch loop, atomic on failure
//	RemoveFace(f) error                 // edges stay
//	RemoveEdge(e) error                 // cascades into faces
//	RemoveVertex(v) error               // cascades into edges and faces
//
// Adjacency repair:
//
//	FindFreeIncident(v) EdgeID          // open slot in a fan, or NoEdge
//	FindFreeIncidentBetween(s, e) EdgeID
//	MakeAdjacent(in, out) bool          // relink a fan so in.Next == out
//
// Invariants after every completed operation:
//
//  1. e.Symmetric().Symmetric() == e; the symmetric leaves e's destination.
//  2. Fan closure: stepping e = e.Symmetric().Next from v's edge returns to
//     it after deg(v) steps.
//  3. Loop closure: stepping e = e.Next from f's edge returns after exactly
//     the face's edge count.
//  4. A half-edge carries at most one face and only while in that loop.
//  5. IDs are dense: removal of slot i shifts every later ID down, so IDs
//     held by callers for later elements become stale.
//
// Validate checks all of the above and is the intended assertion in tests.
//
// Concurrency: a Mesh is not synchronized. Mutate from one goroutine at a
// time; concurrent readers are safe only while no writer runs.
//
// Errors:
//
//	ErrInvalidTopology - rejected AddEdge/AddFace.
//	ErrVertexNotFound, ErrEdgeNotFound, ErrFaceNotFound - ID out of range.
//	ErrCorrupt         - Validate failure.
package mesh
