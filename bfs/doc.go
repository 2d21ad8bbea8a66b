// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first walks over a mesh.Mesh, returning
// step distances, parent links, and visit order.
//
// What
//
//   - Vertices: walk the edge graph from a start vertex. Neighbors of v are
//     the destinations of its fan, in fan order.
//   - Faces: walk the dual graph from a start face. Neighbors of f are the
//     faces across its edges, in loop order; boundary edges are skipped.
//   - Components: label every vertex with its connected component.
//   - Both walks return a BFSResult with Order, Depth and Parent, and
//     support hooks at three stages:
//   - OnEnqueue (before an element is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - WithFilterNeighbor skips individual steps; WithMaxDepth bounds the
//     ring count (d>0) or lifts the bound (d==0).
//
// Why
//
//   - k-ring neighborhoods are the usual support of smoothing and
//     curvature stencils.
//   - Face flood fill finds the patches left after local deletions.
//
// Determinism
//
//	Fan and loop order depend only on the edit history of the mesh, so a
//	given mesh always yields the same visit sequence.
//
// Complexity
//
//	Time:   O(V + E) for Vertices, O(F + E) for Faces
//	Memory: O(V) or O(F) for the result and the queue
//
// Errors
//
//	ErrMeshNil          - nil mesh
//	ErrStartNotFound    - start ID outside its store
//	ErrOptionViolation  - e.g. negative MaxDepth
//	context.Canceled / DeadlineExceeded
//	any error returned by OnVisit (wrapped)
package bfs
