// SPDX-License-Identifier: MIT
// Package dijkstra computes single-source shortest paths over the edge
// graph of a mesh.Mesh.
//
// Each undirected edge is walkable both ways; the cost of a step is given
// per half-edge by a WeightFunc, by default EdgeLength (Euclidean length),
// so the result approximates geodesic distance on the surface.
//
// Options:
//
//	Source(v)                 required start vertex
//	WithWeight(fn)            custom per-half-edge cost (must be ≥ 0)
//	WithReturnPath()          also return arriving half-edges; see Path
//	WithMaxDistance(d)        stop once the frontier passes d
//	WithInfEdgeThreshold(t)   half-edges with cost ≥ t are walls
//
// Implementation notes:
//
//   - Weights are evaluated once per half-edge up front; a negative or NaN
//     weight fails with ErrNegativeWeight before any search.
//   - The frontier is a binary heap with lazy decrease-key: improved
//     distances are pushed again and stale entries skipped on pop.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra
