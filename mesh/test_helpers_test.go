// SPDX-License-Identifier: MIT
// Package mesh_test contains fixtures and assertion helpers for mesh tests.
//
// Purpose:
//   - Provide small deterministic meshes (triangle, tetrahedron, strips).
//   - Keep invariant checks in one place (MustValid).

package mesh_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/halfmesh/mesh"
)

// Common positions used across mesh tests.
var (
	P0 = mgl32.Vec3{0, 0, 0}
	P1 = mgl32.Vec3{1, 0, 0}
	P2 = mgl32.Vec3{0, 1, 0}
	P3 = mgl32.Vec3{0, 0, 1}
	P4 = mgl32.Vec3{1, 1, 0}
)

// Face index lists for the fixtures (consistently oriented: every directed
// edge is used by at most one face).
var (
	TetrahedronFaces = [][]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}}
	TwoTriangleFaces = [][]int{{0, 1, 2}, {0, 2, 3}}
	ThreeTriangles   = [][]int{{0, 1, 2}, {0, 2, 3}, {2, 1, 4}}
)

// edgeKey identifies a directed edge by its endpoint indices.
type edgeKey struct{ a, b int }

// BuildPolygons BUILDS a mesh from positions and face index lists.
//
// Implementation:
//   - Stage 1: AddVertex for every position in order.
//   - Stage 2: For each face, reuse the half-edge a→b (or the symmetric of
//     b→a) when the pair exists, otherwise AddEdge(a,b); then AddFace.
//
// Edges and faces are interleaved, which is the order an indexed loader uses.
// Returns the mesh and the directed edge lookup.
func BuildPolygons(t *testing.T, positions []mgl32.Vec3, faces [][]int) (*mesh.Mesh, map[edgeKey]mesh.EdgeID) {
	t.Helper()
	m := mesh.New()
	for _, p := range positions {
		m.AddVertex(p)
	}
	edges := make(map[edgeKey]mesh.EdgeID)
	for _, face := range faces {
		loop := make([]mesh.EdgeID, len(face))
		for i := range face {
			a, b := face[i], face[(i+1)%len(face)]
			if e, ok := edges[edgeKey{a, b}]; ok {
				loop[i] = e
				continue
			}
			e, err := m.AddEdge(mesh.VertexID(a), mesh.VertexID(b))
			require.NoError(t, err, "AddEdge(%d,%d)", a, b)
			edges[edgeKey{a, b}] = e
			edges[edgeKey{b, a}] = e.Symmetric()
			loop[i] = e
		}
		_, err := m.AddFace(loop)
		require.NoError(t, err, "AddFace(%v)", face)
	}

	return m, edges
}

// BuildTetrahedron returns the closed 4-face fixture.
func BuildTetrahedron(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, _ := BuildPolygons(t, []mgl32.Vec3{P0, P1, P2, P3}, TetrahedronFaces)

	return m
}

// MustValid FAILS the test if m breaks any structural invariant.
func MustValid(t *testing.T, m *mesh.Mesh) {
	t.Helper()
	require.NoError(t, m.Validate())
}

// MustCounts FAILS the test unless m has exactly v vertices, e edges and f faces.
func MustCounts(t *testing.T, m *mesh.Mesh, v, e, f int) {
	t.Helper()
	require.Equal(t, v, m.VertexCount(), "vertex count")
	require.Equal(t, e, m.EdgeCount(), "edge count")
	require.Equal(t, f, m.FaceCount(), "face count")
}

// faceVertexInts returns FaceVertices(f) as plain ints for compact asserts.
func faceVertexInts(m *mesh.Mesh, f mesh.FaceID) []int {
	vs := m.FaceVertices(f)
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = int(v)
	}

	return out
}
