// SPDX-License-Identifier: MIT
// Package builder provides internal helper functions used by Constructor
// implementations to emit indexed polygons into a mesh.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the constructor method name.
//   - Relative indices: face lists index the constructor's own positions;
//     helpers rebase them onto whatever the mesh already holds.
package builder

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/halfmesh/mesh"
)

// emitPolygons appends positions (mapped through cfg.place) and faces to m.
//
// Implementation:
//   - Stage 1: AddVertex for every position; the first gets ID m.VertexCount().
//   - Stage 2 (cfg.edgesFirst only): join every boundary edge of every face.
//   - Stage 3: for each face, join its boundary edges (reusing existing
//     pairs) and AddFace the loop.
//
// Returns the new face IDs in input order. Mesh rejections are wrapped with
// both ErrConstructFailed and the mesh sentinel.
// Complexity: O(Σ|face|·deg) for edge lookups plus AddFace costs.
func emitPolygons(m *mesh.Mesh, cfg builderConfig, method string, positions []mgl32.Vec3, faces [][]int) ([]mesh.FaceID, error) {
	base := mesh.VertexID(m.VertexCount())
	for _, p := range positions {
		m.AddVertex(cfg.place(p))
	}

	if cfg.edgesFirst {
		for fi, face := range faces {
			for i := range face {
				a, b := base+mesh.VertexID(face[i]), base+mesh.VertexID(face[(i+1)%len(face)])
				if _, err := joinEdge(m, a, b); err != nil {
					return nil, fmt.Errorf("%s: face %d: AddEdge(%d,%d): %w: %w", method, fi, a, b, ErrConstructFailed, err)
				}
			}
		}
	}

	out := make([]mesh.FaceID, 0, len(faces))
	for fi, face := range faces {
		loop := make([]mesh.EdgeID, len(face))
		for i := range face {
			a, b := base+mesh.VertexID(face[i]), base+mesh.VertexID(face[(i+1)%len(face)])
			e, err := joinEdge(m, a, b)
			if err != nil {
				return nil, fmt.Errorf("%s: face %d: AddEdge(%d,%d): %w: %w", method, fi, a, b, ErrConstructFailed, err)
			}
			loop[i] = e
		}
		f, err := m.AddFace(loop)
		if err != nil {
			return nil, fmt.Errorf("%s: face %d: %w: %w", method, fi, ErrConstructFailed, err)
		}
		out = append(out, f)
	}

	return out, nil
}

// joinEdge returns the half-edge a→b, adding the edge when a and b are not
// yet joined.
func joinEdge(m *mesh.Mesh, a, b mesh.VertexID) (mesh.EdgeID, error) {
	if e := m.FindEdge(a, b); e != mesh.NoEdge {
		return e, nil
	}

	return m.AddEdge(a, b)
}

// ringPositions returns n points on the unit circle in the z=0 plane,
// counter-clockwise from +x, so a loop over them faces +z.
func ringPositions(n int) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, n)
	for i := range out {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		out[i] = mgl32.Vec3{float32(c), float32(s), 0}
	}

	return out
}
