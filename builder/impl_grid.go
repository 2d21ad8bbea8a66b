// SPDX-License-Identifier: MIT
// Package: halfmesh/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 2 and cols ≥ 2 (else ErrTooFewVertices).
//   • Vertex (r,c) gets index r*cols + c and position (c, r, 0).
//   • Quad (r,c) is (a, a+1, a+cols+1, a+cols) with a = r*cols + c, emitted
//     row-major; every quad faces +z.
//
// Complexity:
//   • Time: O(rows·cols) vertices, edges and faces.

package builder

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/halfmesh/mesh"
)

// Grid returns a Constructor that builds a rows×cols vertex sheet of quads.
func Grid(rows, cols int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		positions := make([]mgl32.Vec3, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				positions = append(positions, mgl32.Vec3{float32(c), float32(r), 0})
			}
		}
		faces := make([][]int, 0, (rows-1)*(cols-1))
		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				a := r*cols + c
				faces = append(faces, []int{a, a + 1, a + cols + 1, a + cols})
			}
		}
		_, err := emitPolygons(m, cfg, MethodGrid, positions, faces)

		return err
	}
}
