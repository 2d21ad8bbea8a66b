// SPDX-License-Identifier: MIT
// Package: halfmesh/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = a rim of n-1 vertices plus a hub, triangulated as a fan.
//   • Therefore, n ≥ 4 (the rim must be a valid polygon: n-1 ≥ 3).
//
// Contract:
//   • Hub is the first new vertex (at the origin); rim vertex i is 1+i on
//     the unit circle.
//   • Triangle i is (hub, 1+i, 1+(i+1) mod (n-1)), emitted in increasing i.
//   • The result is a disc: the rim half-edges facing outward stay boundary.
//
// Complexity:
//   • Time: O(n) vertices + O(2n-2) edges + O(n-1) faces.

package builder

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/halfmesh/mesh"
)

// Wheel returns a Constructor that builds a triangulated wheel Wₙ.
func Wheel(n int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		rim := n - 1
		positions := append([]mgl32.Vec3{{}}, ringPositions(rim)...)
		faces := make([][]int, rim)
		for i := range faces {
			faces[i] = []int{0, 1 + i, 1 + (i+1)%rim}
		}
		_, err := emitPolygons(m, cfg, MethodWheel, positions, faces)

		return err
	}
}
