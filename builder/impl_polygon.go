// SPDX-License-Identifier: MIT
// Package: halfmesh/builder
//
// impl_polygon.go: implementation of Polygon(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices i=0..n-1 on the unit circle at angle 2πi/n (z=0).
//   • One face over all vertices in index order; its normal is +z.
//   • Every outer half-edge stays a boundary.

package builder

import (
	"github.com/katalvlaran/halfmesh/mesh"
)

// Polygon returns a Constructor that builds a single n-gon.
func Polygon(n int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodPolygon, "n", n, MinPolygonNodes); err != nil {
			return err
		}
		face := make([]int, n)
		for i := range face {
			face[i] = i
		}
		_, err := emitPolygons(m, cfg, MethodPolygon, ringPositions(n), [][]int{face})

		return err
	}
}
