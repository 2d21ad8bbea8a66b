// SPDX-License-Identifier: MIT
// Package: halfmesh/builder
//
// impl_polygons.go: implementation of Polygons(positions, faces), the
// indexed polygon loader path.
//
// Contract:
//   • Every face lists ≥3 distinct indices into positions (else ErrBadFace).
//     The whole list is checked before the mesh is touched.
//   • Faces must be consistently oriented: a directed edge may bound at
//     most one face. Violations surface from the mesh as
//     ErrConstructFailed + mesh.ErrInvalidTopology.
//   • positions and faces are not retained.

package builder

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/halfmesh/mesh"
)

// Polygons returns a Constructor that loads an indexed polygon soup.
func Polygons(positions []mgl32.Vec3, faces [][]int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateFaces(MethodPolygons, len(positions), faces); err != nil {
			return err
		}
		_, err := emitPolygons(m, cfg, MethodPolygons, positions, faces)

		return err
	}
}
