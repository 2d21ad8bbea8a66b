// SPDX-License-Identifier: MIT
// Package: halfmesh/builder
//
// impl_platonic.go: implementation of PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation (invalid parameter).
//   • Emits canonical positions and outward faces from variants_platonic.go.
//   • The result is closed with Euler characteristic 2.
//
// Complexity:
//   • Time: O(V+E+F) for the selected solid (constants: V≤20, F≤20).

package builder

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/halfmesh/mesh"
)

// PlatonicSolid returns a Constructor that builds the chosen Platonic surface.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		positions, faces, err := platonicPolygons(name)
		if err != nil {
			return err
		}
		ids, err := emitPolygons(m, cfg, MethodPlatonicSolid, positions, faces)
		if err != nil {
			return err
		}
		if want := platonicCounts[name]; len(positions) != want[0] || len(ids) != want[2] {
			return builderErrorf(MethodPlatonicSolid, ErrConstructFailed, "%s: got V=%d F=%d", name, len(positions), len(ids))
		}

		return nil
	}
}

// platonicPolygons returns the canonical positions and faces of name.
func platonicPolygons(name PlatonicName) ([]mgl32.Vec3, [][]int, error) {
	switch name {
	case Tetrahedron:
		return tetrahedronPositions, tetrahedronFaces, nil
	case Cube:
		return cubePositions(), cubeFaces, nil
	case Octahedron:
		return octahedronPositions, octahedronFaces, nil
	case Icosahedron:
		ps, fs := icosahedron()
		return ps, fs, nil
	case Dodecahedron:
		ico := mesh.New()
		ps, fs := icosahedron()
		if _, err := emitPolygons(ico, newBuilderConfig(), MethodPlatonicSolid, ps, fs); err != nil {
			return nil, nil, err
		}
		return dualPolygons(ico)
	default:
		return nil, nil, builderErrorf(MethodPlatonicSolid, ErrOptionViolation, "unknown solid %q", name)
	}
}
