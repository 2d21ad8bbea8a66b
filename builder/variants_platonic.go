// SPDX-License-Identifier: MIT
// Package: halfmesh/builder
//
// variants_platonic.go: canonical data & generators for Platonic solids.
//
// Design:
//   • Single source of truth for the 5 Platonic surfaces (positions and faces).
//   • Tetrahedron, cube and octahedron are literal tables.
//   • Icosahedron faces are derived from its 12 golden-ratio vertices: every
//     vertex triple at mutual edge length 2, oriented outward, in
//     lexicographic order of the triple.
//   • Dodecahedron is the dual of the icosahedron (see impl_dual.go).
//
// Orientation: every face is counter-clockwise seen from outside.

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  F=4
	Cube                             // V=8,  E=12, F=6
	Octahedron                       // V=6,  E=12, F=8
	Dodecahedron                     // V=20, E=30, F=12
	Icosahedron                      // V=12, E=30, F=20
)

// platonicCounts maps each PlatonicName to its {V, E, F}.
var platonicCounts = map[PlatonicName][3]int{
	Tetrahedron:  {4, 6, 4},
	Cube:         {8, 12, 6},
	Octahedron:   {6, 12, 8},
	Dodecahedron: {20, 30, 12},
	Icosahedron:  {12, 30, 20},
}

// -----------------------------------------------------------------------------
// Tetrahedron: alternate corners of the cube [-1,1]³.
// -----------------------------------------------------------------------------
var (
	tetrahedronPositions = []mgl32.Vec3{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
	tetrahedronFaces     = [][]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}}
)

// -----------------------------------------------------------------------------
// Cube: vertex i has coordinates (x,y,z) = bits (0,1,2) of i mapped to ±1.
//
// Faces:  -z (0,2,3,1)  +z (4,5,7,6)
//         -y (0,1,5,4)  +y (2,6,7,3)
//         -x (0,4,6,2)  +x (1,3,7,5)
// -----------------------------------------------------------------------------
var cubeFaces = [][]int{{0, 2, 3, 1}, {4, 5, 7, 6}, {0, 1, 5, 4}, {2, 6, 7, 3}, {0, 4, 6, 2}, {1, 3, 7, 5}}

func cubePositions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, 8)
	for i := range out {
		out[i] = mgl32.Vec3{sign(i & 1), sign(i>>1&1), sign(i>>2&1)}
	}

	return out
}

// sign maps bit 0 to -1 and bit 1 to +1.
func sign(bit int) float32 {
	return float32(2*bit - 1)
}

// -----------------------------------------------------------------------------
// Octahedron: vertices 0..5 = +x, -x, +y, -y, +z, -z.
// -----------------------------------------------------------------------------
var (
	octahedronPositions = []mgl32.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	octahedronFaces     = [][]int{
		{0, 2, 4}, {1, 4, 2}, {0, 4, 3}, {0, 5, 2},
		{1, 3, 4}, {1, 2, 5}, {0, 3, 5}, {1, 5, 3},
	}
)

// icosahedronEdge2 is the squared edge length of the golden-ratio icosahedron.
const icosahedronEdge2 = 4

// icosahedron returns the 12 vertices (0,±1,±φ), (±1,±φ,0), (±φ,0,±1) and
// its 20 outward triangles.
// Complexity: O(V³) over 12 vertices.
func icosahedron() ([]mgl32.Vec3, [][]int) {
	phi := float32((1 + math.Sqrt(5)) / 2)
	unit := []float32{-1, 1}
	var ps []mgl32.Vec3
	for _, a := range unit {
		for _, b := range unit {
			ps = append(ps, mgl32.Vec3{0, a, b * phi})
		}
	}
	for _, a := range unit {
		for _, b := range unit {
			ps = append(ps, mgl32.Vec3{a, b * phi, 0})
		}
	}
	for _, a := range unit {
		for _, b := range unit {
			ps = append(ps, mgl32.Vec3{a * phi, 0, b})
		}
	}

	adjacent := func(i, j int) bool {
		d := ps[i].Sub(ps[j])
		return mgl32.Abs(d.Dot(d)-icosahedronEdge2) < 1e-4
	}
	var faces [][]int
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if !adjacent(i, j) {
				continue
			}
			for k := j + 1; k < len(ps); k++ {
				if !adjacent(i, k) || !adjacent(j, k) {
					continue
				}
				n := ps[j].Sub(ps[i]).Cross(ps[k].Sub(ps[i]))
				if n.Dot(ps[i].Add(ps[j]).Add(ps[k])) > 0 {
					faces = append(faces, []int{i, j, k})
				} else {
					faces = append(faces, []int{i, k, j})
				}
			}
		}
	}

	return ps, faces
}
