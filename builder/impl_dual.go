// SPDX-License-Identifier: MIT
// Package: halfmesh/builder
//
// impl_dual.go: implementation of Dual(src) constructor.
//
// Contract:
//   • src must be closed (every half-edge bounds a face) and every vertex
//     must have degree ≥ 3; otherwise ErrConstructFailed.
//   • Dual vertex i sits at the centroid of src face i.
//   • Dual face i corresponds to src vertex i and lists the faces around it
//     in reverse fan order, which keeps the source orientation.
//   • src is only read.
//
// Complexity:
//   • Time: O(V+E+F) of src, plus emission.

package builder

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/halfmesh/mesh"
)

// minDualDegree is the smallest vertex degree whose dual face is a polygon.
const minDualDegree = 3

// Dual returns a Constructor that appends the dual of src.
func Dual(src *mesh.Mesh) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		positions, faces, err := dualPolygons(src)
		if err != nil {
			return err
		}
		_, err = emitPolygons(m, cfg, MethodDual, positions, faces)

		return err
	}
}

// dualPolygons computes dual positions and faces of src without touching any mesh.
func dualPolygons(src *mesh.Mesh) ([]mgl32.Vec3, [][]int, error) {
	if src == nil || !src.IsClosed() {
		return nil, nil, builderErrorf(MethodDual, ErrConstructFailed, "source mesh is not closed")
	}

	positions := make([]mgl32.Vec3, src.FaceCount())
	src.ForEachFace(func(f mesh.FaceID, ps []mgl32.Vec3) bool {
		var c mgl32.Vec3
		for _, p := range ps {
			c = c.Add(p)
		}
		positions[f] = c.Mul(1 / float32(len(ps)))
		return true
	})

	faces := make([][]int, src.VertexCount())
	for v := range faces {
		fan := src.Fan(mesh.VertexID(v))
		if len(fan) < minDualDegree {
			return nil, nil, builderErrorf(MethodDual, ErrConstructFailed, "vertex %d has degree %d", v, len(fan))
		}
		face := make([]int, len(fan))
		for i, e := range fan {
			face[len(fan)-1-i] = int(src.FaceOf(e))
		}
		faces[v] = face
	}

	return positions, faces, nil
}
