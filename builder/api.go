// SPDX-License-Identifier: MIT
// Package: halfmesh/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMesh(opts, cons...). Creates m, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/halfmesh/mesh"
)

// Constructor applies a deterministic mesh mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching the mesh and return sentinel errors (no panics).
//   - Append only: new vertices start at m.VertexCount(), existing elements are untouched.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(m *mesh.Mesh, cfg builderConfig) error

// BuildMesh creates a new mesh.Mesh, resolves the builder configuration from
// opts, and applies all constructors in order. Several constructors compose
// into one mesh with disjoint components.
// Any constructor error is wrapped with the context "BuildMesh: %w" and
// returned immediately; the partial mesh is discarded.
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrBadFace, ...) and,
//     for mesh rejections, the mesh sentinels as well.
func BuildMesh(opts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	m := mesh.New()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildMesh, i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildMesh, err)
		}
	}

	return m, nil
}

// =============================================================================
// Factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Every factory produces consistently oriented faces (counter-clockwise seen
// from outside, or from +z for flat constructions).

// PlatonicSolid builds one of the five closed Platonic surfaces.
// Complexity: O(V+E+F) for the chosen solid.
//func PlatonicSolid(name PlatonicName) Constructor

// Polygon builds a single n-gon on the unit circle (n ≥ 3).
// Complexity: O(n).
//func Polygon(n int) Constructor

// Wheel builds n-1 triangles fanned around a hub at the origin (n ≥ 4).
// Complexity: O(n).
//func Wheel(n int) Constructor

// Grid builds a rows×cols vertex sheet of (rows-1)(cols-1) unit quads.
// Complexity: O(rows·cols).
//func Grid(rows, cols int) Constructor

// Polygons builds an indexed polygon soup (positions + per-face index lists).
// Complexity: O(V + Σ|face|·deg).
//func Polygons(positions []mgl32.Vec3, faces [][]int) Constructor

// Dual builds the dual of a closed mesh: one vertex per source face at its
// centroid, one face per source vertex.
// Complexity: O(V+E+F) of src.
//func Dual(src *mesh.Mesh) Constructor
