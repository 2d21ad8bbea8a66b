// SPDX-License-Identifier: MIT

// Package builder provides deterministic "functional-options"-style
// constructors for half-edge meshes: Platonic solids, flat fixtures
// (polygon, wheel, grid), an indexed polygon loader and the dual of a
// closed mesh.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMesh:      creates a mesh and runs Constructors in order.
//     – Constructor:    func(*mesh.Mesh, builderConfig) error.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithScale, WithOffset: placement of canonical positions.
//     – WithEdgesFirst: add every edge before any face.
//     – WithSeed, WithRand, WithJitter: deterministic Gaussian jitter.
//   - Constructors:
//     – PlatonicSolid(name), Polygon(n), Wheel(n), Grid(rows, cols),
//       Polygons(positions, faces), Dual(src).
//
// Guarantees:
//
//   - Constructors append: several of them compose into one mesh with
//     disjoint components.
//   - Every emitted face is oriented counter-clockwise seen from outside
//     (or from +z for flat fixtures), so each directed edge bounds at most
//     one face.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors return sentinel errors (ErrTooFewVertices, ErrBadFace,
//     ErrOptionViolation, ErrConstructFailed) wrapped with %w.
package builder
