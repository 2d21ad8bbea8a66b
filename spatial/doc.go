// SPDX-License-Identifier: MIT

// Package spatial answers ray queries against a half-edge mesh.
//
// It provides the geometric primitives (Ray, AABB, ray–box and
// ray–triangle tests) and an Accelerator: a bounding-volume hierarchy over
// the fan triangulation of every mesh face.
//
// Lifecycle:
//   - NewAccelerator snapshots the positions and faces of a mesh. Later mesh
//     edits are not observed; rebuild after editing.
//   - QueryNearest returns the closest hit along a ray with the FaceID of
//     the face that produced it.
//
// Concurrency:
//   - An Accelerator is immutable after construction; concurrent queries
//     are safe.
//
// Conventions:
//   - Ray directions need not be normalized; hit distances T are in units
//     of the direction length.
//   - Triangles are hit from both sides.
package spatial
