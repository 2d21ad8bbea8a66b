// Package halfmesh is an in-memory kernel for polygon surfaces stored as a
// half-edge mesh, with builders for common fixtures and ray queries on top.
//
// What is halfmesh?
//
//	A small library that brings together:
//		• Core topology: vertices, half-edge pairs and faces in dense arenas
//		• Local editing: add/remove vertex, edge and face with cascades
//		• Adjacency repair: AddFace stitches fans, atomically on failure
//		• Self-check: Validate walks every fan and face loop
//		• Builders: Platonic solids, polygon, wheel, grid, indexed polygons, duals
//		• Spatial queries: BVH accelerator answering nearest-hit rays
//		• Walks: vertex rings, face flood fill, components, edge-length paths
//
// Everything is organized under five subpackages plus a command:
//
//	mesh/             Mesh, IDs, editing operators, traversal, Validate, Stats
//	builder/          BuildMesh + Constructors configured by functional options
//	spatial/          Ray, AABB, ray-triangle, Accelerator (BVH)
//	bfs/              breadth-first vertex and face walks, Components
//	dijkstra/         shortest edge paths weighted by length
//	cmd/meshinspect/  build, edit, validate, walk and pick from the command line
//
// Quick ASCII example:
//
//	    2───────1
//	    │ ╲  f1 │
//	    │  ╲    │      two faces sharing the half-edge pair 0↔2;
//	    │ f0 ╲  │      each face walks its loop through next
//	    3───────0
//
// IDs are dense indices: removing an element shifts every later ID of the
// same kind down by one, so re-read IDs after a removal.
//
//	go get github.com/katalvlaran/halfmesh
package halfmesh
