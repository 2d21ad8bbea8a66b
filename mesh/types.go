// SPDX-License-Identifier: MIT
// Package mesh defines the Mesh arena and its Vertex, HalfEdge, and Face
// records, and provides the Euler-style operators that are the only
// sanctioned way to mutate topology.
//
// This file declares element IDs, the internal records, the exported
// read-only snapshots, sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrInvalidTopology - AddFace/AddEdge input would break 2-manifold topology.
//	ErrVertexNotFound  - vertex ID outside the vertex store.
//	ErrEdgeNotFound    - half-edge ID outside the edge store.
//	ErrFaceNotFound    - face ID outside the face store.
//	ErrCorrupt         - Validate found a broken invariant.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Sentinel errors for mesh operations.
var (
	// ErrInvalidTopology indicates an edit that would produce an empty,
	// disconnected, doubly-used or non-manifold configuration.
	ErrInvalidTopology = errors.New("mesh: invalid topology")

	// ErrVertexNotFound indicates an operation referenced a vertex outside the store.
	ErrVertexNotFound = errors.New("mesh: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a half-edge outside the store.
	ErrEdgeNotFound = errors.New("mesh: edge not found")

	// ErrFaceNotFound indicates an operation referenced a face outside the store.
	ErrFaceNotFound = errors.New("mesh: face not found")

	// ErrCorrupt indicates Validate detected a broken structural invariant.
	ErrCorrupt = errors.New("mesh: corrupt structure")
)

// VertexID is the position of a vertex in the vertex store.
type VertexID int

// EdgeID is the position of a half-edge in the half-edge store.
// The two halves of undirected edge p live at 2p and 2p+1.
type EdgeID int

// FaceID is the position of a face in the face store.
type FaceID int

// Null references.
const (
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
	NoFace   FaceID   = -1
)

// Symmetric returns the oppositely directed half-edge of the same pair.
func (e EdgeID) Symmetric() EdgeID { return e ^ 1 }

// Pair returns the index of the undirected edge e belongs to.
func (e EdgeID) Pair() int { return int(e) >> 1 }

// vertexRec is the stored form of a vertex.
type vertexRec struct {
	position mgl32.Vec3
	edge     EdgeID // one outgoing half-edge, NoEdge when isolated
}

// halfEdgeRec is the stored form of a half-edge.
type halfEdgeRec struct {
	origin   VertexID
	next     EdgeID
	previous EdgeID
	face     FaceID
}

// faceRec is the stored form of a face.
type faceRec struct {
	edge EdgeID // one boundary half-edge
}

// Vertex is a read-only snapshot of a stored vertex.
type Vertex struct {
	ID       VertexID
	Position mgl32.Vec3
	Edge     EdgeID
}

// HalfEdge is a read-only snapshot of a stored half-edge.
type HalfEdge struct {
	ID        EdgeID
	Origin    VertexID
	Symmetric EdgeID
	Next      EdgeID
	Previous  EdgeID
	Face      FaceID
}

// Face is a read-only snapshot of a stored face.
type Face struct {
	ID   FaceID
	Edge EdgeID
}

// Mesh is a half-edge surface held in three dense stores.
//
// Relations between elements are IDs into the owning stores, so a Mesh can be
// copied slot-for-slot and never aliases another Mesh. Mesh is not safe for
// concurrent mutation; concurrent readers are fine while no writer is active.
type Mesh struct {
	vertices  []vertexRec
	halfEdges []halfEdgeRec
	faces     []faceRec
}

// New returns an empty Mesh.
// Complexity: O(1)
func New() *Mesh {
	return &Mesh{}
}

// MeshStats is a snapshot of store sizes and simple topological counters.
type MeshStats struct {
	VertexCount int
	EdgeCount   int // undirected edges (half-edge pairs)
	FaceCount   int

	BoundaryHalfEdges int // half-edges without a face
	IsolatedVertices  int // vertices without an incident edge

	// EulerCharacteristic is V - E + F; 2 for a closed genus-0 surface.
	EulerCharacteristic int
}
