// SPDX-License-Identifier: MIT
// Package dijkstra declares options and sentinel errors for shortest paths
// along mesh edges.
package dijkstra

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/halfmesh/mesh"
)

// Sentinel errors for Dijkstra.
var (
	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source vertex is required")

	// ErrNilMesh indicates that a nil *mesh.Mesh was passed to Dijkstra.
	ErrNilMesh = errors.New("dijkstra: mesh is nil")

	// ErrVertexNotFound indicates that the source vertex is outside the store.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in mesh")

	// ErrNegativeWeight indicates that the weight function returned a
	// negative or NaN value for some half-edge.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Infinity is the distance reported for unreachable vertices.
var Infinity = float32(math.Inf(1))

// WeightFunc returns the cost of walking half-edge e.
type WeightFunc func(m *mesh.Mesh, e mesh.EdgeID) float32

// EdgeLength weighs a half-edge by the Euclidean distance between its ends.
func EdgeLength(m *mesh.Mesh, e mesh.EdgeID) float32 {
	return m.Position(m.Destination(e)).Sub(m.Position(m.Origin(e))).Len()
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex (required).
// Weight           – cost of each half-edge; defaults to EdgeLength.
// ReturnPath       – if true, return the predecessor slice; otherwise nil.
// MaxDistance      – vertices farther than this are left at Infinity.
// InfEdgeThreshold – half-edges with weight ≥ threshold are walls.
type Options struct {
	Source           mesh.VertexID
	Weight           WeightFunc
	ReturnPath       bool
	MaxDistance      float32
	InfEdgeThreshold float32
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v mesh.VertexID) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithWeight replaces the EdgeLength cost. A nil fn is ignored.
func WithWeight(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics on a negative value.
func WithMaxDistance(max float32) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats half-edges with weight ≥ threshold as walls.
// Panics on a zero or negative value.
func WithInfEdgeThreshold(threshold float32) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:           NoVertex (must be overridden).
//   - Weight:           EdgeLength.
//   - ReturnPath:       false.
//   - MaxDistance:      Infinity.
//   - InfEdgeThreshold: Infinity.
func DefaultOptions() Options {
	return Options{
		Source:           mesh.NoVertex,
		Weight:           EdgeLength,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
