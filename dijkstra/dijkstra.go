// SPDX-License-Identifier: MIT
// Package dijkstra: single-source shortest paths along mesh edges.

package dijkstra

import (
	"math"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/pkg/errors"

	"github.com/katalvlaran/halfmesh/mesh"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of m, walking edges in both directions at the cost given by Options.Weight.
//
// Returns:
//
//   - dist: indexed by VertexID; Infinity if unreachable or beyond MaxDistance.
//   - prev: if ReturnPath, indexed by VertexID, the half-edge that arrives
//     at v on its shortest path, or NoEdge for the source and unreached
//     vertices; nil otherwise.
//   - err:  ErrNoSource, ErrNilMesh, ErrVertexNotFound or ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(m *mesh.Mesh, opts ...Option) ([]float32, []mesh.EdgeID, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == mesh.NoVertex {
		return nil, nil, ErrNoSource
	}
	if m == nil {
		return nil, nil, ErrNilMesh
	}
	if cfg.Source < 0 || int(cfg.Source) >= m.VertexCount() {
		return nil, nil, errors.Wrapf(ErrVertexNotFound, "vertex %d", cfg.Source)
	}

	// Pre-scan every half-edge so a bad weight fails fast.
	weights := make([]float32, m.HalfEdgeCount())
	for i := range weights {
		e := mesh.EdgeID(i)
		w := cfg.Weight(m, e)
		if w < 0 || math.IsNaN(float64(w)) {
			return nil, nil, errors.Wrapf(ErrNegativeWeight, "half-edge %d (%d→%d) weight=%v",
				e, m.Origin(e), m.Destination(e), w)
		}
		weights[i] = w
	}

	r := &runner{
		m:       m,
		options: cfg,
		weights: weights,
		dist:    make([]float32, m.VertexCount()),
		prev:    make([]mesh.EdgeID, m.VertexCount()),
		visited: make([]bool, m.VertexCount()),
		pq:      binaryheap.NewWith(byDist),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// Path rebuilds the vertex sequence from the source to dest out of the
// predecessor slice returned by Dijkstra. Returns nil if dest was not reached.
func Path(m *mesh.Mesh, prev []mesh.EdgeID, dest mesh.VertexID) []mesh.VertexID {
	if dest < 0 || int(dest) >= len(prev) {
		return nil
	}
	path := []mesh.VertexID{dest}
	for e := prev[dest]; e != mesh.NoEdge; e = prev[m.Origin(e)] {
		path = append(path, m.Origin(e))
		if len(path) > len(prev) {
			return nil
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *mesh.Mesh
	options Options
	weights []float32
	dist    []float32
	prev    []mesh.EdgeID
	visited []bool
	pq      *binaryheap.Heap
}

// nodeItem is a vertex and a tentative distance. Stale entries stay in the
// heap and are skipped when popped.
type nodeItem struct {
	id   mesh.VertexID
	dist float32
}

func byDist(a, b interface{}) int {
	da, db := a.(nodeItem).dist, b.(nodeItem).dist
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	default:
		return 0
	}
}

// init sets every distance to Infinity and pushes the source at 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Infinity
		r.prev[i] = mesh.NoEdge
	}
	r.dist[r.options.Source] = 0
	r.pq.Push(nodeItem{id: r.options.Source, dist: 0})
}

// process pops vertices in order of distance until the heap drains or the
// closest entry lies beyond MaxDistance.
func (r *runner) process() {
	for {
		top, ok := r.pq.Pop()
		if !ok {
			return
		}
		item := top.(nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			return
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax walks the fan of u and improves the distance of each neighbor.
func (r *runner) relax(u mesh.VertexID) {
	for _, e := range r.m.Fan(u) {
		w := r.weights[e]
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		v := r.m.Destination(e)
		nd := r.dist[u] + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = e
		r.pq.Push(nodeItem{id: v, dist: nd})
	}
}
