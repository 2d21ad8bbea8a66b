// SPDX-License-Identifier: MIT
// Package bfs: walker state shared by the vertex and face walks.

package bfs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/halfmesh/mesh"
)

// queueItem pairs an element ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts      BFSOptions
	ctx       context.Context
	neighbors func(id int) []int
	queue     []queueItem
	res       *BFSResult
}

// Vertices walks the vertex graph of m from start, stepping along edges in
// fan order. Returns ErrMeshNil, ErrStartNotFound, ErrOptionViolation, a
// context error, or the error returned by OnVisit.
//
// Complexity: O(V + E).
func Vertices(m *mesh.Mesh, start mesh.VertexID, opts ...Option) (*BFSResult, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	if start < 0 || int(start) >= m.VertexCount() {
		return nil, errors.Wrapf(ErrStartNotFound, "vertex %d", start)
	}

	return run(m.VertexCount(), int(start), vertexNeighbors(m), opts)
}

// Faces walks the dual graph of m from start: two faces are neighbors when
// they share an edge. Neighbors are taken in loop order of the current face.
//
// Complexity: O(F + E).
func Faces(m *mesh.Mesh, start mesh.FaceID, opts ...Option) (*BFSResult, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	if start < 0 || int(start) >= m.FaceCount() {
		return nil, errors.Wrapf(ErrStartNotFound, "face %d", start)
	}

	return run(m.FaceCount(), int(start), faceNeighbors(m), opts)
}

// Components labels every vertex of m with the index of its connected
// component, numbered in order of each component's lowest VertexID.
// An isolated vertex is a component of its own.
func Components(m *mesh.Mesh) (labels []int, count int) {
	if m == nil {
		return nil, 0
	}
	n := m.VertexCount()
	labels = make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	next := vertexNeighbors(m)
	for v := 0; v < n; v++ {
		if labels[v] >= 0 {
			continue
		}
		labels[v] = count
		stack := []int{v}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nbr := range next(cur) {
				if labels[nbr] < 0 {
					labels[nbr] = count
					stack = append(stack, nbr)
				}
			}
		}
		count++
	}

	return labels, count
}

func vertexNeighbors(m *mesh.Mesh) func(int) []int {
	return func(id int) []int {
		fan := m.Fan(mesh.VertexID(id))
		out := make([]int, len(fan))
		for i, e := range fan {
			out[i] = int(m.Destination(e))
		}
		return out
	}
}

func faceNeighbors(m *mesh.Mesh) func(int) []int {
	return func(id int) []int {
		var out []int
		for _, e := range m.FaceLoop(mesh.FaceID(id)) {
			if g := m.FaceOf(e.Symmetric()); g != mesh.NoFace {
				out = append(out, int(g))
			}
		}
		return out
	}
}

// run builds options, seeds the queue with start and drains it.
func run(n, start int, neighbors func(int) []int, opts []Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts:      o,
		ctx:       o.Ctx,
		neighbors: neighbors,
		queue:     make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks id reached at depth d, records its parent, calls OnEnqueue
// and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the element in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return errors.Wrapf(err, "bfs: OnVisit error at %d", item.id)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.neighbors(item.id) {
		if w.res.Depth[nbr] >= 0 || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}
}
