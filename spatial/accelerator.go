// SPDX-License-Identifier: MIT

package spatial

import (
	"cmp"
	"slices"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/halfmesh/mesh"
)

// leafSize is the largest triangle count stored in a BVH leaf.
const leafSize = 4

// Hit describes the nearest intersection found by QueryNearest.
type Hit struct {
	T     float32     // ray parameter of the hit
	Face  mesh.FaceID // face owning the hit triangle
	U, V  float32     // barycentric coordinates inside that triangle
	Point mgl32.Vec3  // Extrapolate(T)
}

// triangle is one fan triangle of a face.
type triangle struct {
	face     mesh.FaceID
	a, b, c  mgl32.Vec3
	box      AABB
	centroid mgl32.Vec3
}

// node is a BVH node. Leaves hold tris[start:start+count]; inner nodes
// have count == 0 and two children.
type node struct {
	box         AABB
	left, right int
	start       int
	count       int
}

// Accelerator is a bounding-volume hierarchy over the faces of a mesh.
type Accelerator struct {
	tris  []triangle
	nodes []node
}

// span is a pending build task: node index plus its triangle range.
type span struct {
	node, start, end int
}

// NewAccelerator fan-triangulates every face of m and builds a median-split
// BVH over the triangles. Faces with fewer than three corners add nothing.
//
// Complexity: O(T log² T) for T triangles.
func NewAccelerator(m *mesh.Mesh) *Accelerator {
	acc := &Accelerator{}
	m.ForEachFace(func(f mesh.FaceID, ps []mgl32.Vec3) bool {
		for i := 1; i+1 < len(ps); i++ {
			t := triangle{face: f, a: ps[0], b: ps[i], c: ps[i+1]}
			t.box = EmptyAABB().Extend(t.a).Extend(t.b).Extend(t.c)
			t.centroid = t.a.Add(t.b).Add(t.c).Mul(1.0 / 3)
			acc.tris = append(acc.tris, t)
		}
		return true
	})
	if len(acc.tris) == 0 {
		return acc
	}

	acc.nodes = append(acc.nodes, node{})
	work := arraystack.New()
	work.Push(span{node: 0, start: 0, end: len(acc.tris)})
	for !work.Empty() {
		top, _ := work.Pop()
		s := top.(span)

		box, centers := EmptyAABB(), EmptyAABB()
		for _, t := range acc.tris[s.start:s.end] {
			box = box.Union(t.box)
			centers = centers.Extend(t.centroid)
		}
		acc.nodes[s.node].box = box

		if s.end-s.start <= leafSize {
			acc.nodes[s.node].start, acc.nodes[s.node].count = s.start, s.end-s.start
			continue
		}

		axis := centers.LongestAxis()
		slices.SortStableFunc(acc.tris[s.start:s.end], func(x, y triangle) int {
			return cmp.Compare(x.centroid[axis], y.centroid[axis])
		})
		mid := (s.start + s.end) / 2

		left := len(acc.nodes)
		acc.nodes = append(acc.nodes, node{}, node{})
		acc.nodes[s.node].left, acc.nodes[s.node].right = left, left+1
		work.Push(span{node: left + 1, start: mid, end: s.end})
		work.Push(span{node: left, start: s.start, end: mid})
	}

	return acc
}

// TriangleCount returns the number of triangles indexed.
func (acc *Accelerator) TriangleCount() int { return len(acc.tris) }

// Bounds returns the box around every indexed triangle.
func (acc *Accelerator) Bounds() AABB {
	if len(acc.nodes) == 0 {
		return EmptyAABB()
	}

	return acc.nodes[0].box
}

// candidate is a node queued for a query with its ray entry parameter.
type candidate struct {
	node  int
	entry float32
}

// QueryNearest returns the closest intersection of r with the indexed
// faces. Nodes are visited nearest-entry first, and traversal stops once no
// queued node can beat the best hit.
//
// Complexity: O(log T) typical, O(T) worst case.
func (acc *Accelerator) QueryNearest(r Ray) (Hit, bool) {
	var best Hit
	found := false
	if len(acc.nodes) == 0 {
		return best, false
	}
	t0, _, ok := RayAABB(r, acc.nodes[0].box)
	if !ok {
		return best, false
	}

	queue := binaryheap.NewWith(func(a, b interface{}) int {
		return cmp.Compare(a.(candidate).entry, b.(candidate).entry)
	})
	queue.Push(candidate{node: 0, entry: t0})
	for !queue.Empty() {
		top, _ := queue.Pop()
		c := top.(candidate)
		if found && c.entry > best.T {
			break
		}

		n := acc.nodes[c.node]
		if n.count > 0 {
			for _, tri := range acc.tris[n.start : n.start+n.count] {
				t, u, v, hit := RayTriangle(r, tri.a, tri.b, tri.c)
				if hit && (!found || t < best.T) {
					best = Hit{T: t, Face: tri.face, U: u, V: v}
					found = true
				}
			}
			continue
		}
		for _, child := range [2]int{n.left, n.right} {
			if entry, _, ok := RayAABB(r, acc.nodes[child].box); ok && (!found || entry <= best.T) {
				queue.Push(candidate{node: child, entry: entry})
			}
		}
	}
	if found {
		best.Point = r.Extrapolate(best.T)
	}

	return best, found
}
