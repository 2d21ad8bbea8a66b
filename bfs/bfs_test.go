// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"math/bits"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/halfmesh/bfs"
	"github.com/katalvlaran/halfmesh/builder"
	"github.com/katalvlaran/halfmesh/mesh"
)

// cube builds the 8-vertex cube; vertex i sits at the sign bits of i, so
// the step distance between two vertices is the popcount of their XOR.
func cube(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := builder.BuildMesh(nil, builder.PlatonicSolid(builder.Cube))
	require.NoError(t, err)

	return m
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	m := cube(t)

	_, err := bfs.Vertices(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrMeshNil)
	_, err = bfs.Faces(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrMeshNil)

	_, err = bfs.Vertices(m, 8)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)
	_, err = bfs.Vertices(m, mesh.NoVertex)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)
	_, err = bfs.Faces(m, 6)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.Vertices(m, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestVertices_CubeDepths(t *testing.T) {
	m := cube(t)
	res, err := bfs.Vertices(m, 0)
	require.NoError(t, err)

	require.Len(t, res.Order, 8)
	assert.Equal(t, 0, res.Order[0])
	assert.Equal(t, 7, res.Order[7])
	for v := 0; v < 8; v++ {
		assert.Equal(t, bits.OnesCount(uint(v)), res.Depth[v], "vertex %d", v)
	}
	// Depth never decreases along the visit order.
	for i := 1; i < len(res.Order); i++ {
		assert.LessOrEqual(t, res.Depth[res.Order[i-1]], res.Depth[res.Order[i]])
	}
	assert.Equal(t, -1, res.Parent[0])
}

func TestVertices_PathTo(t *testing.T) {
	m := cube(t)
	res, err := bfs.Vertices(m, 0)
	require.NoError(t, err)

	path, err := res.PathTo(7)
	require.NoError(t, err)
	require.Len(t, path, 4)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 7, path[3])
	for i := 1; i < len(path); i++ {
		e := m.FindEdge(mesh.VertexID(path[i-1]), mesh.VertexID(path[i]))
		assert.NotEqual(t, mesh.NoEdge, e, "step %d→%d", path[i-1], path[i])
	}

	start, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, start)

	_, err = res.PathTo(99)
	assert.Error(t, err)
}

func TestVertices_MaxDepth(t *testing.T) {
	m := cube(t)
	res, err := bfs.Vertices(m, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{0, 1, 2, 4}, res.Order)
	assert.False(t, res.Reached(7))
	assert.Equal(t, -1, res.Depth[3])

	// Zero lifts the limit.
	res, err = bfs.Vertices(m, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 8)
}

func TestVertices_FilterNeighbor(t *testing.T) {
	m := cube(t)
	res, err := bfs.Vertices(m, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 1 }))
	require.NoError(t, err)

	assert.False(t, res.Reached(1))
	assert.Len(t, res.Order, 7)
	// 3 and 5 are reached around vertex 1 through 2 and 4.
	assert.Equal(t, 2, res.Depth[3])
	assert.Equal(t, 2, res.Depth[5])
	assert.Equal(t, 3, res.Depth[7])
	_, err = res.PathTo(1)
	assert.Error(t, err)
}

func TestVertices_Hooks(t *testing.T) {
	m := cube(t)
	var enq, deq, vis []int
	res, err := bfs.Vertices(m, 0,
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id, _ int) { deq = append(deq, id) }),
		bfs.WithOnVisit(func(id, _ int) error { vis = append(vis, id); return nil }),
	)
	require.NoError(t, err)

	assert.Equal(t, res.Order, enq)
	assert.Equal(t, res.Order, deq)
	assert.Equal(t, res.Order, vis)
}

func TestVertices_OnVisitAborts(t *testing.T) {
	m := cube(t)
	stop := errors.New("stop")
	res, err := bfs.Vertices(m, 0, bfs.WithOnVisit(func(id, depth int) error {
		if depth == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	// Start plus the three vertices at depth 1, then the first at depth 2.
	assert.Len(t, res.Order, 5)
}

func TestVertices_Cancelled(t *testing.T) {
	m := cube(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Vertices(m, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVertices_Isolated(t *testing.T) {
	m := mesh.New()
	v := m.AddVertex(mgl32.Vec3{})
	res, err := bfs.Vertices(m, v)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, []int{0}, res.Depth)
}

func TestFaces_Cube(t *testing.T) {
	m := cube(t)
	res, err := bfs.Faces(m, 0)
	require.NoError(t, err)

	require.Len(t, res.Order, 6)
	assert.Equal(t, 0, res.Depth[0])
	for _, f := range []int{2, 3, 4, 5} {
		assert.Equal(t, 1, res.Depth[f], "face %d", f)
		assert.Equal(t, 0, res.Parent[f], "face %d", f)
	}
	// The opposite face is two steps away.
	assert.Equal(t, 2, res.Depth[1])
	assert.Equal(t, 1, res.Order[5])
}

func TestFaces_ComponentsAndGrid(t *testing.T) {
	m, err := builder.BuildMesh(nil,
		builder.PlatonicSolid(builder.Tetrahedron),
		builder.PlatonicSolid(builder.Cube),
	)
	require.NoError(t, err)

	res, err := bfs.Faces(m, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, res.Order)
	for f := 4; f < 10; f++ {
		assert.False(t, res.Reached(f), "face %d", f)
	}

	// A face walk on an open grid reaches every quad.
	g, err := builder.BuildMesh(nil, builder.Grid(4, 4))
	require.NoError(t, err)
	res, err = bfs.Faces(g, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, 9)
	// Opposite corner quad: two steps right, two steps up.
	assert.Equal(t, 4, res.Depth[8])
}

func TestComponents(t *testing.T) {
	labels, count := bfs.Components(nil)
	assert.Nil(t, labels)
	assert.Zero(t, count)

	m, err := builder.BuildMesh(nil,
		builder.PlatonicSolid(builder.Tetrahedron),
		builder.PlatonicSolid(builder.Cube),
	)
	require.NoError(t, err)
	m.AddVertex(mgl32.Vec3{5, 5, 5})

	labels, count = bfs.Components(m)
	assert.Equal(t, 3, count)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 2}, labels)

	// Removing a cube face keeps the cube connected.
	require.NoError(t, m.RemoveFace(5))
	_, count = bfs.Components(m)
	assert.Equal(t, 3, count)
}
