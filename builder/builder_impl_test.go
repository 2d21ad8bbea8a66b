// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying counts, closure,
// orientation and error sentinels.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/halfmesh/builder"
	"github.com/katalvlaran/halfmesh/mesh"
)

// centroid returns the mean of ps.
func centroid(ps []mgl32.Vec3) mgl32.Vec3 {
	var c mgl32.Vec3
	for _, p := range ps {
		c = c.Add(p)
	}

	return c.Mul(1 / float32(len(ps)))
}

// TestBuilders_Functional runs table-driven functional tests for each builder
// in both emission orders.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
		wantF        int
		closed       bool
	}{
		{name: "Tetrahedron", ctor: builder.PlatonicSolid(builder.Tetrahedron), wantV: 4, wantE: 6, wantF: 4, closed: true},
		{name: "Cube", ctor: builder.PlatonicSolid(builder.Cube), wantV: 8, wantE: 12, wantF: 6, closed: true},
		{name: "Octahedron", ctor: builder.PlatonicSolid(builder.Octahedron), wantV: 6, wantE: 12, wantF: 8, closed: true},
		{name: "Dodecahedron", ctor: builder.PlatonicSolid(builder.Dodecahedron), wantV: 20, wantE: 30, wantF: 12, closed: true},
		{name: "Icosahedron", ctor: builder.PlatonicSolid(builder.Icosahedron), wantV: 12, wantE: 30, wantF: 20, closed: true},
		{name: "Polygon(5)", ctor: builder.Polygon(5), wantV: 5, wantE: 5, wantF: 1},
		{name: "Wheel(7)", ctor: builder.Wheel(7), wantV: 7, wantE: 12, wantF: 6},
		{name: "Grid(3,4)", ctor: builder.Grid(3, 4), wantV: 12, wantE: 17, wantF: 6},
	}

	for _, tc := range tests {
		for _, edgesFirst := range []bool{false, true} {
			tc, edgesFirst := tc, edgesFirst
			t.Run(fmt.Sprintf("%s/edgesFirst=%v", tc.name, edgesFirst), func(t *testing.T) {
				t.Parallel()
				var opts []builder.BuilderOption
				if edgesFirst {
					opts = append(opts, builder.WithEdgesFirst())
				}
				m, err := builder.BuildMesh(opts, tc.ctor)
				require.NoError(t, err)
				require.NoError(t, m.Validate())

				s := m.Stats()
				assert.Equal(t, tc.wantV, s.VertexCount, "V")
				assert.Equal(t, tc.wantE, s.EdgeCount, "E")
				assert.Equal(t, tc.wantF, s.FaceCount, "F")
				assert.Equal(t, tc.closed, m.IsClosed())
				assert.Zero(t, s.IsolatedVertices)
				if tc.closed {
					assert.Equal(t, 2, s.EulerCharacteristic)
				} else {
					assert.Equal(t, 1, s.EulerCharacteristic)
				}

				// Closed solids are centred on the origin and face outward;
				// flat fixtures face +z.
				m.ForEachFace(func(f mesh.FaceID, ps []mgl32.Vec3) bool {
					n := m.FaceNormal(f)
					if tc.closed {
						assert.Positive(t, n.Dot(centroid(ps)), "face %d faces inward", f)
					} else {
						assert.True(t, n.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5), "face %d normal %v", f, n)
					}
					return true
				})
			})
		}
	}
}

// TestPlatonic_FaceSizes checks every solid has regular face sizes.
func TestPlatonic_FaceSizes(t *testing.T) {
	sizes := map[builder.PlatonicName]int{
		builder.Tetrahedron:  3,
		builder.Cube:         4,
		builder.Octahedron:   3,
		builder.Dodecahedron: 5,
		builder.Icosahedron:  3,
	}
	for name, k := range sizes {
		m, err := builder.BuildMesh(nil, builder.PlatonicSolid(name))
		require.NoError(t, err, name.String())
		for f := mesh.FaceID(0); int(f) < m.FaceCount(); f++ {
			assert.Len(t, m.FaceVertices(f), k, "%s face %d", name, f)
		}
	}
	assert.Equal(t, "Unknown", builder.PlatonicName(42).String())
}

// TestBuildMesh_Composition appends two disjoint components.
func TestBuildMesh_Composition(t *testing.T) {
	m, err := builder.BuildMesh(nil,
		builder.PlatonicSolid(builder.Tetrahedron),
		builder.PlatonicSolid(builder.Cube),
	)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	s := m.Stats()
	assert.Equal(t, 12, s.VertexCount)
	assert.Equal(t, 18, s.EdgeCount)
	assert.Equal(t, 10, s.FaceCount)
	assert.Equal(t, 4, s.EulerCharacteristic)
	// The cube's faces index the rebased vertices.
	assert.Equal(t, []mesh.VertexID{4, 6, 7, 5}, m.FaceVertices(4))
}

// TestPolygons_Loader covers the indexed loader path.
func TestPolygons_Loader(t *testing.T) {
	positions := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}}
	faces := [][]int{{0, 1, 2}, {0, 2, 3}, {2, 1, 4}}

	m, err := builder.BuildMesh(nil, builder.Polygons(positions, faces))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, 5, m.VertexCount())
	assert.Equal(t, 7, m.EdgeCount())
	assert.Equal(t, 3, m.FaceCount())
	assert.Equal(t, positions, m.Positions())
	for f, want := range faces {
		got := m.FaceVertices(mesh.FaceID(f))
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, mesh.VertexID(want[i]), got[i])
		}
	}
}

// TestDual covers duality of closed meshes.
func TestDual(t *testing.T) {
	cube, err := builder.BuildMesh(nil, builder.PlatonicSolid(builder.Cube))
	require.NoError(t, err)

	oct, err := builder.BuildMesh(nil, builder.Dual(cube))
	require.NoError(t, err)
	require.NoError(t, oct.Validate())
	assert.Equal(t, 6, oct.VertexCount())
	assert.Equal(t, 12, oct.EdgeCount())
	assert.Equal(t, 8, oct.FaceCount())
	// Dual vertex 0 is the centroid of the cube's -z face.
	assert.True(t, oct.Position(0).ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-6))

	// Dual of the dual restores the combinatorics.
	cube2, err := builder.BuildMesh(nil, builder.Dual(oct))
	require.NoError(t, err)
	require.NoError(t, cube2.Validate())
	assert.Equal(t, cube.Stats().VertexCount, cube2.Stats().VertexCount)
	assert.Equal(t, cube.Stats().EdgeCount, cube2.Stats().EdgeCount)
	assert.Equal(t, cube.Stats().FaceCount, cube2.Stats().FaceCount)

	// The source is only read.
	assert.Equal(t, 8, cube.VertexCount())
	require.NoError(t, cube.Validate())
}

// TestBuilders_Errors checks every validation class surfaces its sentinel.
func TestBuilders_Errors(t *testing.T) {
	open, err := builder.BuildMesh(nil, builder.Polygon(4))
	require.NoError(t, err)
	tri := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}

	tests := []struct {
		name string
		ctor builder.Constructor
		want []error
	}{
		{"Polygon(2)", builder.Polygon(2), []error{builder.ErrTooFewVertices}},
		{"Wheel(3)", builder.Wheel(3), []error{builder.ErrTooFewVertices}},
		{"Grid(1,5)", builder.Grid(1, 5), []error{builder.ErrTooFewVertices}},
		{"Grid(5,1)", builder.Grid(5, 1), []error{builder.ErrTooFewVertices}},
		{"UnknownSolid", builder.PlatonicSolid(builder.PlatonicName(42)), []error{builder.ErrOptionViolation}},
		{"TwoCorners", builder.Polygons(tri, [][]int{{0, 1}}), []error{builder.ErrBadFace}},
		{"IndexOutOfRange", builder.Polygons(tri, [][]int{{0, 1, 9}}), []error{builder.ErrBadFace}},
		{"RepeatedIndex", builder.Polygons(tri, [][]int{{0, 1, 1}}), []error{builder.ErrBadFace}},
		{"Misoriented", builder.Polygons(tri, [][]int{{0, 1, 2}, {0, 1, 3}}), []error{builder.ErrConstructFailed, mesh.ErrInvalidTopology}},
		{"DualOfOpen", builder.Dual(open), []error{builder.ErrConstructFailed}},
		{"DualOfNil", builder.Dual(nil), []error{builder.ErrConstructFailed}},
		{"NilConstructor", nil, []error{builder.ErrConstructFailed}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMesh(nil, tc.ctor)
			require.Error(t, err)
			assert.Nil(t, m)
			for _, want := range tc.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

// TestOptions_Placement checks scale, offset and seeded jitter.
func TestOptions_Placement(t *testing.T) {
	m, err := builder.BuildMesh([]builder.BuilderOption{
		builder.WithScale(2),
		builder.WithOffset(mgl32.Vec3{10, 0, 0}),
	}, builder.PlatonicSolid(builder.Tetrahedron))
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{12, 2, 2}, m.Position(0))
	assert.Equal(t, mgl32.Vec3{8, -2, 2}, m.Position(3))

	jittered := func() []mgl32.Vec3 {
		m, err := builder.BuildMesh([]builder.BuilderOption{
			builder.WithSeed(7),
			builder.WithJitter(0.01),
		}, builder.Grid(3, 3))
		require.NoError(t, err)
		require.NoError(t, m.Validate())
		return m.Positions()
	}
	a, b := jittered(), jittered()
	assert.Equal(t, a, b, "same seed, same positions")

	flat, err := builder.BuildMesh(nil, builder.Grid(3, 3))
	require.NoError(t, err)
	assert.NotEqual(t, flat.Positions(), a)
	for i, p := range flat.Positions() {
		assert.Less(t, p.Sub(a[i]).Len(), float32(0.1), "vertex %d drifted", i)
	}
}
