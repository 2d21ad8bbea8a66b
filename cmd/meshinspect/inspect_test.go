// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/halfmesh/bfs"
	"github.com/katalvlaran/halfmesh/builder"
	"github.com/katalvlaran/halfmesh/dijkstra"
	"github.com/katalvlaran/halfmesh/mesh"
)

// defaults mirrors the flag defaults.
func defaults() inspectOptions {
	return inspectOptions{solid: "icosahedron", size: 6, scale: 1, removeVertex: -1, removeFace: -1, ringVertex: -1}
}

func TestInspect_Reports(t *testing.T) {
	cases := []struct {
		name  string
		tweak func(o *inspectOptions)
		want  []string
	}{
		{"icosahedron", func(o *inspectOptions) {}, []string{
			"vertices: 12\n", "edges:    30\n", "faces:    20\n", "euler:    2\n", "closed:   true\n", "components: 1\n",
		}},
		{"dual cube", func(o *inspectOptions) { o.solid, o.dual = "cube", true }, []string{"vertices: 6\n", "edges:    12\n", "faces:    8\n"}},
		{"tetrahedron minus vertex", func(o *inspectOptions) { o.solid, o.removeVertex = "tetrahedron", 0 }, []string{
			"vertices: 3\n", "edges:    3\n", "faces:    1\n", "boundary: 3 half-edges\n", "euler:    1\n", "closed:   false\n",
		}},
		{"grid minus face", func(o *inspectOptions) { o.solid, o.size, o.removeFace, o.edgesFirst = "grid", 3, 0, true }, []string{
			"vertices: 9\n", "edges:    12\n", "faces:    3\n", "euler:    0\n",
		}},
		{"jittered wheel", func(o *inspectOptions) { o.solid, o.seed, o.jitter = "wheel", 5, 0.01 }, []string{"faces:    5\n"}},
		{"cube pick", func(o *inspectOptions) { o.solid, o.ray = "cube", "0.3,0.1,5:0,0,-1" }, []string{
			"ray:      face 1 at t=4.0000 point=(0.3000, 0.1000, 1.0000) vertices=[4 5 7 6]\n",
		}},
		{"cube rings", func(o *inspectOptions) { o.solid, o.ringVertex = "cube", 0 }, []string{"rings:    vertex 0 sizes=[1 3 3 1]\n"}},
		{"octahedron one-ring", func(o *inspectOptions) { o.solid, o.ringVertex, o.ringDepth = "octahedron", 4, 1 }, []string{
			"rings:    vertex 4 sizes=[1 4]\n",
		}},
		{"cube path", func(o *inspectOptions) { o.solid, o.path = "cube", "0, 7" }, []string{"path:     0→7 length=6.0000 vertices=[0 "}},
		{"cube miss", func(o *inspectOptions) { o.solid, o.ray = "cube", "5,5,5: 1,0,0" }, []string{"ray:      miss\n"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := defaults()
			tc.tweak(&opts)
			var out bytes.Buffer
			require.NoError(t, inspect(opts, &out))
			for _, w := range tc.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestInspect_Errors(t *testing.T) {
	cases := []struct {
		name  string
		tweak func(o *inspectOptions)
		is    error
	}{
		{"unknown fixture", func(o *inspectOptions) { o.solid = "torus" }, nil},
		{"bad scale", func(o *inspectOptions) { o.scale = 0 }, nil},
		{"negative jitter", func(o *inspectOptions) { o.jitter = -1 }, nil},
		{"small polygon", func(o *inspectOptions) { o.solid, o.size = "polygon", 2 }, builder.ErrTooFewVertices},
		{"dual of open", func(o *inspectOptions) { o.solid, o.dual = "polygon", true }, builder.ErrConstructFailed},
		{"missing face", func(o *inspectOptions) { o.removeFace = 99 }, mesh.ErrFaceNotFound},
		{"missing vertex", func(o *inspectOptions) { o.removeVertex = 99 }, mesh.ErrVertexNotFound},
		{"bad path", func(o *inspectOptions) { o.path = "3" }, nil},
		{"path source", func(o *inspectOptions) { o.path = "99,0" }, dijkstra.ErrVertexNotFound},
		{"path target", func(o *inspectOptions) { o.path = "0,99" }, mesh.ErrVertexNotFound},
		{"ring start", func(o *inspectOptions) { o.ringVertex = 99 }, bfs.ErrStartNotFound},
		{"bad ray", func(o *inspectOptions) { o.ray = "1,2,3" }, nil},
		{"zero direction", func(o *inspectOptions) { o.ray = "1,2,3:0,0,0" }, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := defaults()
			tc.tweak(&opts)
			err := inspect(opts, &bytes.Buffer{})
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestParseVec3(t *testing.T) {
	v, err := parseVec3(" 1, -2.5,3 ")
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, -2.5, 3}, v)

	_, err = parseVec3("1,2")
	assert.Error(t, err)
	_, err = parseVec3("1,x,3")
	assert.Error(t, err)
}

func TestParsePair(t *testing.T) {
	a, b, err := parsePair("2, 5")
	require.NoError(t, err)
	assert.Equal(t, mesh.VertexID(2), a)
	assert.Equal(t, mesh.VertexID(5), b)

	_, _, err = parsePair("2;5")
	assert.Error(t, err)
	_, _, err = parsePair("x,5")
	assert.Error(t, err)
	_, _, err = parsePair("2,y")
	assert.Error(t, err)
}
