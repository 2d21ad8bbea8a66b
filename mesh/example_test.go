// SPDX-License-Identifier: MIT

package mesh_test

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/halfmesh/mesh"
)

// ExampleMesh builds a single triangle, queries it and removes a corner.
func ExampleMesh() {
	m := mesh.New()
	a := m.AddVertex(mgl32.Vec3{0, 0, 0})
	b := m.AddVertex(mgl32.Vec3{1, 0, 0})
	c := m.AddVertex(mgl32.Vec3{0, 1, 0})

	ab, _ := m.AddEdge(a, b)
	bc, _ := m.AddEdge(b, c)
	ca, _ := m.AddEdge(c, a)
	f, _ := m.AddFace([]mesh.EdgeID{ab, bc, ca})

	fmt.Println("face:", m.FaceVertices(f))
	fmt.Println("normal:", m.FaceNormal(f))
	fmt.Println("outer side is boundary:", m.IsBoundary(ab.Symmetric()))

	_ = m.RemoveVertex(a)
	s := m.Stats()
	fmt.Println("after:", s.VertexCount, s.EdgeCount, s.FaceCount)

	// Output:
	// face: [0 1 2]
	// normal: [0 0 1]
	// outer side is boundary: true
	// after: 2 1 0
}

// ExampleMesh_AddFace shows that a rejected face leaves the mesh untouched.
func ExampleMesh_AddFace() {
	m := mesh.New()
	for i := 0; i < 4; i++ {
		m.AddVertex(mgl32.Vec3{float32(i), 0, 0})
	}
	e01, _ := m.AddEdge(0, 1)
	e23, _ := m.AddEdge(2, 3)

	_, err := m.AddFace([]mesh.EdgeID{e01, e23})
	fmt.Println(errors.Is(err, mesh.ErrInvalidTopology), m.FaceCount(), m.Validate() == nil)

	// Output:
	// true 0 true
}
