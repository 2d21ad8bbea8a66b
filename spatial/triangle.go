// SPDX-License-Identifier: MIT

package spatial

import (
	"github.com/go-gl/mathgl/mgl32"
)

// triangleEpsilon bounds |cos| of the angle between the ray and the triangle
// plane below which the ray counts as parallel. It is scale free.
const triangleEpsilon = 1e-7

// RayTriangle intersects r with triangle (a, b, c) using the Möller–Trumbore
// algorithm. On a hit it returns the ray parameter t > 0 and the barycentric
// coordinates (u, v) of the hit, so the point is (1-u-v)·a + u·b + v·c.
// Both sides of the triangle are hit; degenerate triangles never are.
func RayTriangle(r Ray, a, b, c mgl32.Vec3) (t, u, v float32, ok bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	// det = -Direction·(e1×e2), so normalizing by both lengths leaves the cosine.
	scale := e1.Cross(e2).Len() * r.Direction.Len()
	if scale == 0 || mgl32.Abs(det) <= triangleEpsilon*scale {
		return 0, 0, 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u = s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}
	q := s.Cross(e1)
	v = r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}
	t = e2.Dot(q) * inv
	if t <= 0 {
		return 0, 0, 0, false
	}

	return t, u, v, true
}
