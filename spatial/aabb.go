// SPDX-License-Identifier: MIT

package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/halfmesh/mesh"
)

// AABB is an axis-aligned bounding box. The empty box has Min > Max.
type AABB struct {
	Min, Max mgl32.Vec3
}

var inf32 = float32(math.Inf(1))

// minNormal32 is the smallest normal float32; a direction component below
// it would overflow 1/d to ±Inf and turn on-plane origins into NaN.
const minNormal32 = 0x1p-126

// EmptyAABB returns the box that contains nothing; extending it by a point
// yields the degenerate box around that point.
func EmptyAABB() AABB {
	return AABB{
		Min: mgl32.Vec3{inf32, inf32, inf32},
		Max: mgl32.Vec3{-inf32, -inf32, -inf32},
	}
}

// Bounds returns the box around every vertex of m (EmptyAABB for none).
// Complexity: O(V).
func Bounds(m *mesh.Mesh) AABB {
	b := EmptyAABB()
	m.ForEachVertex(func(_ mesh.VertexID, p mgl32.Vec3) bool {
		b = b.Extend(p)
		return true
	})

	return b
}

// IsEmpty reports whether b contains no point.
func (b AABB) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Extend returns the smallest box containing b and p.
func (b AABB) Extend(p mgl32.Vec3) AABB {
	for i := range p {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}

	return b
}

// Union returns the smallest box containing b and o.
func (b AABB) Union(o AABB) AABB {
	if o.IsEmpty() {
		return b
	}

	return b.Extend(o.Min).Extend(o.Max)
}

// Center returns the midpoint of b.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of b along each axis.
func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns 0, 1 or 2 for the axis of greatest extent.
func (b AABB) LongestAxis() int {
	s := b.Size()
	switch {
	case s[0] >= s[1] && s[0] >= s[2]:
		return 0
	case s[1] >= s[2]:
		return 1
	default:
		return 2
	}
}

// Contains reports whether p lies inside b (boundary included).
func (b AABB) Contains(p mgl32.Vec3) bool {
	for i := range p {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}

	return true
}

// RayAABB intersects r with b using the slab method. On a hit it returns
// the parameter range [tmin, tmax] of r inside b, with tmin clamped to 0
// when the origin is inside.
func RayAABB(r Ray, b AABB) (tmin, tmax float32, ok bool) {
	if b.IsEmpty() {
		return 0, 0, false
	}
	tmin, tmax = 0, inf32
	for i := 0; i < 3; i++ {
		if mgl32.Abs(r.Direction[i]) < minNormal32 {
			// Parallel to the slab: inside it or never.
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return 0, 0, false
			}
			continue
		}
		inv := 1 / r.Direction[i]
		t1 := (b.Min[i] - r.Origin[i]) * inv
		t2 := (b.Max[i] - r.Origin[i]) * inv
		tmin = max(tmin, min(t1, t2))
		tmax = min(tmax, max(t1, t2))
		if tmin > tmax {
			return 0, 0, false
		}
	}

	return tmin, tmax, true
}
