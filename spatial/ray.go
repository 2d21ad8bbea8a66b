// SPDX-License-Identifier: MIT

package spatial

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line Origin + t·Direction for t ≥ 0.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// NewRay returns the ray from origin through target.
func NewRay(origin, target mgl32.Vec3) Ray {
	return Ray{Origin: origin, Direction: target.Sub(origin)}
}

// Extrapolate returns the point at parameter t along r.
func (r Ray) Extrapolate(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
