// SPDX-License-Identifier: MIT
// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

// validateMin ensures that got ≥ min, else ErrTooFewVertices with context.
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s=%d < min=%d", name, got, min)
	}

	return nil
}

// validateFaces checks every face lists at least MinPolygonNodes distinct
// indices inside [0, n). Reports the first offending face with ErrBadFace.
// Complexity: O(Σ|face|²) time, which is fine for polygon sizes seen in practice.
func validateFaces(method string, n int, faces [][]int) error {
	for fi, face := range faces {
		if len(face) < MinPolygonNodes {
			return builderErrorf(method, ErrBadFace, "face %d has %d corners", fi, len(face))
		}
		for i, v := range face {
			if v < 0 || v >= n {
				return builderErrorf(method, ErrBadFace, "face %d: index %d outside [0,%d)", fi, v, n)
			}
			for _, w := range face[:i] {
				if w == v {
					return builderErrorf(method, ErrBadFace, "face %d: index %d repeated", fi, v)
				}
			}
		}
	}

	return nil
}
