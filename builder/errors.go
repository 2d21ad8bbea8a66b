// SPDX-License-Identifier: MIT
// Package: halfmesh/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors never panic; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrOptionViolation indicates an invalid parameter domain that must surface
// as an error rather than a panic (e.g., an unknown PlatonicName).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates that the mesh rejected an element the
// constructor produced (e.g., a non-manifold face) or that the source of a
// derived construction is unsuitable (e.g., Dual of an open mesh).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadFace indicates a malformed face index list: fewer than three
// indices, an index outside the position list, or a repeated index.
var ErrBadFace = errors.New("builder: malformed face")

// builderErrorf wraps a sentinel with a "<Method>: <message>" prefix.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
