// SPDX-License-Identifier: MIT
// Package: halfmesh/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: jitter draws only from WithSeed / WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before mesh construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithScale multiplies every canonical position by s.
// Panics if s <= 0 (a non-positive scale collapses or mirrors the mesh).
// Complexity: O(1) time, O(1) space.
func WithScale(s float32) BuilderOption {
	if s <= 0 {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOffset translates every position by v after scaling.
// Complexity: O(1) time, O(1) space.
func WithOffset(v mgl32.Vec3) BuilderOption {
	return func(c *builderConfig) {
		c.offset = v
	}
}

// WithEdgesFirst makes constructors add all edges before the first face.
// The resulting fans differ from the default interleaved order, which
// exercises the adjacency repair done by AddFace.
// Complexity: O(1) time, O(1) space.
func WithEdgesFirst() BuilderOption {
	return func(c *builderConfig) {
		c.edgesFirst = true
	}
}

// WithRand provides an explicit RNG for position jitter.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter perturbs every coordinate by Gaussian noise of the given sigma.
// It has no effect unless an RNG is configured. Panics if sigma < 0.
// Complexity: O(1) time, O(1) space.
func WithJitter(sigma float32) BuilderOption {
	if sigma < 0 {
		panic("builder: WithJitter(sigma<0)")
	}
	return func(c *builderConfig) {
		c.jitter = sigma
	}
}
