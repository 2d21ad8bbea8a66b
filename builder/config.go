// SPDX-License-Identifier: MIT
// Package: halfmesh/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • scale      = 1
//   • offset     = (0,0,0)
//   • edgesFirst = false (edges are added face by face)
//   • rng        = nil   (no jitter source unless seeded)
//   • jitter     = 0

package builder

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Uniform scale applied to canonical positions before the offset.
	scale float32
	// Translation applied after scaling.
	offset mgl32.Vec3
	// Add every edge of a constructor before its first face.
	edgesFirst bool

	// RNG for position jitter; nil means no randomness.
	rng *rand.Rand
	// Gaussian jitter sigma per coordinate (>=0); ignored without rng.
	jitter float32
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultScale  = float32(1)
	defaultJitter = float32(0)
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale:  defaultScale,
		jitter: defaultJitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a canonical position into the target frame:
// p·scale + offset, plus jitter when both rng and jitter are set.
// Jitter draws three normals per call, so results depend on call order.
func (c builderConfig) place(p mgl32.Vec3) mgl32.Vec3 {
	q := p.Mul(c.scale).Add(c.offset)
	if c.rng != nil && c.jitter > 0 {
		for i := range q {
			q[i] += float32(c.rng.NormFloat64()) * c.jitter
		}
	}

	return q
}
