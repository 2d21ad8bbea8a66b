// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by mesh builders, ensuring
// consistent minima and error prefixes across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildMesh is the canonical name for the BuildMesh orchestrator.
	MethodBuildMesh = "BuildMesh"
	// MethodPolygon is the canonical name for the Polygon constructor.
	MethodPolygon = "Polygon"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodPolygons is the canonical name for the Polygons constructor.
	MethodPolygons = "Polygons"
	// MethodDual is the canonical name for the Dual constructor.
	MethodDual = "Dual"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinPolygonNodes is the smallest polygon: a face needs three corners.
const MinPolygonNodes = 3

// MinWheelNodes is the smallest wheel: a triangle rim plus one hub.
// Wheel(n) yields n-1 triangles.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for Grid.
// A 2×2 vertex grid holds exactly one quad.
const MinGridDim = 2
