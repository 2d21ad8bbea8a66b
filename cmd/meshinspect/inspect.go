// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/halfmesh/bfs"
	"github.com/katalvlaran/halfmesh/builder"
	"github.com/katalvlaran/halfmesh/dijkstra"
	"github.com/katalvlaran/halfmesh/mesh"
	"github.com/katalvlaran/halfmesh/spatial"
)

// inspectOptions mirrors the command-line flags.
type inspectOptions struct {
	solid        string
	size         int
	scale        float64
	edgesFirst   bool
	seed         int64
	jitter       float64
	dual         bool
	removeVertex int
	removeFace   int
	ray          string
	ringVertex   int
	ringDepth    int
	path         string
}

var solids = map[string]builder.PlatonicName{
	"tetrahedron":  builder.Tetrahedron,
	"cube":         builder.Cube,
	"octahedron":   builder.Octahedron,
	"dodecahedron": builder.Dodecahedron,
	"icosahedron":  builder.Icosahedron,
}

// fixture maps opts.solid to a Constructor.
func fixture(opts inspectOptions) (builder.Constructor, error) {
	if name, ok := solids[opts.solid]; ok {
		return builder.PlatonicSolid(name), nil
	}
	switch opts.solid {
	case "polygon":
		return builder.Polygon(opts.size), nil
	case "wheel":
		return builder.Wheel(opts.size), nil
	case "grid":
		return builder.Grid(opts.size, opts.size), nil
	}

	return nil, errors.Errorf("unknown fixture %q", opts.solid)
}

// builderOptions maps placement flags to builder options.
func builderOptions(opts inspectOptions) ([]builder.BuilderOption, error) {
	if opts.scale <= 0 {
		return nil, errors.Errorf("scale must be positive, got %v", opts.scale)
	}
	if opts.jitter < 0 {
		return nil, errors.Errorf("jitter must be non-negative, got %v", opts.jitter)
	}
	out := []builder.BuilderOption{builder.WithScale(float32(opts.scale))}
	if opts.edgesFirst {
		out = append(out, builder.WithEdgesFirst())
	}
	if opts.jitter > 0 {
		out = append(out, builder.WithSeed(opts.seed), builder.WithJitter(float32(opts.jitter)))
	}

	return out, nil
}

// inspect runs the whole pipeline and writes a report to w.
func inspect(opts inspectOptions, w io.Writer) error {
	ctor, err := fixture(opts)
	if err != nil {
		return err
	}
	bopts, err := builderOptions(opts)
	if err != nil {
		return err
	}
	m, err := builder.BuildMesh(bopts, ctor)
	if err != nil {
		return errors.Wrap(err, "build")
	}
	klog.V(1).Infof("built %s: V=%d E=%d F=%d", opts.solid, m.VertexCount(), m.EdgeCount(), m.FaceCount())

	if opts.dual {
		if m, err = builder.BuildMesh(nil, builder.Dual(m)); err != nil {
			return errors.Wrap(err, "dual")
		}
		klog.V(1).Infof("dual: V=%d E=%d F=%d", m.VertexCount(), m.EdgeCount(), m.FaceCount())
	}

	if opts.removeFace >= 0 {
		if err := m.RemoveFace(mesh.FaceID(opts.removeFace)); err != nil {
			return err
		}
		klog.V(1).Infof("removed face %d", opts.removeFace)
	}
	if opts.removeVertex >= 0 {
		if err := m.RemoveVertex(mesh.VertexID(opts.removeVertex)); err != nil {
			return err
		}
		klog.V(1).Infof("removed vertex %d", opts.removeVertex)
	}

	if err := m.Validate(); err != nil {
		return err
	}
	writeStats(w, m)

	if opts.ringVertex >= 0 {
		if err := writeRings(w, m, opts.ringVertex, opts.ringDepth); err != nil {
			return err
		}
	}
	if opts.path != "" {
		if err := writePath(w, m, opts.path); err != nil {
			return err
		}
	}
	if opts.ray == "" {
		return nil
	}

	return writePick(w, m, opts.ray)
}

// writePick casts the ray described by arg against m.
func writePick(w io.Writer, m *mesh.Mesh, arg string) error {
	r, err := parseRay(arg)
	if err != nil {
		return err
	}
	acc := spatial.NewAccelerator(m)
	klog.V(1).Infof("accelerator over %d triangles", acc.TriangleCount())
	hit, ok := acc.QueryNearest(r)
	if !ok {
		fmt.Fprintln(w, "ray:      miss")
		return nil
	}
	fmt.Fprintf(w, "ray:      face %d at t=%.4f point=(%.4f, %.4f, %.4f) vertices=%v\n",
		hit.Face, hit.T, hit.Point[0], hit.Point[1], hit.Point[2], m.FaceVertices(hit.Face))

	return nil
}

// writeStats prints the mesh counters one per line.
func writeStats(w io.Writer, m *mesh.Mesh) {
	s := m.Stats()
	fmt.Fprintf(w, "vertices: %d\n", s.VertexCount)
	fmt.Fprintf(w, "edges:    %d\n", s.EdgeCount)
	fmt.Fprintf(w, "faces:    %d\n", s.FaceCount)
	fmt.Fprintf(w, "boundary: %d half-edges\n", s.BoundaryHalfEdges)
	fmt.Fprintf(w, "isolated: %d\n", s.IsolatedVertices)
	fmt.Fprintf(w, "euler:    %d\n", s.EulerCharacteristic)
	fmt.Fprintf(w, "closed:   %v\n", m.IsClosed())
	_, count := bfs.Components(m)
	fmt.Fprintf(w, "components: %d\n", count)
}

// writeRings prints how many vertices sit at each step distance from v.
func writeRings(w io.Writer, m *mesh.Mesh, v, depth int) error {
	res, err := bfs.Vertices(m, mesh.VertexID(v), bfs.WithMaxDepth(depth))
	if err != nil {
		return errors.Wrap(err, "rings")
	}
	var sizes []int
	for _, id := range res.Order {
		d := res.Depth[id]
		for len(sizes) <= d {
			sizes = append(sizes, 0)
		}
		sizes[d]++
	}
	klog.V(1).Infof("rings around %d reached %d vertices", v, len(res.Order))
	fmt.Fprintf(w, "rings:    vertex %d sizes=%v\n", v, sizes)

	return nil
}

// writePath prints the shortest edge path for arg "from,to".
func writePath(w io.Writer, m *mesh.Mesh, arg string) error {
	from, to, err := parsePair(arg)
	if err != nil {
		return err
	}
	if to < 0 || int(to) >= m.VertexCount() {
		return errors.Wrapf(mesh.ErrVertexNotFound, "path target %d", to)
	}
	dist, prev, err := dijkstra.Dijkstra(m, dijkstra.Source(from), dijkstra.WithReturnPath())
	if err != nil {
		return errors.Wrap(err, "path")
	}
	if dist[to] == dijkstra.Infinity {
		fmt.Fprintf(w, "path:     %d→%d unreachable\n", from, to)
		return nil
	}
	fmt.Fprintf(w, "path:     %d→%d length=%.4f vertices=%v\n", from, to, dist[to], dijkstra.Path(m, prev, to))

	return nil
}

// parsePair reads "a,b" as two vertex IDs.
func parsePair(s string) (mesh.VertexID, mesh.VertexID, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, errors.Errorf("path %q: want from,to", s)
	}
	from, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "path %q", s)
	}
	to, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "path %q", s)
	}

	return mesh.VertexID(from), mesh.VertexID(to), nil
}

// parseRay reads "ox,oy,oz:dx,dy,dz".
func parseRay(s string) (spatial.Ray, error) {
	origin, dir, ok := strings.Cut(s, ":")
	if !ok {
		return spatial.Ray{}, errors.Errorf("ray %q: want origin:direction", s)
	}
	o, err := parseVec3(origin)
	if err != nil {
		return spatial.Ray{}, errors.Wrap(err, "ray origin")
	}
	d, err := parseVec3(dir)
	if err != nil {
		return spatial.Ray{}, errors.Wrap(err, "ray direction")
	}
	if d.Len() == 0 {
		return spatial.Ray{}, errors.New("ray direction is zero")
	}

	return spatial.Ray{Origin: o, Direction: d}, nil
}

// parseVec3 reads "x,y,z".
func parseVec3(s string) (mgl32.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl32.Vec3{}, errors.Errorf("%q: want three comma-separated numbers", s)
	}
	var v mgl32.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec3{}, errors.Wrapf(err, "%q", s)
		}
		v[i] = float32(f)
	}

	return v, nil
}
