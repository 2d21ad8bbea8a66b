// SPDX-License-Identifier: MIT

// Command meshinspect builds a fixture mesh, applies edits, validates it,
// prints its statistics and optionally counts vertex rings, measures a
// shortest edge path and casts a pick ray.
//
// Usage:
//
//	meshinspect -solid=icosahedron -dual -remove-vertex=3 -ray="0,0,5:0,0,-1"
//	meshinspect -solid=cube -rings=0 -path=0,7
package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	klog.InitFlags(nil)
	flag.Set("logtostderr", "true")
	flag.Set("v", "1")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var opts inspectOptions
	flag.StringVar(&opts.solid, "solid", "icosahedron", "fixture: tetrahedron|cube|octahedron|dodecahedron|icosahedron|polygon|wheel|grid")
	flag.IntVar(&opts.size, "n", 6, "size for polygon, wheel (vertices) and grid (n×n vertices)")
	flag.Float64Var(&opts.scale, "scale", 1, "uniform scale")
	flag.BoolVar(&opts.edgesFirst, "edges-first", false, "add all edges before faces")
	flag.Int64Var(&opts.seed, "seed", 0, "jitter seed")
	flag.Float64Var(&opts.jitter, "jitter", 0, "Gaussian position jitter (needs -seed)")
	flag.BoolVar(&opts.dual, "dual", false, "replace the fixture by its dual")
	flag.IntVar(&opts.removeVertex, "remove-vertex", -1, "vertex to remove (-1 for none)")
	flag.IntVar(&opts.removeFace, "remove-face", -1, "face to remove (-1 for none)")
	flag.StringVar(&opts.ray, "ray", "", "pick ray as \"ox,oy,oz:dx,dy,dz\"")
	flag.IntVar(&opts.ringVertex, "rings", -1, "vertex whose neighborhood rings to count (-1 for none)")
	flag.IntVar(&opts.ringDepth, "ring-depth", 0, "deepest ring to count (0 for all)")
	flag.StringVar(&opts.path, "path", "", "shortest edge path as \"from,to\"")
	flag.Parse()

	err := inspect(opts, os.Stdout)
	klog.Flush()
	if err != nil {
		klog.Errorf("meshinspect: %v", err)
		klog.Flush()
		os.Exit(1)
	}
}
