// SPDX-License-Identifier: MIT

package kpoints

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Point is a labelled k-point in reduced coordinates.
type Point struct {
	Label string
	K     [3]float64
}

// Path is a sampled line path. Ticks index the vertices inside KPoints.
type Path struct {
	KPoints [][3]float64
	// Distance is the cumulative reduced-coordinate path length per k-point.
	Distance []float64
	Ticks    []int
	Labels   []string
}

// Line samples the polyline through pts with n points per segment, the
// segment end excluded except for the last vertex. Total length is
// n·(len(pts)-1)+1.
func Line(pts []Point, n int) (*Path, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("Line: %d points: %w", len(pts), ErrTooFewPoints)
	}
	if n < 1 {
		return nil, fmt.Errorf("Line: n=%d: %w", n, ErrBadDensity)
	}
	total := n*(len(pts)-1) + 1
	p := &Path{
		KPoints:  make([][3]float64, 0, total),
		Distance: make([]float64, 0, total),
		Ticks:    make([]int, 0, len(pts)),
		Labels:   make([]string, 0, len(pts)),
	}
	var dist float64
	for s := 0; s < len(pts)-1; s++ {
		a, b := pts[s].K, pts[s+1].K
		step := b
		floats.Sub(step[:], a[:])
		seg := floats.Norm(step[:], 2)

		p.Ticks = append(p.Ticks, len(p.KPoints))
		p.Labels = append(p.Labels, pts[s].Label)
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			k := a
			floats.AddScaled(k[:], t, step[:])
			p.KPoints = append(p.KPoints, k)
			p.Distance = append(p.Distance, dist+t*seg)
		}
		dist += seg
	}
	last := pts[len(pts)-1]
	p.Ticks = append(p.Ticks, len(p.KPoints))
	p.Labels = append(p.Labels, last.Label)
	p.KPoints = append(p.KPoints, last.K)
	p.Distance = append(p.Distance, dist)
	return p, nil
}

// Labelled resolves labels against table and samples the resulting path.
func Labelled(table map[string][3]float64, labels []string, n int) (*Path, error) {
	pts := make([]Point, len(labels))
	for i, l := range labels {
		k, ok := table[l]
		if !ok {
			return nil, fmt.Errorf("Labelled: %q: %w", l, ErrUnknownLabel)
		}
		pts[i] = Point{Label: l, K: k}
	}
	return Line(pts, n)
}

// Common high-symmetry tables.
var (
	// Chain1D is the 1D Brillouin zone along the first axis.
	Chain1D = map[string][3]float64{"G": {0, 0, 0}, "X": {0.5, 0, 0}}

	// Square2D is the square-lattice zone.
	Square2D = map[string][3]float64{"G": {0, 0, 0}, "X": {0.5, 0, 0}, "M": {0.5, 0.5, 0}}

	// Hexagonal2D is the hexagonal zone for a1, a2 at 60 degrees.
	Hexagonal2D = map[string][3]float64{"G": {0, 0, 0}, "M": {0.5, 0, 0}, "K": {2.0 / 3, 1.0 / 3, 0}}
)
