// SPDX-License-Identifier: MIT

package sk

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Orbital positions inside a shell block (real harmonics, m = -l..l).
const (
	py = 0
	pz = 1
	px = 2

	dxy   = 0
	dyz   = 1
	dz2   = 2
	dxz   = 3
	dx2y2 = 4
)

var sqrt3 = math.Sqrt(3)

// Integral positions in a value vector.
const (
	sigma = 0
	pi    = 1
	delta = 2
)

func ssFormula(dst *mat.Dense, v []float64, _, _, _ float64) {
	dst.Set(0, 0, v[sigma])
}

func spFormula(dst *mat.Dense, v []float64, l, m, n float64) {
	s := v[sigma]
	dst.Set(0, py, m*s)
	dst.Set(0, pz, n*s)
	dst.Set(0, px, l*s)
}

func sdFormula(dst *mat.Dense, v []float64, l, m, n float64) {
	s := v[sigma]
	dst.Set(0, dxy, sqrt3*l*m*s)
	dst.Set(0, dyz, sqrt3*m*n*s)
	dst.Set(0, dz2, (n*n-(l*l+m*m)/2)*s)
	dst.Set(0, dxz, sqrt3*l*n*s)
	dst.Set(0, dx2y2, sqrt3/2*(l*l-m*m)*s)
}

func ppFormula(dst *mat.Dense, v []float64, l, m, n float64) {
	s, p := v[sigma], v[pi]
	c := [3]float64{py: m, pz: n, px: l}
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			e := c[a] * c[b] * (s - p)
			if a == b {
				e += p
			}
			dst.Set(a, b, e)
		}
	}
}

func pdFormula(dst *mat.Dense, v []float64, l, m, n float64) {
	s, p := v[sigma], v[pi]
	l2, m2, n2 := l*l, m*m, n*n
	lmn := l * m * n
	z2 := n2 - (l2+m2)/2

	// x row
	dst.Set(px, dxy, sqrt3*l2*m*s+m*(1-2*l2)*p)
	dst.Set(px, dyz, sqrt3*lmn*s-2*lmn*p)
	dst.Set(px, dz2, l*z2*s-sqrt3*l*n2*p)
	dst.Set(px, dxz, sqrt3*l2*n*s+n*(1-2*l2)*p)
	dst.Set(px, dx2y2, sqrt3/2*l*(l2-m2)*s+l*(1-l2+m2)*p)

	// y row
	dst.Set(py, dxy, sqrt3*m2*l*s+l*(1-2*m2)*p)
	dst.Set(py, dyz, sqrt3*m2*n*s+n*(1-2*m2)*p)
	dst.Set(py, dz2, m*z2*s-sqrt3*m*n2*p)
	dst.Set(py, dxz, sqrt3*lmn*s-2*lmn*p)
	dst.Set(py, dx2y2, sqrt3/2*m*(l2-m2)*s-m*(1+l2-m2)*p)

	// z row
	dst.Set(pz, dxy, sqrt3*lmn*s-2*lmn*p)
	dst.Set(pz, dyz, sqrt3*n2*m*s+m*(1-2*n2)*p)
	dst.Set(pz, dz2, n*z2*s+sqrt3*n*(l2+m2)*p)
	dst.Set(pz, dxz, sqrt3*n2*l*s+l*(1-2*n2)*p)
	dst.Set(pz, dx2y2, sqrt3/2*n*(l2-m2)*s-n*(l2-m2)*p)
}

func ddFormula(dst *mat.Dense, v []float64, l, m, n float64) {
	s, p, d := v[sigma], v[pi], v[delta]
	l2, m2, n2 := l*l, m*m, n*n
	lm2 := l2 - m2
	z2 := n2 - (l2+m2)/2

	set := func(a, b int, e float64) {
		dst.Set(a, b, e)
		dst.Set(b, a, e)
	}

	set(dxy, dxy, 3*l2*m2*s+(l2+m2-4*l2*m2)*p+(n2+l2*m2)*d)
	set(dyz, dyz, 3*m2*n2*s+(m2+n2-4*m2*n2)*p+(l2+m2*n2)*d)
	set(dxz, dxz, 3*n2*l2*s+(n2+l2-4*n2*l2)*p+(m2+n2*l2)*d)

	set(dxy, dyz, 3*l*m2*n*s+l*n*(1-4*m2)*p+l*n*(m2-1)*d)
	set(dyz, dxz, 3*m*n2*l*s+m*l*(1-4*n2)*p+m*l*(n2-1)*d)
	set(dxz, dxy, 3*n*l2*m*s+n*m*(1-4*l2)*p+n*m*(l2-1)*d)

	set(dxy, dx2y2, 1.5*l*m*lm2*s-2*l*m*lm2*p+0.5*l*m*lm2*d)
	set(dyz, dx2y2, 1.5*m*n*lm2*s-m*n*(1+2*lm2)*p+m*n*(1+lm2/2)*d)
	set(dxz, dx2y2, 1.5*n*l*lm2*s+n*l*(1-2*lm2)*p-n*l*(1-lm2/2)*d)

	set(dxy, dz2, sqrt3*l*m*z2*s-2*sqrt3*l*m*n2*p+sqrt3/2*l*m*(1+n2)*d)
	set(dyz, dz2, sqrt3*m*n*z2*s+sqrt3*m*n*(l2+m2-n2)*p-sqrt3/2*m*n*(l2+m2)*d)
	set(dxz, dz2, sqrt3*l*n*z2*s+sqrt3*l*n*(l2+m2-n2)*p-sqrt3/2*l*n*(l2+m2)*d)

	set(dx2y2, dx2y2, 0.75*lm2*lm2*s+(l2+m2-lm2*lm2)*p+(n2+lm2*lm2/4)*d)
	set(dx2y2, dz2, sqrt3/2*lm2*z2*s-sqrt3*n2*lm2*p+sqrt3/4*(1+n2)*lm2*d)
	set(dz2, dz2, z2*z2*s+3*n2*(l2+m2)*p+0.75*(l2+m2)*(l2+m2)*d)
}
