// SPDX-License-Identifier: MIT
// Package: builder
//
// presets.go: fixed crystal constructors used by tests, examples and the
// CLI. Each preset replaces the cell and periodic flags and appends its
// sites; non-periodic axes get cfg.vacuum.

package builder

import "math"

// Dimer places a at the origin and b at (0, 0, d) in an isolated box.
func Dimer(a, b string, d float64) Constructor {
	return func(c *Crystal, cfg builderConfig) error {
		if !positive(d) {
			return builderErrorf(MethodDimer, ErrBadParameter, "d=%g", d)
		}
		v := cfg.vacuum
		c.Cell = [3][3]float64{{v, 0, 0}, {0, v, 0}, {0, 0, v + d}}
		c.Periodic = [3]bool{}
		return appendSites(c, MethodDimer, Site{a, [3]float64{}}, Site{b, [3]float64{0, 0, d}})
	}
}

// LinearChain is a one-atom chain with period a along x.
func LinearChain(symbol string, a float64) Constructor {
	return func(c *Crystal, cfg builderConfig) error {
		if !positive(a) {
			return builderErrorf(MethodLinearChain, ErrBadParameter, "a=%g", a)
		}
		v := cfg.vacuum
		c.Cell = [3][3]float64{{a, 0, 0}, {0, v, 0}, {0, 0, v}}
		c.Periodic = [3]bool{true, false, false}
		return appendSites(c, MethodLinearChain, Site{symbol, [3]float64{}})
	}
}

// SquareLattice is a one-atom square lattice with constant a in the xy
// plane.
func SquareLattice(symbol string, a float64) Constructor {
	return func(c *Crystal, cfg builderConfig) error {
		if !positive(a) {
			return builderErrorf(MethodSquareLattice, ErrBadParameter, "a=%g", a)
		}
		c.Cell = [3][3]float64{{a, 0, 0}, {0, a, 0}, {0, 0, cfg.vacuum}}
		c.Periodic = [3]bool{true, true, false}
		return appendSites(c, MethodSquareLattice, Site{symbol, [3]float64{}})
	}
}

// Honeycomb is a two-site honeycomb sheet in the xy plane with
// nearest-neighbour distance d: a at the origin, b at (d, 0, 0).
func Honeycomb(a, b string, d float64) Constructor {
	return func(c *Crystal, cfg builderConfig) error {
		if !positive(d) {
			return builderErrorf(MethodHoneycomb, ErrBadParameter, "d=%g", d)
		}
		h := math.Sqrt(3) / 2 * d
		c.Cell = [3][3]float64{{1.5 * d, h, 0}, {1.5 * d, -h, 0}, {0, 0, cfg.vacuum}}
		c.Periodic = [3]bool{true, true, false}
		return appendSites(c, MethodHoneycomb, Site{a, [3]float64{}}, Site{b, [3]float64{d, 0, 0}})
	}
}

func appendSites(c *Crystal, method string, sites ...Site) error {
	for _, s := range sites {
		if s.Symbol == "" {
			return builderErrorf(method, ErrBadSite, "empty symbol")
		}
	}
	c.Sites = append(c.Sites, sites...)
	return nil
}
