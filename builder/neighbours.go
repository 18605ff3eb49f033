// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/dywu101/deeptb/orbital"
	"github.com/dywu101/deeptb/sk"
	"github.com/dywu101/deeptb/structure"
)

// Neighbours holds the bond lists found in a Crystal. It implements
// structure.Provider.
type Neighbours struct {
	symbols      []string
	layouts      map[string]orbital.Layout
	onsite       []structure.Bond
	hopping      []structure.Bond
	strain       []structure.Bond
	timeReversal bool
}

var _ structure.Provider = (*Neighbours)(nil)

// Bonds returns the hopping and onsite bond lists.
func (n *Neighbours) Bonds() (hopping, onsite []structure.Bond) { return n.hopping, n.onsite }

// Symbols returns the per-site symbols.
func (n *Neighbours) Symbols() []string { return n.symbols }

// Layouts returns the orbital layouts the search was run with.
func (n *Neighbours) Layouts() map[string]orbital.Layout { return n.layouts }

// StrainBonds returns the onsite-strain bonds (nil without WithStrainCutoff).
func (n *Neighbours) StrainBonds() []structure.Bond { return n.strain }

// TimeReversal reports whether hopping pairs were kept in one direction.
func (n *Neighbours) TimeReversal() bool { return n.timeReversal }

// Structure validates the bond lists into a structure.Structure carrying
// the time-reversal flag and strain bonds of the search. opts are applied
// after those.
func (n *Neighbours) Structure(opts ...structure.Option) (*structure.Structure, error) {
	all := append([]structure.Option{
		structure.WithTimeReversal(n.timeReversal),
		structure.WithStrainBonds(n.strain),
	}, opts...)
	return structure.FromProvider(n, all...)
}

// FindNeighbours enumerates the onsite, hopping and onsite-strain bonds of
// c.
//
// Implementation:
//   - Stage 1: validate c; derive the image range per periodic axis as
//     ceil(r/h)+1, where h is the spacing of lattice planes normal to that
//     axis and r the larger of the two cutoffs (WithSearchRange overrides).
//   - Stage 2: onsite bond for every site whose symbol has a layout.
//   - Stage 3: for every ordered site pair (i, j) and image R, the vector
//     d = pos_j + R·Cell - pos_i. Hopping bond if both sites have layouts,
//     0 < |d| ≤ cutoff and, with time reversal, (i, j, R) is canonical.
//     Strain bond (owner i, any neighbour j) if i has a layout and
//     0 < |d| ≤ strain cutoff.
//
// Errors:
//   - ErrBadCell, ErrBadSite, ErrNoSites from Crystal.Validate.
//   - ErrOverlappingSites when two sites or images coincide.
//
// Determinism:
//   - Bonds are emitted in (i, j, R) lexicographic order.
//
// Complexity:
//   - O(N²·M) for N sites and M searched images.
func FindNeighbours(c *Crystal, layouts map[string]orbital.Layout, opts ...BuilderOption) (*Neighbours, error) {
	cfg := newBuilderConfig(opts...)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodNeighbours, err)
	}
	reach := math.Max(cfg.cutoff, cfg.strainCutoff)
	span := searchRanges(c, reach, cfg.searchRange)

	n := &Neighbours{
		symbols:      c.Symbols(),
		layouts:      layouts,
		timeReversal: cfg.timeReversal,
	}
	owns := make([]bool, len(c.Sites))
	for i, s := range c.Sites {
		_, owns[i] = layouts[s.Symbol]
		if owns[i] {
			n.onsite = append(n.onsite, structure.Bond{Frame: cfg.frame, I: i, TypeI: s.Symbol, J: i, TypeJ: s.Symbol})
		}
	}

	for i, si := range c.Sites {
		for j, sj := range c.Sites {
			for r0 := -span[0]; r0 <= span[0]; r0++ {
				for r1 := -span[1]; r1 <= span[1]; r1++ {
					for r2 := -span[2]; r2 <= span[2]; r2++ {
						r := structure.Translation{r0, r1, r2}
						if i == j && r.IsZero() {
							continue
						}
						d := c.Translate(r)
						floats.Add(d[:], sj.Pos[:])
						floats.Sub(d[:], si.Pos[:])
						dist := floats.Norm(d[:], 2)
						if dist < MinSiteDistance {
							return nil, builderErrorf(MethodNeighbours, ErrOverlappingSites, "sites %d and %d, R=%v", i, j, r)
						}
						if dist > reach {
							continue
						}
						floats.Scale(1/dist, d[:])
						b := structure.Bond{
							Frame: cfg.frame,
							I:     i, TypeI: si.Symbol,
							J: j, TypeJ: sj.Symbol,
							R:    r,
							Dir:  sk.Direction(d),
							Dist: dist,
						}
						if owns[i] && owns[j] && dist <= cfg.cutoff && (!cfg.timeReversal || canonical(i, j, r)) {
							n.hopping = append(n.hopping, b)
						}
						if owns[i] && cfg.strainCutoff > 0 && dist <= cfg.strainCutoff {
							n.strain = append(n.strain, b)
						}
					}
				}
			}
		}
	}
	return n, nil
}

// Build runs cons through BuildCrystal, searches neighbours and returns the
// validated Structure.
func Build(layouts map[string]orbital.Layout, bopts []BuilderOption, cons ...Constructor) (*structure.Structure, error) {
	c, err := BuildCrystal(bopts, cons...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	n, err := FindNeighbours(c, layouts, bopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	st, err := n.Structure()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	return st, nil
}

// canonical keeps i < j, or i == j with R lexicographically positive.
func canonical(i, j int, r structure.Translation) bool {
	if i != j {
		return i < j
	}
	for _, x := range r {
		if x != 0 {
			return x > 0
		}
	}
	return false
}

// searchRanges returns the image range per axis; zero on non-periodic axes.
func searchRanges(c *Crystal, reach float64, fixed int) [3]int {
	var span [3]int
	vol := c.Volume()
	for a := 0; a < 3; a++ {
		if !c.Periodic[a] {
			continue
		}
		if fixed != AutoSearchRange {
			span[a] = fixed
			continue
		}
		u, v := c.Cell[(a+1)%3], c.Cell[(a+2)%3]
		cross := [3]float64{
			u[1]*v[2] - u[2]*v[1],
			u[2]*v[0] - u[0]*v[2],
			u[0]*v[1] - u[1]*v[0],
		}
		h := vol / floats.Norm(cross[:], 2)
		span[a] = int(math.Ceil(reach/h)) + 1
	}
	return span
}
