// SPDX-License-Identifier: MIT

package modelfile

import (
	"fmt"

	"github.com/dywu101/deeptb/kpoints"
)

// Sampling is the resolved k-point list with optional path metadata.
type Sampling struct {
	KPoints  [][3]float64
	Distance []float64
	Labels   map[int]string
}

// KPoints resolves kpath or kmesh; with neither, Γ alone.
func (f *File) KPoints() (*Sampling, error) {
	switch {
	case f.KPath != nil:
		table, err := f.symmetryTable()
		if err != nil {
			return nil, fmt.Errorf("KPoints: %w", err)
		}
		p, err := kpoints.Labelled(table, f.KPath.Labels, f.KPath.Density)
		if err != nil {
			return nil, fmt.Errorf("KPoints: %w", err)
		}
		labels := make(map[int]string, len(p.Ticks))
		for i, t := range p.Ticks {
			labels[t] = p.Labels[i]
		}
		return &Sampling{KPoints: p.KPoints, Distance: p.Distance, Labels: labels}, nil

	case f.KMesh != nil:
		ks, err := kpoints.MonkhorstPack([3]int{f.KMesh[0], f.KMesh[1], f.KMesh[2]}, [3]float64{})
		if err != nil {
			return nil, fmt.Errorf("KPoints: %w", err)
		}
		return &Sampling{KPoints: ks}, nil

	default:
		return &Sampling{KPoints: [][3]float64{{0, 0, 0}}, Labels: map[int]string{0: "G"}}, nil
	}
}

func (f *File) symmetryTable() (map[string][3]float64, error) {
	if f.KPath.Points != nil {
		out := make(map[string][3]float64, len(f.KPath.Points))
		for l, k := range f.KPath.Points {
			if len(k) != 3 {
				return nil, fmt.Errorf("kpath point %q needs 3 values: %w", l, ErrInvalid)
			}
			out[l] = [3]float64{k[0], k[1], k[2]}
		}
		return out, nil
	}
	switch f.Crystal.Preset {
	case PresetChain:
		return kpoints.Chain1D, nil
	case PresetSquare:
		return kpoints.Square2D, nil
	case PresetHoneycomb:
		return kpoints.Hexagonal2D, nil
	}
	return nil, fmt.Errorf("kpath without points for crystal %q: %w", f.Crystal.Preset, ErrInvalid)
}
