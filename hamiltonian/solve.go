// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/matrix"
)

// Result holds the spectrum of one structure over a k-point list.
type Result struct {
	KPoints [][3]float64
	// Energies[k][band] in eV, ascending per k.
	Energies [][]float64
	// Vectors[k] are column eigenvectors of L⁻¹·H·L⁻ᴴ (Löwdin basis) for the
	// windowed bands; nil unless WithEigenvectors.
	Vectors []*mat.CDense
	// Factors[k] is the Cholesky factor L of S(k); nil entries for an
	// orthogonal basis, nil slice unless WithEigenvectors.
	Factors   []*mat.CDense
	SpinOrbit bool
}

// NumBands returns the number of bands per k-point.
func (r *Result) NumBands() int {
	if len(r.Energies) == 0 {
		return 0
	}
	return len(r.Energies[0])
}

// Band returns band b across all k-points.
func (r *Result) Band(b int) []float64 {
	out := make([]float64, len(r.Energies))
	for k, e := range r.Energies {
		out[k] = e[b]
	}
	return out
}

// Solve diagonalises H(k)·c = ε·S(k)·c for every k-point.
//
// Implementation:
//   - Stage 1: resolve options; SOC requires assembled lambdas.
//   - Stage 2: per k (concurrently, at most WithWorkers at a time): build
//     H(k) and S(k) (spin-doubled with WithSpinOrbit), then
//     matrix.SolveGeneralized; the orthogonal path skips Cholesky.
//   - Stage 3: scale eigenvalues to eV and cut the band window.
//
// Inputs:
//   - kpts: k-points in reduced reciprocal coordinates.
//   - timeSymm: Hermitian symmetrisation M + Mᴴ (hopping bonds enumerated
//     in one direction); false when both directions were enumerated.
//
// Errors:
//   - ErrNoSOCLambdas, ErrTimeReversal (timeSymm on a structure built
//     with both directions), ErrBandWindow, matrix.ErrNotPositiveDefinite,
//     matrix.ErrEigenFailed, matrix.ErrNotHermitian (timeSymm == false
//     with an incomplete bond list); tagged with the failing k index. The first
//     failure cancels k-points not yet started and no partial result is
//     returned.
//
// Complexity:
//   - O(K·N³) time for K k-points, O(workers·N²) transient space.
func (a *Assembly) Solve(kpts [][3]float64, timeSymm bool, opts ...SolveOption) (*Result, error) {
	cfg := defaultSolveConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.spinOrbit && a.soc == nil {
		return nil, fmt.Errorf("%s: %w", opSolve, ErrNoSOCLambdas)
	}
	if timeSymm && !a.st.TimeReversal() {
		return nil, fmt.Errorf("%s: %d hopping bonds: %w", opSolve, len(a.st.HoppingBonds()), ErrTimeReversal)
	}
	nb := a.Dim(cfg.spinOrbit)
	lo, hi := 0, nb
	if cfg.bandMax > 0 {
		if cfg.bandMax > nb {
			return nil, fmt.Errorf("%s: window [%d,%d) of %d bands: %w", opSolve, cfg.bandMin, cfg.bandMax, nb, ErrBandWindow)
		}
		lo, hi = cfg.bandMin, cfg.bandMax
	}

	eig := append([]matrix.Option(nil), cfg.eigen...)
	if timeSymm {
		// M + Mᴴ is Hermitian by construction.
		eig = append(eig, matrix.WithoutValidation())
	}
	if cfg.vectors {
		eig = append(eig, matrix.WithVectors())
	}

	res := &Result{
		KPoints:   append([][3]float64(nil), kpts...),
		Energies:  make([][]float64, len(kpts)),
		SpinOrbit: cfg.spinOrbit,
	}
	if cfg.vectors {
		res.Vectors = make([]*mat.CDense, len(kpts))
		res.Factors = make([]*mat.CDense, len(kpts))
	}

	p := pool.New().
		WithMaxGoroutines(cfg.workers).
		WithContext(context.Background()).
		WithCancelOnError().
		WithFirstError()
	for ik := range kpts {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := a.solveK(kpts[ik], timeSymm, cfg.spinOrbit, eig)
			if err != nil {
				return fmt.Errorf("%s: k-point %d %v: %w", opSolve, ik, kpts[ik], err)
			}
			e := d.Values[lo:hi]
			floats.Scale(cfg.unit.Factor(), e)
			res.Energies[ik] = e
			if cfg.vectors {
				res.Vectors[ik] = columns(d.Vectors, lo, hi)
				res.Factors[ik] = d.L
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (a *Assembly) solveK(k [3]float64, timeSymm, spin bool, eig []matrix.Option) (*matrix.Decomposition, error) {
	var (
		h, s *mat.CDense
		err  error
	)
	if spin {
		h, err = a.HKSpin(k, timeSymm)
	} else {
		h, err = a.HK(k, timeSymm)
	}
	if err != nil {
		return nil, err
	}
	if !a.orthogonal {
		if spin {
			s, err = a.SKSpin(k, timeSymm)
		} else {
			s, err = a.SK(k, timeSymm)
		}
		if err != nil {
			return nil, err
		}
	}
	return matrix.SolveGeneralized(h, s, eig...)
}

// columns copies columns [lo, hi) of v.
func columns(v *mat.CDense, lo, hi int) *mat.CDense {
	r, c := v.Dims()
	if lo == 0 && hi == c {
		return v
	}
	out := mat.NewCDense(r, hi-lo, nil)
	for i := 0; i < r; i++ {
		for j := lo; j < hi; j++ {
			out.Set(i, j-lo, v.At(i, j))
		}
	}
	return out
}
