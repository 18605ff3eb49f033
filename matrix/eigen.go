// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// minRecoveredNorm is the smallest residual norm accepted while extracting
// a complex eigenvector from a degenerate group of the real embedding.
const minRecoveredNorm = 1e-6

// EigenHermitian computes the eigenvalues, and optionally eigenvectors,
// of a Hermitian matrix.
//
// Implementation:
//   - Stage 1: validate square, finite and Hermitian within eps (skipped
//     under WithoutValidation).
//   - Stage 2: embed H = A + iB as the real symmetric 2n×2n matrix
//     M = [[A, −B], [B, A]]; every eigenvalue λ of H is a double
//     eigenvalue of M with real eigenvectors [x; y] and [−y; x], x+iy
//     being an eigenvector of H.
//   - Stage 3: diagonalise M with the selected backend and sort ascending.
//   - Stage 4: eigenvalue k of H is the mean of M's pair (2k, 2k+1).
//   - Stage 5 (WithVectors): group M's eigenvalues whose neighbouring gap is
//     ≤ degTol·max(1, max|λ|); a group of 2g real vectors spans a g-dim
//     complex eigenspace. Map each to z = x+iy and extract g orthonormal
//     complex vectors by pivoted Gram–Schmidt (largest residual first).
//
// Inputs:
//   - h: n×n Hermitian matrix.
//   - opts: WithEpsilon, WithBackend, WithMaxSweeps, WithDegeneracyTolerance,
//     WithVectors, WithoutValidation.
//
// Returns:
//   - []float64: n real eigenvalues in ascending order.
//   - *mat.CDense: n×n unitary matrix of column eigenvectors, nil unless
//     WithVectors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNotHermitian.
//   - ErrEigenFailed (backend failure, Jacobi non-convergence, odd
//     degenerate group or unrecoverable eigenvector).
//
// Determinism:
//   - Deterministic for a fixed backend; ties are broken by backend order.
//
// Complexity:
//   - Time O((2n)³) for the backend plus O(n²·g) recovery, Space O(n²).
//
// Notes:
//   - gonum exposes no complex Hermitian eigensolver (no zheev); the real
//     embedding doubles the problem size but stays on gonum's symmetric path.
//
// AI-Hints:
//   - Call with WithoutValidation when h is Hermitian by construction
//     (e.g. the output of Congruence).
func EigenHermitian(h *mat.CDense, opts ...Option) ([]float64, *mat.CDense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(h); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if !o.skipChecks {
		if err := ValidateFinite(h); err != nil {
			return nil, nil, matrixErrorf(opEigen, err)
		}
		if err := ValidateHermitian(h, o.eps); err != nil {
			return nil, nil, matrixErrorf(opEigen, err)
		}
	}

	n, _ := h.Dims()
	embed := realEmbedding(h)

	var (
		w    []float64
		vecs *mat.Dense
	)
	switch o.backend {
	case BackendJacobi:
		var err error
		if w, vecs, err = jacobiSym(embed, o.maxSweeps); err != nil {
			return nil, nil, matrixErrorf(opEigen, err)
		}
	default:
		var es mat.EigenSym
		if ok := es.Factorize(embed, o.wantVecs); !ok {
			return nil, nil, matrixErrorf(opEigen, fmt.Errorf("EigenSym did not converge: %w", ErrEigenFailed))
		}
		w = es.Values(nil)
		if o.wantVecs {
			vecs = mat.NewDense(2*n, 2*n, nil)
			es.VectorsTo(vecs)
		}
	}

	perm := make([]int, len(w))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return w[perm[a]] < w[perm[b]] })
	sorted := make([]float64, len(w))
	for i, p := range perm {
		sorted[i] = w[p]
	}

	values := make([]float64, n)
	for k := range values {
		values[k] = 0.5 * (sorted[2*k] + sorted[2*k+1])
	}
	if !o.wantVecs {
		return values, nil, nil
	}

	out, err := recoverVectors(sorted, perm, vecs, n, o.degenTol)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	return values, out, nil
}

// realEmbedding builds [[A, −B], [B, A]] for h = A + iB.
func realEmbedding(h *mat.CDense) *mat.SymDense {
	n, _ := h.Dims()
	m := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := h.At(i, j)
			if j >= i {
				m.SetSym(i, j, real(v))
				m.SetSym(n+i, n+j, real(v))
			}
			m.SetSym(i, n+j, -imag(v))
		}
	}
	return m
}

// recoverVectors turns sorted real eigenvectors of the embedding into
// complex eigenvectors of the original n×n matrix.
func recoverVectors(sorted []float64, perm []int, vecs *mat.Dense, n int, degTol float64) (*mat.CDense, error) {
	scale := 1.0
	for _, v := range sorted {
		scale = math.Max(scale, math.Abs(v))
	}
	gap := degTol * scale

	out := mat.NewCDense(n, n, nil)
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && sorted[end]-sorted[end-1] <= gap {
			end++
		}
		size := end - start
		if size%2 != 0 {
			return nil, fmt.Errorf("degenerate group [%d,%d) has odd size %d: %w", start, end, size, ErrEigenFailed)
		}

		cands := make([][]complex128, size)
		for c := range cands {
			col := perm[start+c]
			z := make([]complex128, n)
			for i := range z {
				z[i] = complex(vecs.At(i, col), vecs.At(n+i, col))
			}
			cands[c] = z
		}
		basis, err := pivotedGramSchmidt(cands, size/2)
		if err != nil {
			return nil, fmt.Errorf("group [%d,%d): %w", start, end, err)
		}
		for t, q := range basis {
			for i, v := range q {
				out.Set(i, start/2+t, v)
			}
		}
		start = end
	}
	return out, nil
}

// pivotedGramSchmidt extracts g orthonormal vectors from cands, at each
// step taking the candidate with the largest residual. cands is consumed.
func pivotedGramSchmidt(cands [][]complex128, g int) ([][]complex128, error) {
	used := make([]bool, len(cands))
	basis := make([][]complex128, 0, g)
	for len(basis) < g {
		best, bestNorm := -1, 0.0
		for c, z := range cands {
			if used[c] {
				continue
			}
			if nrm := cmplxs.Norm(z, 2); nrm > bestNorm {
				best, bestNorm = c, nrm
			}
		}
		if best < 0 || bestNorm < minRecoveredNorm {
			return nil, fmt.Errorf("residual %g after %d of %d vectors: %w", bestNorm, len(basis), g, ErrEigenFailed)
		}
		used[best] = true
		q := cands[best]
		cmplxs.Scale(complex(1/bestNorm, 0), q)
		basis = append(basis, q)

		for c, z := range cands {
			if used[c] {
				continue
			}
			// z -= <q, z>·q, Dot conjugates q.
			cmplxs.AddScaled(z, -cmplxs.Dot(q, z), q)
		}
	}
	return basis, nil
}
