// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// jacobiOffTol is the relative off-diagonal Frobenius norm at which cyclic
// Jacobi is declared converged.
const jacobiOffTol = 1e-14

// jacobiSym diagonalises a real symmetric matrix with cyclic Jacobi sweeps.
//
// Implementation:
//   - Stage 1: copy a into a flat row-major work array; Q = I.
//   - Stage 2: per sweep visit every (p,q), p<q, in row-major order and
//     annihilate A[p,q] with the rotation
//     θ = (A[q,q]−A[p,p])/(2A[p,q]), t = sign(θ)/(|θ|+√(θ²+1)),
//     c = 1/√(t²+1), s = t·c.
//   - Stage 3: stop when off(A) ≤ jacobiOffTol·‖A‖_F.
//
// Returns:
//   - eigenvalues (unsorted diagonal) and Q whose columns are eigenvectors.
//
// Errors:
//   - ErrEigenFailed when maxSweeps is exhausted.
//
// Determinism:
//   - Fixed (p,q) visiting order.
//
// Complexity:
//   - Time O(sweeps·n³), Space O(n²).
func jacobiSym(a *mat.SymDense, maxSweeps int) ([]float64, *mat.Dense, error) {
	n := a.SymmetricDim()
	w := make([]float64, n*n)
	var norm float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			w[i*n+j] = v
			norm += v * v
		}
	}
	norm = math.Sqrt(norm)
	q := make([]float64, n*n)
	for i := 0; i < n; i++ {
		q[i*n+i] = 1
	}

	var (
		p, r               int
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	for sweep := 0; ; sweep++ {
		var off float64
		for p = 0; p < n; p++ {
			for r = p + 1; r < n; r++ {
				off += w[p*n+r] * w[p*n+r]
			}
		}
		if math.Sqrt(2*off) <= jacobiOffTol*norm {
			break
		}
		if sweep == maxSweeps {
			return nil, nil, fmt.Errorf("jacobi: %d sweeps: %w", maxSweeps, ErrEigenFailed)
		}

		for p = 0; p < n; p++ {
			for r = p + 1; r < n; r++ {
				apq = w[p*n+r]
				if apq == 0 {
					continue
				}
				app, aqq = w[p*n+p], w[r*n+r]
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for i := 0; i < n; i++ {
					if i == p || i == r {
						continue
					}
					aip, aiq = w[i*n+p], w[i*n+r]
					w[i*n+p], w[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
					w[i*n+r], w[r*n+i] = s*aip+c*aiq, s*aip+c*aiq
				}
				w[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
				w[r*n+r] = s*s*app + 2*c*s*apq + c*c*aqq
				w[p*n+r], w[r*n+p] = 0, 0

				for i := 0; i < n; i++ {
					qip, qiq = q[i*n+p], q[i*n+r]
					q[i*n+p] = c*qip - s*qiq
					q[i*n+r] = s*qip + c*qiq
				}
			}
		}
	}
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = w[i*n+i]
	}
	return vals, mat.NewDense(n, n, q), nil
}
