// SPDX-License-Identifier: MIT

package kpoints

import "fmt"

// MonkhorstPack returns the n1×n2×n3 grid k_i = (2r_i - n_i - 1)/(2n_i),
// r_i = 1..n_i, shifted by shift (reduced units), in row-major order with
// the third index fastest.
func MonkhorstPack(n [3]int, shift [3]float64) ([][3]float64, error) {
	if n[0] < 1 || n[1] < 1 || n[2] < 1 {
		return nil, fmt.Errorf("MonkhorstPack: %v: %w", n, ErrBadGrid)
	}
	axis := func(a int) []float64 {
		out := make([]float64, n[a])
		for r := 1; r <= n[a]; r++ {
			out[r-1] = float64(2*r-n[a]-1)/float64(2*n[a]) + shift[a]
		}
		return out
	}
	x, y, z := axis(0), axis(1), axis(2)
	out := make([][3]float64, 0, n[0]*n[1]*n[2])
	for _, kx := range x {
		for _, ky := range y {
			for _, kz := range z {
				out = append(out, [3]float64{kx, ky, kz})
			}
		}
	}
	return out, nil
}
