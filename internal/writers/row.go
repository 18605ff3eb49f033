// SPDX-License-Identifier: MIT

package writers

import "github.com/dywu101/deeptb/hamiltonian"

// Row is the spectrum at one k-point.
type Row struct {
	Index    int        `json:"index"`
	K        [3]float64 `json:"k"`
	Distance float64    `json:"distance"`
	Label    string     `json:"label,omitempty"`
	Energies []float64  `json:"energies"`
}

// Rows flattens a solve result. dist and labels are optional per-k path
// distances and tick labels (keyed by k index).
func Rows(res *hamiltonian.Result, dist []float64, labels map[int]string) []Row {
	out := make([]Row, len(res.KPoints))
	for i, k := range res.KPoints {
		out[i] = Row{Index: i, K: k, Energies: res.Energies[i], Label: labels[i]}
		if i < len(dist) {
			out[i].Distance = dist[i]
		}
	}
	return out
}
