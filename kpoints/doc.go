// SPDX-License-Identifier: MIT

// Package kpoints generates k-point lists in reduced reciprocal
// coordinates: piecewise-linear paths through labelled high-symmetry
// points and Monkhorst-Pack grids.
package kpoints
