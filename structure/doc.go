// SPDX-License-Identifier: MIT

// Package structure holds the immutable evaluation context of one crystal
// structure: atom symbols, per-type orbital layouts, the shared
// orbital.IndexMap, the global orbital index ranges and the onsite,
// hopping and onsite-strain bond lists supplied by a geometry provider.
//
// A Structure is built once by New (or FromProvider), validated eagerly and
// never mutated afterwards; every assembly call receives it explicitly.
//
// Global orbital index:
//
//	atom a owns [Range(a).Start, Range(a).End), Start is the prefix sum of
//	the orbital counts of atoms 0..a-1. Atoms whose symbol has no layout
//	(environment-only atoms, e.g. strain neighbours) own an empty range.
//
// Bond enumeration:
//
//	TimeReversal() == true   each hopping pair appears in one direction;
//	                          the Bloch transform restores the other one.
//	TimeReversal() == false  both (i,j,R) and (j,i,-R) are enumerated.
package structure
