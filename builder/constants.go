// SPDX-License-Identifier: MIT

package builder

//-----------------------------------------------------------------------------
// Method name constants, used to prefix errors.
//-----------------------------------------------------------------------------

const (
	MethodBuildCrystal   = "BuildCrystal"
	MethodBuild          = "Build"
	MethodNeighbours     = "Neighbours"
	MethodLattice        = "Lattice"
	MethodAtom           = "Atom"
	MethodFractionalAtom = "FractionalAtom"
	MethodDimer          = "Dimer"
	MethodLinearChain    = "LinearChain"
	MethodSquareLattice  = "SquareLattice"
	MethodHoneycomb      = "Honeycomb"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultCutoff is the hopping cutoff radius.
const DefaultCutoff = 3.0

// DefaultVacuum is the cell length presets use along non-periodic axes.
const DefaultVacuum = 20.0

// AutoSearchRange asks the neighbour search to derive the number of
// periodic images from the cutoff and the cell.
const AutoSearchRange = -1

// MinSiteDistance is the distance under which two sites are considered
// to coincide.
const MinSiteDistance = 1e-6
