// SPDX-License-Identifier: MIT

// Package sk is the Slater-Koster rotation engine: it turns scalar
// two-centre bond integrals (σ, π, δ) and a bond direction into the
// orbital sub-block expressed in the fixed real-orbital basis of
// package orbital.
//
// The formula table is canonical on l_lo ≤ l_hi and is indexed by the
// closed orbital.Shell enumeration, so an unsupported shell pair is a
// compile-time gap rather than a runtime string lookup. Callers that need
// the swapped order transpose the result themselves (see Rotate).
package sk
