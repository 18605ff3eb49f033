// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"
	"sync"

	"github.com/dywu101/deeptb/soc"
	"github.com/dywu101/deeptb/structure"
)

// Model is the stateful assemble-then-solve facade. It owns the SOC cache
// for its lifetime; each Assemble replaces the current Assembly. Safe for
// concurrent use.
type Model struct {
	mu    sync.RWMutex
	asm   *Assembly
	cache *soc.Cache
	opts  []AssembleOption
}

// NewModel returns a Model that applies opts on every Assemble.
func NewModel(opts ...AssembleOption) *Model {
	return &Model{cache: soc.NewCache(), opts: opts}
}

// Assemble builds and stores the assembly for st and in. On error the
// previous assembly is dropped.
func (m *Model) Assemble(st *structure.Structure, in Integrals) error {
	opts := append([]AssembleOption{WithSOCCache(m.cache)}, m.opts...)
	asm, err := Assemble(st, in, opts...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.asm = asm
	return err
}

// Solve diagonalises the current assembly; see Assembly.Solve.
//
// Errors:
//   - ErrNotAssembled before a successful Assemble.
func (m *Model) Solve(kpts [][3]float64, timeSymm bool, opts ...SolveOption) (*Result, error) {
	asm := m.Assembly()
	if asm == nil {
		return nil, fmt.Errorf("%s: %w", opSolve, ErrNotAssembled)
	}
	return asm.Solve(kpts, timeSymm, opts...)
}

// Assembly returns the current assembly, nil before Assemble.
func (m *Model) Assembly() *Assembly {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.asm
}

// Reset drops the current assembly; the SOC cache is kept.
func (m *Model) Reset() {
	m.mu.Lock()
	m.asm = nil
	m.mu.Unlock()
}

// Cache returns the model's SOC cache.
func (m *Model) Cache() *soc.Cache { return m.cache }
