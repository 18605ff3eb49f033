// SPDX-License-Identifier: MIT

package soc

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/dywu101/deeptb/orbital"
)

// AtomicPair holds the block-diagonal per-type quadrants: for each shell
// of the layout, ShellOperator's Diag and Up placed at the shell's offset.
// Read-only once built.
type AtomicPair struct {
	Layout orbital.Layout
	Diag   *mat.CDense
	Up     *mat.CDense
}

type cacheEntry struct {
	once sync.Once
	pair *AtomicPair
}

// Cache maps (atom type, layout) to its AtomicPair. Each entry is built
// exactly once, by the first caller, and shared afterwards. The zero value
// is ready to use.
type Cache struct {
	entries sync.Map // string -> *cacheEntry
}

// NewCache returns an empty cache.
func NewCache() *Cache { return &Cache{} }

// Get returns the atomic quadrants for typ with layout l, building them on
// first use. The key includes the layout so a type whose basis changes
// never reuses a stale entry.
func (c *Cache) Get(typ string, l orbital.Layout) *AtomicPair {
	key := typ + "|" + l.String()
	v, _ := c.entries.LoadOrStore(key, &cacheEntry{})
	e := v.(*cacheEntry)
	e.once.Do(func() { e.pair = buildPair(l) })
	return e.pair
}

// Len returns the number of built or in-flight entries.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool { n++; return true })
	return n
}

func buildPair(l orbital.Layout) *AtomicPair {
	n := l.Count()
	p := &AtomicPair{Layout: l, Diag: mat.NewCDense(n, n, nil), Up: mat.NewCDense(n, n, nil)}
	for s := 0; s < l.Len(); s++ {
		sh := l.ShellAt(s).Shell
		if sh.L() == 0 {
			continue
		}
		d, u := ShellOperator(sh)
		off := l.Offset(s)
		for i := 0; i < sh.Count(); i++ {
			for j := 0; j < sh.Count(); j++ {
				p.Diag.Set(off+i, off+j, d.At(i, j))
				p.Up.Set(off+i, off+j, u.At(i, j))
			}
		}
	}
	return p
}
