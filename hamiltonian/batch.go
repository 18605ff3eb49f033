// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/dywu101/deeptb/soc"
	"github.com/dywu101/deeptb/structure"
)

// Job is one structure of a batch.
type Job struct {
	Structure     *structure.Structure
	Integrals     Integrals
	KPoints       [][3]float64
	TimeSymmetric bool
	Assemble      []AssembleOption
}

// SolveBatch assembles and solves independent structures concurrently,
// at most workers at a time, sharing one SOC cache. k-points inside a job
// are solved sequentially. The first failing job cancels jobs not yet
// started and the whole batch fails.
func SolveBatch(jobs []Job, workers int, opts ...SolveOption) ([]*Result, error) {
	if workers < 1 {
		workers = 1
	}
	cache := soc.NewCache()
	solveOpts := append(append([]SolveOption(nil), opts...), WithWorkers(1))
	out := make([]*Result, len(jobs))

	p := pool.New().
		WithMaxGoroutines(workers).
		WithContext(context.Background()).
		WithCancelOnError().
		WithFirstError()
	for i := range jobs {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			job := &jobs[i]
			aopts := append([]AssembleOption{WithSOCCache(cache)}, job.Assemble...)
			asm, err := Assemble(job.Structure, job.Integrals, aopts...)
			if err != nil {
				return fmt.Errorf("%s: job %d: %w", opBatch, i, err)
			}
			res, err := asm.Solve(job.KPoints, job.TimeSymmetric, solveOpts...)
			if err != nil {
				return fmt.Errorf("%s: job %d: %w", opBatch, i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
