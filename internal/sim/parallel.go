package sim

import (
	"context"
	"sync"

	"github.com/san-kum/strange/internal/dynamo"
)

// Ensemble runs several trajectories of the same field concurrently, each
// from a slightly perturbed start state. Runs share no mutable state, so the
// divergence between them exposes sensitivity to initial conditions.
type Ensemble struct {
	base         *Simulator
	runs         int
	perturbation float64
}

func NewEnsemble(s *Simulator, runs int, perturbation float64) *Ensemble {
	return &Ensemble{base: s, runs: runs, perturbation: perturbation}
}

// Run launches one goroutine per member. Member i starts from the base start
// state with i*perturbation added to x. The first error, if any, is returned
// and the whole batch is discarded.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*dynamo.Trajectory, error) {
	start := e.base.field.InitialState()
	if cfg.Start != nil {
		start = *cfg.Start
	}

	results := make([]*dynamo.Trajectory, e.runs)
	errs := make([]error, e.runs)

	var wg sync.WaitGroup
	for i := 0; i < e.runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			s0 := start
			s0.X += e.perturbation * float64(idx)

			memberCfg := cfg
			memberCfg.Start = &s0

			results[idx], errs[idx] = e.base.Run(ctx, memberCfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
