package schedulers

import (
	"cpu-scheduler/internal/core"
	"golang.org/x/sync/errgroup"
)

// CompareAll runs every algorithm on its own copy of processes concurrently.
// Results come back in Algorithms order; the first error wins.
func CompareAll(processes []core.Process, timeQuantum, agingInterval int) ([]Result, error) {
	policies := make([]Policy, len(Algorithms))
	for i, a := range Algorithms {
		policies[i] = Policy{Algorithm: a, TimeQuantum: timeQuantum, AgingInterval: agingInterval}
		if err := policies[i].Validate(); err != nil {
			return nil, err
		}
	}

	results := make([]Result, len(policies))
	var g errgroup.Group
	for i, policy := range policies {
		i, policy := i, policy
		g.Go(func() error {
			result, err := policy.Schedule(processes)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
