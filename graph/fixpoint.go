// This file declares the fixed-point iteration driver and its options.

package graph

// FixOption configures IterateUntilFixedPoint.
type FixOption func(*fixOptions)

// fixOptions holds tunables for the fixed-point driver.
type fixOptions struct {
	// maxIterations caps the number of full edge sweeps; 0 means
	// unbounded.
	maxIterations int
}

// WithMaxIterations returns a FixOption capping the driver at limit
// full sweeps. Exceeding the cap aborts with ErrNoFixedPoint. Use it
// as a diagnostic guard when the transition function is not known to
// be monotone and bounded.
func WithMaxIterations(limit int) FixOption {
	return func(o *fixOptions) {
		o.maxIterations = limit
	}
}

// IterateUntilFixedPoint repeatedly sweeps every edge in creation
// order, invoking op with the 1-based sweep number, the edge index,
// and the edge, until one full sweep reports no change. op reports
// whether its application changed any state; a sweep with at least one
// change triggers another sweep.
//
// A common use is constraint propagation: each edge encodes a directed
// constraint between node-associated values (bitsets, lattice points)
// and op performs one relaxation step. Termination is the caller's
// obligation: op must be monotone over a bounded domain, or a
// WithMaxIterations cap must be set; otherwise the driver loops
// forever. Returns nil on convergence.
// Complexity: O(sweeps × E) plus the cost of op
func (g *Graph[N, E]) IterateUntilFixedPoint(op func(iteration int, idx EdgeIndex, e *Edge[E]) bool, opts ...FixOption) error {
	// 1. Apply options.
	var cfg fixOptions
	for _, fn := range opts {
		fn(&cfg)
	}

	// 2. Sweep until a full pass is change-free.
	iteration := 0
	changed := true
	for changed {
		changed = false
		iteration++
		if cfg.maxIterations > 0 && iteration > cfg.maxIterations {
			return ErrNoFixedPoint
		}

		// Every edge is visited each sweep, even after a change.
		all := g.edges.All()
		for i := range all {
			if op(iteration, EdgeIndex(i), &all[i]) {
				changed = true
			}
		}
	}

	return nil
}
