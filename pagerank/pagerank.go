// File: pagerank.go
// Role: personalization- and dangling-aware power iteration over a
//       core.Store's dense index space.
package pagerank

import (
	"gonum.org/v1/gonum/floats"

	"github.com/valtrix-labs/pagegraph/core"
)

// Result carries the outcome of one Run call. Iterations and Converged
// are the optional observability hook noted in the design docs: even when
// Converged is false (max iterations exhausted), Scores holds the last
// iterate, never an error value.
type Result struct {
	Scores     []float64
	Iterations int
	Converged  bool
}

// Run executes power-iteration PageRank over store, which must already be
// compacted (store.SlotCount() == store.NumNodes()) — the kernel indexes
// its vectors 0..store.SlotCount()-1 and does not skip vacant slots.
//
// init, personalization, and dangling must each have length
// store.SlotCount(), be componentwise non-negative, and sum to 1; Run does
// not re-normalize or validate this beyond a length check. alpha must lie
// in [0, 1].
//
// Per node u, S(u) is the sum of outgoing edge weights; a node with
// S(u) == 0 is dangling and contributes no term to step 2's summation —
// its mass is redistributed globally via dangling in step 2's second
// term. Negative weights are undefined behavior at this level; the
// facade does not reject them, so they reach the kernel unchanged. alpha
// is accepted on the closed interval [0, 1] rather than the open interval
// a classical damping factor implies: at alpha == 0 the iteration reduces
// to the personalization vector on the first pass and converges
// immediately regardless of graph structure, which is a legitimate
// (if degenerate) input, not an error.
//
// Convergence is judged on the L1 distance between successive iterates,
// scaled by N (the classical NetworkX convention: stop when
// Σ|Δr| < N·tol). Run always returns after at most maxIter iterations,
// whether or not that threshold was reached.
//
// Complexity: O(maxIter · (N + E)).
func Run(store *core.Store, init, personalization, dangling []float64, alpha float64, maxIter int, tol float64) (Result, error) {
	n := store.SlotCount()
	if len(init) != n || len(personalization) != n || len(dangling) != n {
		return Result{}, ErrDimensionMismatch
	}
	if alpha < 0 || alpha > 1 {
		return Result{}, ErrInvalidAlpha
	}

	outWeight := make([]float64, n)
	for u := 0; u < n; u++ {
		store.WalkOut(u, func(_ int, weight float64) bool {
			outWeight[u] += weight
			return true
		})
	}

	r := make([]float64, n)
	copy(r, init)
	next := make([]float64, n)

	iterations := 0
	converged := false

	for iter := 0; iter < maxIter; iter++ {
		danglingMass := 0.0
		for u := 0; u < n; u++ {
			if outWeight[u] == 0 {
				danglingMass += r[u]
			}
		}

		for v := range next {
			next[v] = 0
		}
		for u := 0; u < n; u++ {
			if outWeight[u] == 0 {
				continue
			}
			ru := r[u]
			su := outWeight[u]
			store.WalkOut(u, func(v int, weight float64) bool {
				next[v] += ru * weight / su
				return true
			})
		}
		for v := range next {
			next[v] = alpha*next[v] + alpha*danglingMass*dangling[v] + (1-alpha)*personalization[v]
		}

		delta := floats.Distance(next, r, 1)
		copy(r, next)
		iterations++

		if delta < tol*float64(n) {
			converged = true
			break
		}
	}

	return Result{Scores: r, Iterations: iterations, Converged: converged}, nil
}
