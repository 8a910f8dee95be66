package backtrack

// engine.go: the depth-first search driver with pruning and solution
// bookkeeping.

import (
	"context"
	"errors"
	"math"
	"time"
)

// DefaultSolutionCount is the solution cap used when WithSolutionCount is not
// given. If your problem ramifies a lot (or barely at all) tune it with
// WithSolutionCount.
const DefaultSolutionCount = 100

// ErrSearchLimitReached indicates a search terminated due to a configured
// node limit. Solutions accumulated up to that point are valid and remain
// readable, but the search space was not exhausted.
var ErrSearchLimitReached = errors.New("search limit reached")

// Engine performs depth-first backtracking search over a single live State
// instance. Create one with New, run it with Solve, and read results back
// with AllSolutions, BestValue and Stats.
//
// Thread safety: Engine instances are NOT thread-safe. The engine mutates
// its state in place during the search and must not be shared across
// goroutines.
//
// Solve may be called again after it returns; all mutable fields persist, so
// a second call continues accumulating from wherever the first one left the
// live state (normally fully rolled back to the initial configuration unless
// the first run was truncated early).
type Engine[P State[P, A, S], A, S any] struct {
	// state is the single live problem state, exclusively owned and mutated
	// in strict stack discipline during Solve.
	state P

	// estimator is non-nil when P implements Estimator; discovered once at
	// construction.
	estimator Estimator[A]

	solutionCount int
	nodeLimit     int
	timeLimit     time.Duration

	// solutions holds accepted terminal snapshots, deduplicated on Key.
	solutions map[string]P

	// bestValue is the running best terminal value: seeded -Inf for Max,
	// +Inf for Min, unused for All.
	bestValue float64

	// success means the solution cap has been reached; stop exploring.
	success bool

	stats SearchStats
}

// New creates an engine for the given initial state. The caller is
// responsible for supplying the problem's starting configuration; the engine
// performs no validation beyond what the State contract guarantees.
func New[P State[P, A, S], A, S any](state P, opts ...Option) *Engine[P, A, S] {
	cfg := &config{
		solutionCount: DefaultSolutionCount,
	}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}

	e := &Engine[P, A, S]{
		state:         state,
		solutionCount: cfg.solutionCount,
		nodeLimit:     cfg.nodeLimit,
		timeLimit:     cfg.timeLimit,
		solutions:     make(map[string]P),
	}

	switch state.ProblemType() {
	case Max:
		e.bestValue = math.Inf(-1)
	case Min:
		e.bestValue = math.Inf(1)
	}

	if est, ok := any(state).(Estimator[A]); ok {
		e.estimator = est
	}

	return e
}

// Solve runs the depth-first search to completion. It has no result value of
// its own; its side effect is the population of the solution set and the
// advancement of the best value.
//
// Solve returns nil when the alternative tree was exhausted or the solution
// cap was reached, ErrSearchLimitReached when a configured node limit cut
// the search short, and ctx.Err() when the context was cancelled or a
// configured time limit expired. In every case the live state is rolled back
// step by step on the way out, so the accumulated solutions remain readable
// and a later Solve call continues from a consistent state.
func (e *Engine[P, A, S]) Solve(ctx context.Context) error {
	if e.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeLimit)
		defer cancel()
	}

	start := time.Now()
	err := e.search(ctx, 0)
	e.stats.SearchTime += time.Since(start)
	return err
}

// search is one frame of the recursive exploration. Recursion depth equals
// the number of forward steps taken, bounded by the monotonic Size contract.
func (e *Engine[P, A, S]) search(ctx context.Context, depth int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	e.stats.NodesExplored++
	if e.nodeLimit > 0 && e.stats.NodesExplored > e.nodeLimit {
		return ErrSearchLimitReached
	}
	if depth > e.stats.MaxDepth {
		e.stats.MaxDepth = depth
	}

	if e.state.IsFinal() {
		e.updateSolutions()
		e.success = len(e.solutions) >= e.solutionCount
		return nil
	}

	// Pruning decisions for every sibling are taken here, against the best
	// value as it stands before any of them is explored. A sibling that
	// survives the filter is still explored even if an earlier sibling has
	// since raised the bar.
	alternatives := e.state.Alternatives()
	candidates := alternatives[:0:0]
	for _, a := range alternatives {
		if e.isToPrune(a) {
			e.stats.Pruned++
			continue
		}
		candidates = append(candidates, a)
	}

	for _, a := range candidates {
		e.state.Forward(a)
		e.stats.ForwardSteps++

		err := e.search(ctx, depth+1)

		// Backward always runs, even when recursion failed or set success,
		// so every ancestor frame sees the state exactly as it was before
		// this alternative was tried.
		e.state.Backward(a)
		e.stats.Backtracks++

		if err != nil {
			return err
		}
		if e.success {
			break
		}
	}
	return nil
}

// updateSolutions stores a snapshot of the current (final) state if it is
// better than the running best, or unconditionally for All problems.
//
// Acceptance is streaming and non-retroactive: under Min and Max only a
// state strictly better than the previous best is inserted, so terminal
// states tied at the best value are not all retained. Duplicate states, by
// Key, are not re-inserted.
func (e *Engine[P, A, S]) updateSolutions() {
	value := e.state.Value()
	problemType := e.state.ProblemType()

	if (problemType != Min && problemType != Max) ||
		(problemType == Min && value < e.bestValue) ||
		(problemType == Max && value > e.bestValue) {

		key := e.state.Key()
		if _, dup := e.solutions[key]; !dup {
			e.solutions[key] = e.state.Clone()
			e.stats.SolutionsFound++
		}
		e.bestValue = value
	}
}

// isToPrune decides whether alternative a is not worth exploring. It needs a
// well written Estimator to ever say yes.
func (e *Engine[P, A, S]) isToPrune(a A) bool {
	switch e.state.ProblemType() {
	case Max:
		return e.estimate(a, math.Inf(1)) <= e.bestValue
	case Min:
		return e.estimate(a, math.Inf(-1)) >= e.bestValue
	default:
		return false
	}
}

// estimate returns the state's bound for a, or the most permissive bound
// when the state implements no Estimator.
func (e *Engine[P, A, S]) estimate(a A, unbounded float64) float64 {
	if e.estimator == nil {
		return unbounded
	}
	return e.estimator.EstimatedValue(a)
}

// AllSolutions returns a copy of the accumulated solution set. It is empty
// if Solve was never called or no terminal state qualified. Order is
// unspecified; use Value on the returned states (or BestValue) to rank them.
func (e *Engine[P, A, S]) AllSolutions() []P {
	out := make([]P, 0, len(e.solutions))
	for _, s := range e.solutions {
		out = append(out, s.Clone())
	}
	return out
}

// BestValue returns the running best terminal value seen so far: -Inf (Max)
// or +Inf (Min) until a first solution is accepted. For All problems it has
// no acceptance role and merely tracks the last collected terminal's value,
// starting at 0.
func (e *Engine[P, A, S]) BestValue() float64 {
	return e.bestValue
}

// Stats returns a copy of the search statistics accumulated so far.
func (e *Engine[P, A, S]) Stats() SearchStats {
	return e.stats
}
