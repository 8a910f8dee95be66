// Package dac implements the divide and conquer strategy: a problem is
// split into independent subproblems, each solved recursively down to a
// base case, and the partial solutions are combined on the way back up.
//
// Unlike the backtrack engine this strategy carries no shared mutable
// state and no pruning; it is a pure recursive decomposition. Callers
// implement the Problem interface and read the result back through
// Solution.
package dac

// Problem is the caller-implemented divide and conquer contract. P is the
// implementing type itself, E is the partial-solution type produced by base
// cases and Combine, and S is the externally meaningful solution type.
//
// Contract:
//   - Size reports the problem magnitude and should strictly shrink from a
//     problem to each of its subproblems; the strategy does not detect a
//     decomposition that fails to make progress.
//   - IsBaseCase reports whether the problem is small enough to solve
//     directly with BaseCaseSolution.
//   - Subproblem(i) returns the i-th of SubproblemCount independent
//     subproblems.
//   - Combine merges the subproblem partials, given in subproblem order.
//   - Solution converts the root partial into the external solution type,
//     or reports false when the partial has no valid output.
type Problem[P, E, S any] interface {
	Size() int
	IsBaseCase() bool
	BaseCaseSolution() E

	SubproblemCount() int
	Subproblem(i int) P

	Combine(partials []E) E

	Solution(partial E) (S, bool)
}

// Memoizer is an optional upgrade interface for Problem implementations
// whose subproblems repeat (Fibonacci-style decompositions). When the
// problem implements it, Solve caches partials under MemoKey and solves
// each distinct subproblem once. Keys must identify a subproblem up to
// interchangeability of its partial solution.
type Memoizer interface {
	MemoKey() string
}

// Algorithm solves a divide and conquer problem eagerly at construction and
// hangs on to the root partial so Solution can be read repeatedly.
type Algorithm[P Problem[P, E, S], E, S any] struct {
	problem P
	partial E
}

// New decomposes and solves the given problem.
func New[P Problem[P, E, S], E, S any](problem P) *Algorithm[P, E, S] {
	a := &Algorithm[P, E, S]{problem: problem}
	if _, ok := any(problem).(Memoizer); ok {
		a.partial = solveMemo[P, E, S](problem, make(map[string]E))
	} else {
		a.partial = solve[P, E, S](problem)
	}
	return a
}

// Solution converts the root partial solution into the external solution
// type. It reports false when the problem has no valid output.
func (a *Algorithm[P, E, S]) Solution() (S, bool) {
	return a.problem.Solution(a.partial)
}

func solve[P Problem[P, E, S], E, S any](problem P) E {
	if problem.IsBaseCase() {
		return problem.BaseCaseSolution()
	}

	partials := make([]E, problem.SubproblemCount())
	for i := range partials {
		partials[i] = solve[P, E, S](problem.Subproblem(i))
	}
	return problem.Combine(partials)
}

func solveMemo[P Problem[P, E, S], E, S any](problem P, memo map[string]E) E {
	if problem.IsBaseCase() {
		return problem.BaseCaseSolution()
	}

	key := any(problem).(Memoizer).MemoKey()
	if partial, ok := memo[key]; ok {
		return partial
	}

	partials := make([]E, problem.SubproblemCount())
	for i := range partials {
		partials[i] = solveMemo[P, E, S](problem.Subproblem(i), memo)
	}
	partial := problem.Combine(partials)
	memo[key] = partial
	return partial
}
